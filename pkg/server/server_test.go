package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aibabysense/landing/internal/page"
	"github.com/aibabysense/landing/pkg/assets"
	"github.com/aibabysense/landing/pkg/protocol"
	"github.com/aibabysense/landing/pkg/ui"
)

var testAssets = fstest.MapFS{
	"logo/favicon-32x32.png": {Data: []byte("\x89PNG logo")},
	"happy-baby-aisense.png": {Data: []byte("\x89PNG preview")},
	"robots.txt":             {Data: []byte("User-agent: *\n")},
}

func newTestServer(t *testing.T, mutate func(*ServerConfig)) (*Server, *httptest.Server, *ui.ManualClock) {
	t.Helper()
	clock := ui.NewManualClock()
	cfg := &ServerConfig{
		Clock:  clock,
		Assets: assets.NewFSSource(testAssets),
		Logger: discardLogger(),
	}
	if mutate != nil {
		mutate(cfg)
	}
	srv := New(cfg)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		srv.Sessions().Shutdown(context.Background(), ShutdownReason)
		ts.Close()
	})
	return srv, ts, clock
}

func get(t *testing.T, url string, header http.Header) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestPageRoute(t *testing.T) {
	_, ts, _ := newTestServer(t, nil)

	resp, body := get(t, ts.URL+"/", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		`window.__LANDING__={"socket":"/_landing/ws","revealMargin":100};`,
		`<script src="/_landing/client.js" defer></script>`,
		`href="/_landing/landing.css"`,
		`id="site-header"`,
		"How It Works",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestEmbeddedRoutes(t *testing.T) {
	_, ts, _ := newTestServer(t, nil)

	tests := []struct {
		path string
		ct   string
	}{
		{ClientPath, "application/javascript; charset=utf-8"},
		{StylesheetPath, "text/css; charset=utf-8"},
	}
	for _, tt := range tests {
		resp, body := get(t, ts.URL+tt.path, nil)
		if resp.StatusCode != http.StatusOK || body == "" {
			t.Fatalf("%s: status = %d, %d bytes", tt.path, resp.StatusCode, len(body))
		}
		if got := resp.Header.Get("Content-Type"); got != tt.ct {
			t.Errorf("%s: Content-Type = %q, want %q", tt.path, got, tt.ct)
		}
		if got := resp.Header.Get("Cache-Control"); got != "public, max-age=0, must-revalidate" {
			t.Errorf("%s: Cache-Control = %q", tt.path, got)
		}
		etag := resp.Header.Get("ETag")
		if etag == "" {
			t.Fatalf("%s: missing ETag", tt.path)
		}

		resp, _ = get(t, ts.URL+tt.path, http.Header{"If-None-Match": {etag}})
		if resp.StatusCode != http.StatusNotModified {
			t.Errorf("%s: conditional status = %d, want 304", tt.path, resp.StatusCode)
		}
	}
}

func TestEmbeddedRoutesDevMode(t *testing.T) {
	_, ts, _ := newTestServer(t, func(c *ServerConfig) { c.DevMode = true })

	resp, _ := get(t, ts.URL+ClientPath, nil)
	if got := resp.Header.Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
	_, body := get(t, ts.URL+"/", nil)
	if !strings.Contains(body, `"debug":true`) {
		t.Error("dev page does not enable client debug")
	}
}

func TestAssetRoutes(t *testing.T) {
	_, ts, _ := newTestServer(t, nil)

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/logo/favicon-32x32.png", http.StatusOK, "\x89PNG logo"},
		{"/happy-baby-aisense.png", http.StatusOK, "\x89PNG preview"},
		{"/static/robots.txt", http.StatusOK, "User-agent: *\n"},
		{"/static/logo/favicon-32x32.png", http.StatusOK, "\x89PNG logo"},
		{"/static/missing.png", http.StatusNotFound, ""},
		{"/logo/missing.png", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		resp, body := get(t, ts.URL+tt.path, nil)
		if resp.StatusCode != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.path, resp.StatusCode, tt.status)
			continue
		}
		if tt.status == http.StatusOK && body != tt.body {
			t.Errorf("%s: body = %q, want %q", tt.path, body, tt.body)
		}
	}
}

func TestAssetRoutesWithoutSource(t *testing.T) {
	_, ts, _ := newTestServer(t, func(c *ServerConfig) { c.Assets = nil })

	resp, _ := get(t, ts.URL+"/logo/favicon-32x32.png", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	_, ts, _ := newTestServer(t, nil)

	resp, body := get(t, ts.URL+HealthPath, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d", resp.StatusCode)
	}
	var health struct {
		Status   string `json:"status"`
		Sessions int    `json:"sessions"`
	}
	if err := json.Unmarshal([]byte(body), &health); err != nil {
		t.Fatalf("health body %q: %v", body, err)
	}
	if health.Status != "ok" || health.Sessions != 0 {
		t.Errorf("health = %+v", health)
	}

	get(t, ts.URL+"/", nil)
	resp, body = get(t, ts.URL+"/metrics", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("metrics status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, `landing_page_renders_total{status="success"} 1`) {
		t.Errorf("metrics missing page render count:\n%s", body)
	}
}

func TestMetricsNamespaceAndLabels(t *testing.T) {
	_, ts, _ := newTestServer(t, func(c *ServerConfig) {
		c.MetricsNamespace = "babysense"
		c.MetricsLabels = map[string]string{"env": "test"}
	})

	get(t, ts.URL+"/", nil)
	_, body := get(t, ts.URL+"/metrics", nil)
	if !strings.Contains(body, `babysense_page_renders_total{env="test",status="success"} 1`) {
		t.Errorf("metrics missing namespaced, labeled render count:\n%s", body)
	}
	if strings.Contains(body, "landing_page_renders_total") {
		t.Error("default namespace still registered")
	}
}

func TestMetricsPathDisabled(t *testing.T) {
	_, ts, _ := newTestServer(t, func(c *ServerConfig) { c.MetricsPath = "" })

	resp, _ := get(t, ts.URL+"/metrics", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

// wsClient is a test client speaking the frame protocol.
type wsClient struct {
	t    *testing.T
	conn *websocket.Conn
	seq  uint64
	sync []protocol.Patch
}

func dial(t *testing.T, ts *httptest.Server, header http.Header) (*wsClient, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + SocketPath
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		return nil, resp, err
	}
	t.Cleanup(func() { conn.Close() })
	return &wsClient{t: t, conn: conn}, resp, nil
}

func (c *wsClient) read() *protocol.Frame {
	c.t.Helper()
	c.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		c.t.Fatalf("read: %v", err)
	}
	var f protocol.Frame
	if err := json.Unmarshal(data, &f); err != nil {
		c.t.Fatalf("bad frame %q: %v", data, err)
	}
	return &f
}

func (c *wsClient) readPatches() []protocol.Patch {
	c.t.Helper()
	f := c.read()
	if f.Type != protocol.FramePatches {
		c.t.Fatalf("frame type = %q (%s), want patches", f.Type, f.Payload)
	}
	var batch protocol.PatchBatch
	if err := f.Decode(&batch); err != nil {
		c.t.Fatal(err)
	}
	return batch.Patches
}

func (c *wsClient) send(ft protocol.FrameType, payload any) {
	c.t.Helper()
	f, err := protocol.NewFrame(ft, payload)
	if err != nil {
		c.t.Fatal(err)
	}
	c.seq++
	f.Seq = c.seq
	data, err := f.Encode()
	if err != nil {
		c.t.Fatal(err)
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		c.t.Fatalf("write: %v", err)
	}
}

func (c *wsClient) hello() protocol.Hello {
	c.t.Helper()
	f := c.read()
	if f.Type != protocol.FrameHello {
		c.t.Fatalf("first frame = %q, want hello", f.Type)
	}
	var h protocol.Hello
	if err := f.Decode(&h); err != nil {
		c.t.Fatal(err)
	}
	c.sync = c.readPatches()
	if len(c.sync) != 2 || c.sync[0].Target != page.HeaderID || c.sync[1].Target != page.CarouselID {
		c.t.Fatalf("sync patches = %+v, want header and carousel", c.sync)
	}
	return h
}

func TestWebSocketLiveView(t *testing.T) {
	srv, ts, clock := newTestServer(t, nil)

	c, _, err := dial(t, ts, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	hello := c.hello()
	if srv.Sessions().Get(hello.Session) == nil {
		t.Fatalf("session %q not registered", hello.Session)
	}

	// Nav toggle re-renders the header with the mobile menu.
	c.send(protocol.FrameEvent, protocol.Event{Type: protocol.EventClick, Action: page.ActionNavToggle})
	patches := c.readPatches()
	if patches[0].Target != page.HeaderID || !strings.Contains(patches[0].HTML, `id="mobile-nav"`) {
		t.Fatalf("nav patch = %+v", patches[0])
	}

	// Scrolling past the threshold flags the header.
	c.send(protocol.FrameEvent, protocol.Event{Type: protocol.EventScroll, Y: 120})
	patches = c.readPatches()
	if patches[0] != protocol.SetClass(page.HeaderID, page.ClassScrolled, true) {
		t.Fatalf("scroll patch = %+v", patches[0])
	}

	// A rotator tick replaces the carousel.
	clock.Tick()
	patches = c.readPatches()
	if patches[0].Target != page.CarouselID || !strings.Contains(patches[0].HTML, `data-testimonial="1"`) {
		t.Fatalf("tick patch = %+v", patches[0])
	}

	// Visibility reports reveal a section once.
	c.send(protocol.FrameEvent, protocol.Event{Type: protocol.EventVisible, Target: page.RevealPricing, Top: 200, Bottom: 700, Viewport: 900})
	patches = c.readPatches()
	if patches[0] != protocol.SetClass(page.RevealPricing, page.ClassRevealed, true) {
		t.Fatalf("reveal patch = %+v", patches[0])
	}

	// Client pings are answered.
	c.send(protocol.FramePing, protocol.PingPong{Timestamp: 42})
	f := c.read()
	var pong protocol.PingPong
	if f.Type != protocol.FramePong || f.Decode(&pong) != nil || pong.Timestamp != 42 {
		t.Fatalf("pong frame = %+v", f)
	}
}

func TestWebSocketReconnectResyncs(t *testing.T) {
	_, ts, _ := newTestServer(t, nil)

	c, _, err := dial(t, ts, nil)
	if err != nil {
		t.Fatal(err)
	}
	c.hello()
	c.send(protocol.FrameEvent, protocol.Event{Type: protocol.EventClick, Action: page.ActionNavToggle})
	c.readPatches()
	c.send(protocol.FrameEvent, protocol.Event{Type: protocol.EventClick, Action: page.ActionTestimonial, Value: "2"})
	c.readPatches()
	c.conn.Close()

	// The page still shows the open menu and the third quote. The new view
	// overwrites both regions before handling anything.
	c2, _, err := dial(t, ts, nil)
	if err != nil {
		t.Fatal(err)
	}
	c2.hello()
	if strings.Contains(c2.sync[0].HTML, `id="mobile-nav"`) {
		t.Error("resynced header renders the mobile nav")
	}
	if !strings.Contains(c2.sync[1].HTML, `data-testimonial="0"`) {
		t.Error("resynced carousel is not at the first testimonial")
	}

	c2.send(protocol.FrameEvent, protocol.Event{Type: protocol.EventClick, Action: page.ActionNavToggle})
	if p := c2.readPatches()[0]; !strings.Contains(p.HTML, `id="mobile-nav"`) {
		t.Errorf("first toggle after reconnect = %+v, want open header", p)
	}
}

func TestWebSocketRejectsBadFrames(t *testing.T) {
	_, ts, _ := newTestServer(t, nil)
	c, _, err := dial(t, ts, nil)
	if err != nil {
		t.Fatal(err)
	}
	c.hello()

	expectError := func(code protocol.ErrorCode) {
		t.Helper()
		f := c.read()
		var msg protocol.ErrorMessage
		if f.Type != protocol.FrameError || f.Decode(&msg) != nil || msg.Code != code {
			t.Fatalf("frame = %q %s, want error %q", f.Type, f.Payload, code)
		}
	}

	if err := c.conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	expectError(protocol.ErrCodeInvalidFrame)

	c.send(protocol.FrameEvent, protocol.Event{Type: "hover"})
	expectError(protocol.ErrCodeInvalidEvent)

	c.send(protocol.FramePatches, protocol.PatchBatch{})
	expectError(protocol.ErrCodeInvalidFrame)
}

func TestWebSocketSessionLimit(t *testing.T) {
	_, ts, _ := newTestServer(t, func(c *ServerConfig) { c.MaxSessions = 1 })

	c, _, err := dial(t, ts, nil)
	if err != nil {
		t.Fatal(err)
	}
	c.hello()

	_, resp, err := dial(t, ts, nil)
	if !errors.Is(err, websocket.ErrBadHandshake) {
		t.Fatalf("second dial error = %v, want bad handshake", err)
	}
	if resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("second dial response = %+v, want 503", resp)
	}
}

func TestWebSocketOriginCheck(t *testing.T) {
	_, ts, _ := newTestServer(t, func(c *ServerConfig) {
		c.AllowedOrigins = []string{"https://babysense.example"}
	})

	_, resp, err := dial(t, ts, http.Header{"Origin": {"https://evil.example"}})
	if err == nil || resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign origin: err = %v, resp = %+v, want 403", err, resp)
	}

	c, _, err := dial(t, ts, http.Header{"Origin": {"https://BabySense.example/"}})
	if err != nil {
		t.Fatalf("allowed origin: %v", err)
	}
	c.hello()
}

func TestShutdownClosesLiveViews(t *testing.T) {
	srv, ts, clock := newTestServer(t, nil)
	c, _, err := dial(t, ts, nil)
	if err != nil {
		t.Fatal(err)
	}
	c.hello()

	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	f := c.read()
	var msg protocol.CloseMessage
	if f.Type != protocol.FrameClose || f.Decode(&msg) != nil || msg.Reason != ShutdownReason {
		t.Fatalf("frame = %q %s, want close", f.Type, f.Payload)
	}
	c.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := c.conn.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("read after close frame = %v, want normal closure", err)
	}
	if n := srv.Sessions().Count(); n != 0 {
		t.Errorf("sessions after shutdown = %d", n)
	}
	waitFor(t, func() bool { return clock.Active() == 0 })

	_, resp, err := dial(t, ts, nil)
	if err == nil || resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("dial after shutdown: err = %v, want 503", err)
	}
}

func TestServeStopsOnContextCancel(t *testing.T) {
	srv := New(&ServerConfig{Address: "127.0.0.1:0", Logger: discardLogger(), Clock: ui.NewManualClock()})
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
