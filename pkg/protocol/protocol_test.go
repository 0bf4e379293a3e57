package protocol

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeFrame(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"event", `{"t":"event","seq":1,"d":{"type":"scroll","y":10}}`, nil},
		{"ping no payload", `{"t":"ping"}`, nil},
		{"unknown type", `{"t":"bogus"}`, ErrInvalidFrameType},
		{"missing type", `{"seq":3}`, ErrInvalidFrameType},
		{"not json", `hello`, ErrMalformedFrame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFrame([]byte(tt.input))
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeFrameTooLarge(t *testing.T) {
	big := `{"t":"event","d":"` + strings.Repeat("x", MaxFrameSize) + `"}`
	if _, err := DecodeFrame([]byte(big)); !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("err = %v, want ErrFrameTooLarge", err)
	}
}

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Event
		wantErr bool
	}{
		{"scroll", `{"type":"scroll","y":75.5}`, Event{Type: EventScroll, Y: 75.5}, false},
		{"scroll top", `{"type":"scroll"}`, Event{Type: EventScroll}, false},
		{"click", `{"type":"click","action":"testimonial.select","value":"2"}`,
			Event{Type: EventClick, Action: "testimonial.select", Value: "2"}, false},
		{"click no action", `{"type":"click"}`, Event{}, true},
		{"visible", `{"type":"visible","target":"faq","top":100,"bottom":600,"viewport":800}`,
			Event{Type: EventVisible, Target: "faq", Top: 100, Bottom: 600, Viewport: 800}, false},
		{"visible no viewport", `{"type":"visible","target":"faq","top":1}`, Event{}, true},
		{"visible no target", `{"type":"visible","viewport":800}`, Event{}, true},
		{"unknown", `{"type":"hover"}`, Event{}, true},
		{"bad json", `{"type":`, Event{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := DecodeFrame([]byte(`{"t":"event","d":` + tt.payload + `}`))
			if err != nil {
				if !tt.wantErr {
					t.Fatalf("DecodeFrame: %v", err)
				}
				return
			}
			got, err := DecodeEvent(f)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("got %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestDecodeEventWrongFrame(t *testing.T) {
	if _, err := DecodeEvent(&Frame{Type: FramePing}); !errors.Is(err, ErrInvalidFrameType) {
		t.Errorf("err = %v, want ErrInvalidFrameType", err)
	}
	if _, err := DecodeEvent(&Frame{Type: FrameEvent}); !errors.Is(err, ErrMalformedFrame) {
		t.Errorf("err = %v, want ErrMalformedFrame", err)
	}
}

func TestEncodePatches(t *testing.T) {
	f, err := NewFrame(FramePatches, PatchBatch{Patches: []Patch{
		Replace("testimonial", `<div id="testimonial"></div>`),
		SetClass("site-header", "is-scrolled", true),
		SetAttr("nav-toggle", "aria-expanded", "true"),
	}})
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	f.Seq = 4

	data, err := f.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got := string(data)
	for _, want := range []string{
		`"t":"patches"`,
		`"seq":4`,
		`{"op":"replace","target":"testimonial","html":"<div id=\"testimonial\"></div>"}`,
		`{"op":"class","target":"site-header","class":"is-scrolled","on":true}`,
		`{"op":"attr","target":"nav-toggle","name":"aria-expanded","value":"true"}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("encoded frame missing %s\n%s", want, got)
		}
	}

	back, err := DecodeFrame(data)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	var batch PatchBatch
	if err := back.Decode(&batch); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(batch.Patches) != 3 || batch.Patches[1].Class != "is-scrolled" {
		t.Errorf("decoded batch = %+v", batch)
	}
}

func TestNewFrameWithoutPayload(t *testing.T) {
	f, err := NewFrame(FrameClose, nil)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	data, _ := f.Encode()
	if string(data) != `{"t":"close"}` {
		t.Errorf("got %s", data)
	}
}

func TestNewFrameMarshalError(t *testing.T) {
	if _, err := NewFrame(FrameEvent, make(chan int)); err == nil {
		t.Error("expected marshal error")
	}
}
