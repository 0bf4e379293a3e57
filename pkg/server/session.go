package server

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/aibabysense/landing/pkg/protocol"
	"github.com/aibabysense/landing/pkg/ui"
)

// Session is one live page view: a WebSocket connection, the listeners the
// mounted view subscribes to and the loops that drive them.
//
// Session implements page.Host.
type Session struct {
	// Identity
	ID        string
	IP        string
	CreatedAt time.Time

	// Connection
	conn   *websocket.Conn
	closed atomic.Bool

	// Lifecycle
	owner *ui.Owner
	clock ui.Clock

	// Event targets the view listens on. Emitted only from the event loop.
	scrolls    ui.Listeners[float64]
	clicks     ui.Listeners[protocol.Event]
	visibility ui.Listeners[protocol.Event]

	// Channels
	events     chan *protocol.Event // Incoming UI events
	dispatchCh chan func()          // Functions to run on the event loop
	outbox     chan *protocol.Frame // Frames for the write loop
	done       chan struct{}        // Shutdown signal

	loopDone   chan struct{} // Closed when the event loop exits
	writerDone chan struct{} // Closed when the write loop exits
	started    atomic.Bool
	closeOnce  sync.Once
	reason     atomic.Value // string sent in the close frame

	// Sequence numbers
	sendSeq atomic.Uint64
	recvSeq atomic.Uint64

	config  *SessionConfig
	metrics *Metrics
	logger  *slog.Logger

	// onClose runs once after the session has shut down.
	onClose func(*Session)

	// Counters
	eventCount atomic.Uint64
	patchCount atomic.Uint64
	dropCount  atomic.Uint64
	bytesSent  atomic.Uint64
	bytesRecv  atomic.Uint64
}

// newSession creates a session for conn. conn may be nil, in which case
// outgoing frames stay in the outbox.
func newSession(conn *websocket.Conn, config *SessionConfig, clock ui.Clock, metrics *Metrics, logger *slog.Logger) *Session {
	config = config.withDefaults()
	if clock == nil {
		clock = ui.SystemClock
	}
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	return &Session{
		ID:         id,
		CreatedAt:  time.Now(),
		conn:       conn,
		owner:      ui.NewOwner(),
		clock:      clock,
		events:     make(chan *protocol.Event, config.MaxEventQueue),
		dispatchCh: make(chan func(), config.MaxEventQueue),
		outbox:     make(chan *protocol.Frame, config.MaxEventQueue),
		done:       make(chan struct{}),
		loopDone:   make(chan struct{}),
		writerDone: make(chan struct{}),
		config:     config,
		metrics:    metrics,
		logger:     logger.With("session_id", id),
	}
}

// Owner implements page.Host.
func (s *Session) Owner() *ui.Owner { return s.owner }

// Clock implements page.Host.
func (s *Session) Clock() ui.Clock { return s.clock }

// Scrolls implements page.Host.
func (s *Session) Scrolls() *ui.Listeners[float64] { return &s.scrolls }

// Clicks implements page.Host.
func (s *Session) Clicks() *ui.Listeners[protocol.Event] { return &s.clicks }

// Visibility implements page.Host.
func (s *Session) Visibility() *ui.Listeners[protocol.Event] { return &s.visibility }

// Dispatch queues a function to run on the session's event loop.
// It is safe to call from any goroutine. Callbacks queued after the
// session closed are discarded.
func (s *Session) Dispatch(fn func()) {
	if s.closed.Load() {
		return
	}
	select {
	case s.dispatchCh <- fn:
	case <-s.done:
	default:
		s.dropCount.Add(1)
		s.metrics.dispatchDropped()
		s.logger.Warn("dispatch queue full, discarding callback")
	}
}

// Send implements page.Host. All patches go out in one frame.
func (s *Session) Send(patches ...protocol.Patch) {
	if len(patches) == 0 {
		return
	}
	frame, err := protocol.NewFrame(protocol.FramePatches, protocol.PatchBatch{Patches: patches})
	if err != nil {
		s.logger.Error("encode patches", "error", err)
		return
	}
	frame.Seq = s.sendSeq.Add(1)
	if !s.enqueue(frame) {
		return
	}
	s.patchCount.Add(uint64(len(patches)))
	for _, p := range patches {
		s.metrics.patchSent(string(p.Op))
	}
}

// SendHello queues the hello frame. It must be the first frame sent.
func (s *Session) SendHello() {
	frame, err := protocol.NewFrame(protocol.FrameHello, protocol.Hello{
		Session:   s.ID,
		Heartbeat: s.config.HeartbeatInterval.Milliseconds(),
	})
	if err != nil {
		s.logger.Error("encode hello", "error", err)
		return
	}
	s.enqueue(frame)
}

// sendError queues an error frame for a rejected client frame.
func (s *Session) sendError(code protocol.ErrorCode, message string) {
	frame, err := protocol.NewFrame(protocol.FrameError, protocol.ErrorMessage{Code: code, Message: message})
	if err != nil {
		return
	}
	s.enqueue(frame)
}

// enqueue hands frame to the write loop. A full outbox means the client
// stopped reading; the session is closed rather than blocking the loop.
func (s *Session) enqueue(frame *protocol.Frame) bool {
	if s.closed.Load() {
		return false
	}
	select {
	case s.outbox <- frame:
		return true
	default:
		s.logger.Warn("outbox full, closing session", "frame", frame.Type)
		s.metrics.websocketError("outbox_full")
		go s.Close()
		return false
	}
}

// QueueEvent queues a UI event for the event loop.
func (s *Session) QueueEvent(e *protocol.Event) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	select {
	case s.events <- e:
		return nil
	default:
		s.logger.Warn("event queue full, dropping event", "type", e.Type)
		s.metrics.eventDropped()
		return ErrEventQueueFull
	}
}

// EventLoop processes queued events and dispatched callbacks until the
// session closes, then disposes the owner. It is the only goroutine that
// touches the mounted view.
func (s *Session) EventLoop() {
	defer close(s.loopDone)
	defer s.owner.Dispose()

	for {
		select {
		case e := <-s.events:
			s.handleEvent(e)
		case fn := <-s.dispatchCh:
			s.execute("dispatch", fn)
		case <-s.done:
			return
		}
	}
}

// handleEvent routes one UI event to the listeners of its type.
func (s *Session) handleEvent(e *protocol.Event) {
	start := time.Now()
	s.eventCount.Add(1)

	_, span := startEventSpan(context.Background(), s.ID, e)
	err := s.execute(string(e.Type), func() {
		switch e.Type {
		case protocol.EventScroll:
			s.scrolls.Emit(e.Y)
		case protocol.EventClick:
			s.clicks.Emit(*e)
		case protocol.EventVisible:
			s.visibility.Emit(*e)
		}
	})
	endSpan(span, err)
	s.metrics.eventHandled(string(e.Type), time.Since(start))
}

// execute runs fn with panic recovery.
func (s *Session) execute(kind string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			herr := &HandlerError{
				SessionID: s.ID,
				EventType: kind,
				Panic:     r,
				Stack:     debug.Stack(),
			}
			s.logger.Error("handler panic",
				"event", kind,
				"panic", r,
				"stack", string(herr.Stack))
			s.metrics.handlerPanic()
			err = herr
		}
	}()
	fn()
	return nil
}

// Close gracefully closes the session.
func (s *Session) Close() {
	s.CloseWithReason("")
}

// CloseWithReason closes the session. A non-empty reason is sent to the
// client in a close frame first.
func (s *Session) CloseWithReason(reason string) {
	if s.closed.Swap(true) {
		return
	}
	s.reason.Store(reason)
	s.closeOnce.Do(s.closeInternal)
}

// closeInternal performs the actual close operations.
func (s *Session) closeInternal() {
	close(s.done)

	if s.started.Load() {
		<-s.loopDone
		if s.conn != nil {
			<-s.writerDone
		}
	} else {
		s.owner.Dispose()
	}

	if s.conn != nil {
		if reason, _ := s.reason.Load().(string); reason != "" {
			s.writeFrameDirect(protocol.FrameClose, protocol.CloseMessage{Reason: reason})
		}
		s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		s.conn.Close()
	}

	s.metrics.sessionClosed(time.Since(s.CreatedAt))
	s.logger.Info("session closed",
		"events", s.eventCount.Load(),
		"patches", s.patchCount.Load(),
		"dropped", s.dropCount.Load(),
		"last_recv_seq", s.recvSeq.Load(),
		"bytes_sent", s.bytesSent.Load(),
		"bytes_recv", s.bytesRecv.Load())

	if s.onClose != nil {
		s.onClose(s)
	}
}

// IsClosed returns whether the session is closed.
func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// Done returns a channel that's closed when the session is done.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// SessionStats is a snapshot of a session's counters.
type SessionStats struct {
	ID         string
	IP         string
	CreatedAt  time.Time
	EventCount uint64
	PatchCount uint64
	// Dropped counts loop callbacks discarded on a full dispatch queue.
	Dropped uint64
	// LastRecvSeq and LastSentSeq are the newest frame sequence numbers
	// seen in each direction.
	LastRecvSeq uint64
	LastSentSeq uint64
	BytesSent   uint64
	BytesRecv   uint64
}

// Stats returns session statistics.
func (s *Session) Stats() SessionStats {
	return SessionStats{
		ID:          s.ID,
		IP:          s.IP,
		CreatedAt:   s.CreatedAt,
		EventCount:  s.eventCount.Load(),
		PatchCount:  s.patchCount.Load(),
		Dropped:     s.dropCount.Load(),
		LastRecvSeq: s.recvSeq.Load(),
		LastSentSeq: s.sendSeq.Load(),
		BytesSent:   s.bytesSent.Load(),
		BytesRecv:   s.bytesRecv.Load(),
	}
}

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger {
	return s.logger
}
