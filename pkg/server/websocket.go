package server

import (
	"errors"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aibabysense/landing/pkg/protocol"
)

// Start starts all session loops.
// This should be called after the view is mounted and the hello is queued.
func (s *Session) Start() {
	s.started.Store(true)
	go s.EventLoop()
	if s.conn != nil {
		go s.ReadLoop()
		go s.WriteLoop()
	}
}

// ReadLoop continuously reads messages from the WebSocket connection.
// It decodes frames, answers control frames and queues events.
// This method blocks until the connection is closed or an error occurs.
func (s *Session) ReadLoop() {
	defer s.Close()

	s.conn.SetReadLimit(s.config.MaxMessageSize)
	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) && !s.closed.Load() {
				s.logger.Error("read error", "error", err)
				s.metrics.websocketError("read")
			}
			return
		}
		s.bytesRecv.Add(uint64(len(msg)))

		frame, err := protocol.DecodeFrame(msg)
		if err != nil {
			s.logger.Warn("frame decode error", "error", err)
			s.metrics.websocketError("decode")
			s.sendError(protocol.ErrCodeInvalidFrame, err.Error())
			continue
		}
		if frame.Seq > 0 {
			s.recvSeq.Store(frame.Seq)
		}

		switch frame.Type {
		case protocol.FrameEvent:
			s.handleEventFrame(frame)

		case protocol.FramePing:
			var pp protocol.PingPong
			_ = frame.Decode(&pp)
			s.sendControl(protocol.FramePong, pp)

		case protocol.FramePong:
			s.logger.Debug("received pong")

		case protocol.FrameClose:
			var cm protocol.CloseMessage
			_ = frame.Decode(&cm)
			s.logger.Info("client closing", "reason", cm.Reason)
			return

		default:
			s.logger.Warn("unexpected frame type", "type", frame.Type)
			s.sendError(protocol.ErrCodeInvalidFrame, "unexpected frame type "+string(frame.Type))
		}
	}
}

// handleEventFrame decodes and queues an event from the client.
func (s *Session) handleEventFrame(frame *protocol.Frame) {
	e, err := protocol.DecodeEvent(frame)
	if err != nil {
		s.logger.Warn("event decode error", "error", err)
		s.sendError(protocol.ErrCodeInvalidEvent, err.Error())
		return
	}
	if err := s.QueueEvent(e); errors.Is(err, ErrEventQueueFull) {
		s.sendError(protocol.ErrCodeRateLimited, "Event queue full")
	}
}

// sendControl queues a control frame.
func (s *Session) sendControl(ft protocol.FrameType, payload any) {
	frame, err := protocol.NewFrame(ft, payload)
	if err != nil {
		s.logger.Error("encode control frame", "type", ft, "error", err)
		return
	}
	s.enqueue(frame)
}

// WriteLoop writes queued frames and sends heartbeat pings.
// It runs until the session is closed or a write fails.
func (s *Session) WriteLoop() {
	defer s.Close()
	defer close(s.writerDone)

	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case frame := <-s.outbox:
			if err := s.writeFrame(frame); err != nil {
				return
			}

		case <-ticker.C:
			ping, err := protocol.NewFrame(protocol.FramePing, protocol.PingPong{Timestamp: time.Now().UnixMilli()})
			if err != nil {
				continue
			}
			if err := s.writeFrame(ping); err != nil {
				return
			}

		case <-s.done:
			return
		}
	}
}

// writeFrame writes one frame. Only the write loop, or closeInternal after
// the write loop exited, may call it.
func (s *Session) writeFrame(frame *protocol.Frame) error {
	data, err := frame.Encode()
	if err != nil {
		s.logger.Error("frame encode error", "type", frame.Type, "error", err)
		return nil
	}
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		if !s.closed.Load() {
			s.logger.Error("write error", "error", err)
			s.metrics.websocketError("write")
		}
		return &SessionError{SessionID: s.ID, Op: "write", Err: err}
	}
	s.bytesSent.Add(uint64(len(data)))
	return nil
}

// writeFrameDirect encodes and writes a frame outside the write loop.
func (s *Session) writeFrameDirect(ft protocol.FrameType, payload any) {
	frame, err := protocol.NewFrame(ft, payload)
	if err != nil {
		return
	}
	_ = s.writeFrame(frame)
}
