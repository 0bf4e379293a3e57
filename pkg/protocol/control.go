package protocol

// Hello is sent once after the WebSocket upgrade.
type Hello struct {
	Session   string `json:"session"`
	Heartbeat int64  `json:"heartbeatMs"`
}

// PingPong carries the sender's timestamp in milliseconds.
type PingPong struct {
	Timestamp int64 `json:"ts"`
}

// CloseMessage explains an orderly shutdown.
type CloseMessage struct {
	Reason string `json:"reason"`
}

// ErrorCode identifies the type of error.
type ErrorCode string

const (
	ErrCodeInvalidFrame ErrorCode = "invalid_frame"
	ErrCodeInvalidEvent ErrorCode = "invalid_event"
	ErrCodeRateLimited  ErrorCode = "rate_limited"
	ErrCodeServerError  ErrorCode = "server_error"
)

// ErrorMessage is sent when a client frame is rejected.
type ErrorMessage struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
