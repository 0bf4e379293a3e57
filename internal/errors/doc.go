// Package errors provides structured, actionable errors for the landing
// server and its CLI.
//
// Each error carries a code that maps to a registered template:
//   - E1xx: configuration (file, parse, validation)
//   - E2xx: asset sources (directory, S3)
//   - E3xx: transport (listener, WebSocket, sessions)
//   - E4xx: CLI (render output)
//
// # Usage
//
//	err := errors.New("E103").
//	    WithDetail(`server.port: must be between 1 and 65535`).
//	    Wrap(cause)
//
//	errors.PrintError(os.Stderr, err)
//	// ERROR E103: Invalid configuration
//	//
//	//   server.port: must be between 1 and 65535
//	//
//	//   Hint: Fix the listed fields in landing.json or the LANDING_* environment.
package errors
