package gateway

import (
	"fmt"
	"io"
	"log/slog"
)

// Error is returned when the gateway cannot reach the backend or acquire a
// handle from it. Transports report it as a call failure rather than in the
// reply payload.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func closeHandle(c io.Closer, kind string) {
	if err := c.Close(); err != nil {
		slog.Warn("Failed to close backend handle.", "handle", kind, "error", err)
	}
}
