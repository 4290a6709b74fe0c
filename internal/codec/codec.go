// Package codec converts between record bytes and the text carried by RPC
// messages.
package codec

import (
	"unicode/utf8"

	"github.com/echo8/krpc/internal/backend"
	"github.com/echo8/krpc/model"

	"golang.org/x/text/encoding/unicode"
)

// Encode returns the raw bytes of message. No framing or transformation is applied.
func Encode(message string) []byte {
	return []byte(message)
}

// Decode interprets b as UTF-8, replacing every invalid byte with U+FFFD.
// It never fails.
func Decode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	// The UTF-8 decoder substitutes invalid input instead of reporting it.
	s, _ := unicode.UTF8.NewDecoder().Bytes(b)
	return string(s)
}

// ConsumedMessage maps a record to its RPC form. Key, headers, timestamp and
// message id are not carried over.
func ConsumedMessage(rec *backend.Record) model.ConsumedMessage {
	return model.ConsumedMessage{
		Message:   Decode(rec.Value),
		Offset:    rec.Offset,
		Headers:   map[string]string{},
		Partition: rec.Partition,
	}
}
