package dify

import "errors"

// Client errors. Both are terminal for the call; callers decide how much of
// the underlying detail reaches an end user.
var (
	// ErrNetwork covers transport-level failures reaching the service:
	// DNS, connection, timeout, and non-2xx HTTP responses.
	ErrNetwork = errors.New("dify: network error")

	// ErrProtocol covers malformed JSON at either decoding layer: the outer
	// envelope or the JSON-encoded answer string inside it.
	ErrProtocol = errors.New("dify: protocol error")
)
