// Package wire holds the byte-level contract shared by the listener and
// the client: an unframed request followed by an unframed fixed reply.
// Neither side adds a terminator or length prefix.
package wire

import "strings"

// Reply is written back for every non-empty request.
const Reply = "Hello, World!"

// RequestPrefix precedes the operator's text in every client request.
const RequestPrefix = "Hello from the client!. Message "

// BufSize is the size of the single read performed by either side.
// A request longer than this is seen only up to BufSize bytes.
const BufSize = 1024

// FormatRequest builds the client payload for one line of operator
// input.
func FormatRequest(msg string) string {
	return RequestPrefix + msg
}

// Decode renders b as text, replacing invalid UTF-8 sequences with
// U+FFFD.
func Decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
