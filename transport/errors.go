package transport

import "errors"

// ErrConnectionClosed is returned when the underlying socket returns a
// zero-length read or io.EOF; it is always terminal for the session.
// Other read failures, such as a reset, are returned wrapped instead.
var ErrConnectionClosed = errors.New("transport: connection closed")

// ErrMalformedFrame is returned when a frame's length prefix is invalid or
// its compressed body fails to decompress; it is always terminal.
var ErrMalformedFrame = errors.New("transport: malformed frame")

// ErrDecompressedSizeMismatch is a protocol violation: the inflated length
// of a compressed body did not match its declared data_length.
var ErrDecompressedSizeMismatch = errors.New("transport: decompressed size does not match declared length")
