// Package transport implements the framed, optionally-compressed,
// optionally-encrypted packet transport that sits under the Minecraft
// session state machine: VarInt-length-prefixed frames, a zlib compression
// boundary once a threshold is set, and an AES-CFB8 stream cipher pair once
// encryption is enabled.
package transport

import (
	"fmt"
	"io"
	"net"
	"sync"
	"time"
)

// Conn wraps a net.Conn with the Minecraft frame transport: length-prefixed
// framing, optional zlib compression and optional AES-CFB8 encryption.
// Once compression or encryption is turned on it cannot be turned back off
// for the lifetime of the session, matching the wire protocol's invariant.
type Conn struct {
	raw    net.Conn
	cipher *streamCipher

	threshold int // -1 means uncompressed

	recvBuf []byte

	writeMu sync.Mutex
}

// NewConn wraps conn with the default, uncompressed and unencrypted frame
// transport.
func NewConn(conn net.Conn) *Conn {
	return &Conn{raw: conn, threshold: -1}
}

// SetCompressionThreshold enables compressed-mode framing. Once set to a
// non-negative value it stays set for the lifetime of the connection.
func (c *Conn) SetCompressionThreshold(threshold int) {
	if threshold < 0 && c.threshold >= 0 {
		return
	}
	c.threshold = threshold
}

// EnableEncryption wraps all subsequent reads and writes in AES-CFB8,
// keyed and IV'd by the 16-byte shared secret. Once enabled it is never
// disabled.
func (c *Conn) EnableEncryption(sharedSecret []byte) error {
	sc, err := newStreamCipher(sharedSecret)
	if err != nil {
		return err
	}
	c.cipher = sc
	return nil
}

// SetReadDeadline passes through to the underlying socket.
func (c *Conn) SetReadDeadline(t time.Time) error {
	return c.raw.SetReadDeadline(t)
}

// Close closes the underlying socket. Encryption/compression state is
// owned entirely by this Conn and needs no separate teardown.
func (c *Conn) Close() error {
	return c.raw.Close()
}

// WritePacket frames, optionally compresses, optionally encrypts and sends
// one packet. Concurrent callers are serialized so that a single writer
// owns wire ordering.
func (c *Conn) WritePacket(packetID int32, data []byte) error {
	frame, err := EncodeFrame(packetID, data, c.threshold)
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.cipher != nil {
		c.cipher.encryptInPlace(frame)
	}
	_, err = c.raw.Write(frame)
	return err
}

// ReadPacket blocks until one full frame has been received, decrypting and
// decompressing it as configured, and returns its packet id and payload.
func (c *Conn) ReadPacket() (packetID int32, data []byte, err error) {
	chunk := make([]byte, 4096)

	for {
		length, consumed, complete, malformed := peekVarInt(c.recvBuf)
		if malformed {
			return 0, nil, ErrMalformedFrame
		}
		if complete {
			total := consumed + int(length)
			if length < 0 {
				return 0, nil, ErrMalformedFrame
			}
			if len(c.recvBuf) >= total {
				payload := c.recvBuf[consumed:total]
				remainder := make([]byte, len(c.recvBuf)-total)
				copy(remainder, c.recvBuf[total:])
				c.recvBuf = remainder

				id, rest, err := DecodeFrame(payload, c.threshold)
				if err != nil {
					return 0, nil, err
				}
				return id, rest, nil
			}
		}

		n, readErr := c.raw.Read(chunk)
		if n > 0 {
			buf := make([]byte, n)
			copy(buf, chunk[:n])
			if c.cipher != nil {
				c.cipher.decryptInPlace(buf)
			}
			c.recvBuf = append(c.recvBuf, buf...)
		}

		if readErr != nil {
			if netErr, ok := readErr.(net.Error); ok && netErr.Timeout() {
				return 0, nil, readErr
			}
			if readErr == io.EOF {
				return 0, nil, ErrConnectionClosed
			}
			return 0, nil, fmt.Errorf("transport: read: %w", readErr)
		}
		if n == 0 {
			return 0, nil, ErrConnectionClosed
		}
	}
}

// peekVarInt attempts to decode a VarInt length prefix from the front of
// buf without consuming it from the caller's perspective (the caller slices
// buf itself once it knows consumed and the frame is complete). It never
// blocks and never errors on a short buffer — only on a prefix that is
// unambiguously malformed (five continuation bytes with no terminator).
func peekVarInt(buf []byte) (value int32, consumed int, complete bool, malformed bool) {
	var result uint32
	for i := 0; i < len(buf) && i < 5; i++ {
		b := buf[i]
		result |= uint32(b&0x7F) << uint(7*i)
		if b&0x80 == 0 {
			return int32(result), i + 1, true, false
		}
	}
	if len(buf) >= 5 {
		return 0, 0, false, true
	}
	return 0, 0, false, false
}
