package transport

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	kzlib "github.com/klauspost/compress/zlib"

	"github.com/ErikPelli/mcbot/protocol"
)

// EncodeFrame builds the wire representation of one packet: the length
// prefix plus its (optionally compressed) payload.
//
//   - threshold < 0: uncompressed mode — `VarInt packet_id || data`.
//   - threshold >= 0: compressed mode — `VarInt data_length || body`. Bodies
//     whose uncompressed size is < threshold MUST carry data_length = 0 and
//     go out as plain bytes; bodies >= threshold MUST be zlib-compressed.
func EncodeFrame(packetID int32, data []byte, threshold int) ([]byte, error) {
	var idBuf bytes.Buffer
	if _, err := protocol.VarInt(packetID).WriteTo(&idBuf); err != nil {
		return nil, err
	}
	uncompressed := append(idBuf.Bytes(), data...)

	var body bytes.Buffer
	if threshold < 0 {
		body.Write(uncompressed)
	} else if len(uncompressed) < threshold {
		if _, err := protocol.VarInt(0).WriteTo(&body); err != nil {
			return nil, err
		}
		body.Write(uncompressed)
	} else {
		if _, err := protocol.VarInt(len(uncompressed)).WriteTo(&body); err != nil {
			return nil, err
		}
		compressed, err := compressZlib(uncompressed)
		if err != nil {
			return nil, fmt.Errorf("transport: compress: %w", err)
		}
		body.Write(compressed)
	}

	var frame bytes.Buffer
	if _, err := protocol.VarInt(body.Len()).WriteTo(&frame); err != nil {
		return nil, err
	}
	frame.Write(body.Bytes())
	return frame.Bytes(), nil
}

// DecodeFrame splits an already length-delimited frame payload into its
// packet id and remaining data, undoing compression if threshold >= 0.
func DecodeFrame(payload []byte, threshold int) (packetID int32, data []byte, err error) {
	buf := bytes.NewReader(payload)

	body := payload
	if threshold >= 0 {
		var dataLength protocol.VarInt
		if _, err := dataLength.ReadFrom(buf); err != nil {
			return 0, nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}

		rest := make([]byte, buf.Len())
		_, _ = io.ReadFull(buf, rest)

		if dataLength == 0 {
			body = rest
		} else {
			inflated, err := decompressZlib(rest)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
			}
			if int32(len(inflated)) != int32(dataLength) {
				return 0, nil, ErrDecompressedSizeMismatch
			}
			body = inflated
		}
		buf = bytes.NewReader(body)
	}

	var id protocol.VarInt
	if _, err := id.ReadFrom(buf); err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}

	rest := make([]byte, buf.Len())
	_, _ = io.ReadFull(buf, rest)
	return int32(id), rest, nil
}

// compressZlib uses klauspost/compress's zlib writer for the outbound
// compressor; it is wire-compatible with the stdlib zlib reader used by
// decompressZlib below.
func compressZlib(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := kzlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressZlib(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
