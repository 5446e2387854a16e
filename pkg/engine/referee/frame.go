package referee

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrDecode indicates a frame whose payload was not valid JSON, or not
// shaped like the value being decoded into.
var ErrDecode = errors.New("referee: malformed frame")

// ErrDesync indicates no legal move from the mirror position reproduces the
// board the referee just sent — the mirror has fallen out of sync with the
// match and cannot recover.
var ErrDesync = errors.New("referee: no legal move reproduces the referee's board")

// WriteFrame marshals v to JSON and writes it as a single 4-byte
// big-endian length-prefixed frame.
func WriteFrame(w io.Writer, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(payload)))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("write frame header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write frame payload: %w", err)
	}
	return nil
}

// ReadFrame reads a single 4-byte big-endian length-prefixed frame and
// unmarshals its JSON payload into v.
func ReadFrame(r io.Reader, v interface{}) error {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return fmt.Errorf("read frame header: %w", err)
	}

	n := binary.BigEndian.Uint32(hdr[:])
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return fmt.Errorf("read frame payload: %w", err)
	}

	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("%w: %s", ErrDecode, payload)
	}
	return nil
}
