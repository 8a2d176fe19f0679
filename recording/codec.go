package recording

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Magic starts every encoded recording.
const Magic = "DXFR"

// Version is the current wire format version.
const Version uint8 = 1

var (
	// ErrBadMagic is returned when the input is not an encoded recording.
	ErrBadMagic = errors.New("recording: bad magic")
	// ErrUnsupportedVersion is returned for recordings written by a newer
	// format.
	ErrUnsupportedVersion = errors.New("recording: unsupported version")
)

// Encode writes r to w.
func Encode(w io.Writer, r *Recording) error {
	if r == nil {
		return errors.New("recording: nil recording")
	}
	header := append([]byte(Magic), Version)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("recording: write header: %w", err)
	}
	enc := msgpack.NewEncoder(w)
	enc.SetOmitEmpty(true)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("recording: encode: %w", err)
	}
	return nil
}

// Decode reads a recording written by Encode.
func Decode(rd io.Reader) (*Recording, error) {
	header := make([]byte, len(Magic)+1)
	if _, err := io.ReadFull(rd, header); err != nil {
		return nil, fmt.Errorf("recording: read header: %w", err)
	}
	if string(header[:len(Magic)]) != Magic {
		return nil, ErrBadMagic
	}
	if v := header[len(Magic)]; v == 0 || v > Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	var r Recording
	if err := msgpack.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("recording: decode: %w", err)
	}
	r.pool = poolFrom(r.Colors)
	return &r, nil
}

// Marshal encodes r into a byte slice.
func Marshal(r *Recording) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a byte slice produced by Marshal.
func Unmarshal(data []byte) (*Recording, error) {
	return Decode(bytes.NewReader(data))
}
