// Package replay records the raw input a session received, together with a
// digest of every presented frame, and plays it back through the headless
// backend to check that a game renders deterministically.
package replay

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/blake2b"

	"pixloop/pkg/engine"
	"pixloop/pkg/input"
	"pixloop/pkg/pixel"
)

const (
	Magic     = "PXLREC"
	VersionV1 = uint16(1)

	FlagCompressed = uint16(1 << 0)

	preambleSize = len(Magic) + 2 + 2 + 4
	frameSize    = 8 + keyBytes + 4 + 4 + 4 + 1 + DigestSize
	keyBytes     = input.KeyCount / 8

	DigestSize = blake2b.Size256
)

var (
	ErrInvalidMagic       = errors.New("replay: invalid magic")
	ErrUnsupportedVersion = errors.New("replay: unsupported version")
	ErrChecksum           = errors.New("replay: checksum mismatch")
	ErrTruncated          = errors.New("replay: truncated recording")
	ErrDigestMismatch     = errors.New("replay: frame digest mismatch")
	ErrInvalidHeader      = errors.New("replay: invalid header")
)

// Limits on recorded surfaces. Larger headers are rejected before any
// buffer is sized from them.
const (
	MaxDimension = 1 << 14
	MaxScale     = 256
)

type Header struct {
	Title   string
	Width   int
	Height  int
	ScaleX  int
	ScaleY  int
	Created time.Time
}

func (h Header) Config() engine.Config {
	return engine.Config{Title: h.Title, Width: h.Width, Height: h.Height, ScaleX: h.ScaleX, ScaleY: h.ScaleY}
}

func (h Header) Validate() error {
	if err := h.Config().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	if h.Width > MaxDimension || h.Height > MaxDimension {
		return fmt.Errorf("%w: size %dx%d exceeds %d", ErrInvalidHeader, h.Width, h.Height, MaxDimension)
	}
	if h.ScaleX > MaxScale || h.ScaleY > MaxScale {
		return fmt.Errorf("%w: scale %dx%d exceeds %d", ErrInvalidHeader, h.ScaleX, h.ScaleY, MaxScale)
	}
	return nil
}

// Frame is everything the engine saw from the backend during one frame,
// plus what it presented.
type Frame struct {
	Elapsed float64
	Keys    [keyBytes]byte
	Mouse   engine.Mouse
	Close   bool
	Digest  [DigestSize]byte
}

func (f *Frame) SetKey(k input.Key, down bool) {
	if down {
		f.Keys[k/8] |= 1 << (k % 8)
	} else {
		f.Keys[k/8] &^= 1 << (k % 8)
	}
}

func (f *Frame) Key(k input.Key) bool {
	return f.Keys[k/8]&(1<<(k%8)) != 0
}

// DownKeys lists the keys held in this frame in scancode order.
func (f *Frame) DownKeys() []input.Key {
	var out []input.Key
	for k := 0; k < input.KeyCount; k++ {
		if f.Key(input.Key(k)) {
			out = append(out, input.Key(k))
		}
	}
	return out
}

type Recording struct {
	Header Header
	Frames []Frame
}

// Duration is the sum of the recorded frame times.
func (r *Recording) Duration() time.Duration {
	var total float64
	for _, f := range r.Frames {
		total += f.Elapsed
	}
	return time.Duration(total * float64(time.Second))
}

// Digest hashes the surface as presented.
func Digest(s *pixel.Surface, scratch []byte) [DigestSize]byte {
	n := s.Width() * s.Height() * 4
	if cap(scratch) < n {
		scratch = make([]byte, n)
	}
	scratch = scratch[:n]
	s.CopyRGBA(scratch)
	return blake2b.Sum256(scratch)
}

type SaveOptions struct {
	Compression bool
}

func Save(path string, rec *Recording) error {
	return SaveWithOptions(path, rec, SaveOptions{Compression: true})
}

func SaveWithOptions(path string, rec *Recording, opts SaveOptions) error {
	if rec == nil {
		return errors.New("replay: recording is nil")
	}
	blob, err := Encode(rec, opts)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func Load(path string) (*Recording, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(blob)
}

func Encode(rec *Recording, opts SaveOptions) ([]byte, error) {
	payload := encodePayload(rec)
	sum := crc32.ChecksumIEEE(payload)
	flags := uint16(0)
	if opts.Compression {
		var buf bytes.Buffer
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write(payload); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		payload = buf.Bytes()
		flags |= FlagCompressed
	}

	out := make([]byte, 0, preambleSize+len(payload))
	out = append(out, Magic...)
	out = appendU16(out, VersionV1)
	out = appendU16(out, flags)
	out = appendU32(out, sum)
	return append(out, payload...), nil
}

func Decode(blob []byte) (*Recording, error) {
	if len(blob) < preambleSize || string(blob[:len(Magic)]) != Magic {
		return nil, ErrInvalidMagic
	}
	p := blob[len(Magic):]
	if v := binary.LittleEndian.Uint16(p[0:2]); v != VersionV1 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	flags := binary.LittleEndian.Uint16(p[2:4])
	sum := binary.LittleEndian.Uint32(p[4:8])
	payload := p[8:]

	if flags&FlagCompressed != 0 {
		zr, err := zlib.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("replay: open compressed payload: %w", err)
		}
		raw, err := io.ReadAll(zr)
		_ = zr.Close()
		if err != nil {
			return nil, fmt.Errorf("replay: inflate payload: %w", err)
		}
		payload = raw
	}
	if crc32.ChecksumIEEE(payload) != sum {
		return nil, ErrChecksum
	}
	return decodePayload(payload)
}

func encodePayload(rec *Recording) []byte {
	h := rec.Header
	out := make([]byte, 0, 64+len(h.Title)+len(rec.Frames)*frameSize)
	out = appendU32(out, uint32(h.Width))
	out = appendU32(out, uint32(h.Height))
	out = appendU32(out, uint32(h.ScaleX))
	out = appendU32(out, uint32(h.ScaleY))
	out = appendU64(out, uint64(h.Created.Unix()))
	out = appendString(out, h.Title)
	out = appendU32(out, uint32(len(rec.Frames)))
	for _, f := range rec.Frames {
		out = appendU64(out, math.Float64bits(f.Elapsed))
		out = append(out, f.Keys[:]...)
		out = appendU32(out, f.Mouse.Buttons)
		out = appendU32(out, uint32(int32(f.Mouse.X)))
		out = appendU32(out, uint32(int32(f.Mouse.Y)))
		var fl byte
		if f.Close {
			fl |= 1
		}
		out = append(out, fl)
		out = append(out, f.Digest[:]...)
	}
	return out
}

func decodePayload(b []byte) (*Recording, error) {
	if len(b) < 24 {
		return nil, ErrTruncated
	}
	rec := &Recording{}
	h := &rec.Header
	h.Width = int(binary.LittleEndian.Uint32(b[0:4]))
	h.Height = int(binary.LittleEndian.Uint32(b[4:8]))
	h.ScaleX = int(binary.LittleEndian.Uint32(b[8:12]))
	h.ScaleY = int(binary.LittleEndian.Uint32(b[12:16]))
	h.Created = time.Unix(int64(binary.LittleEndian.Uint64(b[16:24])), 0)
	if err := h.Validate(); err != nil {
		return nil, err
	}
	title, rest, ok := readString(b[24:])
	if !ok || len(rest) < 4 {
		return nil, ErrTruncated
	}
	h.Title = title
	n := int(binary.LittleEndian.Uint32(rest[:4]))
	rest = rest[4:]
	if len(rest) != n*frameSize {
		return nil, fmt.Errorf("%w: %d frames need %d bytes, have %d", ErrTruncated, n, n*frameSize, len(rest))
	}
	rec.Frames = make([]Frame, n)
	for i := range rec.Frames {
		f := &rec.Frames[i]
		f.Elapsed = math.Float64frombits(binary.LittleEndian.Uint64(rest[0:8]))
		copy(f.Keys[:], rest[8:8+keyBytes])
		p := rest[8+keyBytes:]
		f.Mouse.Buttons = binary.LittleEndian.Uint32(p[0:4])
		f.Mouse.X = int(int32(binary.LittleEndian.Uint32(p[4:8])))
		f.Mouse.Y = int(int32(binary.LittleEndian.Uint32(p[8:12])))
		f.Close = p[12]&1 != 0
		copy(f.Digest[:], p[13:13+DigestSize])
		rest = rest[frameSize:]
	}
	return rec, nil
}

func appendString(dst []byte, s string) []byte {
	dst = appendU32(dst, uint32(len(s)))
	return append(dst, s...)
}

func readString(src []byte) (string, []byte, bool) {
	if len(src) < 4 {
		return "", nil, false
	}
	ln := int(binary.LittleEndian.Uint32(src[:4]))
	src = src[4:]
	if len(src) < ln {
		return "", nil, false
	}
	return string(src[:ln]), src[ln:], true
}

func appendU16(dst []byte, v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return append(dst, b[:]...)
}

func appendU32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

func appendU64(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}
