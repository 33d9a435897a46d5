package alloc

import (
	"encoding/binary"
	"strconv"
)

// Int is a 4-byte little-endian integer value.
type Int int32

// IntSize is the record size of an Int.
const IntSize = 4

// Bytes implements Value.
func (v Int) Bytes() []byte {
	b := make([]byte, IntSize)
	binary.LittleEndian.PutUint32(b, uint32(v))

	return b
}

// String implements Value.
func (v Int) String() string { return strconv.Itoa(int(v)) }

// Chars is a raw character buffer.
type Chars []byte

// Bytes implements Value.
func (v Chars) Bytes() []byte { return v }

// String implements Value.
func (v Chars) String() string { return strconv.Quote(string(v)) }

// String is an 8-byte header (buffer address, length) owning a Chars
// buffer. Freeing the header frees the buffer.
type String struct {
	Buf  Ptr
	addr int
	text string
}

// StringSize is the record size of a String header.
const StringSize = 8

// NewString allocates the Chars buffer for s, then its header, and returns
// the header handle.
func NewString(h *Heap, s string) (Ptr, error) {
	size := len(s)
	if size == 0 {
		size = 1
	}
	buf, err := h.Malloc(size, Chars(s))
	if err != nil {
		return Nil, err
	}
	r, _ := h.Get(buf)

	hdr, err := h.Malloc(StringSize, &String{Buf: buf, addr: r.Offset, text: s})
	if err != nil {
		_ = h.Free(buf)
		return Nil, err
	}

	return hdr, nil
}

// Text returns the string contents.
func (v *String) Text() string { return v.text }

// Bytes implements Value.
func (v *String) Bytes() []byte {
	b := make([]byte, StringSize)
	binary.LittleEndian.PutUint32(b[:4], uint32(v.addr))
	binary.LittleEndian.PutUint32(b[4:], uint32(len(v.text)))

	return b
}

// String implements Value.
func (v *String) String() string { return strconv.Quote(v.text) }

// Dealloc implements Deallocator.
func (v *String) Dealloc(h *Heap) error { return h.Free(v.Buf) }

// Text returns the contents of the String at p.
func Text(h *Heap, p Ptr) (string, error) {
	r, err := h.Get(p)
	if err != nil {
		return "", err
	}
	s, ok := r.Value.(*String)
	if !ok {
		return r.Value.String(), nil
	}

	return s.text, nil
}
