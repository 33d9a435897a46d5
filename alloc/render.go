package alloc

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Addr renders the offset of p as a fixed-width address.
func (h *Heap) Addr(p Ptr) (string, error) {
	r, err := h.Get(p)
	if err != nil {
		return "", err
	}

	return FormatAddr(r.Offset), nil
}

// FormatAddr renders an offset the way Addr and Dump do.
func FormatAddr(off int) string { return fmt.Sprintf("0x%04x", off) }

// Bytes returns the memory image of p: its value's bytes truncated or
// zero-padded to the record size.
func (h *Heap) Bytes(p Ptr) ([]byte, error) {
	r, err := h.Get(p)
	if err != nil {
		return nil, err
	}

	return image(r), nil
}

func image(r Record) []byte {
	out := make([]byte, r.Size)
	copy(out, r.Value.Bytes())

	return out
}

// Hex renders the memory image of p as space-separated hex pairs.
func (h *Heap) Hex(p Ptr) (string, error) {
	b, err := h.Bytes(p)
	if err != nil {
		return "", err
	}

	return spaced(b), nil
}

func spaced(b []byte) string {
	s := hex.EncodeToString(b)
	var sb strings.Builder
	for i := 0; i < len(s); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s[i : i+2])
	}

	return sb.String()
}

// Dump renders every live record on one line: address, hex image, value.
func (h *Heap) Dump() string {
	var sb strings.Builder
	for _, r := range h.Records() {
		fmt.Fprintf(&sb, "%s  %-*s  %s\n", FormatAddr(r.Offset), 3*r.Size-1, spaced(image(r)), r.Value)
	}

	return sb.String()
}
