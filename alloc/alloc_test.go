package alloc_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/alloc"
)

func TestMalloc_OffsetsFollowLastLive(t *testing.T) {
	h := alloc.New()
	a, err := h.Malloc(4, alloc.Int(1))
	require.NoError(t, err)
	b, err := h.Malloc(8, alloc.Int(2))
	require.NoError(t, err)
	c, err := h.Malloc(2, alloc.Int(3))
	require.NoError(t, err)

	offsets := func() []int {
		var out []int
		for _, r := range h.Records() {
			out = append(out, r.Offset)
		}
		return out
	}
	assert.Equal(t, []int{0, 4, 12}, offsets())
	assert.Equal(t, 14, h.Top())

	// Freeing the middle record keeps the others valid and in place.
	require.NoError(t, h.Free(b))
	assert.Equal(t, []int{0, 12}, offsets())
	idx, err := h.Index(c)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	// Freeing the tail rewinds Top to the new last live record.
	require.NoError(t, h.Free(c))
	assert.Equal(t, 4, h.Top())
	d, err := h.Malloc(4, alloc.Int(4))
	require.NoError(t, err)
	r, err := h.Get(d)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Offset)

	idx, err = h.Index(a)
	require.NoError(t, err)
	assert.Zero(t, idx)
}

func TestFree_StaleHandles(t *testing.T) {
	h := alloc.New()
	p, err := h.Malloc(4, alloc.Int(7))
	require.NoError(t, err)
	require.NoError(t, h.Free(p))

	require.ErrorIs(t, h.Free(p), alloc.ErrStaleHandle)
	require.ErrorIs(t, h.Free(alloc.Nil), alloc.ErrStaleHandle)

	// The slot is reused; the old handle must not alias the new record.
	q, err := h.Malloc(4, alloc.Int(8))
	require.NoError(t, err)
	assert.Equal(t, p.Slot(), q.Slot())
	assert.False(t, h.Valid(p))
	assert.True(t, h.Valid(q))
	_, err = h.Get(p)
	require.ErrorIs(t, err, alloc.ErrStaleHandle)
}

func TestMalloc_Errors(t *testing.T) {
	h := alloc.New()
	_, err := h.Malloc(0, alloc.Int(1))
	require.ErrorIs(t, err, alloc.ErrBadSize)
	_, err = h.Malloc(4, nil)
	require.ErrorIs(t, err, alloc.ErrNilValue)
	assert.Zero(t, h.Len())
}

func TestRoundTrip_RandomFreeOrder(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for round := 0; round < 20; round++ {
		h := alloc.New()
		var ptrs []alloc.Ptr
		for i := 0; i < 1+r.Intn(30); i++ {
			var p alloc.Ptr
			var err error
			if r.Intn(2) == 0 {
				p, err = h.Malloc(1+r.Intn(16), alloc.Int(i))
			} else {
				p, err = alloc.NewString(h, "s")
			}
			require.NoError(t, err)
			ptrs = append(ptrs, p)
		}
		r.Shuffle(len(ptrs), func(i, j int) { ptrs[i], ptrs[j] = ptrs[j], ptrs[i] })

		for _, p := range ptrs {
			prev := -1
			for _, rec := range h.Records() {
				assert.GreaterOrEqual(t, rec.Offset, prev)
				prev = rec.End()
			}
			require.NoError(t, h.Free(p))
		}
		assert.Zero(t, h.Len(), "round %d", round)
		assert.Empty(t, h.Records())
		assert.Zero(t, h.Top())
	}
}

func TestString_FreesBuffer(t *testing.T) {
	h := alloc.New()
	s, err := alloc.NewString(h, "hi")
	require.NoError(t, err)
	assert.Equal(t, 2, h.Len())

	txt, err := alloc.Text(h, s)
	require.NoError(t, err)
	assert.Equal(t, "hi", txt)

	hx, err := h.Hex(s)
	require.NoError(t, err)
	assert.Equal(t, "00 00 00 00 02 00 00 00", hx)

	require.NoError(t, h.Free(s))
	assert.Zero(t, h.Len())
}

func TestRender(t *testing.T) {
	h := alloc.New()
	p, err := h.Malloc(4, alloc.Int(258))
	require.NoError(t, err)
	q, err := h.Malloc(3, alloc.Chars("ab"))
	require.NoError(t, err)

	b, err := h.Bytes(q)
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 'b', 0}, b)

	addr, err := h.Addr(q)
	require.NoError(t, err)
	assert.Equal(t, "0x0004", addr)

	hx, err := h.Hex(p)
	require.NoError(t, err)
	assert.Equal(t, "02 01 00 00", hx)

	assert.Equal(t, "0x0000  02 01 00 00  258\n0x0004  61 62 00  \"ab\"\n", h.Dump())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := alloc.New(alloc.WithLogger(l))
	p, err := h.Malloc(4, alloc.Int(1))
	require.NoError(t, err)
	require.NoError(t, h.Free(p))
	assert.Contains(t, buf.String(), "malloc")
	assert.Contains(t, buf.String(), "free")
}
