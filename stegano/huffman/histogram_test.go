package huffman

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistogramHelloWorld(t *testing.T) {
	h := NewHistogram([]byte("hello world"))

	assert.Equal(t, Frequency{'l', 3}, h[0])
	assert.Equal(t, Frequency{'o', 2}, h[1])
	for _, f := range h[2:] {
		assert.Equal(t, 1, f.Count, "symbol %q", f.Symbol)
	}
	assert.Len(t, h, 8)
	assert.Equal(t, 11, h.Total())
}

func TestHistogramTiesKeepEncounterOrder(t *testing.T) {
	h := NewHistogram([]byte("cabbac"))
	// all three symbols occur twice
	assert.Equal(t, Histogram{{'c', 2}, {'a', 2}, {'b', 2}}, h)
}

func TestHistogram(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"nil", nil},
		{"single", []byte("aaaa")},
		{"all bytes", func() []byte {
			b := make([]byte, 0, 512)
			for i := 0; i < 256; i++ {
				b = append(b, byte(i), byte(255-i))
			}
			return b
		}()},
		{"text", bytes.Repeat([]byte("the quick brown fox "), 10)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHistogram(tc.data)
			assert.Equal(t, len(tc.data), h.Total())

			seen := map[byte]bool{}
			for i, f := range h {
				assert.False(t, seen[f.Symbol], "symbol %d listed twice", f.Symbol)
				seen[f.Symbol] = true
				assert.GreaterOrEqual(t, f.Count, 1)
				assert.Equal(t, bytes.Count(tc.data, []byte{f.Symbol}), f.Count)
				if i > 0 {
					assert.GreaterOrEqual(t, h[i-1].Count, f.Count)
				}
			}
		})
	}
}
