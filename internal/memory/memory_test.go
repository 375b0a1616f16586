package memory

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestImageByte(t *testing.T) {
	img := NewImage([]byte{0x7E, 0x80, 0x10})

	b, ok := img.Byte(0)
	assert.True(t, ok)
	assert.Equal(t, byte(0x7E), b)

	b, ok = img.Byte(2)
	assert.True(t, ok)
	assert.Equal(t, byte(0x10), b)

	_, ok = img.Byte(3)
	assert.False(t, ok)
	_, ok = img.Byte(-1)
	assert.False(t, ok)
}

func TestImageWordBigEndian(t *testing.T) {
	img := NewImage([]byte{0x7E, 0x80, 0x10})

	word, ok := img.Word(1)
	assert.True(t, ok)
	assert.Equal(t, uint16(0x8010), word)

	// a word needs two bytes
	_, ok = img.Word(2)
	assert.False(t, ok)
}

func TestImageSlice(t *testing.T) {
	img := NewImage([]byte{0x13, 0x29, 0x80, 0x1D})

	assert.Len(t, img.Slice(0, 4), 4)
	assert.Len(t, img.Slice(2, 5), 2)
	assert.Len(t, img.Slice(4, 5), 0)
	assert.Equal(t, 4, img.Len())
}
