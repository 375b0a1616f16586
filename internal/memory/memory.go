// Package memory provides the read-only flash image buffer.
package memory

// Image is an immutable view of a loaded flash image. It is owned by the
// caller and borrowed read-only by all decoding components, no component
// ever writes to it.
type Image struct {
	data []byte
}

// NewImage creates a new image backed by the passed buffer.
// The buffer must not be modified for the lifetime of the image.
func NewImage(data []byte) *Image {
	return &Image{data: data}
}

// Len returns the total length of the image in bytes.
func (i *Image) Len() int {
	return len(i.data)
}

// Byte returns the byte at the given file offset.
// The second return value is false if the offset is outside the image.
func (i *Image) Byte(offset int) (byte, bool) {
	if offset < 0 || offset >= len(i.data) {
		return 0, false
	}
	return i.data[offset], true
}

// Word returns the big-endian 16 bit word at the given file offset.
// The second return value is false if the word does not fit into the image.
func (i *Image) Word(offset int) (uint16, bool) {
	if offset < 0 || offset+1 >= len(i.data) {
		return 0, false
	}
	return uint16(i.data[offset])<<8 | uint16(i.data[offset+1]), true
}

// Slice returns a read-only view of up to max bytes starting at the given
// file offset. The returned slice can be shorter than max if the image ends
// before it, callers must not write to it.
func (i *Image) Slice(offset, max int) []byte {
	if offset < 0 || offset >= len(i.data) {
		return nil
	}
	end := offset + max
	if end > len(i.data) {
		end = len(i.data)
	}
	return i.data[offset:end]
}
