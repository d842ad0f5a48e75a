package renderer

import "fmt"

// instanceBuffer is one kind's device-resident instance buffer. Its capacity never
// shrinks; when a frame needs more room it is reallocated at twice the required size
// so small fluctuations in object count do not reallocate every frame.
type instanceBuffer struct {
	label    string
	buf      Buffer
	capacity uint64
}

// upload writes data into the buffer, growing it first when data does not fit. The
// replacement is created before the old buffer is released, so a failed allocation
// leaves the previous buffer intact.
//
// Parameters:
//   - d: the device owning the buffer
//   - data: the packed instance records
//
// Returns:
//   - bool: true if the buffer was reallocated
//   - error: an error if allocation or the write failed
func (b *instanceBuffer) upload(d Device, data []byte) (bool, error) {
	required := uint64(len(data))
	grew := false
	if required > b.capacity {
		next := 2 * required
		buf, err := d.CreateBuffer(b.label, BufferUsageVertex, next)
		if err != nil {
			return false, fmt.Errorf("grow %s to %d bytes: %w", b.label, next, err)
		}
		if b.buf != nil {
			d.ReleaseBuffer(b.buf)
		}
		b.buf = buf
		b.capacity = next
		grew = true
	}
	if err := d.WriteBuffer(b.buf, data); err != nil {
		return grew, fmt.Errorf("write %s: %w", b.label, err)
	}
	return grew, nil
}

func (b *instanceBuffer) release(d Device) {
	if b.buf != nil {
		d.ReleaseBuffer(b.buf)
	}
	b.buf = nil
	b.capacity = 0
}
