package dolphin

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/bfbbtools/gamehook/go/endian"
	"github.com/bfbbtools/gamehook/go/models"
)

// DataMember is a typed handle on a value in emulated memory. The pointer
// path is resolved again on every access, so handles stay valid across
// scene changes.
type DataMember[T endian.Value] struct {
	mem    models.MemIO
	region uint64
	path   []uint64
}

// NewDataMember returns a handle on the value at path. It can be used to
// reach variables that GameInterface does not expose.
func NewDataMember[T endian.Value](mem models.MemIO, region uint64, path ...uint64) *DataMember[T] {
	return &DataMember[T]{mem: mem, region: region, path: append([]uint64(nil), path...)}
}

func (d *DataMember[T]) Path() []uint64 {
	return append([]uint64(nil), d.path...)
}

// SetPath replaces the pointer path.
func (d *DataMember[T]) SetPath(path ...uint64) {
	d.path = append(d.path[:0], path...)
}

func (d *DataMember[T]) String() string {
	parts := make([]string, len(d.path))
	for i, off := range d.path {
		parts[i] = fmt.Sprintf("%#x", off)
	}
	var zero T
	return fmt.Sprintf("%T[%s]", zero, strings.Join(parts, " -> "))
}

// Offset resolves the path to a host address.
func (d *DataMember[T]) Offset() (uint64, error) {
	addr, err := Resolve(d.mem, d.region, d.path)
	if err != nil {
		return 0, errors.Wrapf(err, "resolving %s", d)
	}
	return addr, nil
}

// ReadBytes reads the raw bytes of the value without decoding them.
func (d *DataMember[T]) ReadBytes() ([]byte, error) {
	addr, err := d.Offset()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, endian.Size[T]())
	if err := d.mem.MemReadInto(buf, addr); err != nil {
		return nil, models.Unhooked("read", addr, err)
	}
	return buf, nil
}

// Get reads and validates the value.
func (d *DataMember[T]) Get() (T, error) {
	raw, err := d.ReadBytes()
	if err != nil {
		var zero T
		return zero, err
	}
	v, err := endian.Decode[T](raw)
	if err != nil {
		return v, errors.Wrapf(err, "reading %s", d)
	}
	return v, nil
}

// Set writes v. The value is fully encoded before memory is touched.
func (d *DataMember[T]) Set(v T) error {
	raw, err := endian.Encode(v)
	if err != nil {
		return err
	}
	addr, err := d.Offset()
	if err != nil {
		return err
	}
	return models.Unhooked("write", addr, d.mem.MemWrite(addr, raw))
}
