// Package endian decides how values are laid out in emulated memory and
// converts between that layout and Go values.
//
// The GameCube is big-endian. Multi-byte numbers are therefore swapped on
// the way in and out, while bytes and byte arrays are copied as they are.
package endian

import (
	"encoding/binary"
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Value is the set of types a game variable may hold.
type Value interface {
	~bool |
		~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 |
		constraints.Float |
		~[2]byte | ~[4]byte | ~[6]byte | ~[8]byte
}

// EndianAware lets a type override the default swap decision.
type EndianAware interface {
	SwapBytes() bool
}

// Validator is implemented by types with fewer legal values than bit
// patterns, such as enumerations.
type Validator interface {
	Valid() bool
}

// NeedsSwap reports whether T must be byte-swapped between the console and
// the host.
func NeedsSwap[T Value]() bool {
	var zero T
	if e, ok := any(zero).(EndianAware); ok {
		return e.SwapBytes()
	}
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Array, reflect.Bool, reflect.Int8, reflect.Uint8:
		return false
	}
	return true
}

// Order returns the byte order used to pack and unpack T.
func Order[T Value]() binary.ByteOrder {
	if NeedsSwap[T]() {
		return binary.BigEndian
	}
	return binary.NativeEndian
}

func isBool[T Value]() bool {
	var zero T
	return reflect.TypeOf(zero).Kind() == reflect.Bool
}

// Swap reverses the byte order of an integer.
func Swap[T constraints.Integer](v T) T {
	u, out := uint64(v), uint64(0)
	for i := uintptr(0); i < unsafe.Sizeof(v); i++ {
		out = out<<8 | (u>>(8*i))&0xff
	}
	return T(out)
}

// Reverse reverses a byte array.
func Reverse[T ~[2]byte | ~[4]byte | ~[6]byte | ~[8]byte](v T) T {
	b := make([]byte, binary.Size(v))
	if _, err := binary.Encode(b, binary.BigEndian, v); err != nil {
		panic(errors.Wrap(err, "Reverse"))
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	var out T
	if _, err := binary.Decode(b, binary.BigEndian, &out); err != nil {
		panic(errors.Wrap(err, "Reverse"))
	}
	return out
}
