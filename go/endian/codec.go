package endian

import (
	"bytes"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"

	"github.com/bfbbtools/gamehook/go/models"
)

// Size is the number of bytes T occupies in emulated memory.
func Size[T Value]() int {
	var zero T
	n, err := struc.Sizeof(&zero)
	if err != nil {
		panic(errors.Wrapf(err, "struc.Sizeof(%T)", zero))
	}
	return n
}

// Decode turns raw emulator bytes into a T. It fails with ErrInvalidData if
// raw is the wrong length or does not hold a legal T.
func Decode[T Value](raw []byte) (T, error) {
	var v T
	if size := Size[T](); len(raw) != size {
		return v, errors.Wrapf(models.ErrInvalidData, "decoding %T: got %d bytes, want %d", v, len(raw), size)
	}
	if isBool[T]() && raw[0] > 1 {
		return v, errors.Wrapf(models.ErrInvalidData, "decoding %T: %#x is not a bool", v, raw[0])
	}
	if err := struc.UnpackWithOrder(bytes.NewReader(raw), &v, Order[T]()); err != nil {
		return v, errors.Wrapf(models.ErrInvalidData, "decoding %T: %v", v, err)
	}
	if val, ok := any(v).(Validator); ok && !val.Valid() {
		return v, errors.Wrapf(models.ErrInvalidData, "decoding %T: % x is out of range", v, raw)
	}
	return v, nil
}

// Encode returns the emulator representation of v. Values a Validator
// rejects are ErrInvalidData and produce no bytes.
func Encode[T Value](v T) ([]byte, error) {
	if val, ok := any(v).(Validator); ok && !val.Valid() {
		return nil, errors.Wrapf(models.ErrInvalidData, "encoding %T: %v is out of range", v, v)
	}
	var buf bytes.Buffer
	if err := struc.PackWithOrder(&buf, &v, Order[T]()); err != nil {
		return nil, errors.Wrapf(err, "encoding %T", v)
	}
	return buf.Bytes(), nil
}
