package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type flatMem []byte

func (f flatMem) MemReadInto(p []byte, addr uint64) error {
	if addr+uint64(len(p)) > uint64(len(f)) {
		return errors.New("out of range")
	}
	copy(p, f[addr:])
	return nil
}

func (f flatMem) MemWrite(addr uint64, p []byte) error {
	if addr+uint64(len(p)) > uint64(len(f)) {
		return errors.New("out of range")
	}
	copy(f[addr:], p)
	return nil
}

func TestMemLogMerges(t *testing.T) {
	m := NewMemLog(make(flatMem, 0x20))
	require.True(t, m.Empty())

	require.NoError(t, m.MemWrite(0x10, []byte{1, 2}))
	require.NoError(t, m.MemWrite(0x12, []byte{3}))
	require.NoError(t, m.MemWrite(0x0f, []byte{0}))
	require.NoError(t, m.MemWrite(0x0f, []byte{0, 1, 2, 3}))

	buf := make([]byte, 4)
	require.NoError(t, m.MemReadInto(buf, 0x10))
	require.Equal(t, []byte{1, 2, 3, 0}, buf)

	require.Equal(t, []string{
		"W~ 0xf 00010203",
		"R  0x10 01020300",
	}, m.Lines())

	m.Reset()
	require.True(t, m.Empty())
}

func TestMemLogSkipsFailures(t *testing.T) {
	m := NewMemLog(make(flatMem, 4))
	require.Error(t, m.MemWrite(2, []byte{1, 2, 3}))
	require.Error(t, m.MemReadInto(make([]byte, 8), 0))
	require.True(t, m.Empty())
}
