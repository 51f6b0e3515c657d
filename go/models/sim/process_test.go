package sim

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProcessUint(t *testing.T) {
	p := NewProcess(42, binary.BigEndian)
	require.Equal(t, 42, p.Pid())
	p.Map(0x1000, 0x100, "ram")

	require.NoError(t, p.WriteUint(0x1000, 4, 0x80001234))
	raw, err := p.MemRead(0x1000, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0x80, 0x00, 0x12, 0x34}, raw)

	v, err := p.ReadUint(0x1002, 2)
	require.NoError(t, err)
	require.EqualValues(t, 0x1234, v)

	_, err = p.ReadUint(0x1000, 9)
	require.Error(t, err)
	require.Error(t, p.WriteUint(0x1000, 3, 0))
}

func TestProcessClose(t *testing.T) {
	p := NewProcess(1, binary.LittleEndian)
	p.Map(0, 0x10, "")
	require.NoError(t, p.MemWrite(0, []byte{1}))
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	require.True(t, p.Closed())
	require.ErrorIs(t, p.MemWrite(0, []byte{1}), ErrExited)
	require.ErrorIs(t, p.MemReadInto(make([]byte, 1), 0), ErrExited)
}

func TestPackUint(t *testing.T) {
	buf, err := PackUint(binary.LittleEndian, 2, nil, 0xbeef)
	require.NoError(t, err)
	require.Equal(t, []byte{0xef, 0xbe}, buf)
	_, err = PackUint(binary.LittleEndian, 4, make([]byte, 2), 0)
	require.Error(t, err)
	n, err := UnpackUint(binary.BigEndian, 8, []byte{0, 0, 0, 0, 0, 0, 1, 0})
	require.NoError(t, err)
	require.EqualValues(t, 0x100, n)
}
