// Package sim provides an in-memory stand-in for a hooked process.
package sim

import (
	"encoding/binary"
	"sync"

	"github.com/pkg/errors"

	"github.com/bfbbtools/gamehook/go/models"
)

// ErrExited is returned by every memory access after Close.
var ErrExited = errors.New("process exited")

// Process is a fake target process. It satisfies models.Process.
type Process struct {
	sync.RWMutex
	pid    int
	mem    *Memory
	order  binary.ByteOrder
	closed bool
}

var _ models.Process = (*Process)(nil)

// NewProcess returns an empty address space. order is used by ReadUint and
// WriteUint only.
func NewProcess(pid int, order binary.ByteOrder) *Process {
	return &Process{pid: pid, mem: &Memory{}, order: order}
}

func (p *Process) Pid() int { return p.pid }

func (p *Process) Map(addr, size uint64, desc string) *Region {
	p.Lock()
	defer p.Unlock()
	return p.mem.Map(addr, size, desc)
}

func (p *Process) Unmap(addr, size uint64) {
	p.Lock()
	defer p.Unlock()
	p.mem.Unmap(addr, size)
}

func (p *Process) Regions() Regions {
	p.RLock()
	defer p.RUnlock()
	return append(Regions(nil), p.mem.Regions...)
}

func (p *Process) MemReadInto(buf []byte, addr uint64) error {
	p.RLock()
	defer p.RUnlock()
	if p.closed {
		return ErrExited
	}
	return p.mem.Read(addr, buf)
}

func (p *Process) MemRead(addr, size uint64) ([]byte, error) {
	buf := make([]byte, size)
	if err := p.MemReadInto(buf, addr); err != nil {
		return nil, err
	}
	return buf, nil
}

func (p *Process) MemWrite(addr uint64, buf []byte) error {
	p.Lock()
	defer p.Unlock()
	if p.closed {
		return ErrExited
	}
	return p.mem.Write(addr, buf)
}

func (p *Process) ReadUint(addr uint64, size int) (uint64, error) {
	if size > 8 {
		return 0, errors.Errorf("ReadUint size too large: %d > 8", size)
	}
	buf, err := p.MemRead(addr, uint64(size))
	if err != nil {
		return 0, err
	}
	return UnpackUint(p.order, size, buf)
}

func (p *Process) WriteUint(addr uint64, size int, val uint64) error {
	var buf [8]byte
	if size > 8 {
		return errors.Errorf("WriteUint size too large: %d > 8", size)
	}
	if _, err := PackUint(p.order, size, buf[:], val); err != nil {
		return err
	}
	return p.MemWrite(addr, buf[:size])
}

// Close simulates the process exiting. Close is idempotent.
func (p *Process) Close() error {
	p.Lock()
	defer p.Unlock()
	p.closed = true
	return nil
}

func (p *Process) Closed() bool {
	p.RLock()
	defer p.RUnlock()
	return p.closed
}
