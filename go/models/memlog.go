package models

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/apex/log"
)

type memDelta struct {
	addr  uint64
	data  []byte
	write bool
	tag   byte
}

func (d *memDelta) String() string {
	t := "R"
	if d.write {
		t = "W"
	}
	return fmt.Sprintf("%s%c %#x %s", t, d.tag, d.addr, hex.EncodeToString(d.data))
}

// MemLog wraps a MemIO and records every successful transfer. Transfers in
// the same direction that touch each other are merged into one delta.
type MemLog struct {
	MemIO
	log []*memDelta
}

func NewMemLog(mem MemIO) *MemLog {
	return &MemLog{MemIO: mem}
}

func (m *MemLog) MemReadInto(p []byte, addr uint64) error {
	err := m.MemIO.MemReadInto(p, addr)
	if err == nil {
		m.Update(addr, p, false)
	}
	return err
}

func (m *MemLog) MemWrite(addr uint64, p []byte) error {
	err := m.MemIO.MemWrite(addr, p)
	if err == nil {
		m.Update(addr, p, true)
	}
	return err
}

func (m *MemLog) Empty() bool {
	return len(m.log) == 0
}

func (m *MemLog) Reset() {
	m.log = nil
}

func (m *MemLog) adjacent(addr uint64, data []byte, write bool) (delta *memDelta, dup bool) {
	for _, delta := range m.log {
		if delta.write != write {
			continue
		}
		if addr == delta.addr && bytes.Equal(data, delta.data) {
			return delta, true
		}
		if addr == delta.addr+uint64(len(delta.data)) || addr+uint64(len(data)) == delta.addr {
			return delta, false
		}
	}
	return nil, false
}

func (m *MemLog) Update(addr uint64, data []byte, write bool) {
	delta, dup := m.adjacent(addr, data, write)
	if dup {
		return
	}
	if delta == nil {
		// entirely new memory delta
		m.log = append(m.log, &memDelta{addr, append([]byte(nil), data...), write, ' '})
		return
	}
	// adjacent to old memory delta
	tag := byte('>')
	if addr < delta.addr {
		tag = '<'
		delta.addr = addr
		delta.data = append(append([]byte(nil), data...), delta.data...)
	} else {
		delta.data = append(delta.data, data...)
	}
	if delta.tag == ' ' {
		delta.tag = tag
	} else if delta.tag != tag {
		delta.tag = '~'
	}
}

// Lines renders one line per delta, in the order they were first seen.
func (m *MemLog) Lines() []string {
	out := make([]string, len(m.log))
	for i, d := range m.log {
		out[i] = d.String()
	}
	return out
}

// Print logs every delta at debug level.
func (m *MemLog) Print(l log.Interface) {
	for _, line := range m.Lines() {
		l.Debug(line)
	}
}
