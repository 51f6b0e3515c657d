package sim

import (
	"fmt"
	"sort"
)

// MemError reports an access to memory that is not mapped.
type MemError struct {
	Op   string
	Addr uint64
	Size int
}

func (m *MemError) Error() string {
	return fmt.Sprintf("unmapped %s at %#x(%d)", m.Op, m.Addr, m.Size)
}

// Memory is a sparse address space made of Regions.
type Memory struct {
	Regions Regions
}

// RangeValid reports whether every byte of addr:size is mapped.
func (m *Memory) RangeValid(addr, size uint64) bool {
	first := m.Regions.bsearch(addr)
	if first == -1 {
		return false
	}
	end := addr + size
	for _, r := range m.Regions[first:] {
		if !r.Contains(addr) {
			break
		}
		addr = r.Addr + r.Size
		if addr >= end {
			break
		}
	}
	return addr >= end
}

// Map creates a zeroed mapping at addr:size, replacing anything it overlaps.
func (m *Memory) Map(addr, size uint64, desc string) *Region {
	m.Unmap(addr, size)
	r := &Region{Addr: addr, Size: size, Data: make([]byte, size), Desc: desc}
	m.Regions = append(m.Regions, r)
	sort.Sort(m.Regions)
	return r
}

func (m *Memory) Unmap(addr, size uint64) {
	tmp := make(Regions, 0, len(m.Regions))
	for _, r := range m.Regions {
		if oaddr, osize, ok := r.Intersect(addr, size); ok {
			left, right := r.Split(oaddr, osize)
			if left != nil {
				tmp = append(tmp, left)
			}
			if right != nil {
				tmp = append(tmp, right)
			}
		} else {
			tmp = append(tmp, r)
		}
	}
	m.Regions = tmp
}

func (m *Memory) Read(addr uint64, p []byte) error {
	if !m.RangeValid(addr, uint64(len(p))) {
		return &MemError{Op: "read", Addr: addr, Size: len(p)}
	}
	if i := m.Regions.bsearch(addr); i >= 0 {
		for _, r := range m.Regions[i:] {
			if len(p) == 0 || !r.Contains(addr) {
				break
			}
			n := copy(p, r.Data[addr-r.Addr:])
			addr, p = addr+uint64(n), p[n:]
		}
	}
	return nil
}

func (m *Memory) Write(addr uint64, p []byte) error {
	if !m.RangeValid(addr, uint64(len(p))) {
		return &MemError{Op: "write", Addr: addr, Size: len(p)}
	}
	if i := m.Regions.bsearch(addr); i >= 0 {
		for _, r := range m.Regions[i:] {
			if len(p) == 0 || !r.Contains(addr) {
				break
			}
			n := copy(r.Data[addr-r.Addr:], p)
			addr, p = addr+uint64(n), p[n:]
		}
	}
	return nil
}
