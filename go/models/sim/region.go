package sim

import (
	"bytes"
	"fmt"
	"strings"
)

// Region is one mapping in a simulated address space.
type Region struct {
	Addr uint64
	Size uint64
	Data []byte
	Desc string
}

func (r *Region) String() string {
	desc := fmt.Sprintf("0x%x-0x%x", r.Addr, r.Addr+r.Size)
	if r.Desc != "" {
		desc += fmt.Sprintf(" [%s]", r.Desc)
	}
	return desc
}

func (r *Region) Contains(addr uint64) bool {
	return addr >= r.Addr && addr < r.Addr+r.Size
}

// start = max(s1, s2), end = min(e1, e2), ok = end > start
func (r *Region) Intersect(addr, size uint64) (uint64, uint64, bool) {
	start := r.Addr
	end := r.Addr + r.Size
	e2 := addr + size
	if end > e2 {
		end = e2
	}
	if start < addr {
		start = addr
	}
	return start, end - start, end > start
}

func (r *Region) slice(addr, size uint64) *Region {
	o := addr - r.Addr
	return &Region{Addr: addr, Size: size, Data: r.Data[o : o+size], Desc: r.Desc}
}

/*
laddr                      rsize
|      lsize       raddr   |
[------|---region--|-------]
[-left-][---mid---][-right-]
        |         |
        addr      size
*/
// Split cuts addr:size out of r, returning whatever remains on either side.
// r itself becomes the middle piece, zero padded if addr:size extends past it.
func (r *Region) Split(addr, size uint64) (left, right *Region) {
	if addr+size < r.Addr+r.Size {
		ra := addr + size
		right = r.slice(ra, r.Addr+r.Size-ra)
		r.Data = r.Data[:ra-r.Addr]
	}
	if addr > r.Addr {
		ls := addr - r.Addr
		left = r.slice(r.Addr, ls)
		r.Data = r.Data[ls:]
	}
	if addr < r.Addr {
		r.Data = append(bytes.Repeat([]byte{0}, int(r.Addr-addr)), r.Data...)
	}
	if end, nend := r.Addr+r.Size, addr+size; nend > end {
		r.Data = append(r.Data, bytes.Repeat([]byte{0}, int(nend-end))...)
	}
	r.Addr, r.Size = addr, size
	return left, right
}

// Regions is kept sorted by address.
type Regions []*Region

func (p Regions) Len() int           { return len(p) }
func (p Regions) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }
func (p Regions) Less(i, j int) bool { return p[i].Addr < p[j].Addr }

func (p Regions) String() string {
	s := make([]string, len(p))
	for i, v := range p {
		s[i] = v.String()
	}
	return strings.Join(s, "\n")
}

// binary search to find index of the region containing addr, if any, else -1
func (p Regions) bsearch(addr uint64) int {
	l := 0
	r := len(p) - 1
	for l <= r {
		mid := (l + r) / 2
		e := p[mid]
		if addr >= e.Addr {
			if addr < e.Addr+e.Size {
				return mid
			}
			l = mid + 1
		} else {
			r = mid - 1
		}
	}
	return -1
}

func (p Regions) Find(addr uint64) *Region {
	if i := p.bsearch(addr); i >= 0 {
		return p[i]
	}
	return nil
}
