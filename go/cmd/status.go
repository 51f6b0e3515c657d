package cmd

import (
	"fmt"
	"strings"

	"github.com/mgutz/ansi"

	"github.com/bfbbtools/gamehook/go/gamevar"
)

// StatusDiff tracks the last snapshot so successive ones can be compared.
type StatusDiff struct {
	old map[string]string
}

var chSame = ansi.ColorCode("default:default")
var chNew = ansi.ColorCode("default+bu:default")

func colorPad(s, color string, pad int) string {
	length := len(s)
	s = color + s + ansi.Reset
	if length < pad {
		s = strings.Repeat(" ", pad-length) + s
	}
	return s
}

type ChangeMask struct {
	Old, New string
	Changed  bool
}

type Change struct {
	Name     string
	Old, New string
	// First is set when there was no previous value to compare with.
	First bool
}

func (c *Change) Changed() bool {
	return !c.First && c.Old != c.New
}

// Mask splits New into runs that match or differ from Old, character by
// character.
func (c *Change) Mask() []ChangeMask {
	s1, s2 := c.New, c.Old
	if len(s2) < len(s1) {
		s2 += strings.Repeat("\x00", len(s1)-len(s2))
	}
	pos := 0
	matching := true
	masks := make([]ChangeMask, 0, 2)
	for i := range s1 {
		if (s1[i] == s2[i]) != matching {
			if i > pos {
				masks = append(masks, ChangeMask{
					New:     s1[pos:i],
					Old:     s2[pos:i],
					Changed: !matching,
				})
				pos = i
			}
			matching = !matching
		}
	}
	if pos < len(s1) {
		masks = append(masks, ChangeMask{
			New:     s1[pos:],
			Old:     s2[pos:len(s1)],
			Changed: !matching,
		})
	}
	return masks
}

func (c *Change) String(pad int, color bool) string {
	var out []string
	lineStart := fmt.Sprintf("%*s: ", pad, c.Name)
	if c.Changed() {
		if color {
			out = append(out, colorPad(c.Name, chNew, pad)+": ")
			for _, mask := range c.Mask() {
				col := chSame
				if mask.Changed {
					col = chNew
				}
				out = append(out, col+mask.New)
			}
			out = append(out, ansi.Reset)
		} else {
			out = append(out, "+ "+lineStart+c.New)
		}
	} else if color {
		out = append(out, lineStart+c.New)
	} else {
		out = append(out, "  "+lineStart+c.New)
	}
	return strings.Join(out, "")
}

type Changes struct {
	Changes []*Change
}

func (cs *Changes) String(color bool) string {
	pad := 0
	for _, c := range cs.Changes {
		if len(c.Name) > pad {
			pad = len(c.Name)
		}
	}
	var out []string
	for _, c := range cs.Changes {
		out = append(out, c.String(pad, color), "\n")
	}
	return strings.Join(out, "")
}

func (cs *Changes) Changed() []*Change {
	ret := make([]*Change, 0, cs.Count())
	for _, c := range cs.Changes {
		if c.Changed() {
			ret = append(ret, c)
		}
	}
	return ret
}

func (cs *Changes) Count() int {
	ret := 0
	for _, c := range cs.Changes {
		if c.Changed() {
			ret += 1
		}
	}
	return ret
}

func (cs *Changes) Find(name string) *Change {
	for _, c := range cs.Changes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Changes compares fields with the previous call. With onlyChanged, fields
// that kept their value are left out.
func (s *StatusDiff) Changes(fields []gamevar.Field, onlyChanged bool) *Changes {
	cs := make([]*Change, 0, len(fields))
	for _, f := range fields {
		old, seen := s.old[f.Name]
		change := &Change{Name: f.Name, Old: old, New: f.Value, First: !seen}
		if !onlyChanged || change.Changed() {
			cs = append(cs, change)
		}
	}
	s.old = make(map[string]string, len(fields))
	for _, f := range fields {
		s.old[f.Name] = f.Value
	}
	return &Changes{Changes: cs}
}

// Reset forgets the previous snapshot, e.g. after the game was unhooked.
func (s *StatusDiff) Reset() {
	s.old = nil
}
