package selection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/usires/basix/pkg/catalog"
)

// Markers drawn in front of each row.
const (
	CheckedMarker   = "[+]"
	UncheckedMarker = "[ ]"
)

// Row is one rendered line of a list.
type Row struct {
	Index   int // 1-based
	Name    string
	Checked bool
}

// Marker returns the checked or unchecked marker for the row.
func (r Row) Marker() string {
	if r.Checked {
		return CheckedMarker
	}
	return UncheckedMarker
}

// String renders the row as "<index> <marker> <name>".
func (r Row) String() string {
	return fmt.Sprintf("%d %s %s", r.Index, r.Marker(), r.Name)
}

// List is a sorted view over a candidate list.
type List struct {
	items []string
}

// NewList sorts a copy of candidates. The caller's slice is left untouched.
func NewList(candidates []string) *List {
	return &List{items: catalog.Sorted(candidates)}
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns the sorted items.
func (l *List) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Item returns the item at 1-based index n.
func (l *List) Item(n int) (string, bool) {
	if n < 1 || n > len(l.items) {
		return "", false
	}
	return l.items[n-1], true
}

// Toggle flips the item at 1-based index n in set. Out-of-range indexes are
// ignored and report false.
func (l *List) Toggle(set Set, n int) bool {
	name, ok := l.Item(n)
	if !ok {
		return false
	}
	set.Toggle(name)
	return true
}

// Rows returns the rendered rows for set.
func (l *List) Rows(set Set) []Row {
	rows := make([]Row, len(l.items))
	for i, name := range l.items {
		rows[i] = Row{Index: i + 1, Name: name, Checked: set.Has(name)}
	}
	return rows
}

// InputKind classifies one line typed at a list prompt.
type InputKind int

const (
	InputInvalid InputKind = iota
	InputQuit
	InputIndex
)

// Input is a parsed list prompt line.
type Input struct {
	Kind  InputKind
	Index int
}

// ParseInput interprets a line typed at the list prompt. The line is trimmed
// first; "q" quits and a positive integer is an index. Indexes past the end
// of the list are left to Toggle, which ignores them.
func ParseInput(line string) Input {
	line = strings.TrimSpace(line)
	if line == "q" {
		return Input{Kind: InputQuit}
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 {
		return Input{Kind: InputInvalid}
	}
	return Input{Kind: InputIndex, Index: n}
}
