package stationstats

import (
	"bytes"
	"errors"
	"fmt"
	"unsafe"

	"github.com/dolthub/swiss"
)

// Data sets rarely name more than about ten thousand distinct stations.
const stationCapacity = 10_000

var (
	// ErrMissingSemicolon is returned for records without a field separator.
	ErrMissingSemicolon = errors.New("missing semicolon")

	// ErrUnexpectedBlank is returned when a blank line shows up anywhere but
	// at the very end of the input.
	ErrUnexpectedBlank = errors.New("blank line before end of input")
)

// Table is the per-range station table. Keys stored in the table are owned
// copies, made once per distinct station; lookups go through a borrowed
// view of the input buffer to keep the hot path allocation free.
type Table struct {
	m *swiss.Map[string, *Stats]
}

// NewTable returns an empty station table.
func NewTable() *Table {
	return &Table{m: swiss.NewMap[string, *Stats](stationCapacity)}
}

// Observe folds one reading, in tenths of a degree, into the entry for the
// station named by name.
func (t *Table) Observe(name []byte, v int16) {
	if s, ok := t.m.Get(borrowed(name)); ok {
		s.Add(v)
		return
	}
	t.m.Put(string(name), NewStats(v))
}

// Lookup returns the aggregate for one station.
func (t *Table) Lookup(name string) (*Stats, bool) {
	return t.m.Get(name)
}

// Len returns the number of distinct stations seen so far.
func (t *Table) Len() int {
	return t.m.Count()
}

// Each calls f for every station in unspecified order.
func (t *Table) Each(f func(name string, s *Stats)) {
	t.m.Iter(func(name string, s *Stats) bool {
		f(name, s)
		return false
	})
}

// borrowed views b as a string without copying. The result aliases b and
// must not outlive it; it is only ever used for table lookups.
func borrowed(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// AggregateChunk parses every record in one range and folds it into a
// fresh table, returning the record count alongside. Records are newline
// delimited; bytes after the last newline of the input do not form a
// record. A blank line ends the usable input and is only legal at the tail
// of the final range. The first malformed record fails the whole range,
// there is no partial success.
func AggregateChunk(chunk []byte, final bool) (int64, *Table, error) {
	table := NewTable()
	var records int64
	rest := chunk
	for {
		nl := bytes.IndexByte(rest, '\n')
		if nl < 0 {
			break
		}
		line := rest[:nl]
		rest = rest[nl+1:]
		if len(line) == 0 {
			if err := checkBlankTail(rest, final); err != nil {
				return 0, nil, err
			}
			break
		}
		sep := bytes.IndexByte(line, ';')
		if sep < 0 {
			return 0, nil, fmt.Errorf("record %q: %w", line, ErrMissingSemicolon)
		}
		v, err := ParseTemp(line[sep+1:])
		if err != nil {
			return 0, nil, fmt.Errorf("record %q: %w", line, err)
		}
		table.Observe(line[:sep], v)
		records++
	}
	return records, table, nil
}

// checkBlankTail enforces the one blank line rule: blanks may only pad the
// true end of the file, so they must sit in the final range and nothing
// but further newlines may follow them.
func checkBlankTail(rest []byte, final bool) error {
	if !final {
		return ErrUnexpectedBlank
	}
	for _, b := range rest {
		if b != '\n' {
			return fmt.Errorf("%q after blank line: %w", rest, ErrUnexpectedBlank)
		}
	}
	return nil
}
