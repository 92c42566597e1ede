// Package records reads, orders and writes the line-based
// records handled by the sortedarray command.
package records

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/rogpeppe/sortedarray/internal/config"
	"github.com/rogpeppe/sortedarray/slice"
	"github.com/rogpeppe/sortedarray/sortedarray"
)

// Record holds the fields of one input line.
type Record []string

// Field returns the i'th field of r, or the empty
// string if r has no such field.
func (r Record) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Key returns a record that orders like s under Less(cfg).
// When cfg.Field selects a single field, s is placed in that field;
// otherwise s is split into fields with cfg.Separator.
func Key(cfg config.Config, s string) Record {
	if cfg.Field >= 0 {
		r := make(Record, cfg.Field+1)
		r[cfg.Field] = s
		return r
	}
	return Record(strings.Split(s, cfg.Separator))
}

// Less returns the ordering of records described by cfg.
//
// When cfg.Field selects a single field, records are ordered by
// that field alone, so records that agree on it are equivalent
// and a sorted array keeps only the first of them.
func Less(cfg config.Config) func(a, b Record) bool {
	fold := func(s string) string { return s }
	if cfg.FoldCase {
		fold = strings.ToLower
	}
	var less func(a, b Record) bool
	if cfg.Field >= 0 {
		field := cfg.Field
		less = sortedarray.By(func(r Record) string {
			return fold(r.Field(field))
		})
	} else {
		lex := slice.LessFunc(func(x, y string) bool {
			return cmp.Less(fold(x), fold(y))
		})
		less = func(a, b Record) bool {
			return lex(a, b)
		}
	}
	if cfg.Reverse {
		less = sortedarray.Reverse(less)
	}
	return less
}

// Read reads all lines from r, splitting each into fields with sep.
func Read(r io.Reader, sep string) ([]Record, error) {
	var recs []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		recs = append(recs, Record(strings.Split(scanner.Text(), sep)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read records: %w", err)
	}
	return recs, nil
}

// Write writes each record produced by seq to w as a line,
// with fields joined by sep.
func Write(w io.Writer, sep string, seq iter.Seq[Record]) error {
	bw := bufio.NewWriter(w)
	for r := range seq {
		bw.WriteString(strings.Join(r, sep))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cannot write records: %w", err)
	}
	return nil
}
