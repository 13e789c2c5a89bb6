// Package ledger holds the ordered, append-only collection of records,
// its line-oriented persistence and the monthly aggregation over it.
//
// A Ledger is owned by a single caller and is not safe for concurrent use.
package ledger

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"slices"
	"strings"

	"bilancio/internal/core"
)

type Ledger struct {
	records []core.Record
}

func New() *Ledger {
	return &Ledger{}
}

// Append inserts r at the end of the ledger.
func (l *Ledger) Append(r core.Record) {
	l.records = append(l.records, r)
}

// LoadFrom decodes every non-blank line and appends it on top of the
// records already held; it does not clear the ledger first. The first
// malformed line aborts the load with a *core.MalformedRecordError and
// the records appended before it are kept.
func (l *Ledger) LoadFrom(lines []string) error {
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := core.DecodeRecord(line)
		if err != nil {
			var mre *core.MalformedRecordError
			if errors.As(err, &mre) {
				mre.Line = i + 1
			}
			return err
		}
		l.records = append(l.records, r)
	}
	return nil
}

// SaveTo encodes every record in ledger order, one per line.
func (l *Ledger) SaveTo() []string {
	lines := make([]string, 0, len(l.records))
	for _, r := range l.records {
		lines = append(lines, core.EncodeRecord(r))
	}
	return lines
}

func (l *Ledger) Size() int {
	return len(l.records)
}

// Records returns a copy of the records in insertion order.
func (l *Ledger) Records() []core.Record {
	return slices.Clone(l.records)
}

// All iterates the records in insertion order.
func (l *Ledger) All() iter.Seq[core.Record] {
	return slices.Values(l.records)
}

// ReadLines reads the whole stream and splits it into lines, dropping the
// "\n" or "\r\n" terminator. Lines of any length are returned whole.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
