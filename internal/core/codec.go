package core

import (
	"errors"
	"fmt"
	"strings"
)

// FieldSeparator separates the four fields of an encoded record. It is
// never escaped: a category containing it cannot be decoded back.
const FieldSeparator = ","

const recordFields = 4

// ErrMalformedRecord is matched by every *MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError reports a ledger line that could not be decoded.
type MalformedRecordError struct {
	Line   int    // 1-based line number, 0 when unknown
	Text   string // offending line
	Field  string // "fields", "kind", "amount" or "date"
	Reason error
}

func (e *MalformedRecordError) Error() string {
	var b strings.Builder
	b.WriteString("malformed record")
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	fmt.Fprintf(&b, " %q: invalid %s", e.Text, e.Field)
	if e.Reason != nil {
		fmt.Fprintf(&b, ": %v", e.Reason)
	}
	return b.String()
}

func (e *MalformedRecordError) Unwrap() error { return e.Reason }

func (e *MalformedRecordError) Is(target error) bool { return target == ErrMalformedRecord }

// EncodeRecord renders r as "<KIND>,<amount>,<category>,<date>".
func EncodeRecord(r Record) string {
	return strings.Join([]string{
		r.kind.String(),
		r.amount.String(),
		r.category,
		r.date.String(),
	}, FieldSeparator)
}

// DecodeRecord parses one encoded line. It never attempts partial recovery.
func DecodeRecord(line string) (Record, error) {
	parts := strings.Split(line, FieldSeparator)
	if len(parts) != recordFields {
		return Record{}, &MalformedRecordError{
			Text:   line,
			Field:  "fields",
			Reason: fmt.Errorf("got %d fields, want %d", len(parts), recordFields),
		}
	}

	kind, err := ParseKind(parts[0])
	if err != nil {
		return Record{}, &MalformedRecordError{Text: line, Field: "kind", Reason: err}
	}
	amount, err := ParseAmount(parts[1])
	if err != nil {
		return Record{}, &MalformedRecordError{Text: line, Field: "amount", Reason: err}
	}
	date, err := ParseDate(parts[3])
	if err != nil {
		return Record{}, &MalformedRecordError{Text: line, Field: "date", Reason: err}
	}

	return Record{kind: kind, amount: amount, category: parts[2], date: date}, nil
}
