package core

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the closed set of record kinds. The zero value is not a valid kind.
type Kind uint8

const (
	Income Kind = iota + 1
	Expense
)

// DateLayout is the ISO-8601 calendar date layout used by the ledger file.
const DateLayout = "2006-01-02"

type (
	Date struct {
		time.Time
	}

	// Record is one income or expense entry. All fields are fixed at
	// construction; use NewRecord to build one.
	Record struct {
		kind     Kind
		amount   decimal.Decimal
		category string
		date     Date
	}
)

var ErrInvalidKind = errors.New("invalid record kind")

// String returns the upper-case enumerator name written to the ledger file.
func (k Kind) String() string {
	switch k {
	case Income:
		return "INCOME"
	case Expense:
		return "EXPENSE"
	default:
		return "UNKNOWN"
	}
}

func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

// ParseKind accepts exactly "INCOME" or "EXPENSE".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "INCOME":
		return Income, nil
	case "EXPENSE":
		return Expense, nil
	default:
		return 0, ErrInvalidKind
	}
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// YearMonth returns the first seven characters of the ISO form, e.g. "2025-05".
func (d Date) YearMonth() string {
	s := d.String()
	if len(s) < 7 {
		return s
	}
	return s[:7]
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a strict YYYY-MM-DD calendar date. Out of range days
// such as 2025-02-30 are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Today returns the current calendar date in the local timezone.
func Today() Date {
	y, m, d := time.Now().Date()
	return NewDate(y, int(m), d)
}

// NewRecord builds an immutable record. Amount is not validated: negative
// values are accepted and flow into totals unchanged. Any Date is accepted,
// including the zero value 0001-01-01, so every decodable line can also be
// built here.
func NewRecord(kind Kind, amount decimal.Decimal, category string, date Date) (Record, error) {
	if !kind.Valid() {
		return Record{}, ErrInvalidKind
	}
	return Record{kind: kind, amount: amount, category: category, date: date}, nil
}

func (r Record) Kind() Kind              { return r.kind }
func (r Record) Amount() decimal.Decimal { return r.amount }
func (r Record) Category() string        { return r.category }
func (r Record) Date() Date              { return r.date }

// Equal reports whether both records carry the same values. Amounts are
// compared numerically, so 450 and 450.0 are equal.
func (r Record) Equal(o Record) bool {
	return r.kind == o.kind &&
		r.amount.Equal(o.amount) &&
		r.category == o.category &&
		r.date.Equal(o.date.Time)
}
