package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-05-12", true},
		{"2024-02-29", true},
		{"2025-02-29", false},
		{"2025-13-01", false},
		{"2025-5-01", false},
		{"2025/05/01", false},
		{"", false},
	}
	for _, tc := range cases {
		d, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil || d.String() != tc.in {
				t.Fatalf("%q expected ok, got %v (err=%v)", tc.in, d, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestDateYearMonth(t *testing.T) {
	if got := NewDate(2025, 5, 12).YearMonth(); got != "2025-05" {
		t.Fatalf("expected 2025-05, got %q", got)
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"INCOME", Income, true},
		{"EXPENSE", Expense, true},
		{"income", 0, false},
		{"Expense", 0, false},
		{" INCOME", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseKind(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.want, got, err)
			}
		} else if !errors.Is(err, ErrInvalidKind) {
			t.Fatalf("%q expected ErrInvalidKind, got %v", tc.in, err)
		}
	}
}

func TestNewRecord(t *testing.T) {
	r, err := NewRecord(Expense, decimal.NewFromInt(450), "Food", NewDate(2025, 5, 12))
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if r.Kind() != Expense || !r.Amount().Equal(decimal.NewFromInt(450)) || r.Category() != "Food" || r.Date().String() != "2025-05-12" {
		t.Fatalf("unexpected record fields: %+v", r)
	}

	if _, err := NewRecord(Kind(0), decimal.NewFromInt(1), "x", NewDate(2025, 1, 1)); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind for zero kind, got %v", err)
	}
	if _, err := NewRecord(Kind(9), decimal.NewFromInt(1), "x", NewDate(2025, 1, 1)); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind for unknown kind, got %v", err)
	}
}

func TestNewRecordAcceptsDecodedZeroDate(t *testing.T) {
	decoded, err := DecodeRecord("INCOME,1,x,0001-01-01")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	built, err := NewRecord(Income, decimal.NewFromInt(1), "x", decoded.Date())
	if err != nil {
		t.Fatalf("a decodable record must be constructible, got %v", err)
	}
	if !built.Equal(decoded) {
		t.Fatalf("expected %+v, got %+v", decoded, built)
	}
	if _, err := NewRecord(Income, decimal.NewFromInt(1), "x", Date{}); err != nil {
		t.Fatalf("zero Date is 0001-01-01 and must be accepted, got %v", err)
	}
}

func TestNewRecordAcceptsNegativeAmount(t *testing.T) {
	r, err := NewRecord(Income, decimal.NewFromInt(-10), "Refund", NewDate(2025, 1, 1))
	if err != nil {
		t.Fatalf("negative amounts must be accepted, got %v", err)
	}
	if !r.Amount().Equal(decimal.NewFromInt(-10)) {
		t.Fatalf("unexpected amount %v", r.Amount())
	}
}

func TestRecordEqual(t *testing.T) {
	a, _ := NewRecord(Expense, decimal.RequireFromString("450"), "Food", NewDate(2025, 5, 12))
	b, _ := NewRecord(Expense, decimal.RequireFromString("450.0"), "Food", NewDate(2025, 5, 12))
	c, _ := NewRecord(Expense, decimal.RequireFromString("450"), "food", NewDate(2025, 5, 12))
	if !a.Equal(b) {
		t.Fatalf("expected 450 and 450.0 records to be equal")
	}
	if a.Equal(c) {
		t.Fatalf("categories are case-sensitive")
	}
}
