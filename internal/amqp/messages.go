package amqp

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"bilancio/internal/core"
)

// Event types published on the ledger exchange.
const (
	EventRecordAppended = "record.appended"
	EventLedgerLoaded   = "ledger.loaded"
	EventLedgerSaved    = "ledger.saved"
)

// RecordPayload is the wire form of a core.Record.
type RecordPayload struct {
	Kind     string          `json:"kind"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
}

// LedgerEvent describes a change applied to the ledger
type LedgerEvent struct {
	Type      string         `json:"type"`
	Record    *RecordPayload `json:"record,omitempty"`
	File      string         `json:"file,omitempty"`
	Records   int            `json:"records"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewRecordAppendedEvent builds the event for a single appended record;
// size is the ledger size after the append.
func NewRecordAppendedEvent(r core.Record, size int) *LedgerEvent {
	return &LedgerEvent{
		Type: EventRecordAppended,
		Record: &RecordPayload{
			Kind:     r.Kind().String(),
			Amount:   r.Amount(),
			Category: r.Category(),
			Date:     r.Date().String(),
		},
		Records:   size,
		Timestamp: time.Now(),
	}
}

// NewFileEvent builds a ledger.loaded or ledger.saved event.
func NewFileEvent(eventType, file string, records int) *LedgerEvent {
	return &LedgerEvent{
		Type:      eventType,
		File:      file,
		Records:   records,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes
func (e *LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
