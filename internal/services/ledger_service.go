package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"bilancio/internal/amqp"
	"bilancio/internal/core"
	"bilancio/internal/export"
	"bilancio/internal/ledger"
	"bilancio/internal/log"
)

// EventPublisher receives ledger events after each successful operation.
type EventPublisher interface {
	PublishEvent(ctx context.Context, ev *amqp.LedgerEvent) error
}

// LedgerService orchestrates the in-memory ledger, its backing file and
// event publishing for the interactive shell and the command line.
type LedgerService struct {
	ledger *ledger.Ledger
	events EventPublisher
	logger *log.Logger
}

// NewLedgerService wraps l. events may be nil to disable publishing.
func NewLedgerService(l *ledger.Ledger, events EventPublisher, logger *log.Logger) *LedgerService {
	if l == nil {
		l = ledger.New()
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &LedgerService{
		ledger: l,
		events: events,
		logger: logger.WithComponent(log.ComponentLedger),
	}
}

// Ledger returns the owned ledger.
func (s *LedgerService) Ledger() *ledger.Ledger {
	return s.ledger
}

// AddRecord builds a record and appends it to the ledger.
func (s *LedgerService) AddRecord(ctx context.Context, kind core.Kind, amount decimal.Decimal, category string, date core.Date) (core.Record, error) {
	r, err := core.NewRecord(kind, amount, category, date)
	if err != nil {
		return core.Record{}, fmt.Errorf("new record: %w", err)
	}
	s.ledger.Append(r)

	s.logger.InfoContext(ctx, "Record appended", log.NewFields().WithOperation(log.OpAppend).WithRecord(r).ToSlice()...)
	s.publish(ctx, amqp.NewRecordAppendedEvent(r, s.ledger.Size()))
	return r, nil
}

// LoadFile reads path and appends its records on top of the ledger. It
// returns how many records were appended, which is non-zero on a partial
// load that stopped at a malformed line.
func (s *LedgerService) LoadFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open ledger file: %w", err)
	}
	defer f.Close()

	lines, err := ledger.ReadLines(f)
	if err != nil {
		return 0, fmt.Errorf("read ledger file: %w", err)
	}

	before := s.ledger.Size()
	err = s.ledger.LoadFrom(lines)
	loaded := s.ledger.Size() - before
	if err != nil {
		fields := log.NewFields().WithOperation(log.OpLoad).WithFile(path, loaded).WithError(err)
		var mre *core.MalformedRecordError
		if errors.As(err, &mre) {
			fields.WithLine(mre.Line)
		}
		s.logger.ErrorContext(ctx, "Ledger load aborted", fields.ToSlice()...)
		return loaded, fmt.Errorf("load %s: %w", path, err)
	}

	s.logger.InfoContext(ctx, "Ledger loaded", log.NewFields().WithOperation(log.OpLoad).WithFile(path, loaded).ToSlice()...)
	s.publish(ctx, amqp.NewFileEvent(amqp.EventLedgerLoaded, path, loaded))
	return loaded, nil
}

// SaveFile writes every record to path, replacing its content.
func (s *LedgerService) SaveFile(ctx context.Context, path string) (int, error) {
	lines := s.ledger.SaveTo()

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create ledger file: %w", err)
	}
	if err := ledger.WriteLines(f, lines); err != nil {
		f.Close()
		return 0, fmt.Errorf("write ledger file: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close ledger file: %w", err)
	}

	s.logger.InfoContext(ctx, "Ledger saved", log.NewFields().WithOperation(log.OpSave).WithFile(path, len(lines)).ToSlice()...)
	s.publish(ctx, amqp.NewFileEvent(amqp.EventLedgerSaved, path, len(lines)))
	return len(lines), nil
}

// Summary computes the monthly summary for a YYYY-MM filter.
func (s *LedgerService) Summary(ctx context.Context, yearMonth string) core.MonthSummary {
	summary := ledger.Summarize(s.ledger, yearMonth)
	s.logger.DebugContext(ctx, "Summary computed",
		log.NewFields().WithOperation(log.OpSummarize).WithMonth(yearMonth).ToSlice()...)
	return summary
}

// ExportSummary writes the monthly summary of yearMonth to an .xlsx file.
func (s *LedgerService) ExportSummary(ctx context.Context, yearMonth, currency, path string) error {
	data, err := export.SummaryXLSX(s.Summary(ctx, yearMonth), currency)
	if err != nil {
		return fmt.Errorf("render workbook: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	s.logger.WithComponent(log.ComponentExport).InfoContext(ctx, "Summary exported",
		log.NewFields().WithOperation(log.OpExport).WithMonth(yearMonth).WithFile(path, s.ledger.Size()).ToSlice()...)
	return nil
}

// publish never fails the calling operation: the ledger change already
// happened locally.
func (s *LedgerService) publish(ctx context.Context, ev *amqp.LedgerEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEvent(ctx, ev); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish ledger event",
			log.NewFields().WithOperation(log.OpPublish).WithError(err).ToSlice()...)
	}
}

// Close closes the event publisher when it holds resources.
func (s *LedgerService) Close() error {
	if c, ok := s.events.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("close event publisher: %w", err)
		}
	}
	return nil
}
