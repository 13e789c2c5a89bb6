// Package shell implements the interactive menu around the ledger
// service: it prompts, reads raw input, and formats results.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"bilancio/internal/core"
	"bilancio/internal/log"
	"bilancio/internal/services"
)

const menu = `
=== Expense Tracker ===
1. Add Income
2. Add Expense
3. Load from File
4. Save to File
5. View Monthly Summary
6. Exit
`

// Options configures display and file defaults.
type Options struct {
	Currency    string // ISO code for amount formatting
	DefaultFile string // used when a filename prompt is left empty
	Logger      *log.Logger
}

type Shell struct {
	service *services.LedgerService
	in      *bufio.Scanner
	out     io.Writer
	opts    Options
	logger  *log.Logger
}

func New(service *services.LedgerService, in io.Reader, out io.Writer, opts Options) *Shell {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	return &Shell{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
		opts:    opts,
		logger:  logger.WithComponent(log.ComponentShell),
	}
}

// Run loops over the menu until Exit is chosen, input ends or ctx is done.
// Errors of individual operations are printed and the menu is shown again.
func (sh *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(sh.out, menu)
		option, ok := sh.prompt("Choose an option: ")
		if !ok {
			return sh.in.Err()
		}

		switch strings.TrimSpace(option) {
		case "1":
			sh.addRecord(ctx, core.Income)
		case "2":
			sh.addRecord(ctx, core.Expense)
		case "3":
			sh.load(ctx)
		case "4":
			sh.save(ctx)
		case "5":
			sh.summary(ctx)
		case "6":
			return nil
		default:
			sh.logger.DebugContext(ctx, "Invalid menu option", "option", option)
			fmt.Fprintln(sh.out, "Invalid option.")
		}
	}
}

func (sh *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(sh.out, label)
	if !sh.in.Scan() {
		return "", false
	}
	return strings.TrimSuffix(sh.in.Text(), "\r"), true
}

func (sh *Shell) addRecord(ctx context.Context, kind core.Kind) {
	raw, ok := sh.prompt("Enter amount: ")
	if !ok {
		return
	}
	amount, err := core.ParseUserAmount(raw)
	if err != nil {
		fmt.Fprintf(sh.out, "Invalid amount %q.\n", raw)
		return
	}

	category, ok := sh.prompt("Enter category (e.g., Salary/Business or Food/Rent/Travel): ")
	if !ok {
		return
	}
	if strings.Contains(category, core.FieldSeparator) {
		fmt.Fprintf(sh.out, "Warning: category contains %q and will not load back from a saved file.\n", core.FieldSeparator)
	}

	raw, ok = sh.prompt("Enter date (yyyy-MM-dd): ")
	if !ok {
		return
	}
	date, err := core.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintf(sh.out, "Invalid date %q.\n", raw)
		return
	}

	if _, err := sh.service.AddRecord(ctx, kind, amount, category, date); err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(sh.out, "Transaction added.")
}

func (sh *Shell) filename(label string) (string, bool) {
	hint := "data.csv"
	if sh.opts.DefaultFile != "" {
		hint = sh.opts.DefaultFile
	}
	name, ok := sh.prompt(fmt.Sprintf("Enter filename to %s (e.g., %s): ", label, hint))
	if !ok {
		return "", false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = sh.opts.DefaultFile
	}
	if name == "" {
		fmt.Fprintln(sh.out, "No filename given.")
		return "", false
	}
	return name, true
}

func (sh *Shell) load(ctx context.Context) {
	name, ok := sh.filename("load")
	if !ok {
		return
	}
	n, err := sh.service.LoadFile(ctx, name)
	if err != nil {
		fmt.Fprintf(sh.out, "Error loading %s: %v\n", name, err)
		if n > 0 {
			fmt.Fprintf(sh.out, "%d records were loaded before the error.\n", n)
		}
		return
	}
	fmt.Fprintf(sh.out, "Data loaded from %s\n", name)
}

func (sh *Shell) save(ctx context.Context) {
	name, ok := sh.filename("save")
	if !ok {
		return
	}
	if _, err := sh.service.SaveFile(ctx, name); err != nil {
		fmt.Fprintf(sh.out, "Error saving %s: %v\n", name, err)
		return
	}
	fmt.Fprintf(sh.out, "Data saved to %s\n", name)
}

func (sh *Shell) summary(ctx context.Context) {
	month, ok := sh.prompt("Enter year-month (e.g., 2025-05): ")
	if !ok {
		return
	}
	WriteSummary(sh.out, sh.service.Summary(ctx, month), sh.opts.Currency)
}

// WriteSummary prints a monthly summary with categories sorted by name.
func WriteSummary(w io.Writer, s core.MonthSummary, currency string) {
	fmt.Fprintf(w, "\n--- Monthly Summary for %s ---\n", s.Month)
	fmt.Fprintf(w, "Total Income: %s\n", core.FormatAmount(s.TotalIncome, currency))
	for _, c := range s.IncomeCategories() {
		fmt.Fprintf(w, "  %s: %s\n", c.Name, core.FormatAmount(c.Amount, currency))
	}
	fmt.Fprintf(w, "Total Expense: %s\n", core.FormatAmount(s.TotalExpense, currency))
	for _, c := range s.ExpenseCategories() {
		fmt.Fprintf(w, "  %s: %s\n", c.Name, core.FormatAmount(c.Amount, currency))
	}
	fmt.Fprintf(w, "Net Savings: %s\n", core.FormatAmount(s.NetSavings, currency))
}
