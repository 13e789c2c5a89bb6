package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/alecthomas/kingpin"

	"bilancio/internal/cli"
	"bilancio/internal/config"
	"bilancio/internal/core"
	"bilancio/internal/log"
	"bilancio/internal/services"
	"bilancio/internal/shell"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	cli.LoadEnvFile()

	app := kingpin.New("bilancio", "Personal income and expense ledger.")
	app.Writer(stdout)
	file := app.Flag("file", "Ledger file (defaults to LEDGER_FILE).").Short('f').String()

	cmdShell := app.Command("shell", "Run the interactive menu.").Default()
	shellLoad := cmdShell.Flag("load", "Load the ledger file before showing the menu.").Bool()

	cmdAdd := app.Command("add", "Append a record to the ledger file.")
	addKind := cmdAdd.Arg("kind", "income or expense").Required().Enum("income", "expense")
	addAmount := cmdAdd.Arg("amount", "Decimal amount, e.g. 450.50").Required().String()
	addCategory := cmdAdd.Arg("category", "Category label").Required().String()
	addDate := cmdAdd.Arg("date", "Date as YYYY-MM-DD (defaults to today)").String()

	cmdSummary := app.Command("summary", "Show the monthly summary.")
	summaryMonth := cmdSummary.Arg("month", "Year-month as YYYY-MM").Required().String()

	cmdList := app.Command("list", "Print the records, optionally for one month.")
	listMonth := cmdList.Arg("month", "Year-month as YYYY-MM").String()

	cmdExport := app.Command("export", "Export the monthly summary to an .xlsx workbook.")
	exportMonth := cmdExport.Arg("month", "Year-month as YYYY-MM").Required().String()
	exportOutput := cmdExport.Flag("output", "Workbook path (defaults to summary-<month>.xlsx).").Short('o').String()

	cmd, err := app.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bilancio: %v\n", err)
		return 2
	}

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bilancio: %v\n", err)
		return 1
	}
	if *file != "" {
		cfg.LedgerFile = *file
	}

	logger := cli.SetupLogger(cfg, os.Stderr)
	ctx, cancel := cli.SignalContext(logger)
	defer cancel()

	service := cli.NewLedgerService(ctx, cfg, logger)
	defer func() {
		if err := service.Close(); err != nil {
			logger.Error("Failed to close ledger service", log.FieldError, err)
		}
	}()

	switch cmd {
	case cmdShell.FullCommand():
		err = runShell(ctx, service, cfg, logger, *shellLoad, stdin, stdout)
	case cmdAdd.FullCommand():
		err = runAdd(ctx, service, cfg, *addKind, *addAmount, *addCategory, *addDate, stdout)
	case cmdSummary.FullCommand():
		if err = loadExisting(ctx, service, cfg.LedgerFile); err == nil {
			shell.WriteSummary(stdout, service.Summary(ctx, *summaryMonth), cfg.Currency)
		}
	case cmdList.FullCommand():
		if err = loadExisting(ctx, service, cfg.LedgerFile); err == nil {
			for r := range service.Ledger().All() {
				if *listMonth == "" || r.Date().YearMonth() == *listMonth {
					fmt.Fprintln(stdout, core.EncodeRecord(r))
				}
			}
		}
	case cmdExport.FullCommand():
		err = runExport(ctx, service, cfg, *exportMonth, *exportOutput, stdout)
	}

	if err != nil {
		logger.Error("Command failed", log.FieldOperation, cmd, log.FieldError, err)
		fmt.Fprintf(os.Stderr, "bilancio: %v\n", err)
		return 1
	}
	return 0
}

func runShell(ctx context.Context, service *services.LedgerService, cfg *config.Config, logger *log.Logger, load bool, stdin io.Reader, stdout io.Writer) error {
	if load {
		if err := loadExisting(ctx, service, cfg.LedgerFile); err != nil {
			return err
		}
	}
	sh := shell.New(service, stdin, stdout, shell.Options{
		Currency:    cfg.Currency,
		DefaultFile: cfg.LedgerFile,
		Logger:      logger,
	})
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runAdd(ctx context.Context, service *services.LedgerService, cfg *config.Config, kind, amount, category, date string, stdout io.Writer) error {
	k, err := core.ParseKind(strings.ToUpper(kind))
	if err != nil {
		return err
	}
	value, err := core.ParseUserAmount(amount)
	if err != nil {
		return fmt.Errorf("amount %q: %w", amount, err)
	}
	day := core.Today()
	if date != "" {
		if day, err = core.ParseDate(date); err != nil {
			return fmt.Errorf("date %q: %w", date, err)
		}
	}

	// A malformed existing file aborts before anything is rewritten.
	if err := loadExisting(ctx, service, cfg.LedgerFile); err != nil {
		return err
	}
	r, err := service.AddRecord(ctx, k, value, category, day)
	if err != nil {
		return err
	}
	if err := cfg.EnsureLedgerDir(); err != nil {
		return err
	}
	if _, err := service.SaveFile(ctx, cfg.LedgerFile); err != nil {
		return err
	}
	fmt.Fprintln(stdout, core.EncodeRecord(r))
	return nil
}

func runExport(ctx context.Context, service *services.LedgerService, cfg *config.Config, month, output string, stdout io.Writer) error {
	if err := loadExisting(ctx, service, cfg.LedgerFile); err != nil {
		return err
	}
	if output == "" {
		output = "summary-" + month + ".xlsx"
	}
	if err := service.ExportSummary(ctx, month, cfg.Currency, output); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Summary for %s exported to %s\n", month, output)
	return nil
}

// loadExisting loads path, treating a missing file as an empty ledger.
func loadExisting(ctx context.Context, service *services.LedgerService, path string) error {
	if _, err := service.LoadFile(ctx, path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
