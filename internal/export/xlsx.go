// Package export renders monthly summaries as Excel workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"bilancio/internal/core"
)

const sheetName = "Summary"

// SummaryXLSX returns an .xlsx workbook with the income and expense
// breakdowns of s, their totals and the net savings. Amounts are written
// as plain numbers; the currency code goes in the header.
func SummaryXLSX(s core.MonthSummary, currency string) ([]byte, error) {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "bilancio",
		DocSecurity: 2,
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := xlsx.SetSheetName(sheet, sheetName); err != nil {
		return nil, err
	}
	if err := writeSummary(xlsx, sheetName, s, currency); err != nil {
		return nil, err
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummary(xlsx *excelize.File, sheet string, s core.MonthSummary, currency string) error {
	_ = xlsx.SetColWidth(sheet, "A", "A", 30)
	_ = xlsx.SetColWidth(sheet, "B", "B", 16)

	bold, err := xlsx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	numFmt := "#,##0.00"
	amount, err := xlsx.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}
	boldAmount, err := xlsx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}

	indent, err := xlsx.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{Indent: 1}})
	if err != nil {
		return err
	}

	row := 1
	_ = xlsx.SetCellStr(sheet, cell('A', row), "Monthly summary")
	_ = xlsx.SetCellStr(sheet, cell('B', row), s.Month)
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('B', row), bold)
	row++
	_ = xlsx.SetCellStr(sheet, cell('A', row), "Currency")
	_ = xlsx.SetCellStr(sheet, cell('B', row), currency)
	row += 2

	section := func(title string, items []core.CategoryAmount, total string, totalValue float64) {
		_ = xlsx.SetCellStr(sheet, cell('A', row), title)
		_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('A', row), bold)
		row++
		for _, item := range items {
			_ = xlsx.SetCellStr(sheet, cell('A', row), item.Name)
			_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('A', row), indent)
			_ = xlsx.SetCellFloat(sheet, cell('B', row), item.Amount.InexactFloat64(), -1, 64)
			_ = xlsx.SetCellStyle(sheet, cell('B', row), cell('B', row), amount)
			row++
		}
		_ = xlsx.SetCellStr(sheet, cell('A', row), total)
		_ = xlsx.SetCellFloat(sheet, cell('B', row), totalValue, -1, 64)
		_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('B', row), boldAmount)
		row += 2
	}

	section("Income", s.IncomeCategories(), "Total income", s.TotalIncome.InexactFloat64())
	section("Expense", s.ExpenseCategories(), "Total expense", s.TotalExpense.InexactFloat64())

	_ = xlsx.SetCellStr(sheet, cell('A', row), "Net savings")
	_ = xlsx.SetCellFloat(sheet, cell('B', row), s.NetSavings.InexactFloat64(), -1, 64)
	_ = xlsx.SetCellStyle(sheet, cell('A', row), cell('B', row), boldAmount)

	return nil
}

func cell(col rune, row int) string {
	return fmt.Sprintf("%c%d", col, row)
}
