// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/danielhkuo/contractflow/currency"
	"github.com/danielhkuo/contractflow/models"
	"github.com/danielhkuo/contractflow/store"
)

// Sheet names in the exported workbook
const (
	SheetSummary      = "Summary"
	SheetProjects     = "Projects"
	SheetBillPayments = "Bill Payments"
)

// ContentType is the MIME type of the exported workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const amountFormat = "#,##0.00"

// SummarySource provides the dashboard aggregate.
type SummarySource interface {
	Summary(ctx context.Context) (models.Summary, error)
}

// Exporter renders the dashboard and registers as an XLSX workbook.
type Exporter struct {
	reports  SummarySource
	projects store.Repository[models.Project]
	bills    store.Repository[models.BillPayment]
	logger   *zap.Logger
}

func NewExporter(reports SummarySource, projects store.Repository[models.Project], bills store.Repository[models.BillPayment], logger *zap.Logger) *Exporter {
	return &Exporter{reports: reports, projects: projects, bills: bills, logger: logger}
}

// FileName returns the download name for an export taken at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("contractflow_report_%s.xlsx", t.Format("20060102_150405"))
}

// Build queries the current data and returns the workbook. The caller must
// Close it.
func (e *Exporter) Build(ctx context.Context) (*excelize.File, error) {
	summary, err := e.reports.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load summary: %w", err)
	}
	projects, err := e.projects.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	bills, err := e.bills.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bill payments: %w", err)
	}

	f := excelize.NewFile()
	w := &workbook{f: f}
	w.init()
	w.summary(summary)
	w.projects(projects)
	w.bills(bills)
	if w.err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to build workbook: %w", w.err)
	}

	e.logger.Info("report exported",
		zap.Int("projects", len(projects)),
		zap.Int("bill_payments", len(bills)),
	)
	return f, nil
}

// Write builds the workbook and writes it to out.
func (e *Exporter) Write(ctx context.Context, out io.Writer) error {
	f, err := e.Build(ctx)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// workbook keeps the first error so sheet writers read straight through.
type workbook struct {
	f      *excelize.File
	header int
	amount int
	err    error
}

func (w *workbook) init() {
	if w.err = w.f.SetSheetName("Sheet1", SheetSummary); w.err != nil {
		return
	}
	for _, name := range []string{SheetProjects, SheetBillPayments} {
		if _, w.err = w.f.NewSheet(name); w.err != nil {
			return
		}
	}
	w.header, w.err = w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if w.err != nil {
		return
	}
	numFmt := amountFormat
	w.amount, w.err = w.f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
}

func (w *workbook) row(sheet string, row int, values ...interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

func (w *workbook) headers(sheet string, names ...interface{}) {
	w.row(sheet, 1, names...)
	if w.err != nil {
		return
	}
	last, err := excelize.CoordinatesToCellName(len(names), 1)
	if err != nil {
		w.err = err
		return
	}
	if w.err = w.f.SetCellStyle(sheet, "A1", last, w.header); w.err != nil {
		return
	}
	lastCol, _ := excelize.ColumnNumberToName(len(names))
	w.err = w.f.SetColWidth(sheet, "A", lastCol, 18)
}

// amountColumn applies the currency number format to rows 2..lastRow.
func (w *workbook) amountColumn(sheet, col string, lastRow int) {
	if w.err != nil || lastRow < 2 {
		return
	}
	w.err = w.f.SetCellStyle(sheet, col+"2", fmt.Sprintf("%s%d", col, lastRow), w.amount)
}

func (w *workbook) summary(s models.Summary) {
	w.headers(SheetSummary, "Metric", "Value")
	w.row(SheetSummary, 2, "Total Projects", s.TotalProjects)
	w.row(SheetSummary, 3, "Ongoing Projects", s.OngoingProjects)
	w.row(SheetSummary, 4, "Completed Projects", s.CompletedProjects)
	w.row(SheetSummary, 5, "Total Value", number(s.TotalValue))
	if w.err == nil {
		w.err = w.f.SetCellStyle(SheetSummary, "B5", "B5", w.amount)
	}
}

func (w *workbook) projects(rows []models.Project) {
	w.headers(SheetProjects, "ID", "Project No", "Description", "District", "DS Division",
		"Fund Source", "Total Cost Estimate", "Beneficiaries", "Status")
	for i, p := range rows {
		status := ""
		if p.Status != nil {
			status = *p.Status
		}
		w.row(SheetProjects, i+2, p.ID, p.ProjectNo, p.ProjectDescription, p.District, p.DSDivision,
			p.FundSource, number(p.TotalCostEstimate), p.Beneficiaries, status)
	}
	w.amountColumn(SheetProjects, "G", len(rows)+1)
}

func (w *workbook) bills(rows []models.BillPayment) {
	w.headers(SheetBillPayments, "ID", "Date", "Bill No", "Bill Amount", "Recoveries", "Net Payment", "Status")
	for i, b := range rows {
		status := models.PaymentPending
		if b.NetPayment.IsPositive() {
			status = models.PaymentPaid
		}
		w.row(SheetBillPayments, i+2, b.ID, b.DateOfPayment.String(), b.BillNo,
			number(b.BillAmount), number(b.Recoveries()), number(b.NetPayment), status)
	}
	for _, col := range []string{"D", "E", "F"} {
		w.amountColumn(SheetBillPayments, col, len(rows)+1)
	}
}

// number converts an amount for a numeric cell; display precision comes
// from the cell format.
func number(a currency.Amount) float64 {
	return a.Round(2).InexactFloat64()
}
