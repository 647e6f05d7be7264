// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report exports the dashboard as an Excel workbook.

The workbook has three sheets:

  - Summary: project counts by status and total value
  - Projects: one row per project
  - Bill Payments: one row per bill with recoveries, net payment and
    Paid/Pending status

Amount cells are numeric with the #,##0.00 format. Data is read fresh on
every export.

	exp := report.NewExporter(reports, projects, bills, logger)
	if err := exp.Write(ctx, w); err != nil {
		// ...
	}
*/
package report
