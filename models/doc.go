// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, report and response types for the API.

# Entities

One row-shaped type per table, each with a generated ID:

  - Project: registration details, cost estimate, optional status
  - Contractor: award details for a project (project_id → Project)
  - AdvancePayment: advance and advance bond for a project
  - BillPayment: bill, recoveries and the net payment snapshot
  - Adjustment: optional extensions, variation and notes

Monetary fields are currency.Amount, dates are Date (YYYY-MM-DD on the wire
and in storage). Optional columns are pointers and encode as null.

# Reports

  - Summary: project counts by status and total estimated value
  - RecentPayment: date, bill_no, amount, Paid/Pending status

# Responses

  - CreateProjectResponse: message, insertId
  - CreateContractorResponse: message, id
  - CreatedResponse: id
  - ErrorResponse: error, message, code, field

# Constants

Project status:

	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"

Error codes:

	CodeInvalidJSON = "invalid_json"
	CodeValidation  = "validation_error"
	CodeForeignKey  = "foreign_key_violation"
	CodeDuplicate   = "duplicate_entry"
	CodeStorage     = "storage_error"
*/
package models
