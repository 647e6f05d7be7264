// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ContractFlow API.

# Handler Types

Each handler is a struct with its repository and logger dependencies:

  - RecordHandler[T, F]: list and create for one entity
  - ReportHandler: dashboard summary, recent payments, XLSX export
  - HealthHandler: liveness and readiness

Handlers are created via constructor functions that accept *sqlx.DB and a
*zap.Logger:

	projects := handlers.NewProjectHandler(db, logger)
	contractors := handlers.NewContractorHandler(db, logger)

# Record Endpoints

Every entity exposes the same pair:

	GET  /api/{collection} → List (array, [] when empty)
	POST /api/{collection} → Create

Create decodes the entity form, validates it, converts it to the stored
record and inserts it. Projects answer {message, insertId}, contractors
{message, id}, everything else {id}.

# Error Mapping

	invalid JSON              → 400 invalid_json
	failed field rule         → 400 validation_error (with field)
	database CHECK / NOT NULL → 400 validation_error
	duplicate key             → 409 duplicate_entry
	unknown project_id        → 422 foreign_key_violation
	anything else             → 500 storage_error

Storage failure details are logged, never returned.

# Reports

	GET /api/reports/summary         → GetSummary
	GET /api/reports/recent-payments → GetRecentPayments (latest 5)
	GET /api/reports/export          → Export (XLSX download)

Reports are computed on every request.
*/
package handlers
