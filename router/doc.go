// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ContractFlow API.

# Route Registration

NewRouter builds a gorilla/mux router with all endpoints and wraps it in the
request ID, panic recovery and CORS middleware:

	handler := router.NewRouter(db, cfg, logger)

# Endpoints

Health and metrics:

	GET /health   - Liveness
	GET /readyz   - Database ping
	GET /metrics  - Prometheus exposition

Records (one list/create pair per entity):

	GET|POST /api/projects
	GET|POST /api/contractors
	GET|POST /api/advance-payments
	GET|POST /api/bill-payments
	GET|POST /api/adjustments

Reports:

	GET /api/reports/summary         - Project counts and total value
	GET /api/reports/recent-payments - Latest five bill payments
	GET /api/reports/export          - XLSX workbook

Unsupported methods on a known path answer 405.

# Middleware Order

	RequestID → Recover → CORS → mux (metrics) → WithLogging → handler

Request metrics are labelled by route template.
*/
package router
