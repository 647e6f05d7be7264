// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ContractFlow API server.

ContractFlow keeps the records of government infrastructure contracts:
project registration, contractor awards, advance payments, bill payments
and contract adjustments, with a small reporting dashboard.

# Starting the Server

The server requires a database URL from the environment, a .env file, a
YAML config file or a flag:

	DATABASE_URL=file:contractflow.db go run .

Or with flags:

	go run . -p 5000 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - APP_ENV (-env): production switches to JSON logs
  - CORS_ORIGIN (-cors-origin): allowed origin (default: *)
  - CONFIG_FILE (-c): YAML config file

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (records, reports, health)
  - router: Route definitions using gorilla/mux
  - middleware: request IDs, CORS, logging, JSON helpers
  - metrics: Prometheus collectors
  - models: Entities and response types
  - currency: LKR amount parsing and display
  - validation: Entity forms and field rules
  - store: Repositories and typed storage errors
  - report: XLSX export
  - client: HTTP implementation of the repositories
  - forms: Validate, submit and message flow
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
