// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open selects the driver by database type and pings the server:

	conn, err := db.Open(ctx, db.Postgres, "postgres://...")
	conn, err := db.Open(ctx, db.SQLite, "file:contractflow.db")

PostgreSQL uses lib/pq. SQLite uses modernc.org/sqlite with foreign keys
enabled and a single connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL serves both drivers; only key and timestamp types differ.

# Tables

  - projects: project registration, optional status
  - contractors: contractor awards, unique contract_no
  - advance_payments: one advance per project
  - bill_payments: bills, recoveries, net payment snapshot
  - adjustments: optional contract adjustments

# Relationships

	projects 1──* contractors
	projects 1──1 advance_payments

Foreign keys have no cascade; records are never deleted.
*/
package db
