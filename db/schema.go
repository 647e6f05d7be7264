// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	ddl := SchemaFor(db.DriverName())
	for _, stmt := range strings.Split(ddl, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// SchemaFor returns the DDL for the given driver.
func SchemaFor(driver string) string {
	if driver == Postgres {
		return postgresTypes.Replace(schema)
	}
	return sqliteTypes.Replace(schema)
}

var (
	postgresTypes = strings.NewReplacer(
		"{{id}}", "BIGSERIAL PRIMARY KEY",
		"{{fk}}", "BIGINT",
		"{{now}}", "NOW()",
	)
	sqliteTypes = strings.NewReplacer(
		"{{id}}", "INTEGER PRIMARY KEY AUTOINCREMENT",
		"{{fk}}", "INTEGER",
		"{{now}}", "CURRENT_TIMESTAMP",
	)
)

const schema = `
-- Projects
CREATE TABLE IF NOT EXISTS projects (
    id {{id}},
    project_no TEXT NOT NULL,
    project_description TEXT NOT NULL,
    district TEXT NOT NULL,
    ds_division TEXT NOT NULL,
    fund_source TEXT NOT NULL,
    vote_details TEXT NOT NULL,
    total_cost_estimate NUMERIC(15,2) NOT NULL CHECK (total_cost_estimate >= 0),
    beneficiaries INTEGER NOT NULL CHECK (beneficiaries >= 0),
    output TEXT NOT NULL,
    outcome TEXT NOT NULL,
    feasibility_studies TEXT NOT NULL,
    relevant_pc TEXT NOT NULL,
    status TEXT CHECK (status IN ('ongoing', 'completed')),
    created_at TIMESTAMP NOT NULL DEFAULT {{now}}
);

CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);

-- Contractor awards
CREATE TABLE IF NOT EXISTS contractors (
    id {{id}},
    project_id {{fk}} NOT NULL REFERENCES projects(id),
    date_awarded DATE NOT NULL,
    contractor_name TEXT NOT NULL,
    contract_no TEXT NOT NULL UNIQUE,
    contract_amount NUMERIC(15,2) NOT NULL CHECK (contract_amount >= 0),
    vat_details TEXT NOT NULL,
    contract_period TEXT NOT NULL,
    performance_bond_bank TEXT NOT NULL,
    performance_bond_amount NUMERIC(15,2) NOT NULL CHECK (performance_bond_amount >= 0),
    performance_bond_expiry DATE NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT {{now}}
);

CREATE INDEX IF NOT EXISTS idx_contractors_project_id ON contractors(project_id);

-- Advance payments (one per project)
CREATE TABLE IF NOT EXISTS advance_payments (
    id {{id}},
    project_id {{fk}} NOT NULL UNIQUE REFERENCES projects(id),
    date_of_payment DATE NOT NULL,
    amount_paid NUMERIC(15,2) NOT NULL CHECK (amount_paid >= 0),
    advance_bond_bank TEXT NOT NULL,
    advance_bond_amount NUMERIC(15,2) NOT NULL CHECK (advance_bond_amount >= 0),
    advance_bond_expiry DATE NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT {{now}}
);

-- Bill payments
CREATE TABLE IF NOT EXISTS bill_payments (
    id {{id}},
    date_of_payment DATE NOT NULL,
    bill_no TEXT NOT NULL,
    bill_amount NUMERIC(15,2) NOT NULL CHECK (bill_amount >= 0),
    recovery_advance NUMERIC(15,2) NOT NULL DEFAULT 0 CHECK (recovery_advance >= 0),
    recovery_liquidity_damages NUMERIC(15,2) NOT NULL DEFAULT 0 CHECK (recovery_liquidity_damages >= 0),
    recovery_others NUMERIC(15,2) NOT NULL DEFAULT 0 CHECK (recovery_others >= 0),
    recovery_retention NUMERIC(15,2) NOT NULL DEFAULT 0 CHECK (recovery_retention >= 0),
    net_payment NUMERIC(15,2) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT {{now}}
);

CREATE INDEX IF NOT EXISTS idx_bill_payments_date ON bill_payments(date_of_payment);

-- Contract adjustments
CREATE TABLE IF NOT EXISTS adjustments (
    id {{id}},
    contract_extension_date DATE,
    contract_extension_details TEXT,
    advance_bond_extension_date DATE,
    advance_bond_extension_details TEXT,
    performance_bond_extension_date DATE,
    performance_bond_extension_details TEXT,
    variation_date DATE,
    variation_amount NUMERIC(15,2) CHECK (variation_amount >= 0),
    variation_percentage NUMERIC(5,2) CHECK (variation_percentage >= 0 AND variation_percentage <= 100),
    notes TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT {{now}}
);
`
