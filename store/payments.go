// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/danielhkuo/contractflow/models"
)

func NewAdvancePaymentRepository(db *sqlx.DB, logger *zap.Logger) Repository[models.AdvancePayment] {
	return &table[models.AdvancePayment]{
		db:     db,
		logger: logger,
		entity: EntityAdvancePayment,
		insert: `
			INSERT INTO advance_payments (
				project_id, date_of_payment, amount_paid,
				advance_bond_bank, advance_bond_amount, advance_bond_expiry
			) VALUES (
				:project_id, :date_of_payment, :amount_paid,
				:advance_bond_bank, :advance_bond_amount, :advance_bond_expiry
			) RETURNING id`,
		list: `
			SELECT id, project_id, date_of_payment, amount_paid,
			       advance_bond_bank, advance_bond_amount, advance_bond_expiry
			FROM advance_payments
			ORDER BY id`,
	}
}

// NewBillPaymentRepository stores net_payment exactly as given; it is the
// caller's submission-time snapshot.
func NewBillPaymentRepository(db *sqlx.DB, logger *zap.Logger) Repository[models.BillPayment] {
	return &table[models.BillPayment]{
		db:     db,
		logger: logger,
		entity: EntityBillPayment,
		insert: `
			INSERT INTO bill_payments (
				date_of_payment, bill_no, bill_amount, recovery_advance,
				recovery_liquidity_damages, recovery_others, recovery_retention, net_payment
			) VALUES (
				:date_of_payment, :bill_no, :bill_amount, :recovery_advance,
				:recovery_liquidity_damages, :recovery_others, :recovery_retention, :net_payment
			) RETURNING id`,
		list: `
			SELECT id, date_of_payment, bill_no, bill_amount, recovery_advance,
			       recovery_liquidity_damages, recovery_others, recovery_retention, net_payment
			FROM bill_payments
			ORDER BY id`,
	}
}

func NewAdjustmentRepository(db *sqlx.DB, logger *zap.Logger) Repository[models.Adjustment] {
	return &table[models.Adjustment]{
		db:     db,
		logger: logger,
		entity: EntityAdjustment,
		insert: `
			INSERT INTO adjustments (
				contract_extension_date, contract_extension_details,
				advance_bond_extension_date, advance_bond_extension_details,
				performance_bond_extension_date, performance_bond_extension_details,
				variation_date, variation_amount, variation_percentage, notes
			) VALUES (
				:contract_extension_date, :contract_extension_details,
				:advance_bond_extension_date, :advance_bond_extension_details,
				:performance_bond_extension_date, :performance_bond_extension_details,
				:variation_date, :variation_amount, :variation_percentage, :notes
			) RETURNING id`,
		list: `
			SELECT id, contract_extension_date, contract_extension_details,
			       advance_bond_extension_date, advance_bond_extension_details,
			       performance_bond_extension_date, performance_bond_extension_details,
			       variation_date, variation_amount, variation_percentage, notes
			FROM adjustments
			ORDER BY id`,
	}
}
