// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/danielhkuo/contractflow/models"
)

// NewContractorRepository returns the contractor awards gateway. Create does
// not check or lock the referenced project; the foreign key does.
func NewContractorRepository(db *sqlx.DB, logger *zap.Logger) Repository[models.Contractor] {
	return &table[models.Contractor]{
		db:     db,
		logger: logger,
		entity: EntityContractor,
		insert: `
			INSERT INTO contractors (
				project_id, date_awarded, contractor_name, contract_no, contract_amount,
				vat_details, contract_period, performance_bond_bank,
				performance_bond_amount, performance_bond_expiry
			) VALUES (
				:project_id, :date_awarded, :contractor_name, :contract_no, :contract_amount,
				:vat_details, :contract_period, :performance_bond_bank,
				:performance_bond_amount, :performance_bond_expiry
			) RETURNING id`,
		list: `
			SELECT id, project_id, date_awarded, contractor_name, contract_no, contract_amount,
			       vat_details, contract_period, performance_bond_bank,
			       performance_bond_amount, performance_bond_expiry
			FROM contractors
			ORDER BY id`,
	}
}
