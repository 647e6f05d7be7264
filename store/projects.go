// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/danielhkuo/contractflow/models"
)

// NewProjectRepository returns the projects table gateway.
func NewProjectRepository(db *sqlx.DB, logger *zap.Logger) Repository[models.Project] {
	return &table[models.Project]{
		db:     db,
		logger: logger,
		entity: EntityProject,
		insert: `
			INSERT INTO projects (
				project_no, project_description, district, ds_division, fund_source,
				vote_details, total_cost_estimate, beneficiaries, output, outcome,
				feasibility_studies, relevant_pc, status
			) VALUES (
				:project_no, :project_description, :district, :ds_division, :fund_source,
				:vote_details, :total_cost_estimate, :beneficiaries, :output, :outcome,
				:feasibility_studies, :relevant_pc, :status
			) RETURNING id`,
		list: `
			SELECT id, project_no, project_description, district, ds_division, fund_source,
			       vote_details, total_cost_estimate, beneficiaries, output, outcome,
			       feasibility_studies, relevant_pc, status
			FROM projects
			ORDER BY id`,
	}
}
