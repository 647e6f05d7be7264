// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/danielhkuo/contractflow/models"
)

// RecentPaymentsLimit is the number of payments on the dashboard.
const RecentPaymentsLimit = 5

// ReportRepository computes the read-only aggregates. Nothing is cached.
type ReportRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewReportRepository(db *sqlx.DB, logger *zap.Logger) *ReportRepository {
	return &ReportRepository{db: db, logger: logger}
}

// Summary counts projects by status and sums their cost estimates.
func (r *ReportRepository) Summary(ctx context.Context) (models.Summary, error) {
	var s models.Summary
	err := r.db.GetContext(ctx, &s, r.db.Rebind(`
		SELECT
			COUNT(*) AS total_projects,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS ongoing_projects,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS completed_projects,
			COALESCE(SUM(total_cost_estimate), 0) AS total_value
		FROM projects
	`), models.StatusOngoing, models.StatusCompleted)
	if err != nil {
		return models.Summary{}, r.fail("summary", err)
	}
	return s, nil
}

// RecentPayments returns up to limit bill payments, newest payment date
// first. Status is Paid when net_payment > 0, otherwise Pending.
func (r *ReportRepository) RecentPayments(ctx context.Context, limit int) ([]models.RecentPayment, error) {
	out := make([]models.RecentPayment, 0, limit)
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
		SELECT
			date_of_payment AS date,
			bill_no,
			bill_amount AS amount,
			CASE WHEN net_payment > 0 THEN ? ELSE ? END AS status
		FROM bill_payments
		ORDER BY date_of_payment DESC, id DESC
		LIMIT ?
	`), models.PaymentPaid, models.PaymentPending, limit)
	if err != nil {
		return nil, r.fail("recent payments", err)
	}
	return out, nil
}

func (r *ReportRepository) fail(op string, err error) error {
	classified := classify(EntityReport, err)
	r.logger.Warn("report query failed", zap.String("op", op), zap.Error(err))
	return classified
}
