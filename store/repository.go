// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Repository is the create/list contract every entity satisfies.
type Repository[T any] interface {
	Create(ctx context.Context, rec *T) (int64, error)
	ListAll(ctx context.Context) ([]T, error)
}

// Entity names used in errors, logs and metrics
const (
	EntityProject        = "project"
	EntityContractor     = "contractor"
	EntityAdvancePayment = "advance_payment"
	EntityBillPayment    = "bill_payment"
	EntityAdjustment     = "adjustment"
	EntityReport         = "report"
)

// table binds one entity type to its insert and select statements.
// Statements use sqlx named parameters and "?" placeholders and are rebound
// for the connected driver.
type table[T any] struct {
	db     *sqlx.DB
	logger *zap.Logger
	entity string
	insert string
	list   string
}

// Create inserts rec and returns the generated id. rec.ID is not read.
func (t *table[T]) Create(ctx context.Context, rec *T) (int64, error) {
	rows, err := t.db.NamedQueryContext(ctx, t.insert, rec)
	if err != nil {
		return 0, t.fail("insert", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, t.fail("insert", err)
		}
		return 0, t.fail("insert", errors.New("insert returned no id"))
	}

	var id int64
	if err := rows.Scan(&id); err != nil {
		return 0, t.fail("scan id", err)
	}
	if err := rows.Close(); err != nil {
		return 0, t.fail("insert", err)
	}

	t.logger.Info("record created", zap.String("entity", t.entity), zap.Int64("id", id))
	return id, nil
}

// ListAll returns every row in insertion order. Never nil.
func (t *table[T]) ListAll(ctx context.Context) ([]T, error) {
	out := make([]T, 0)
	if err := t.db.SelectContext(ctx, &out, t.db.Rebind(t.list)); err != nil {
		return nil, t.fail("list", err)
	}
	return out, nil
}

func (t *table[T]) fail(op string, err error) error {
	classified := classify(t.entity, err)
	t.logger.Warn("repository operation failed",
		zap.String("entity", t.entity),
		zap.String("op", op),
		zap.NamedError("kind", KindOf(classified)),
		zap.Error(err),
	)
	return classified
}
