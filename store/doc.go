// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence gateway: one Repository per entity plus the
read-only report queries.

# Repositories

Every entity satisfies the same contract:

	type Repository[T any] interface {
		Create(ctx context.Context, rec *T) (int64, error)
		ListAll(ctx context.Context) ([]T, error)
	}

Create returns the generated id. ListAll returns rows in insertion order and
never returns a nil slice.

	projects := store.NewProjectRepository(conn, logger)
	id, err := projects.Create(ctx, &models.Project{...})

# Errors

Failures are returned as *store.Error carrying a kind:

  - ErrForeignKey: referenced project does not exist
  - ErrDuplicate: unique constraint (contract_no, one advance per project)
  - ErrValidation: NOT NULL or CHECK constraint
  - ErrStorage: anything else, including connection failures

Match kinds with errors.Is:

	if errors.Is(err, store.ErrForeignKey) {
		// 422
	}

# Reports

ReportRepository.Summary counts projects by status and sums estimates.
ReportRepository.RecentPayments lists the latest bill payments with a
derived Paid/Pending status. Both are computed on every call.
*/
package store
