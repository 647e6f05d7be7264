// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/danielhkuo/contractflow/metrics"
	"github.com/danielhkuo/contractflow/middleware"
	"github.com/danielhkuo/contractflow/models"
	"github.com/danielhkuo/contractflow/store"
	"github.com/danielhkuo/contractflow/validation"
)

// RecordHandler serves the list and create endpoints of one entity.
// F is the form decoded from the request body.
type RecordHandler[T any, F validation.Form[T]] struct {
	repo    store.Repository[T]
	entity  string
	logger  *zap.Logger
	created func(id int64) any
}

func NewRecordHandler[T any, F validation.Form[T]](repo store.Repository[T], entity string, logger *zap.Logger, created func(id int64) any) *RecordHandler[T, F] {
	if created == nil {
		created = func(id int64) any { return models.CreatedResponse{ID: id} }
	}
	return &RecordHandler[T, F]{repo: repo, entity: entity, logger: logger, created: created}
}

func NewProjectHandler(db *sqlx.DB, logger *zap.Logger) *RecordHandler[models.Project, validation.ProjectForm] {
	return NewRecordHandler[models.Project, validation.ProjectForm](
		store.NewProjectRepository(db, logger), store.EntityProject, logger,
		func(id int64) any {
			return models.CreateProjectResponse{Message: "Project created successfully", InsertID: id}
		},
	)
}

func NewContractorHandler(db *sqlx.DB, logger *zap.Logger) *RecordHandler[models.Contractor, validation.ContractorForm] {
	return NewRecordHandler[models.Contractor, validation.ContractorForm](
		store.NewContractorRepository(db, logger), store.EntityContractor, logger,
		func(id int64) any {
			return models.CreateContractorResponse{Message: "Contractor contract added", ID: id}
		},
	)
}

func NewAdvancePaymentHandler(db *sqlx.DB, logger *zap.Logger) *RecordHandler[models.AdvancePayment, validation.AdvancePaymentForm] {
	return NewRecordHandler[models.AdvancePayment, validation.AdvancePaymentForm](
		store.NewAdvancePaymentRepository(db, logger), store.EntityAdvancePayment, logger, nil)
}

func NewBillPaymentHandler(db *sqlx.DB, logger *zap.Logger) *RecordHandler[models.BillPayment, validation.BillPaymentForm] {
	return NewRecordHandler[models.BillPayment, validation.BillPaymentForm](
		store.NewBillPaymentRepository(db, logger), store.EntityBillPayment, logger, nil)
}

func NewAdjustmentHandler(db *sqlx.DB, logger *zap.Logger) *RecordHandler[models.Adjustment, validation.AdjustmentForm] {
	return NewRecordHandler[models.Adjustment, validation.AdjustmentForm](
		store.NewAdjustmentRepository(db, logger), store.EntityAdjustment, logger, nil)
}

// List handles GET on the collection
func (h *RecordHandler[T, F]) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.ListAll(r.Context())
	if err != nil {
		h.storeError(w, r, "list", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, rows)
}

// Create handles POST on the collection
func (h *RecordHandler[T, F]) Create(w http.ResponseWriter, r *http.Request) {
	var form F
	if err := middleware.ParseJSONBody(r, &form); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidJSON, "Invalid JSON")
		return
	}

	if err := validation.Validate(form); err != nil {
		var fe *validation.FieldError
		if errors.As(err, &fe) {
			middleware.FieldErrorResponse(w, fe.Field, fe.Message)
			return
		}
		h.logger.Error("validation failed", zap.String("entity", h.entity), zap.Error(err))
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStorage, "Failed to validate request")
		return
	}

	rec := form.Record()
	id, err := h.repo.Create(r.Context(), &rec)
	if err != nil {
		h.storeError(w, r, "create", err)
		return
	}

	metrics.RecordCreated(h.entity)
	middleware.JSONResponse(w, http.StatusCreated, h.created(id))
}

func (h *RecordHandler[T, F]) storeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	metrics.RecordStoreError(h.entity, err)
	status, code, message := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("entity", h.entity),
			zap.String("op", op),
			zap.String("request_id", middleware.RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		message = "Failed to " + op + " " + entityLabels[h.entity]
	}
	middleware.ErrorResponse(w, status, code, message)
}

var entityLabels = map[string]string{
	store.EntityProject:        "projects",
	store.EntityContractor:     "contractors",
	store.EntityAdvancePayment: "advance payments",
	store.EntityBillPayment:    "bill payments",
	store.EntityAdjustment:     "adjustments",
	store.EntityReport:         "report",
}

// errorStatus maps a repository error kind to its HTTP status, error code
// and client message.
func errorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, store.ErrForeignKey):
		return http.StatusUnprocessableEntity, models.CodeForeignKey, "Referenced project does not exist"
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict, models.CodeDuplicate, "Record already exists"
	case errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest, models.CodeValidation, "Record violates a data constraint"
	default:
		return http.StatusInternalServerError, models.CodeStorage, "Database error"
	}
}
