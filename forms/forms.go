// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package forms

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/danielhkuo/contractflow/currency"
	"github.com/danielhkuo/contractflow/models"
	"github.com/danielhkuo/contractflow/store"
	"github.com/danielhkuo/contractflow/validation"
)

// Result is what the user sees after a submission attempt. Field is set when
// a single field blocked the submission.
type Result struct {
	OK      bool
	ID      int64
	Field   string
	Message string
}

// Messages are the user-facing outcomes of one form.
type Messages struct {
	Success    string
	ForeignKey string
	Duplicate  string
	Failure    string
}

var (
	ProjectMessages = Messages{
		Success:    "Project details saved successfully!",
		ForeignKey: "Failed to save project details",
		Duplicate:  "A project with these details already exists",
		Failure:    "Failed to save project details",
	}
	ContractorMessages = Messages{
		Success:    "Contractor contract saved successfully!",
		ForeignKey: "Invalid project selected",
		Duplicate:  "A contract with this number already exists",
		Failure:    "Failed to save contract",
	}
	AdvancePaymentMessages = Messages{
		Success:    "Advance payment details saved successfully!",
		ForeignKey: "Invalid project selected",
		Duplicate:  "An advance payment already exists for this project",
		Failure:    "Failed to save advance payment details",
	}
	BillPaymentMessages = Messages{
		Success:    "Bill payment details saved successfully!",
		ForeignKey: "Failed to save bill payment details",
		Duplicate:  "This bill has already been recorded",
		Failure:    "Failed to save bill payment details",
	}
	AdjustmentMessages = Messages{
		Success:    "Adjustment details saved successfully!",
		ForeignKey: "Failed to save adjustment details",
		Duplicate:  "These adjustment details already exist",
		Failure:    "Failed to save adjustment details",
	}
)

// Submitter gates a form through validation and hands the normalized record
// to its repository. The repository may be local (store) or remote (client).
type Submitter[T any, F validation.Form[T]] struct {
	repo     store.Repository[T]
	messages Messages
	logger   *zap.Logger
}

func NewSubmitter[T any, F validation.Form[T]](repo store.Repository[T], messages Messages, logger *zap.Logger) *Submitter[T, F] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter[T, F]{repo: repo, messages: messages, logger: logger}
}

func NewProjectSubmitter(repo store.Repository[models.Project], logger *zap.Logger) *Submitter[models.Project, validation.ProjectForm] {
	return NewSubmitter[models.Project, validation.ProjectForm](repo, ProjectMessages, logger)
}

func NewContractorSubmitter(repo store.Repository[models.Contractor], logger *zap.Logger) *Submitter[models.Contractor, validation.ContractorForm] {
	return NewSubmitter[models.Contractor, validation.ContractorForm](repo, ContractorMessages, logger)
}

func NewAdvancePaymentSubmitter(repo store.Repository[models.AdvancePayment], logger *zap.Logger) *Submitter[models.AdvancePayment, validation.AdvancePaymentForm] {
	return NewSubmitter[models.AdvancePayment, validation.AdvancePaymentForm](repo, AdvancePaymentMessages, logger)
}

func NewBillPaymentSubmitter(repo store.Repository[models.BillPayment], logger *zap.Logger) *Submitter[models.BillPayment, validation.BillPaymentForm] {
	return NewSubmitter[models.BillPayment, validation.BillPaymentForm](repo, BillPaymentMessages, logger)
}

func NewAdjustmentSubmitter(repo store.Repository[models.Adjustment], logger *zap.Logger) *Submitter[models.Adjustment, validation.AdjustmentForm] {
	return NewSubmitter[models.Adjustment, validation.AdjustmentForm](repo, AdjustmentMessages, logger)
}

// Submit validates form and, only if it passes, stores it. Every failure is
// terminal for this attempt; nothing is retried.
func (s *Submitter[T, F]) Submit(ctx context.Context, form F) Result {
	if err := validation.Validate(form); err != nil {
		var fe *validation.FieldError
		if errors.As(err, &fe) {
			return Result{Field: fe.Field, Message: fe.Message}
		}
		s.logger.Error("form validation failed", zap.Error(err))
		return Result{Message: s.messages.Failure}
	}

	rec := form.Record()
	id, err := s.repo.Create(ctx, &rec)
	if err != nil {
		return s.failure(err)
	}
	return Result{OK: true, ID: id, Message: s.messages.Success}
}

func (s *Submitter[T, F]) failure(err error) Result {
	s.logger.Warn("submission failed", zap.Error(err))

	switch {
	case errors.Is(err, store.ErrForeignKey):
		return Result{Message: s.messages.ForeignKey}
	case errors.Is(err, store.ErrDuplicate):
		return Result{Message: s.messages.Duplicate}
	case errors.Is(err, store.ErrValidation):
		res := Result{Message: s.messages.Failure}
		var se *store.Error
		if errors.As(err, &se) {
			res.Field = se.Field
		}
		return res
	default:
		return Result{Message: s.messages.Failure}
	}
}

// NetPayment is the live preview shown while a bill payment is being
// entered: bill amount less recoveries, with unparseable fields as 0.
func NetPayment(form validation.BillPaymentForm) currency.Amount {
	return form.Record().ComputeNetPayment()
}

// Display reformats raw user input for an amount field, e.g.
// "1500000.5" becomes "1,500,000.50". Unparseable input displays as "".
func Display(input string) string {
	return currency.Format(currency.Parse(input))
}
