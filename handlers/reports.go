// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/danielhkuo/contractflow/metrics"
	"github.com/danielhkuo/contractflow/middleware"
	"github.com/danielhkuo/contractflow/models"
	"github.com/danielhkuo/contractflow/report"
	"github.com/danielhkuo/contractflow/store"
)

// ReportSource is the read side of the dashboard.
type ReportSource interface {
	Summary(ctx context.Context) (models.Summary, error)
	RecentPayments(ctx context.Context, limit int) ([]models.RecentPayment, error)
}

type ReportHandler struct {
	reports  ReportSource
	exporter *report.Exporter
	logger   *zap.Logger
}

func NewReportHandler(db *sqlx.DB, logger *zap.Logger) *ReportHandler {
	reports := store.NewReportRepository(db, logger)
	exporter := report.NewExporter(reports,
		store.NewProjectRepository(db, logger),
		store.NewBillPaymentRepository(db, logger),
		logger,
	)
	return &ReportHandler{reports: reports, exporter: exporter, logger: logger}
}

// GetSummary handles GET /api/reports/summary
func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.Summary(r.Context())
	if err != nil {
		h.fail(w, r, "summary", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, summary)
}

// GetRecentPayments handles GET /api/reports/recent-payments
func (h *ReportHandler) GetRecentPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.reports.RecentPayments(r.Context(), store.RecentPaymentsLimit)
	if err != nil {
		h.fail(w, r, "recent payments", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, payments)
}

// Export handles GET /api/reports/export
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	f, err := h.exporter.Build(r.Context())
	if err != nil {
		h.fail(w, r, "export", err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+report.FileName(time.Now()))
	if err := f.Write(w); err != nil {
		// Headers are already sent; nothing left to tell the client.
		h.logger.Error("failed to stream report", zap.Error(err))
	}
}

func (h *ReportHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	metrics.RecordStoreError(store.EntityReport, err)
	h.logger.Error("report failed",
		zap.String("op", op),
		zap.String("request_id", middleware.RequestIDFrom(r.Context())),
		zap.Error(err),
	)
	middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStorage, "Failed to load "+op)
}
