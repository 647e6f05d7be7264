// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/danielhkuo/contractflow/cliparse"
	"github.com/danielhkuo/contractflow/handlers"
	"github.com/danielhkuo/contractflow/metrics"
	"github.com/danielhkuo/contractflow/middleware"
	"github.com/danielhkuo/contractflow/validation"
)

func NewRouter(db *sqlx.DB, cfg cliparse.Config, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(metrics.InstrumentHandler)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, logger)
	reportHandler := handlers.NewReportHandler(db, logger)

	// Health and metrics
	r.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	r.HandleFunc("/readyz", healthHandler.Ready).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Entity records
	api := r.PathPrefix("/api").Subrouter()
	records(api, "/projects", handlers.NewProjectHandler(db, logger), logger)
	records(api, "/contractors", handlers.NewContractorHandler(db, logger), logger)
	records(api, "/advance-payments", handlers.NewAdvancePaymentHandler(db, logger), logger)
	records(api, "/bill-payments", handlers.NewBillPaymentHandler(db, logger), logger)
	records(api, "/adjustments", handlers.NewAdjustmentHandler(db, logger), logger)

	// Reports
	api.HandleFunc("/reports/summary", middleware.WithLogging(logger, reportHandler.GetSummary)).Methods(http.MethodGet)
	api.HandleFunc("/reports/recent-payments", middleware.WithLogging(logger, reportHandler.GetRecentPayments)).Methods(http.MethodGet)
	api.HandleFunc("/reports/export", middleware.WithLogging(logger, reportHandler.Export)).Methods(http.MethodGet)

	// Root endpoint
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("contractflow API v1"))
	}).Methods(http.MethodGet)

	// CORS sits outside the router so preflight requests never hit a 405.
	var h http.Handler = r
	h = middleware.CORS(cfg.CORSOrigin)(h)
	h = middleware.Recover(logger)(h)
	h = middleware.RequestID(h)
	return h
}

func records[T any, F validation.Form[T]](r *mux.Router, path string, h *handlers.RecordHandler[T, F], logger *zap.Logger) {
	r.HandleFunc(path, middleware.WithLogging(logger, h.List)).Methods(http.MethodGet)
	r.HandleFunc(path, middleware.WithLogging(logger, h.Create)).Methods(http.MethodPost)
}
