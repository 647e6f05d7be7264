package models

import (
	"github.com/shopspring/decimal"

	"github.com/danielhkuo/contractflow/currency"
)

// Project status values
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Payment status shown on the recent payments report
const (
	PaymentPaid    = "Paid"
	PaymentPending = "Pending"
)

// Entity types

type Project struct {
	ID                 int64           `json:"id" db:"id"`
	ProjectNo          string          `json:"project_no" db:"project_no"`
	ProjectDescription string          `json:"project_description" db:"project_description"`
	District           string          `json:"district" db:"district"`
	DSDivision         string          `json:"ds_division" db:"ds_division"`
	FundSource         string          `json:"fund_source" db:"fund_source"`
	VoteDetails        string          `json:"vote_details" db:"vote_details"`
	TotalCostEstimate  currency.Amount `json:"total_cost_estimate" db:"total_cost_estimate"`
	Beneficiaries      int64           `json:"beneficiaries" db:"beneficiaries"`
	Output             string          `json:"output" db:"output"`
	Outcome            string          `json:"outcome" db:"outcome"`
	FeasibilityStudies string          `json:"feasibility_studies" db:"feasibility_studies"`
	RelevantPC         string          `json:"relevant_pc" db:"relevant_pc"`
	Status             *string         `json:"status" db:"status"`
}

type Contractor struct {
	ID                    int64           `json:"id" db:"id"`
	ProjectID             int64           `json:"project_id" db:"project_id"`
	DateAwarded           Date            `json:"date_awarded" db:"date_awarded"`
	ContractorName        string          `json:"contractor_name" db:"contractor_name"`
	ContractNo            string          `json:"contract_no" db:"contract_no"`
	ContractAmount        currency.Amount `json:"contract_amount" db:"contract_amount"`
	VATDetails            string          `json:"vat_details" db:"vat_details"`
	ContractPeriod        string          `json:"contract_period" db:"contract_period"`
	PerformanceBondBank   string          `json:"performance_bond_bank" db:"performance_bond_bank"`
	PerformanceBondAmount currency.Amount `json:"performance_bond_amount" db:"performance_bond_amount"`
	PerformanceBondExpiry Date            `json:"performance_bond_expiry" db:"performance_bond_expiry"`
}

type AdvancePayment struct {
	ID                int64           `json:"id" db:"id"`
	ProjectID         int64           `json:"project_id" db:"project_id"`
	DateOfPayment     Date            `json:"date_of_payment" db:"date_of_payment"`
	AmountPaid        currency.Amount `json:"amount_paid" db:"amount_paid"`
	AdvanceBondBank   string          `json:"advance_bond_bank" db:"advance_bond_bank"`
	AdvanceBondAmount currency.Amount `json:"advance_bond_amount" db:"advance_bond_amount"`
	AdvanceBondExpiry Date            `json:"advance_bond_expiry" db:"advance_bond_expiry"`
}

// BillPayment.NetPayment is a snapshot taken at submission time and is never
// recomputed from the recoveries on read.
type BillPayment struct {
	ID                       int64           `json:"id" db:"id"`
	DateOfPayment            Date            `json:"date_of_payment" db:"date_of_payment"`
	BillNo                   string          `json:"bill_no" db:"bill_no"`
	BillAmount               currency.Amount `json:"bill_amount" db:"bill_amount"`
	RecoveryAdvance          currency.Amount `json:"recovery_advance" db:"recovery_advance"`
	RecoveryLiquidityDamages currency.Amount `json:"recovery_liquidity_damages" db:"recovery_liquidity_damages"`
	RecoveryOthers           currency.Amount `json:"recovery_others" db:"recovery_others"`
	RecoveryRetention        currency.Amount `json:"recovery_retention" db:"recovery_retention"`
	NetPayment               currency.Amount `json:"net_payment" db:"net_payment"`
}

// Recoveries returns the sum of all recovery deductions.
func (b BillPayment) Recoveries() currency.Amount {
	sum := b.RecoveryAdvance.Add(b.RecoveryLiquidityDamages.Decimal).
		Add(b.RecoveryOthers.Decimal).
		Add(b.RecoveryRetention.Decimal)
	return currency.NewAmount(sum)
}

// ComputeNetPayment returns bill amount minus recoveries.
func (b BillPayment) ComputeNetPayment() currency.Amount {
	return currency.NewAmount(b.BillAmount.Sub(b.Recoveries().Decimal))
}

type Adjustment struct {
	ID                              int64            `json:"id" db:"id"`
	ContractExtensionDate           *Date            `json:"contract_extension_date" db:"contract_extension_date"`
	ContractExtensionDetails        *string          `json:"contract_extension_details" db:"contract_extension_details"`
	AdvanceBondExtensionDate        *Date            `json:"advance_bond_extension_date" db:"advance_bond_extension_date"`
	AdvanceBondExtensionDetails     *string          `json:"advance_bond_extension_details" db:"advance_bond_extension_details"`
	PerformanceBondExtensionDate    *Date            `json:"performance_bond_extension_date" db:"performance_bond_extension_date"`
	PerformanceBondExtensionDetails *string          `json:"performance_bond_extension_details" db:"performance_bond_extension_details"`
	VariationDate                   *Date            `json:"variation_date" db:"variation_date"`
	VariationAmount                 *currency.Amount `json:"variation_amount" db:"variation_amount"`
	VariationPercentage             *decimal.Decimal `json:"variation_percentage" db:"variation_percentage"`
	Notes                           *string          `json:"notes" db:"notes"`
}

// Report types

type Summary struct {
	TotalProjects     int64           `json:"total_projects" db:"total_projects"`
	OngoingProjects   int64           `json:"ongoing_projects" db:"ongoing_projects"`
	CompletedProjects int64           `json:"completed_projects" db:"completed_projects"`
	TotalValue        currency.Amount `json:"total_value" db:"total_value"`
}

type RecentPayment struct {
	Date   Date            `json:"date" db:"date"`
	BillNo string          `json:"bill_no" db:"bill_no"`
	Amount currency.Amount `json:"amount" db:"amount"`
	Status string          `json:"status" db:"status"`
}

// Response types

type CreateProjectResponse struct {
	Message  string `json:"message"`
	InsertID int64  `json:"insertId"`
}

type CreateContractorResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}

// Error codes carried in ErrorResponse.Code
const (
	CodeInvalidJSON = "invalid_json"
	CodeValidation  = "validation_error"
	CodeForeignKey  = "foreign_key_violation"
	CodeDuplicate   = "duplicate_entry"
	CodeStorage     = "storage_error"
)
