// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/danielhkuo/contractflow/currency"
	"github.com/danielhkuo/contractflow/models"
)

type ProjectForm struct {
	ProjectNo          Input `json:"project_no" label:"Project No" validate:"required"`
	ProjectDescription Input `json:"project_description" label:"Project Description" validate:"required"`
	District           Input `json:"district" label:"District" validate:"required"`
	DSDivision         Input `json:"ds_division" label:"DS Division" validate:"required"`
	FundSource         Input `json:"fund_source" label:"Fund Source" validate:"required"`
	VoteDetails        Input `json:"vote_details" label:"Vote Details" validate:"required"`
	TotalCostEstimate  Input `json:"total_cost_estimate" label:"Total Cost Estimate" validate:"required,lkr,nonneg"`
	Beneficiaries      Input `json:"beneficiaries" label:"Number of Beneficiaries" validate:"required,lkr,integer,nonneg"`
	Output             Input `json:"output" label:"Output" validate:"required"`
	Outcome            Input `json:"outcome" label:"Outcome" validate:"required"`
	FeasibilityStudies Input `json:"feasibility_studies" label:"Feasibility Studies" validate:"required"`
	RelevantPC         Input `json:"relevant_pc" label:"Relevant PC" validate:"required"`
	Status             Input `json:"status" label:"Status" validate:"omitempty,oneof=ongoing completed"`
}

func (f ProjectForm) Record() models.Project {
	return models.Project{
		ProjectNo:          string(f.ProjectNo),
		ProjectDescription: string(f.ProjectDescription),
		District:           string(f.District),
		DSDivision:         string(f.DSDivision),
		FundSource:         string(f.FundSource),
		VoteDetails:        string(f.VoteDetails),
		TotalCostEstimate:  amount(f.TotalCostEstimate),
		Beneficiaries:      amount(f.Beneficiaries).IntPart(),
		Output:             string(f.Output),
		Outcome:            string(f.Outcome),
		FeasibilityStudies: string(f.FeasibilityStudies),
		RelevantPC:         string(f.RelevantPC),
		Status:             optionalText(f.Status),
	}
}

type ContractorForm struct {
	ProjectID             Input `json:"project_id" label:"Project" validate:"required,id"`
	DateAwarded           Input `json:"date_awarded" label:"Date Awarded" validate:"required,datetime=2006-01-02"`
	ContractorName        Input `json:"contractor_name" label:"Contractor Name" validate:"required"`
	ContractNo            Input `json:"contract_no" label:"Contract No" validate:"required"`
	ContractAmount        Input `json:"contract_amount" label:"Contract Amount" validate:"required,lkr,nonneg"`
	VATDetails            Input `json:"vat_details" label:"VAT Details" validate:"required"`
	ContractPeriod        Input `json:"contract_period" label:"Contract Period" validate:"required"`
	PerformanceBondBank   Input `json:"performance_bond_bank" label:"Performance Bond Bank" validate:"required"`
	PerformanceBondAmount Input `json:"performance_bond_amount" label:"Performance Bond Amount" validate:"required,lkr,nonneg"`
	PerformanceBondExpiry Input `json:"performance_bond_expiry" label:"Performance Bond Expiry Date" validate:"required,datetime=2006-01-02"`
}

func (f ContractorForm) Record() models.Contractor {
	return models.Contractor{
		ProjectID:             id(f.ProjectID),
		DateAwarded:           date(f.DateAwarded),
		ContractorName:        string(f.ContractorName),
		ContractNo:            string(f.ContractNo),
		ContractAmount:        amount(f.ContractAmount),
		VATDetails:            string(f.VATDetails),
		ContractPeriod:        string(f.ContractPeriod),
		PerformanceBondBank:   string(f.PerformanceBondBank),
		PerformanceBondAmount: amount(f.PerformanceBondAmount),
		PerformanceBondExpiry: date(f.PerformanceBondExpiry),
	}
}

type AdvancePaymentForm struct {
	ProjectID         Input `json:"project_id" label:"Project" validate:"required,id"`
	DateOfPayment     Input `json:"date_of_payment" label:"Date of Payment" validate:"required,datetime=2006-01-02"`
	AmountPaid        Input `json:"amount_paid" label:"Amount Paid" validate:"required,lkr,nonneg"`
	AdvanceBondBank   Input `json:"advance_bond_bank" label:"Advance Bond Bank" validate:"required"`
	AdvanceBondAmount Input `json:"advance_bond_amount" label:"Advance Bond Amount" validate:"required,lkr,nonneg"`
	AdvanceBondExpiry Input `json:"advance_bond_expiry" label:"Advance Bond Expiry Date" validate:"required,datetime=2006-01-02"`
}

func (f AdvancePaymentForm) Record() models.AdvancePayment {
	return models.AdvancePayment{
		ProjectID:         id(f.ProjectID),
		DateOfPayment:     date(f.DateOfPayment),
		AmountPaid:        amount(f.AmountPaid),
		AdvanceBondBank:   string(f.AdvanceBondBank),
		AdvanceBondAmount: amount(f.AdvanceBondAmount),
		AdvanceBondExpiry: date(f.AdvanceBondExpiry),
	}
}

// BillPaymentForm recoveries default to 0 when left empty. Any net_payment
// sent by the caller is ignored; Record computes it.
type BillPaymentForm struct {
	DateOfPayment            Input `json:"date_of_payment" label:"Date of Payment" validate:"required,datetime=2006-01-02"`
	BillNo                   Input `json:"bill_no" label:"Bill No" validate:"required"`
	BillAmount               Input `json:"bill_amount" label:"Bill Amount" validate:"required,lkr,nonneg"`
	RecoveryAdvance          Input `json:"recovery_advance" label:"Advance Recovery" validate:"omitempty,lkr,nonneg"`
	RecoveryLiquidityDamages Input `json:"recovery_liquidity_damages" label:"Liquidity Damages Recovery" validate:"omitempty,lkr,nonneg"`
	RecoveryOthers           Input `json:"recovery_others" label:"Other Recoveries" validate:"omitempty,lkr,nonneg"`
	RecoveryRetention        Input `json:"recovery_retention" label:"Retention Recovery" validate:"omitempty,lkr,nonneg"`
}

func (f BillPaymentForm) Record() models.BillPayment {
	bill := models.BillPayment{
		DateOfPayment:            date(f.DateOfPayment),
		BillNo:                   string(f.BillNo),
		BillAmount:               amount(f.BillAmount),
		RecoveryAdvance:          amount(f.RecoveryAdvance),
		RecoveryLiquidityDamages: amount(f.RecoveryLiquidityDamages),
		RecoveryOthers:           amount(f.RecoveryOthers),
		RecoveryRetention:        amount(f.RecoveryRetention),
	}
	bill.NetPayment = bill.ComputeNetPayment()
	return bill
}

type AdjustmentForm struct {
	ContractExtensionDate           Input `json:"contract_extension_date" label:"Contract Extension Date" validate:"omitempty,datetime=2006-01-02"`
	ContractExtensionDetails        Input `json:"contract_extension_details" label:"Contract Extension Details"`
	AdvanceBondExtensionDate        Input `json:"advance_bond_extension_date" label:"Advance Bond Extension Date" validate:"omitempty,datetime=2006-01-02"`
	AdvanceBondExtensionDetails     Input `json:"advance_bond_extension_details" label:"Advance Bond Extension Details"`
	PerformanceBondExtensionDate    Input `json:"performance_bond_extension_date" label:"Performance Bond Extension Date" validate:"omitempty,datetime=2006-01-02"`
	PerformanceBondExtensionDetails Input `json:"performance_bond_extension_details" label:"Performance Bond Extension Details"`
	VariationDate                   Input `json:"variation_date" label:"Variation Date" validate:"omitempty,datetime=2006-01-02"`
	VariationAmount                 Input `json:"variation_amount" label:"Variation Amount" validate:"omitempty,lkr,nonneg"`
	VariationPercentage             Input `json:"variation_percentage" label:"Variation Percentage" validate:"omitempty,lkr,percent"`
	Notes                           Input `json:"notes" label:"Notes"`
}

func (f AdjustmentForm) Record() models.Adjustment {
	adj := models.Adjustment{
		ContractExtensionDate:           optionalDate(f.ContractExtensionDate),
		ContractExtensionDetails:        optionalText(f.ContractExtensionDetails),
		AdvanceBondExtensionDate:        optionalDate(f.AdvanceBondExtensionDate),
		AdvanceBondExtensionDetails:     optionalText(f.AdvanceBondExtensionDetails),
		PerformanceBondExtensionDate:    optionalDate(f.PerformanceBondExtensionDate),
		PerformanceBondExtensionDetails: optionalText(f.PerformanceBondExtensionDetails),
		VariationDate:                   optionalDate(f.VariationDate),
		Notes:                           optionalText(f.Notes),
	}
	if f.VariationAmount != "" {
		a := amount(f.VariationAmount)
		adj.VariationAmount = &a
	}
	if f.VariationPercentage != "" {
		p := amount(f.VariationPercentage).Decimal
		adj.VariationPercentage = &p
	}
	return adj
}

// amount is zero for empty input.
func amount(in Input) currency.Amount {
	a, err := currency.ParseAmount(string(in))
	if err != nil {
		return currency.NewAmount(decimal.Zero)
	}
	return a
}

func id(in Input) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(string(in)), 10, 64)
	return n
}

func date(in Input) models.Date {
	d, _ := models.ParseDate(string(in))
	return d
}

func optionalDate(in Input) *models.Date {
	if in == "" {
		return nil
	}
	d := date(in)
	return &d
}

func optionalText(in Input) *string {
	s := strings.TrimSpace(string(in))
	if s == "" {
		return nil
	}
	return &s
}
