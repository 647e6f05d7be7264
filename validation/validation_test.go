// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProject() ProjectForm {
	return ProjectForm{
		ProjectNo:          "P-001",
		ProjectDescription: "Rural road rehabilitation",
		District:           "Kandy",
		DSDivision:         "Kundasale",
		FundSource:         "GOSL",
		VoteDetails:        "102-2-3",
		TotalCostEstimate:  "Rs 1,000,000.00",
		Beneficiaries:      "1,200",
		Output:             "12 km road",
		Outcome:            "Reduced travel time",
		FeasibilityStudies: "Completed",
		RelevantPC:         "PC-7",
	}
}

func fieldError(t *testing.T, err error) *FieldError {
	t.Helper()
	var fe *FieldError
	require.True(t, errors.As(err, &fe), "expected *FieldError, got %v", err)
	return fe
}

func TestProjectForm(t *testing.T) {
	form := validProject()
	require.NoError(t, Validate(form))

	rec := form.Record()
	assert.Equal(t, "1000000.00", rec.TotalCostEstimate.String())
	assert.Equal(t, int64(1200), rec.Beneficiaries)
	assert.Nil(t, rec.Status)
}

func TestProjectFormFirstFailingField(t *testing.T) {
	form := validProject()
	form.ProjectNo = ""
	form.District = ""

	fe := fieldError(t, Validate(form))
	assert.Equal(t, "project_no", fe.Field)
	assert.Equal(t, "Project No is required", fe.Message)
}

func TestProjectFormRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProjectForm)
		field   string
		message string
	}{
		{"negative estimate", func(f *ProjectForm) { f.TotalCostEstimate = "-5" }, "total_cost_estimate", "Total Cost Estimate must be greater than or equal to 0"},
		{"non numeric estimate", func(f *ProjectForm) { f.TotalCostEstimate = "lots" }, "total_cost_estimate", "Total Cost Estimate must be a valid number"},
		{"fractional beneficiaries", func(f *ProjectForm) { f.Beneficiaries = "10.5" }, "beneficiaries", "Number of Beneficiaries must be a whole number"},
		{"unknown status", func(f *ProjectForm) { f.Status = "stalled" }, "status", "Status must be one of: ongoing completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validProject()
			tt.mutate(&form)
			fe := fieldError(t, Validate(form))
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.message, fe.Message)
		})
	}
}

func TestContractorForm(t *testing.T) {
	form := ContractorForm{
		ProjectID:             "3",
		DateAwarded:           "2024-02-01",
		ContractorName:        "Lanka Builders",
		ContractNo:            "C-77",
		ContractAmount:        "2,500,000",
		VATDetails:            "18%",
		ContractPeriod:        "12 months",
		PerformanceBondBank:   "BOC",
		PerformanceBondAmount: "250000.50",
		PerformanceBondExpiry: "2025-02-01",
	}
	require.NoError(t, Validate(form))

	rec := form.Record()
	assert.Equal(t, int64(3), rec.ProjectID)
	assert.Equal(t, "2024-02-01", rec.DateAwarded.String())
	assert.Equal(t, "2500000.00", rec.ContractAmount.String())
	assert.Equal(t, "250000.50", rec.PerformanceBondAmount.String())

	form.DateAwarded = "01/02/2024"
	fe := fieldError(t, Validate(form))
	assert.Equal(t, "date_awarded", fe.Field)
	assert.Equal(t, "Date Awarded must be a valid date (YYYY-MM-DD)", fe.Message)

	form.ProjectID = "0"
	fe = fieldError(t, Validate(form))
	assert.Equal(t, "project_id", fe.Field)
}

func TestBillPaymentNetPayment(t *testing.T) {
	form := BillPaymentForm{
		DateOfPayment:            "2024-05-10",
		BillNo:                   "B-1",
		BillAmount:               "1000",
		RecoveryAdvance:          "100",
		RecoveryLiquidityDamages: "50",
		RecoveryOthers:           "25",
		RecoveryRetention:        "25",
	}
	require.NoError(t, Validate(form))
	assert.Equal(t, "800.00", form.Record().NetPayment.String())
}

func TestBillPaymentRecoveriesDefaultToZero(t *testing.T) {
	form := BillPaymentForm{
		DateOfPayment: "2024-05-10",
		BillNo:        "B-2",
		BillAmount:    "Rs 5,000.00",
	}
	require.NoError(t, Validate(form))

	rec := form.Record()
	assert.Equal(t, "0.00", rec.RecoveryAdvance.String())
	assert.Equal(t, "5000.00", rec.NetPayment.String())
}

func TestAdjustmentForm(t *testing.T) {
	require.NoError(t, Validate(AdjustmentForm{}))
	rec := AdjustmentForm{}.Record()
	assert.Nil(t, rec.VariationAmount)
	assert.Nil(t, rec.Notes)

	form := AdjustmentForm{VariationDate: "2024-06-01", VariationAmount: "1,500", VariationPercentage: "12.5", Notes: "scope change"}
	require.NoError(t, Validate(form))
	rec = form.Record()
	assert.Equal(t, "1500.00", rec.VariationAmount.String())
	assert.Equal(t, "12.5", rec.VariationPercentage.String())
	assert.Equal(t, "scope change", *rec.Notes)

	form.VariationPercentage = "101"
	fe := fieldError(t, Validate(form))
	assert.Equal(t, "variation_percentage", fe.Field)
	assert.Equal(t, "Variation Percentage must be between 0 and 100", fe.Message)
}

func TestInputJSON(t *testing.T) {
	var form BillPaymentForm
	err := json.Unmarshal([]byte(`{"date_of_payment":"2024-01-01","bill_no":" B-9 ","bill_amount":1000.5,"recovery_advance":null}`), &form)
	require.NoError(t, err)
	assert.Equal(t, Input("B-9"), form.BillNo)
	assert.Equal(t, Input("1000.5"), form.BillAmount)
	assert.Equal(t, Input(""), form.RecoveryAdvance)

	assert.Error(t, json.Unmarshal([]byte(`{"bill_no":{"x":1}}`), &form))
}

func TestInputJSONExponent(t *testing.T) {
	var form BillPaymentForm
	err := json.Unmarshal([]byte(`{"bill_amount":1e3,"recovery_advance":2.5E+2,"recovery_others":1e21}`), &form)
	require.NoError(t, err)
	assert.Equal(t, Input("1000"), form.BillAmount)
	assert.Equal(t, Input("250"), form.RecoveryAdvance)
	assert.Equal(t, Input("1000000000000000000000"), form.RecoveryOthers)

	assert.Error(t, json.Unmarshal([]byte(`{"bill_amount":true}`), &form))
}
