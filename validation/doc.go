// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validation gates record submission with per-entity field rules.

Each entity has a form type whose fields are raw Input values. Rules are
struct tags checked by go-playground/validator:

	required                 value must be present
	lkr                      parses through currency.Parse
	nonneg                   numeric value >= 0
	integer                  numeric value without fraction
	percent                  numeric value in [0, 100]
	id                       positive integer reference
	datetime=2006-01-02      calendar date

Validate returns the first failing field as a *FieldError:

	if err := validation.Validate(form); err != nil {
		var fe *validation.FieldError
		errors.As(err, &fe) // fe.Field, fe.Message
	}

A form that passed Validate converts to its canonical record with Record.
Numeric input is normalized through the currency codec, so "Rs 1,000.00"
is stored as 1000.00. BillPaymentForm.Record computes net_payment.
*/
package validation
