// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package forms runs the data-entry flow behind each screen: validate,
normalize, submit, and turn the outcome into a message for the user.

	sub := forms.NewContractorSubmitter(client.New(url).Contractors(), logger)
	res := sub.Submit(ctx, form)
	if !res.OK {
		// highlight res.Field, show res.Message
	}

A form that fails validation never reaches the repository. Storage outcomes
are chosen from the typed error kind, so a missing project reads "Invalid
project selected" and a second advance for a project reads "An advance
payment already exists for this project".

NetPayment and Display back the live amount fields.
*/
package forms
