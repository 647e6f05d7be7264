// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package currency converts LKR amounts between display and canonical form.

# Parsing

Parse keeps digits, the decimal point and the minus sign, and returns ""
when the residue is not a number:

	currency.Parse("Rs 1,000.00") // "1000.00"
	currency.Parse("abc")         // ""

Callers treat "" as "no value". ParseAmount returns an Amount or
ErrInvalidAmount.

# Formatting

Format groups thousands and shows two decimals only for fractional values:

	currency.Format("1000")   // "1,000"
	currency.Format("1000.5") // "1,000.50"
	currency.Format("0")      // "0"
	currency.Format("")       // ""

# Amount

Amount wraps shopspring/decimal and is the storage type for every monetary
column. It scans any numeric driver value and is written back as a two-decimal
string, so display formatting never reaches the database.
*/
package currency
