package models

import "github.com/shopspring/decimal"

// IVARate is the Colombian VAT already included in every listed price.
var IVARate = decimal.RequireFromString("0.19")

type TaxSplit struct {
	Base  decimal.Decimal `json:"base"`
	IVA   decimal.Decimal `json:"iva"`
	Total decimal.Decimal `json:"total"`
}

// SplitTax breaks a tax-inclusive amount into base and IVA for display.
// Both parts are rounded to cents and always add back up to amount.
func SplitTax(amount decimal.Decimal) TaxSplit {
	base := amount.Div(decimal.NewFromInt(1).Add(IVARate)).Round(2)

	return TaxSplit{
		Base:  base,
		IVA:   amount.Sub(base),
		Total: amount,
	}
}
