package models

import "github.com/shopspring/decimal"

func init() {
	// Money, area and percentage fields serialize as plain JSON numbers,
	// matching what clients send on create requests.
	decimal.MarshalJSONWithoutQuotes = true
}
