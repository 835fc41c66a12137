package models

import "time"

// Balance is the amount of a single asset held by a user.
type Balance struct {
	Symbol string  `json:"symbol"`
	Amount float64 `json:"amount"`
}

// Transaction is one executed swap, appended to the per-user history blob.
type Transaction struct {
	// ID is a server-assigned UUID identifying the transaction.
	ID string `json:"id"`

	// TS is the execution time.
	TS time.Time `json:"ts"`

	// From and To are the asset symbols of the swap.
	From string `json:"from"`
	To   string `json:"to"`

	// AmountFrom is the debited amount; AmountTo is the credited amount
	// after rounding to eight decimal places.
	AmountFrom float64 `json:"amount_from"`
	AmountTo   float64 `json:"amount_to"`
}
