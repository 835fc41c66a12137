package models

// Instrument is a single priced asset as returned by the market data
// provider. Field names follow the upstream CoinGecko wire format so the
// adapter can decode responses directly.
type Instrument struct {
	ID                string  `json:"id"`
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	CurrentPrice      float64 `json:"current_price"`
	PriceChangePct24h float64 `json:"price_change_percentage_24h"`
}

// MarketChart holds a historical price series for one instrument.
// Each entry is a [timestamp-ms, price] pair, as delivered upstream.
type MarketChart struct {
	Prices [][]float64 `json:"prices"`
}

// Quote is a to-per-from exchange rate snapshot with a bounded validity
// window. Swaps against an expired quote are rejected.
type Quote struct {
	FromID     string  `json:"from_id"`
	ToID       string  `json:"to_id"`
	FromSymbol string  `json:"from_symbol"`
	ToSymbol   string  `json:"to_symbol"`

	// Rate is how many units of the target asset one unit of the source
	// asset buys at snapshot time.
	Rate float64 `json:"rate"`

	// ExpiresAt is the quote expiry in milliseconds since the Unix epoch.
	ExpiresAt int64 `json:"expires_at"`
}
