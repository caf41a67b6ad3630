package models

import "time"

// Holding is a single investment position within a user's portfolio.
type Holding struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Symbol       string    `json:"symbol"`
	ISIN         string    `json:"isin"`
	Name         string    `json:"name"`
	Quantity     float64   `json:"quantity"`
	AveragePrice float64   `json:"average_price"`
	AssetType    string    `json:"asset_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ParsedHolding is a row extracted from an uploaded file before it is
// confirmed into the portfolio. Raw cell values are kept alongside the
// parsed numbers so the client can show what was read.
type ParsedHolding struct {
	Symbol       string  `json:"symbol,omitempty"`
	ISIN         string  `json:"isin,omitempty"`
	Name         string  `json:"name,omitempty"`
	Quantity     float64 `json:"quantity,omitempty"`
	AveragePrice float64 `json:"average_price,omitempty"`
	AssetType    string  `json:"asset_type,omitempty"`
	RowNumber    int     `json:"row_number"`
}
