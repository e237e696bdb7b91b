package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID               string
	Name             string
	Description      string
	ShortDescription string
	Price            decimal.Decimal
	// ImageURL is an opaque reference: an external URL or a base64 data URI.
	ImageURL       string
	Specifications map[string]string

	CreatedAt time.Time
}
