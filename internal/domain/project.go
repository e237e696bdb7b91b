package domain

import "time"

// Project is a completed installation shown in the gallery section.
type Project struct {
	ID          string
	Title       string
	Description string
	Address     string
	// Images keeps receipt order.
	Images []string

	CreatedAt time.Time
}
