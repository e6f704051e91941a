package models

import "time"

// Todo represents a single todo item, both as stored and as serialized
// on the wire. Timestamps marshal as RFC 3339.
type Todo struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
