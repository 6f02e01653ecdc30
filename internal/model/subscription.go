package model

import "time"

// Subscription is one registered push channel and the location it follows.
type Subscription struct {
	ID        string    `db:"id"         json:"id"`
	Token     string    `db:"token"      json:"token"`
	Location  string    `db:"location"   json:"location"`
	Language  string    `db:"language"   json:"language"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
