package model

import (
	"time"
)

// GeneratedContract is the final document produced from a snapshot.
// It is the only externally visible artifact of a wizard session.
type GeneratedContract struct {
	ID           string    `json:"id"`
	Content      string    `json:"content"`
	Enhanced     bool      `json:"enhanced"`
	CreatedAt    time.Time `json:"created_at"`
	Completeness int       `json:"completeness"`
	Warnings     []Warning `json:"warnings,omitempty"`
}

// Session is one wizard run: a live snapshot scoped to a tenant.
// Sessions live only in memory and die with the process.
type Session struct {
	ID        string            `json:"id"`
	Tenant    string            `json:"tenant"`
	Snapshot  *ContractSnapshot `json:"snapshot"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
