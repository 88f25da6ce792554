package models

import "time"

// AdminAction is one admin audit trail row.
type AdminAction struct {
	ID         int       `json:"id"`
	AdminID    int       `json:"adminId"`
	Action     string    `json:"action"` // e.g. "login", "viewed users"
	TargetUser string    `json:"targetUser,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
