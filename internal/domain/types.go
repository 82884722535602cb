package domain

// ID is used across domain entities.
type ID int64

// Placeholder is shown wherever a value is missing or cannot be formatted.
const Placeholder = "ไม่ระบุ"

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID ID     `json:"userId"`
	Role   string `json:"role"`
}
