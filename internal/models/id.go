package models

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier for a row. IDs are random UUIDs so
// they carry no ordering information; all ordering comes from explicit columns.
func NewID() string {
	return uuid.NewString()
}
