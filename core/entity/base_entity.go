package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity and audit columns shared by stored records.
type BaseEntity struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
