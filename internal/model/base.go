package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document is the common identity of every stored record: a string id and
// its creation instant.
type Document struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = GenerateUUID()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	return
}

func GenerateUUID() string {
	return uuid.New().String()
}
