package models

import (
	"time"

	"github.com/segmentio/ksuid"
	"gorm.io/gorm"
)

// BaseModel carries the fields shared by every record. IDs are KSUIDs:
// globally unique and lexicographically sortable by creation time.
type BaseModel struct {
	ID        string    `gorm:"type:varchar(27);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate assigns an id when the caller did not provide one.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}

// NewID generates a new sortable record id.
func NewID() string {
	return ksuid.New().String()
}
