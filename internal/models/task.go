package models

import (
	"time"
)

// Task is a single user-owned todo item. The ID is assigned by the
// store and is never reused, even after deletion. OwnerID is set once
// at creation and never changes.
type Task struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	OwnerID   string    `gorm:"not null;index" json:"owner_id"`
	Title     string    `gorm:"not null" json:"title"`
	Detail    *string   `gorm:"type:text" json:"detail"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
