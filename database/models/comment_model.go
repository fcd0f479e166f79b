package models

import (
	"github.com/google/uuid"
)

// Comment is an append-only feedback record. Comments are never edited or
// deleted; karma accounting only ever looks at them, it never rewrites them.
type Comment struct {
	Model
	Author    string    `json:"author" gorm:"not null;type:text;"`
	Karma     int       `json:"karma" gorm:"default:0;"`
	Text      string    `json:"text" gorm:"type:text;"`
	Anonymous bool      `json:"anonymous" gorm:"default:false;"`
	UpdateID  uuid.UUID `json:"updateId" gorm:"type:uuid;not null;"`
}

func (m Comment) TableName() string {
	return "comments"
}
