package models

import "time"

const ProjectStatusDefault = "Pending"

// Project rows are never physically removed; IsDeleted marks them inactive
// and every read path filters on it.
type Project struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Status      string    `gorm:"type:varchar(50);not null;default:'Pending'" json:"status"`
	CreatedBy   uint64    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"-"`

	// Relations
	Tasks   []Task            `gorm:"foreignKey:ProjectID" json:"-"`
	Members []UserProjectRole `gorm:"foreignKey:ProjectID" json:"-"`
}
