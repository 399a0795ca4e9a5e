package models

import "time"

type Employee struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"size:255;not null" json:"name"`
	Email      string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Position   string  `gorm:"size:255;not null" json:"position"`
	Department string  `gorm:"size:255;not null" json:"department"`
	Salary     int     `gorm:"not null" json:"salary"`
	ImageURL   *string `gorm:"type:text" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
