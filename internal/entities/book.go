package entities

import "time"

// Book is a single catalog entry. Year, Genre and Description are optional
// and serialize as null when unset.
type Book struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"index;size:512" json:"title"`
	Author      string    `gorm:"index;size:256" json:"author"`
	Year        *int      `json:"year"`
	Genre       *string   `gorm:"index;size:128" json:"genre"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
