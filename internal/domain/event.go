package domain

import "time"

// Event is a user-created registry instance (a wedding, a birthday). Its
// slug is globally unique and backs the public event page URL.
type Event struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description,omitempty"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	Wishes        []Wish    `json:"wishes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
