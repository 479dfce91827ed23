package model

type Location struct {
	DTO
	Title       string `gorm:"size:120;not null" json:"title"`
	Slug        string `gorm:"size:140;uniqueIndex" json:"slug"`
	Zone        string `gorm:"size:80" json:"zone"`
	Description string `json:"description"`
	Active      bool   `gorm:"default:true" json:"active"`
}

type CreateLocationInput struct {
	Title       string `json:"title" validate:"required"`
	Zone        string `json:"zone"`
	Description string `json:"description"`
}

type UpdateLocationInput struct {
	Title       *string `json:"title"`
	Zone        *string `json:"zone"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}
