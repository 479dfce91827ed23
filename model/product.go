package model

type Product struct {
	DTO
	Title    string  `gorm:"size:120;not null" json:"title"`
	Category string  `gorm:"size:60" json:"category"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"` // minutes of instruction included
	Active   bool    `gorm:"default:true" json:"active"`
}

type CreateProductInput struct {
	Title    string  `json:"title" validate:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price" validate:"gte=0"`
	Duration int     `json:"duration" validate:"omitempty,gt=0"`
}

type UpdateProductInput struct {
	Title    *string  `json:"title"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	Duration *int     `json:"duration" validate:"omitempty,gt=0"`
	Active   *bool    `json:"active"`
}
