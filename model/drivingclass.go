package model

// DrivingClass is a class definition (syllabus) a ticket class session links to.
type DrivingClass struct {
	DTO
	Title    string  `gorm:"size:120;not null" json:"title"`
	Overview string  `json:"overview"`
	Length   int     `json:"length"` // hours
	Price    float64 `json:"price"`
}

type CreateDrivingClassInput struct {
	Title    string  `json:"title" validate:"required"`
	Overview string  `json:"overview"`
	Length   int     `json:"length" validate:"omitempty,gt=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type UpdateDrivingClassInput struct {
	Title    *string  `json:"title"`
	Overview *string  `json:"overview"`
	Length   *int     `json:"length" validate:"omitempty,gt=0"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
}
