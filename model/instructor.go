package model

type Instructor struct {
	DTO
	Name     string `gorm:"size:120;not null" validate:"required" json:"name"`
	Email    string `gorm:"size:120;uniqueIndex" json:"email"`
	Phone    string `gorm:"size:30" json:"phone"`
	PhotoUrl string `json:"photoUrl"`
	Active   bool   `gorm:"default:true" json:"active"`

	Slots []Slot `gorm:"foreignKey:InstructorId" json:"-"`
}

type CreateInstructorInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty"`
	PhotoUrl string `json:"photoUrl" validate:"omitempty,url"`
}

type UpdateInstructorInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	PhotoUrl *string `json:"photoUrl" validate:"omitempty,url"`
	Active   *bool   `json:"active"`
}

type FilterInstructorInput struct {
	Pagination
	Active *bool  `query:"active"`
	Search string `query:"search"`
}
