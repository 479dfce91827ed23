package model

type Customer struct {
	DTO
	Name  string `gorm:"size:120;not null" json:"name"`
	Email string `gorm:"size:120;index" json:"email"`
	Phone string `gorm:"size:30" json:"phone"`
}

type FilterCustomerInput struct {
	Pagination
	Search string `query:"search"`
}
