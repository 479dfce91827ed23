package model

import "time"

const (
	TicketClassStatusActive   = "active"
	TicketClassStatusFinished = "finished"

	RequestStatusPending = "pending"

	EnrollmentActionAccept = "acceptRequest"
	EnrollmentActionReject = "rejectRequest"
)

// TicketClass is a scheduled classroom session with a seat capacity,
// independent of instructor time slots.
type TicketClass struct {
	DTO
	PublicCode     string `gorm:"size:40;uniqueIndex" json:"publicCode"`
	LocationId     uint   `json:"locationId"`
	DrivingClassId uint   `json:"classId"`
	Date           string `gorm:"size:10;index" json:"date"` // YYYY-MM-DD
	Hour           string `gorm:"size:5" json:"hour"`        // HH:MM
	EndHour        string `gorm:"size:5" json:"endHour"`
	Duration       int    `json:"duration"` // minutes
	Spots          int    `json:"spots"`
	Status         string `gorm:"size:20;default:'active'" json:"status"`

	Location        Location             `gorm:"foreignKey:LocationId" json:"Location"`
	DrivingClass    DrivingClass         `gorm:"foreignKey:DrivingClassId" json:"DrivingClass"`
	Students        []TicketClassStudent `gorm:"foreignKey:TicketClassId" json:"students"`
	StudentRequests []StudentRequest     `gorm:"foreignKey:TicketClassId" json:"studentRequests"`
}

// TicketClassStudent is one confirmed seat.
type TicketClassStudent struct {
	DTO
	TicketClassId uint   `gorm:"uniqueIndex:idx_class_student" json:"ticketClassId"`
	CustomerId    uint   `gorm:"uniqueIndex:idx_class_student" json:"studentId"`
	CheckinCode   string `gorm:"size:40" json:"checkinCode"`

	Customer Customer `gorm:"foreignKey:CustomerId" json:"Customer"`
}

// StudentRequest is a pending enrollment application awaiting an admin
// decision. Accept moves it into students; reject removes it.
type StudentRequest struct {
	DTO
	RequestId     string    `gorm:"size:40;uniqueIndex" json:"requestId"`
	TicketClassId uint      `gorm:"index" json:"ticketClassId"`
	CustomerId    uint      `json:"studentId"`
	RequestDate   time.Time `json:"requestDate"`
	Status        string    `gorm:"size:20;default:'pending'" json:"status"`
	PaymentMethod string    `gorm:"size:40" json:"paymentMethod,omitempty"`

	Customer Customer `gorm:"foreignKey:CustomerId" json:"Customer"`
}

type CreateTicketClassInput struct {
	LocationId     uint   `json:"locationId" validate:"required,gt=0"`
	DrivingClassId uint   `json:"classId" validate:"required,gt=0"`
	Date           string `json:"date" validate:"required"`
	Hour           string `json:"hour" validate:"required"`
	EndHour        string `json:"endHour" validate:"required"`
	Duration       int    `json:"duration" validate:"omitempty,gt=0"`
	Spots          int    `json:"spots" validate:"required,gt=0"`
}

type UpdateTicketClassInput struct {
	LocationId     *uint   `json:"locationId"`
	DrivingClassId *uint   `json:"classId"`
	Date           *string `json:"date"`
	Hour           *string `json:"hour"`
	EndHour        *string `json:"endHour"`
	Duration       *int    `json:"duration"`
	Spots          *int    `json:"spots" validate:"omitempty,gt=0"`
	Status         *string `json:"status"`
}

type CreateStudentRequestInput struct {
	StudentId     uint   `json:"studentId" validate:"required,gt=0"`
	PaymentMethod string `json:"paymentMethod"`
}

type EnrollmentActionInput struct {
	Action    string `json:"action" validate:"required,oneof=acceptRequest rejectRequest"`
	StudentId uint   `json:"studentId" validate:"required,gt=0"`
	RequestId string `json:"requestId" validate:"required"`
}

type FilterTicketClassInput struct {
	Pagination
	LocationId uint   `query:"locationId"`
	ClassId    uint   `query:"classId"`
	Status     string `query:"status"`
	StartDate  string `query:"startDate"`
	EndDate    string `query:"endDate"`
}
