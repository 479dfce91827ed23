package model

type SlotKind string

const (
	SlotKindDrivingTest   SlotKind = "driving_test"
	SlotKindDrivingLesson SlotKind = "driving_lesson"
)

const (
	SlotStatusAvailable = "available"
	SlotStatusBooked    = "booked"
	SlotStatusExpired   = "expired"
)

// Slot is one bookable unit of instructor time. Lessons and tests share the
// table; both consume the same instructor's time so a conflict scan covers
// the pair in one pass.
type Slot struct {
	DTO
	// SlotKey is derived from (kind, instructor, date, start) so the same
	// logical booking always maps to the same row.
	SlotKey      string   `gorm:"size:80;uniqueIndex" json:"slotKey"`
	Kind         SlotKind `gorm:"size:20;index" json:"kind"`
	InstructorId uint     `gorm:"index" json:"instructorId"`
	Date         string   `gorm:"size:10;index" json:"date"`        // YYYY-MM-DD
	Start        string   `gorm:"size:5;column:start_time" json:"start"` // HH:MM
	End          string   `gorm:"size:5;column:end_time" json:"end"`
	Status       string   `gorm:"size:30;default:'available'" json:"status"`

	ClassType string `gorm:"size:40" json:"classType,omitempty"` // lessons only

	StudentId       *uint    `json:"studentId,omitempty"`
	StudentName     string   `gorm:"size:120" json:"studentName,omitempty"`
	Paid            bool     `json:"paid"`
	PickupLocation  string   `gorm:"size:200" json:"pickupLocation,omitempty"`
	DropoffLocation string   `gorm:"size:200" json:"dropoffLocation,omitempty"`
	SelectedProduct *uint    `json:"selectedProduct,omitempty"`
	Amount          *float64 `json:"amount,omitempty"` // tests only

	Instructor Instructor `gorm:"foreignKey:InstructorId" json:"-"`
}

type CreateSlotInput struct {
	InstructorId      uint     `json:"instructorId" validate:"required,gt=0"`
	Date              string   `json:"date" validate:"required"`
	Start             string   `json:"start" validate:"required"`
	End               string   `json:"end" validate:"required"`
	ClassType         string   `json:"classType"`
	Status            string   `json:"status"`
	PickupLocation    string   `json:"pickupLocation"`
	DropoffLocation   string   `json:"dropoffLocation"`
	SelectedProduct   *uint    `json:"selectedProduct"`
	Recurrence        string   `json:"recurrence" validate:"omitempty,oneof=none daily weekly monthly"`
	RecurrenceEndDate string   `json:"recurrenceEndDate"`
	StudentId         *uint    `json:"studentId"`
	StudentName       string   `json:"studentName"`
	Paid              bool     `json:"paid"`
	Amount            *float64 `json:"amount"`
}

type UpdateSlotInput struct {
	Status          *string  `json:"status"`
	ClassType       *string  `json:"classType"`
	StudentId       *uint    `json:"studentId"`
	StudentName     *string  `json:"studentName"`
	Paid            *bool    `json:"paid"`
	PickupLocation  *string  `json:"pickupLocation"`
	DropoffLocation *string  `json:"dropoffLocation"`
	SelectedProduct *uint    `json:"selectedProduct"`
	Amount          *float64 `json:"amount"`
}

type FilterSlotInput struct {
	Pagination
	InstructorId uint   `query:"instructorId"`
	ClassType    string `query:"classType"`
	Status       string `query:"status"`
	StartDate    string `query:"startDate"`
	EndDate      string `query:"endDate"`
}
