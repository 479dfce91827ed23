package constants

const (
	ERROR_INPUT               = "Invalid input data"
	DATA_INPUT_IS_NOT_NUMBER  = "Parameter must be a number"
	INSTRUCTOR_NOT_FOUND      = "Instructor not found"
	SLOT_NOT_FOUND            = "Slot not found"
	TICKET_CLASS_NOT_FOUND    = "Ticket class not found"
	STUDENT_REQUEST_NOT_FOUND = "Student request not found"
	CUSTOMER_NOT_FOUND        = "Customer not found"
	LOCATION_NOT_FOUND        = "Location not found"
	PRODUCT_NOT_FOUND         = "Product not found"
	DRIVING_CLASS_NOT_FOUND   = "Driving class not found"
	SCHEDULE_CONFLICT         = "Requested time overlaps an existing slot"
	TICKET_CLASS_FULL         = "Ticket class has no remaining spots"
	ALREADY_ENROLLED          = "Student is already enrolled in this class"
	REQUEST_ALREADY_PENDING   = "Student already has a pending request for this class"
	DUPLICATE_SLOT            = "An identical slot already exists"
)
