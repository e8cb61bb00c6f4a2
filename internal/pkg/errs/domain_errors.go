package errs

// Sentinel errors shared by the command and query sides.
// Handlers map these to response codes; wrap with Mark to keep errors.Is working.
var (
	// Lookup errors
	ErrUserNotFound    = New("user not found")
	ErrHotelNotFound   = New("hotel not found")
	ErrRoomNotFound    = New("room not found")
	ErrBookingNotFound = New("booking not found")

	// Access errors
	ErrForbidden = New("forbidden")

	// Conflict errors
	ErrEmailAlreadyExists = New("email already exists")
	ErrRoomAlreadyExists  = New("room number already exists for hotel")

	// Auth errors
	ErrInvalidCredentials = New("invalid credentials")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
