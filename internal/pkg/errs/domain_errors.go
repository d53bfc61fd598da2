package errs

import "errors"

// Sentinel errors shared between the usecase layers and the HTTP surface.
var (
	// Catalog errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrAmenityNotFound  = errors.New("amenity not found")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingConflict   = errors.New("booking already exists for this room and date range")
	ErrGuestUserNotFound = errors.New("additional guest user not found")
	ErrNotBookingParty   = errors.New("caller is not a party to this booking")

	// Credential errors
	ErrBookingNotActive   = errors.New("booking is not activated yet")
	ErrCredentialNotFound = errors.New("qr code not found")

	// User errors
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUserInactive           = errors.New("user account is inactive")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
