package shared

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/credential"
	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Roster() RosterRepository
	Credentials() CredentialRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	RosterByBookingID(ctx context.Context, bookingID uuid.UUID) ([]booking.GuestEntry, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

// Write-side snapshots keep the command layer off the read-model types
type RoomSnapshot struct {
	ID                 uuid.UUID
	Title              string
	PricePerNightCents int64
	Status             string
	CategoryID         uuid.UUID
}

type BookingSnapshot struct {
	ID              uuid.UUID
	RoomID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	TotalPriceCents int64
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	PhoneNumber  string
	FirstName    string
	LastName     string
	Role         string
	IsActive     bool
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, bk *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, bk *booking.Booking) error
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
}

type RosterRepository interface {
	AddGuests(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, entries []booking.GuestEntry) error
	DeleteNonOwners(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) error
}

type CredentialRepository interface {
	BulkInsert(ctx context.Context, dbtx db.DBTX, creds []*credential.Credential) error
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateProfile(ctx context.Context, dbtx db.DBTX, id uuid.UUID, phoneNumber, firstName, lastName *string, passwordHash *string) error
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID, at time.Time) error
	Deactivate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}
