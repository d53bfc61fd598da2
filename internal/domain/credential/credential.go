package credential

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive      Status = "active"
	StatusBlacklisted Status = "blacklisted"
)

func (s Status) String() string {
	return string(s)
}

// Credential is a per-guest QR check-in token, created only during booking
// activation and never deleted.
type Credential struct {
	id        uuid.UUID
	guestID   uuid.UUID
	imagePath string
	status    Status
	createdAt time.Time
}

func NewCredential(guestID uuid.UUID, imagePath string) *Credential {
	return &Credential{
		id:        uuid.New(),
		guestID:   guestID,
		imagePath: imagePath,
		status:    StatusActive,
	}
}

func ReconstructCredential(id, guestID uuid.UUID, imagePath string, status Status, createdAt time.Time) *Credential {
	return &Credential{
		id:        id,
		guestID:   guestID,
		imagePath: imagePath,
		status:    status,
		createdAt: createdAt,
	}
}

func (c *Credential) ID() uuid.UUID        { return c.id }
func (c *Credential) GuestID() uuid.UUID   { return c.guestID }
func (c *Credential) ImagePath() string    { return c.imagePath }
func (c *Credential) Status() Status       { return c.status }
func (c *Credential) CreatedAt() time.Time { return c.createdAt }
