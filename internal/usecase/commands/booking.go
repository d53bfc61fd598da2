package commands

import (
	"context"
	"fmt"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/credential"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingCommand struct {
	RoomID             uuid.UUID
	CheckIn            time.Time
	CheckOut           time.Time
	AdditionalGuestIDs []uuid.UUID
}

type UpdateBookingCommand struct {
	RoomID             *uuid.UUID
	CheckIn            *time.Time
	CheckOut           *time.Time
	AdditionalGuestIDs *[]uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, cmd CreateBookingCommand, ownerID uuid.UUID) (*queries.BookingView, error)
	Update(ctx context.Context, bookingID uuid.UUID, cmd UpdateBookingCommand) (*queries.BookingView, error)
	Activate(ctx context.Context, bookingID, actorID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	pricing        booking.PriceCalculator
	qr             QRRenderer
	blobs          BlobStore
	events         EventPublisher
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	pricing booking.PriceCalculator,
	qr QRRenderer,
	blobs BlobStore,
	events EventPublisher,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		pricing:        pricing,
		qr:             qr,
		blobs:          blobs,
		events:         events,
		clock:          clk,
	}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, cmd CreateBookingCommand, ownerID uuid.UUID) (*queries.BookingView, error) {
	dates, err := booking.NewDateRange(cmd.CheckIn, cmd.CheckOut)
	if err != nil {
		return nil, err
	}

	roster, err := booking.NewRoster(ownerID, cmd.AdditionalGuestIDs)
	if err != nil {
		return nil, err
	}

	var (
		createdID  uuid.UUID
		totalCents int64
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		roomEntity, terr := uc.roomByID(ctx, tx.Reads(), cmd.RoomID)
		if terr != nil {
			return terr
		}

		total := booking.NewMoney(uc.pricing.TotalCents(roomEntity, dates))
		totalCents = total.Cents()
		bk, terr := booking.NewBooking(roomEntity.ID(), dates, total)
		if terr != nil {
			return terr
		}

		id, terr := tx.Bookings().Create(ctx, tx.DB(), bk)
		if terr != nil {
			if infra.IsKind(terr, infra.KindDuplicateKey) {
				return errs.ErrBookingConflict
			}
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}

		if terr = tx.Roster().AddGuests(ctx, tx.DB(), id, roster); terr != nil {
			if infra.IsKind(terr, infra.KindForeignKeyViolated) {
				return errs.ErrGuestUserNotFound
			}
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}

		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.events.BookingCreated(ctx, BookingCreatedEvent{
		BookingID:       createdID,
		RoomID:          cmd.RoomID,
		OwnerID:         ownerID,
		CheckIn:         dates.CheckIn().UTC().Format(time.RFC3339),
		CheckOut:        dates.CheckOut().UTC().Format(time.RFC3339),
		TotalPriceCents: totalCents,
	})

	return uc.bookingQueries.GetByID(ctx, createdID)
}

func (uc *bookingUseCaseImpl) Update(ctx context.Context, bookingID uuid.UUID, cmd UpdateBookingCommand) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, terr := tx.Reads().BookingByID(ctx, bookingID)
		if terr != nil {
			if infra.IsKind(terr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}

		roomID := snap.RoomID
		if cmd.RoomID != nil {
			roomID = *cmd.RoomID
		}
		checkIn := snap.CheckIn
		if cmd.CheckIn != nil {
			checkIn = *cmd.CheckIn
		}
		checkOut := snap.CheckOut
		if cmd.CheckOut != nil {
			checkOut = *cmd.CheckOut
		}

		// Unlike the create path this re-validation is deliberate: a patch
		// must not be able to invert the stay interval.
		dates, terr := booking.NewDateRange(checkIn, checkOut)
		if terr != nil {
			return terr
		}

		total := booking.NewMoney(snap.TotalPriceCents)
		if cmd.RoomID != nil || cmd.CheckIn != nil || cmd.CheckOut != nil {
			roomEntity, rerr := uc.roomByID(ctx, tx.Reads(), roomID)
			if rerr != nil {
				return rerr
			}
			total = booking.NewMoney(uc.pricing.TotalCents(roomEntity, dates))
		}

		bk := booking.ReconstructBooking(
			snap.ID, roomID, dates, total,
			booking.Status(snap.Status), snap.CreatedAt, snap.UpdatedAt,
		)
		if terr = tx.Bookings().Update(ctx, tx.DB(), bk); terr != nil {
			if infra.IsKind(terr, infra.KindDuplicateKey) {
				return errs.ErrBookingConflict
			}
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}

		if cmd.AdditionalGuestIDs == nil {
			return nil
		}

		roster, terr := tx.Reads().RosterByBookingID(ctx, bookingID)
		if terr != nil {
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}
		owner, ok := booking.Owner(roster)
		if !ok {
			return errs.Mark(errs.New("booking has no owner entry"), errs.ErrDatabaseOperationFailed)
		}

		replacement, terr := booking.ReplacementRoster(owner.UserID, *cmd.AdditionalGuestIDs)
		if terr != nil {
			return terr
		}

		if terr = tx.Roster().DeleteNonOwners(ctx, tx.DB(), bookingID); terr != nil {
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}
		if terr = tx.Roster().AddGuests(ctx, tx.DB(), bookingID, replacement); terr != nil {
			if infra.IsKind(terr, infra.KindForeignKeyViolated) {
				return errs.ErrGuestUserNotFound
			}
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.bookingQueries.GetByID(ctx, bookingID)
}

// Activate flips a booking to active and issues one QR credential per
// roster member in the same transaction: either the whole roster gets
// credentials or none does.
func (uc *bookingUseCaseImpl) Activate(ctx context.Context, bookingID, actorID uuid.UUID) error {
	now := uc.clock.Now()
	var guestIDs []uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, terr := tx.Reads().BookingByID(ctx, bookingID)
		if terr != nil {
			if infra.IsKind(terr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}

		dates, terr := booking.NewDateRange(snap.CheckIn, snap.CheckOut)
		if terr != nil {
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}
		bk := booking.ReconstructBooking(
			snap.ID, snap.RoomID, dates, booking.NewMoney(snap.TotalPriceCents),
			booking.Status(snap.Status), snap.CreatedAt, snap.UpdatedAt,
		)

		if terr = bk.Activate(now); terr != nil {
			return terr
		}

		roster, terr := tx.Reads().RosterByBookingID(ctx, bookingID)
		if terr != nil {
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}
		if !booking.IsPartyToBooking(roster, actorID) {
			return errs.ErrNotBookingParty
		}

		if terr = tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, bk.Status()); terr != nil {
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}

		creds := make([]*credential.Credential, 0, len(roster))
		for _, entry := range roster {
			payload, perr := credential.Payload{UserID: entry.UserID, BookingID: bookingID}.Encode()
			if perr != nil {
				return errs.Mark(perr, errs.ErrDatabaseOperationFailed)
			}

			png, perr := uc.qr.Render(payload)
			if perr != nil {
				return errs.Wrap(perr, "failed to render qr code")
			}

			cred := credential.NewCredential(entry.ID, "")
			path, perr := uc.blobs.Save(ctx, fmt.Sprintf("qr_code_%s.png", cred.ID()), png)
			if perr != nil {
				return errs.Wrap(perr, "failed to store qr code image")
			}
			creds = append(creds, credential.ReconstructCredential(cred.ID(), entry.ID, path, credential.StatusActive, now))
			guestIDs = append(guestIDs, entry.UserID)
		}

		if terr = tx.Credentials().BulkInsert(ctx, tx.DB(), creds); terr != nil {
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.events.BookingActivated(ctx, BookingActivatedEvent{
		BookingID:   bookingID,
		ActivatedBy: actorID,
		GuestIDs:    guestIDs,
		ActivatedAt: now.UTC().Format(time.RFC3339),
	})
	return nil
}

func (uc *bookingUseCaseImpl) roomByID(ctx context.Context, reads shared.CommandReads, roomID uuid.UUID) (*room.Room, error) {
	snap, err := reads.RoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return room.NewRoom(snap.ID, snap.Title, snap.PricePerNightCents, room.Status(snap.Status), snap.CategoryID)
}
