package commands

import (
	"context"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/password"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterUserCommand struct {
	Email       string
	Password    string
	PhoneNumber string
	FirstName   string
	LastName    string
	Role        string
}

type UpdateUserCommand struct {
	PhoneNumber *string
	FirstName   *string
	LastName    *string
	Password    *string
}

type UserCommands interface {
	Register(ctx context.Context, cmd RegisterUserCommand) (*queries.UserView, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, cmd UpdateUserCommand) (*queries.UserView, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type userUseCaseImpl struct {
	uow   shared.UnitOfWork
	users queries.UserStore
}

func NewUserCommands(uow shared.UnitOfWork, users queries.UserStore) UserCommands {
	return &userUseCaseImpl{uow: uow, users: users}
}

func (uc *userUseCaseImpl) Register(ctx context.Context, cmd RegisterUserCommand) (*queries.UserView, error) {
	creds, err := user.NewCredentials(cmd.Email, cmd.Password)
	if err != nil {
		return nil, err
	}

	roleStr := cmd.Role
	if roleStr == "" {
		roleStr = user.RoleGuest.String()
	}
	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(creds.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	newUser := user.NewUser(creds.Email(), hash, cmd.PhoneNumber, cmd.FirstName, cmd.LastName, role)

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, terr := tx.Users().Create(ctx, tx.DB(), newUser)
		if terr != nil {
			if infra.IsKind(terr, infra.KindDuplicateKey) {
				return errs.ErrEmailAlreadyRegistered
			}
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.findView(ctx, createdID)
}

func (uc *userUseCaseImpl) UpdateProfile(ctx context.Context, id uuid.UUID, cmd UpdateUserCommand) (*queries.UserView, error) {
	var hash *string
	if cmd.Password != nil {
		pw, err := user.NewPassword(*cmd.Password)
		if err != nil {
			return nil, err
		}
		h, err := password.HashPassword(pw.Value())
		if err != nil {
			return nil, errs.Wrap(err, "hash password")
		}
		hash = &h
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, terr := tx.Reads().UserByID(ctx, id); terr != nil {
			if infra.IsKind(terr, infra.KindNotFound) {
				return errs.ErrUserNotFound
			}
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}
		terr := tx.Users().UpdateProfile(ctx, tx.DB(), id, cmd.PhoneNumber, cmd.FirstName, cmd.LastName, hash)
		if terr != nil {
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.findView(ctx, id)
}

func (uc *userUseCaseImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, terr := tx.Reads().UserByID(ctx, id); terr != nil {
			if infra.IsKind(terr, infra.KindNotFound) {
				return errs.ErrUserNotFound
			}
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}
		if terr := tx.Users().Deactivate(ctx, tx.DB(), id); terr != nil {
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *userUseCaseImpl) findView(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	view, err := uc.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
