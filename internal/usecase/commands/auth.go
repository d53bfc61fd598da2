package commands

import (
	"context"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/jwt"
	"hotel-booking-api/internal/pkg/password"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"
)

type LoginCommand struct {
	Email    string
	Password string
}

type AuthResult struct {
	Tokens jwt.TokenPair
	User   *queries.UserView
}

type AuthCommands interface {
	Login(ctx context.Context, cmd LoginCommand) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
}

type authUseCaseImpl struct {
	uow    shared.UnitOfWork
	users  queries.UserStore
	tokens *jwt.Service
	clk    clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, users queries.UserStore, tokens *jwt.Service, clk clock.Clock) AuthCommands {
	return &authUseCaseImpl{uow: uow, users: users, tokens: tokens, clk: clk}
}

func (uc *authUseCaseImpl) Login(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	creds, err := user.NewCredentials(cmd.Email, cmd.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	view, hash, err := uc.users.FindByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hash, creds.Password().Value()); err != nil {
		return nil, errs.ErrInvalidCredentials
	}
	if !view.IsActive {
		return nil, errs.ErrUserInactive
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "parse user role")
	}

	pair, err := uc.tokens.GenerateTokenPair(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "generate token pair")
	}

	now := uc.clk.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID, now)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	view.LastLogin = &now

	return &AuthResult{Tokens: pair, User: view}, nil
}

func (uc *authUseCaseImpl) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := uc.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	view, err := uc.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, errs.ErrUserInactive
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "parse user role")
	}

	pair, err := uc.tokens.GenerateTokenPair(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "generate token pair")
	}

	return &AuthResult{Tokens: pair, User: view}, nil
}
