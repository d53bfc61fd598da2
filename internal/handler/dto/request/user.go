package request

import (
	"hotel-booking-api/internal/usecase/commands"
)

type RegisterUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Role        string `json:"role,omitempty" binding:"omitempty,oneof=guest staff admin"`
}

func (r RegisterUserRequest) ToCommand() commands.RegisterUserCommand {
	return commands.RegisterUserCommand{
		Email:       r.Email,
		Password:    r.Password,
		PhoneNumber: r.PhoneNumber,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Role:        r.Role,
	}
}

type UpdateUserRequest struct {
	PhoneNumber *string `json:"phone_number,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Password    *string `json:"password,omitempty" binding:"omitempty,min=8"`
}

func (r UpdateUserRequest) ToCommand() commands.UpdateUserCommand {
	return commands.UpdateUserCommand{
		PhoneNumber: r.PhoneNumber,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Password:    r.Password,
	}
}
