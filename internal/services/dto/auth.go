package dto

import (
	"time"

	"tenderlink_backend/internal/models"
)

// SignupRequest - registration input. BidderType is enum-checked in the
// service because it is required only when UserType is bidder.
type SignupRequest struct {
	Email       string            `json:"email" binding:"required,email"`
	Password    string            `json:"password" binding:"required"`
	CompanyName string            `json:"companyName" binding:"required"`
	UserType    models.UserType   `json:"userType" binding:"required,oneof=tender bidder"`
	BidderType  models.BidderType `json:"bidderType,omitempty" binding:"omitempty,biddertype"`
}

// SignupResponse - signup result. EmailSent is false when the verification
// email could not be delivered; the account still exists.
type SignupResponse struct {
	Message   string `json:"message"`
	EmailSent bool   `json:"emailSent"`
	Warning   string `json:"warning,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type UserDTO struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	CompanyName string            `json:"companyName"`
	UserType    models.UserType   `json:"userType"`
	BidderType  models.BidderType `json:"bidderType,omitempty"`
	IsVerified  bool              `json:"isVerified"`
	CreatedAt   time.Time         `json:"createdAt"`
}

func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		CompanyName: user.CompanyName,
		UserType:    user.UserType,
		BidderType:  user.BidderType,
		IsVerified:  user.IsVerified,
		CreatedAt:   user.CreatedAt,
	}
}
