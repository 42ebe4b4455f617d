package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"tenderlink_backend/internal/apperrors"
	"tenderlink_backend/internal/auth"
	"tenderlink_backend/internal/config"
	"tenderlink_backend/internal/email"
	"tenderlink_backend/internal/logger"
	"tenderlink_backend/internal/models"
	"tenderlink_backend/internal/repositories"
	"tenderlink_backend/internal/services/dto"
)

const verificationTokenTTL = 24 * time.Hour

type AuthService interface {
	// Signup registers a user with a fresh verification token and default
	// notification preferences. A verification email failure does not fail
	// the signup; it is reported through SignupResponse.EmailSent.
	Signup(req *dto.SignupRequest) (*dto.SignupResponse, error)

	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyEmail(token string) error
}

type AuthServiceImpl struct {
	userRepo            repositories.UserRepository
	notificationService NotificationService
	emailProvider       email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	notificationService NotificationService,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:            userRepo,
		notificationService: notificationService,
		emailProvider:       emailProvider,
	}
}

func (s *AuthServiceImpl) Signup(req *dto.SignupRequest) (*dto.SignupResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	if err := validateUserTypes(req.UserType, req.BidderType); err != nil {
		return nil, err
	}

	// Duplicate email is a client error here, not a conflict: the route
	// contract maps existing email to 400.
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	verificationToken := generateRandomToken()
	expiry := time.Now().Add(verificationTokenTTL)

	user := &models.User{
		Email:                   req.Email,
		PasswordHash:            hashedPassword,
		CompanyName:             req.CompanyName,
		UserType:                req.UserType,
		BidderType:              req.BidderType,
		IsVerified:              false,
		VerificationToken:       verificationToken,
		VerificationTokenExpiry: &expiry,
		NotificationPrefs:       models.DefaultNotificationPreferences(),
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	response := &dto.SignupResponse{
		Message:   "Signup successful. Please verify your email address.",
		EmailSent: true,
	}

	// Signup is decoupled from email deliverability: the account stays, the
	// response reports the miss.
	if err := s.sendVerificationEmail(user, verificationToken); err != nil {
		logger.WithError(err).Warn("failed to send verification email", "user_id", user.ID)
		response.EmailSent = false
		response.Warning = "Verification email could not be sent"
	}

	if _, err := s.notificationService.CreateNotification(
		user.ID,
		repositories.NotificationTypeSignupComplete,
		"Welcome to TenderLink",
		fmt.Sprintf("Your %s account for %s was created. Verify your email to get started.", user.UserType, user.CompanyName),
		nil,
	); err != nil {
		logger.WithError(err).Warn("failed to create signup notification", "user_id", user.ID)
	}

	return response, nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, apperrors.ErrUserNotVerified
	}

	token, err := auth.GenerateToken(user.ID, string(user.UserType))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserDTO(user),
	}, nil
}

func (s *AuthServiceImpl) VerifyEmail(token string) error {
	if token == "" {
		return apperrors.ErrVerificationFailed
	}

	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrVerificationFailed
		}
		return apperrors.InternalError(err)
	}

	if user.IsVerified {
		// Token already consumed; repeating the click is harmless.
		return nil
	}

	if user.VerificationTokenExpiry == nil || time.Now().After(*user.VerificationTokenExpiry) {
		return apperrors.ErrVerificationFailed
	}

	if err := s.userRepo.VerifyUser(user.ID); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// ---------------- Helpers ----------------

func validateUserTypes(userType models.UserType, bidderType models.BidderType) error {
	switch userType {
	case models.UserTypeTender:
		if bidderType != "" {
			return apperrors.NewBadRequestError("bidderType is only valid for bidder accounts")
		}
	case models.UserTypeBidder:
		if bidderType == "" {
			return apperrors.NewBadRequestError("bidderType is required for bidder accounts")
		}
		if !models.ValidBidderType(bidderType) {
			return apperrors.ErrInvalidBidderType
		}
	default:
		return apperrors.ErrInvalidUserType
	}
	return nil
}

func (s *AuthServiceImpl) sendVerificationEmail(user *models.User, token string) error {
	cfg := config.GetConfig()
	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", cfg.App.BaseURL, token)

	return s.emailProvider.SendWithTemplate(email.TemplateVerification, email.TemplateData{
		"CompanyName": user.CompanyName,
		"VerifyURL":   verifyURL,
		"ExpiresIn":   "24 hours",
	}, &email.Email{
		To:      []string{user.Email},
		Subject: "Verify your TenderLink account",
	})
}

func generateRandomToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(bytes)
}
