package services

import (
	"fmt"
	"time"

	"github.com/servetisikli/takstore-backend/internal/auth"
	"github.com/servetisikli/takstore-backend/internal/email"
	"github.com/servetisikli/takstore-backend/internal/logger"
	"github.com/servetisikli/takstore-backend/internal/models"
	"github.com/servetisikli/takstore-backend/internal/repositories"
	"github.com/servetisikli/takstore-backend/internal/services/dto"
	"github.com/servetisikli/takstore-backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.RegisterOutcome, error)
	VerifyEmail(token string) error
	ResendVerification(email string) error
	Login(req *dto.LoginRequest) (*dto.UserProfile, *dto.SessionTokens, error)
	RefreshAccessToken(refreshToken string) (string, error)
	ForgotPassword(email string) error
	ResetPassword(token, password, confirmPassword string) error
}

// AuthConfig carries the secrets and URLs the auth workflow needs.
type AuthConfig struct {
	AccessSecret  string
	RefreshSecret string
	// APIBaseURL builds the verification link served by this backend.
	APIBaseURL string
	// FrontendURL builds the password-reset link served by the storefront.
	FrontendURL string
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	cfg           AuthConfig
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider, cfg AuthConfig) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		cfg:           cfg,
	}
}

// Register creates an unverified account and mails a verification token.
// An existing unverified account gets a fresh verification mail instead of a
// duplicate record; an existing verified account is a conflict.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.RegisterOutcome, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	existing, err := s.userRepo.FindByEmail(req.Email)
	if err != nil && !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if existing != nil {
		if existing.IsEmailVerified {
			return nil, apperrors.ErrUserAlreadyExists
		}
		if err := s.reissueVerification(existing); err != nil {
			return nil, err
		}
		return &dto.RegisterOutcome{Resent: true}, nil
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	plainToken, hashedToken, err := auth.GenerateOpaqueToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	expires := auth.OpaqueTokenExpiry()

	user := &models.User{
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		Email:                    req.Email,
		PasswordHash:             hashedPassword,
		EmailVerificationToken:   hashedToken,
		EmailVerificationExpires: &expires,
	}

	if err := s.userRepo.Create(user); err != nil {
		// A concurrent registration may win the unique-email race.
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendVerificationEmail(user, plainToken)

	return &dto.RegisterOutcome{Resent: false}, nil
}

// VerifyEmail consumes a verification token. Tokens are single-use: the
// stored hash is cleared on success, so a second submit fails the lookup.
func (s *AuthServiceImpl) VerifyEmail(token string) error {
	user, err := s.userRepo.FindByVerificationToken(auth.HashToken(token), time.Now())
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidOrExpiredToken
		}
		return apperrors.InternalError(err)
	}

	user.IsEmailVerified = true
	user.ClearVerificationToken()

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ResendVerification regenerates the verification token. Only the latest
// hash is stored, so the previous token is implicitly invalidated.
func (s *AuthServiceImpl) ResendVerification(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if user.IsEmailVerified {
		return apperrors.ErrEmailAlreadyVerified
	}

	return s.reissueVerification(user)
}

// Login checks credentials and issues the session token pair. An unverified
// email is reported distinctly from bad credentials.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.UserProfile, *dto.SessionTokens, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsEmailVerified {
		return nil, nil, apperrors.ErrEmailNotVerified
	}

	tokens, err := s.issueSessionTokens(user)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	return dto.NewUserProfile(user), tokens, nil
}

// RefreshAccessToken validates the refresh token and issues a new access
// token from its claims.
func (s *AuthServiceImpl) RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := auth.ParseToken(refreshToken, s.cfg.RefreshSecret)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	accessToken, err := auth.GenerateAccessToken(claims.UserID, claims.IsAdmin, s.cfg.AccessSecret)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return accessToken, nil
}

// ForgotPassword issues a reset token and mails the reset link.
// Unknown emails are reported as not found; the storefront branches on the
// distinction.
func (s *AuthServiceImpl) ForgotPassword(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	plainToken, hashedToken, err := auth.GenerateOpaqueToken()
	if err != nil {
		return apperrors.InternalError(err)
	}
	expires := auth.OpaqueTokenExpiry()

	user.ResetPasswordToken = hashedToken
	user.ResetPasswordExpires = &expires

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	s.sendPasswordResetEmail(user, plainToken)

	return nil
}

// ResetPassword consumes a reset token and sets the new password.
func (s *AuthServiceImpl) ResetPassword(token, password, confirmPassword string) error {
	if password != confirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	user, err := s.userRepo.FindByResetToken(auth.HashToken(token), time.Now())
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidOrExpiredToken
		}
		return apperrors.InternalError(err)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword
	user.ClearResetToken()

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// --- helpers ---

// issueSessionTokens signs the access/refresh pair for a user.
func (s *AuthServiceImpl) issueSessionTokens(user *models.User) (*dto.SessionTokens, error) {
	accessToken, err := auth.GenerateAccessToken(user.ID, user.IsAdmin, s.cfg.AccessSecret)
	if err != nil {
		return nil, err
	}
	refreshToken, err := auth.GenerateRefreshToken(user.ID, user.IsAdmin, s.cfg.RefreshSecret)
	if err != nil {
		return nil, err
	}
	return &dto.SessionTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// reissueVerification stores a fresh token hash and mails the plain token.
func (s *AuthServiceImpl) reissueVerification(user *models.User) error {
	plainToken, hashedToken, err := auth.GenerateOpaqueToken()
	if err != nil {
		return apperrors.InternalError(err)
	}
	expires := auth.OpaqueTokenExpiry()

	user.EmailVerificationToken = hashedToken
	user.EmailVerificationExpires = &expires

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	s.sendVerificationEmail(user, plainToken)
	return nil
}

// sendVerificationEmail dispatches the verification mail best-effort.
func (s *AuthServiceImpl) sendVerificationEmail(user *models.User, plainToken string) {
	if s.emailProvider == nil {
		return
	}

	verificationURL := fmt.Sprintf("%s/api/user/verify-email/%s", s.cfg.APIBaseURL, plainToken)
	to, firstName, lastName := user.Email, user.FirstName, user.LastName

	go func() {
		if err := s.emailProvider.SendVerification(to, firstName, lastName, verificationURL); err != nil {
			logger.Error("Failed to send verification email", "error", err, "email", to)
		}
	}()
}

// sendPasswordResetEmail dispatches the reset mail best-effort.
func (s *AuthServiceImpl) sendPasswordResetEmail(user *models.User, plainToken string) {
	if s.emailProvider == nil {
		return
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.cfg.FrontendURL, plainToken)
	to, firstName, lastName := user.Email, user.FirstName, user.LastName

	go func() {
		if err := s.emailProvider.SendPasswordReset(to, firstName, lastName, resetURL); err != nil {
			logger.Error("Failed to send password reset email", "error", err, "email", to)
		}
	}()
}
