package services

import (
	"fmt"
	"time"

	"logistik_backend/internal/auth"
	"logistik_backend/internal/email"
	"logistik_backend/internal/models"
	"logistik_backend/internal/repositories"
	"logistik_backend/internal/services/dto"
	"logistik_backend/pkg/apperrors"
)

// How long a reset token stays valid after it has been verified.
const verifiedResetWindow = 20 * time.Minute

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	ForgotPassword(emailAddr string) error
	VerifyResetToken(code string) error
	ResetPassword(code, newPassword string) error
	RefreshAccessToken(refreshToken string) (string, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokenRepo     repositories.TokenRepository
	tokens        *auth.TokenManager
	emailProvider email.Provider
	appName       string
	baseURL       string
	resetTTL      time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	tokens *auth.TokenManager,
	emailProvider email.Provider,
	appName, baseURL string,
	resetTTL time.Duration,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		tokens:        tokens,
		emailProvider: emailProvider,
		appName:       appName,
		baseURL:       baseURL,
		resetTTL:      resetTTL,
	}
}

// Register creates a user with a hashed password and an initial refresh
// token, then sends the welcome email. Nothing is hashed or written when the
// email is already taken.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.NewConflictError("an account exists with this email")
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// The id is generated up front so the refresh token can carry it.
	userID := models.NewID()
	refreshToken, err := s.tokens.Issue(userID, req.Email, auth.TokenKindRefresh)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		BaseModel:    models.BaseModel{ID: userID},
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: passwordHash,
		RefreshToken: &refreshToken,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.NewConflictError("an account exists with this email")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.emailProvider.Send(email.Welcome(s.appName, user.Email)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewUserResponse(user), nil
}

// Login verifies the credentials and issues a fresh access token. A refresh
// token is only minted when the user has none; an existing one is reused
// without any write.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("record does not exist")
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.ID, user.Email, auth.TokenKindAccess)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if user.RefreshToken == nil {
		refreshToken, err := s.tokens.Issue(user.ID, user.Email, auth.TokenKindRefresh)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if err := s.userRepo.SetRefreshToken(user.ID, &refreshToken); err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.RefreshToken = &refreshToken
	}

	return &dto.LoginResponse{
		ID:           user.ID,
		AccessToken:  accessToken,
		RefreshToken: *user.RefreshToken,
	}, nil
}

// ForgotPassword issues a reset token, persists it and emails the reset link.
func (s *AuthServiceImpl) ForgotPassword(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("record does not exist")
		}
		return apperrors.InternalError(err)
	}

	resetToken, err := s.tokens.Issue(user.ID, user.Email, auth.TokenKindReset)
	if err != nil {
		return apperrors.InternalError(err)
	}

	token := &models.Token{
		Code:      resetToken,
		Type:      models.TokenTypeReset,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.tokenRepo.Create(token); err != nil {
		return apperrors.InternalError(err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?t=%s", s.baseURL, resetToken)
	if err := s.emailProvider.Send(email.PasswordResetRequested(user.Email, resetURL)); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// VerifyResetToken marks a stored reset token as verified and shortens its
// expiry window. The signed subject must match the stored owner.
func (s *AuthServiceImpl) VerifyResetToken(code string) error {
	token, err := s.tokenRepo.FindByCode(code)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			return apperrors.NewNotFoundError("record does not exist")
		}
		return apperrors.InternalError(err)
	}

	if token.VerifiedAt != nil {
		return apperrors.NewInvalidStateError("reset token has been verified")
	}

	claims, err := s.tokens.Verify(code, auth.TokenKindReset)
	if err != nil {
		return apperrors.NewInvalidTokenError("invalid reset token")
	}
	if claims.UserID != token.UserID {
		return apperrors.ErrUnauthorized
	}

	now := time.Now()
	if err := s.tokenRepo.MarkVerified(token.ID, now, now.Add(verifiedResetWindow)); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// ResetPassword consumes a verified, unexpired reset token: the password is
// rehashed and the refresh token rotated, which invalidates prior sessions.
func (s *AuthServiceImpl) ResetPassword(code, newPassword string) error {
	token, err := s.tokenRepo.FindByCode(code)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			return apperrors.NewNotFoundError("record does not exist")
		}
		return apperrors.InternalError(err)
	}

	if token.VerifiedAt == nil {
		return apperrors.NewInvalidStateError("reset token has not been verified")
	}
	if token.ExpiresAt.Before(time.Now()) {
		return apperrors.NewExpiredError("reset token has expired")
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("record does not exist")
		}
		return apperrors.InternalError(err)
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	refreshToken, err := s.tokens.Issue(user.ID, user.Email, auth.TokenKindRefresh)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateCredentials(user.ID, passwordHash, refreshToken); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.tokenRepo.DeleteByCode(code); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.Send(email.PasswordResetDone(user.Email)); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// RefreshAccessToken mints a new access token for the holder of a valid
// refresh token. The refresh token itself is left unchanged.
func (s *AuthServiceImpl) RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := s.tokens.Verify(refreshToken, auth.TokenKindRefresh)
	if err != nil {
		return "", apperrors.NewInvalidTokenError("invalid refresh token")
	}

	user, err := s.userRepo.FindByRefreshToken(refreshToken, claims.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.NewNotFoundError("record does not exist")
		}
		return "", apperrors.InternalError(err)
	}

	accessToken, err := s.tokens.Issue(user.ID, user.Email, auth.TokenKindAccess)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	return accessToken, nil
}
