package services

import (
	"logistik_backend/internal/models"
	"logistik_backend/internal/repositories"
	"logistik_backend/internal/services/dto"
	"logistik_backend/pkg/apperrors"
)

type UserService interface {
	GetProfile(userID string) (*dto.UserResponse, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	Logout(userID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// UpdateProfile applies the provided fields; absent fields keep their
// current values.
func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}

	if err := s.userRepo.UpdateProfile(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("record does not exist")
		}
		return nil, apperrors.InternalError(err)
	}

	return dto.NewUserResponse(user), nil
}

// Logout clears the stored refresh token, ending the session.
func (s *UserServiceImpl) Logout(userID string) error {
	if err := s.userRepo.SetRefreshToken(userID, nil); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("record does not exist")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) findUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("record does not exist")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
