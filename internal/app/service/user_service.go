package service

import (
	"errors"

	"github.com/bottic/shop-backend/internal/app/dto"
	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/bottic/shop-backend/internal/app/repository"
	"github.com/bottic/shop-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProfileExists   = errors.New("user already has a profile")
	ErrProfileNotFound = errors.New("profile not found")
)

type UserService interface {
	CreateProfile(userID uint, req dto.ProfileCreate) (*model.UserProfile, error)
	GetProfile(userID uint) (*model.UserProfile, error)
	DeleteUser(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateProfile creates the user's profile. One profile per user is an
// application rule, not a stored constraint, so it is checked here.
func (s *userService) CreateProfile(userID uint, req dto.ProfileCreate) (*model.UserProfile, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	existing, err := s.userRepo.FindProfileByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing profile", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	if existing != nil {
		logger.Warn("Profile creation rejected: profile exists", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrProfileExists
	}

	profile := &model.UserProfile{
		UserID:    userID,
		Username:  req.Username,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
	}

	if err := s.userRepo.CreateProfile(profile); err != nil {
		return nil, err
	}

	logger.Info("Profile created", map[string]interface{}{
		"user_id":    userID,
		"profile_id": profile.ID,
	})
	return profile, nil
}

func (s *userService) GetProfile(userID uint) (*model.UserProfile, error) {
	profile, err := s.userRepo.FindProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// DeleteUser removes the user. The user's orders survive with a NULL user
// reference; cart items, reviews and the profile go with the user.
func (s *userService) DeleteUser(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.userRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("User deleted", map[string]interface{}{
		"user_id": id,
	})
	return nil
}
