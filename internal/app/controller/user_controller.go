package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bottic/shop-backend/internal/app/dto"
	"github.com/bottic/shop-backend/internal/app/service"
	apperrors "github.com/bottic/shop-backend/internal/errors"
	"github.com/bottic/shop-backend/internal/middleware"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// CreateProfile attaches a profile to the authenticated user. A second
// create for the same user is rejected.
// POST /api/v1/users/me/profile
func (ctrl *UserController) CreateProfile(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "authentication required")
		return
	}

	var req dto.ProfileCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid profile request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "invalid profile input")
		return
	}

	profile, err := ctrl.userService.CreateProfile(userID, req)
	if err != nil {
		if errors.Is(err, service.ErrProfileExists) {
			apperrors.Conflict(c, apperrors.UserProfileExists, "user already has a profile")
			return
		}
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.UserNotFound, "user not found")
			return
		}
		log.Error("Failed to create profile", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create profile")
		return
	}

	log.Info("Profile created", map[string]interface{}{
		"user_id":    userID,
		"profile_id": profile.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Profile created successfully",
		"profile": dto.NewProfileResponse(profile),
	})
}

// GetProfile returns the authenticated user's profile
// GET /api/v1/users/me/profile
func (ctrl *UserController) GetProfile(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "authentication required")
		return
	}

	profile, err := ctrl.userService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "profile not found")
			return
		}
		log.Error("Failed to fetch profile", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get profile")
		return
	}

	c.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}

// DeleteUser removes a user account (admin only). Profile, cart and
// reviews go with it; orders survive with user_id set to null.
// DELETE /api/v1/admin/users/:id
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "invalid user id")
		return
	}

	if err := ctrl.userService.DeleteUser(uint(id)); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.UserNotFound, "user not found")
			return
		}
		log.Error("Failed to delete user", err, map[string]interface{}{
			"user_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete user")
		return
	}

	log.Info("User deleted", map[string]interface{}{
		"user_id": id,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}
