package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prajith-ops/Stayelo/internal/models"
	"github.com/prajith-ops/Stayelo/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func Signup(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name     string `json:"name" binding:"required"`
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
			Phone    string `json:"phone"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		user := &models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Phone:    req.Phone,
		}

		created, token, err := u.Signup(c.Request.Context(), user)
		if errors.Is(err, models.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(gin.H{
			"token": token,
			"user":  created,
		}, "Account created successfully"))
	}
}

func Login(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload"))
			return
		}

		user, token, err := u.Login(c.Request.Context(), req.Email, req.Password)
		if errors.Is(err, services.ErrAccountInactive) {
			c.JSON(http.StatusForbidden, models.ErrorResponse(err.Error()))
			return
		}
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid email or password"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"token": token,
			"user":  user,
		}, "Logged in successfully"))
	}
}

func GoogleLogin(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Credential string `json:"credential" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("google credential is required"))
			return
		}

		user, token, err := u.GoogleLogin(c.Request.Context(), req.Credential)
		if errors.Is(err, services.ErrAccountInactive) {
			c.JSON(http.StatusForbidden, models.ErrorResponse(err.Error()))
			return
		}
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"token": token,
			"user":  user,
		}, "Logged in successfully"))
	}
}

func ForgotPassword(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("a valid email is required"))
			return
		}

		token, err := u.ForgotPassword(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to process request"))
			return
		}

		// No mail transport is configured, so the token travels in the
		// response body. The message stays the same either way.
		var data interface{}
		if token != "" {
			data = gin.H{"resetToken": token}
		}
		c.JSON(http.StatusOK, models.SuccessResponse(data,
			"If the email is registered, a reset link has been sent"))
	}
}

func ResetPassword(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Token    string `json:"token" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("token and password are required"))
			return
		}

		if err := u.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Password reset successful"))
	}
}

func GetProfile(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid user ID in token"))
			return
		}

		user, err := u.GetProfile(c.Request.Context(), userID)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("profile not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(user, ""))
	}
}

// UpdateProfile handles the multipart profile form. The optional profilePic
// file lands in the uploads dir and is served from /uploads.
func UpdateProfile(u *services.UserService, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid user ID in token"))
			return
		}

		update := map[string]interface{}{}
		if name := c.PostForm("name"); name != "" {
			update["name"] = name
		}
		if phone := c.PostForm("phone"); phone != "" {
			update["phone"] = phone
		}

		if file, err := c.FormFile("profilePic"); err == nil {
			filename := uuid.New().String() + filepath.Ext(file.Filename)
			dst := filepath.Join(uploadDir, filename)
			if err := c.SaveUploadedFile(file, dst); err != nil {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to store profile picture"))
				return
			}
			update["profile_pic"] = "/uploads/" + filename
		}

		user, err := u.UpdateProfile(c.Request.Context(), userID, update)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("profile not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(user, "Profile updated successfully"))
	}
}

func ListCustomers(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := u.ListCustomers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		if customers == nil {
			customers = []*models.User{}
		}

		c.JSON(http.StatusOK, models.SuccessResponse(customers, ""))
	}
}

func UpdateCustomerStatus(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		var req struct {
			Status models.UserStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("status is required"))
			return
		}

		user, err := u.UpdateCustomerStatus(c.Request.Context(), id, req.Status)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("customer not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(user, "Customer status updated"))
	}
}

func DeleteCustomer(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		err := u.DeleteCustomer(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("customer not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Customer removed"))
	}
}
