package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prajith-ops/Stayelo/internal/helpers"
	"github.com/prajith-ops/Stayelo/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is inactive")
)

type UserService struct {
	userRepo       models.UserRepo
	jwtSecret      string
	googleClientID string
}

func NewUserService(userRepo models.UserRepo, jwtSecret, googleClientID string) *UserService {
	return &UserService{
		userRepo:       userRepo,
		jwtSecret:      jwtSecret,
		googleClientID: googleClientID,
	}
}

func (us *UserService) Signup(ctx context.Context, user *models.User) (*models.User, string, error) {
	if err := models.Validate.Struct(user); err != nil {
		return nil, "", err
	}

	if !helpers.IsPasswordStrong(user.Password) {
		return nil, "", fmt.Errorf("password is not strong enough")
	}

	hash, err := helpers.HashPassword(user.Password)
	if err != nil {
		return nil, "", err
	}
	user.Password = hash
	user.Role = models.RoleUser

	created, err := us.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := us.issueToken(created)
	if err != nil {
		return nil, "", err
	}

	return created, token, nil
}

func (us *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, "", fmt.Errorf("invalid email format: %v", err)
	}
	if err := models.Validate.Var(password, "required"); err != nil {
		return nil, "", fmt.Errorf("password is required")
	}

	user, err := us.userRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("authentication failed: %v", err)
	}

	if !helpers.CheckPassword(user.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, "", ErrAccountInactive
	}

	token, err := us.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GoogleLogin validates a Google ID token and signs the matching user in,
// creating the account on first login.
func (us *UserService) GoogleLogin(ctx context.Context, idToken string) (*models.User, string, error) {
	if idToken == "" {
		return nil, "", fmt.Errorf("google credential is required")
	}

	gc, err := helpers.ValidateGoogleToken(idToken, us.googleClientID)
	if err != nil {
		return nil, "", err
	}

	user, err := us.userRepo.GetUserByEmail(ctx, gc.Email)
	if errors.Is(err, models.ErrNotFound) {
		user = &models.User{
			Name:       gc.Name,
			Email:      gc.Email,
			ProfilePic: gc.Picture,
			Role:       models.RoleUser,
		}
		user, err = us.userRepo.CreateUser(ctx, user)
	}
	if err != nil {
		return nil, "", fmt.Errorf("google login failed: %v", err)
	}

	if !user.IsActive() {
		return nil, "", ErrAccountInactive
	}

	token, err := us.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ForgotPassword issues a reset token for the account. A missing account is
// not an error; the caller responds identically either way so addresses
// cannot be probed.
func (us *UserService) ForgotPassword(ctx context.Context, email string) (string, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("invalid email format: %v", err)
	}

	user, err := us.userRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up account: %v", err)
	}

	token := uuid.New().String()
	_, err = us.userRepo.UpdateUser(ctx, user.ID, map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": time.Now().Add(time.Hour),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store reset token: %v", err)
	}

	return token, nil
}

func (us *UserService) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" {
		return fmt.Errorf("reset token is required")
	}
	if !helpers.IsPasswordStrong(password) {
		return fmt.Errorf("password is not strong enough")
	}

	user, err := us.userRepo.GetUserByResetToken(ctx, token)
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("invalid or expired reset token")
	}
	if err != nil {
		return fmt.Errorf("failed to look up reset token: %v", err)
	}

	if time.Now().After(user.ResetTokenExpiry) {
		return fmt.Errorf("invalid or expired reset token")
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = us.userRepo.UpdateUser(ctx, user.ID, map[string]interface{}{
		"password":           hash,
		"reset_token":        "",
		"reset_token_expiry": time.Time{},
	})
	if err != nil {
		return fmt.Errorf("failed to reset password: %v", err)
	}
	return nil
}

func (us *UserService) GetProfile(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := us.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.User, error) {
	if len(update) == 0 {
		return nil, fmt.Errorf("no profile fields to update")
	}

	// Profile edits never touch credentials or role.
	delete(update, "password")
	delete(update, "role")
	delete(update, "email")

	return us.userRepo.UpdateUser(ctx, id, update)
}

func (us *UserService) ListCustomers(ctx context.Context) ([]*models.User, error) {
	return us.userRepo.ListCustomers(ctx)
}

func (us *UserService) UpdateCustomerStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) (*models.User, error) {
	if status != models.UserActive && status != models.UserInactive {
		return nil, fmt.Errorf("status must be either %q or %q", models.UserActive, models.UserInactive)
	}

	return us.userRepo.UpdateUser(ctx, id, map[string]interface{}{"status": status})
}

func (us *UserService) DeleteCustomer(ctx context.Context, id primitive.ObjectID) error {
	return us.userRepo.DeleteUser(ctx, id)
}

func (us *UserService) issueToken(user *models.User) (string, error) {
	token, err := helpers.SignToken(user.ID.Hex(), user.Email, user.Name, user.Role, us.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}
	return token, nil
}
