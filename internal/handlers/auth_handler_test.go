package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prajith-ops/Stayelo/internal/models"
	"github.com/prajith-ops/Stayelo/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubUserRepo struct {
	user *models.User
}

func (s *stubUserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.BeforeCreate()
	s.user = user
	return user, nil
}

func (s *stubUserRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, models.ErrNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, models.ErrNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) GetUserByResetToken(ctx context.Context, token string) (*models.User, error) {
	if s.user == nil || token == "" || s.user.ResetToken != token {
		return nil, models.ErrNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) UpdateUser(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, models.ErrNotFound
	}
	if token, ok := update["reset_token"].(string); ok {
		s.user.ResetToken = token
	}
	if expiry, ok := update["reset_token_expiry"].(time.Time); ok {
		s.user.ResetTokenExpiry = expiry
	}
	return s.user, nil
}

func (s *stubUserRepo) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if s.user == nil || s.user.ID != id {
		return models.ErrNotFound
	}
	s.user = nil
	return nil
}

func (s *stubUserRepo) ListCustomers(ctx context.Context) ([]*models.User, error) {
	if s.user == nil || s.user.Role == models.RoleAdmin {
		return nil, nil
	}
	return []*models.User{s.user}, nil
}

func forgotPasswordRequest(t *testing.T, repo *stubUserRepo, email string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := services.NewUserService(repo, "handler-test-secret", "")
	r := gin.New()
	r.POST("/api/auth/forgot-password", ForgotPassword(svc))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password",
		strings.NewReader(`{"email":"`+email+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// The reset token travels in the response body; there is no mail transport.
func TestForgotPasswordReturnsResetToken(t *testing.T) {
	repo := &stubUserRepo{}
	_, err := repo.CreateUser(context.Background(), &models.User{
		Name:  "Asha Nair",
		Email: "asha@example.com",
	})
	require.NoError(t, err)

	w := forgotPasswordRequest(t, repo, "asha@example.com")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response must carry the reset token")
	token, _ := data["resetToken"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, repo.user.ResetToken, token, "returned token must match the stored one")
}

func TestForgotPasswordUnknownEmailKeepsSameMessage(t *testing.T) {
	known := forgotPasswordRequest(t, &stubUserRepo{user: &models.User{
		ID:    primitive.NewObjectID(),
		Email: "asha@example.com",
	}}, "asha@example.com")
	unknown := forgotPasswordRequest(t, &stubUserRepo{}, "nobody@example.com")

	require.Equal(t, http.StatusOK, unknown.Code)

	var knownResp, unknownResp models.ApiResponse
	require.NoError(t, json.Unmarshal(known.Body.Bytes(), &knownResp))
	require.NoError(t, json.Unmarshal(unknown.Body.Bytes(), &unknownResp))

	assert.Equal(t, knownResp.Message, unknownResp.Message)
	assert.Nil(t, unknownResp.Data)
}
