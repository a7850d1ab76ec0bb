package helpers

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	AvatarFolder = "avatars"
	RoomFolder   = "rooms"

	TokenTTL = 24 * time.Hour

	// Google publishes its ID-token signing keys here.
	googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"
)

// SignToken issues the bearer token returned at login/signup.
func SignToken(userID, email, name, role, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret is not configured")
	}

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	return claims, nil
}

// GoogleClaims are the ID-token fields used to upsert a user at google-login.
type GoogleClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	jwt.RegisteredClaims
}

// ValidateGoogleToken checks a Google ID token against Google's JWKS.
func ValidateGoogleToken(idToken, clientID string) (*GoogleClaims, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jwks, err := keyfunc.Get(googleJWKSURL, keyfunc.Options{
		Ctx: ctx,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google JWKS: %v", err)
	}
	defer jwks.EndBackground()

	token, err := jwt.ParseWithClaims(idToken, &GoogleClaims{}, jwks.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("google token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*GoogleClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired google token")
	}

	if clientID != "" {
		audOK := false
		for _, aud := range claims.Audience {
			if aud == clientID {
				audOK = true
				break
			}
		}
		if !audOK {
			return nil, errors.New("google token audience mismatch")
		}
	}

	if claims.Email == "" {
		return nil, errors.New("google token is missing an email claim")
	}

	return claims, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %v", err)
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`\d`).MatchString(password)
	hasSpecial := regexp.MustCompile(`[@$!%*?&]`).MatchString(password)
	return hasLower && hasUpper && hasNumber && hasSpecial
}

// StringTrim normalizes path/query ids which sometimes arrive quoted.
func StringTrim(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"'")
}

// UploadImages pushes room images to Cloudinary and returns their URLs.
func UploadImages(ctx context.Context, cld *cloudinary.Cloudinary, imageNames []string, imagePath string) ([]string, error) {
	var urls []string

	for _, filePath := range imageNames {
		if strings.TrimSpace(filePath) == "" {
			continue
		}
		uploadResult, err := cld.Upload.Upload(ctx, filePath, uploader.UploadParams{
			Folder: imagePath,
			Tags:   []string{"stayelo"},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upload image %s: %v", filePath, err)
		}
		urls = append(urls, uploadResult.SecureURL)
	}

	return urls, nil
}
