package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	userId := uuid.New()

	tokenString, err := CreateToken(userId, "traveler@example.com")
	if err != nil {
		t.Fatalf("creating token: %v", err)
	}

	claims, err := ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("validating token: %v", err)
	}
	if claims.UserID != userId.String() {
		t.Fatalf("user_id = %s, want %s", claims.UserID, userId)
	}
	if claims.Email != "traveler@example.com" {
		t.Fatalf("email = %s, want traveler@example.com", claims.Email)
	}
}

func TestSecretIsReadAtCallTime(t *testing.T) {
	// The secret may only appear in the environment after package init
	// (godotenv loads .env from main). Both signing and verification must
	// pick up the current value.
	t.Setenv("JWT_SECRET", "boot-secret")

	tokenString, err := CreateToken(uuid.New(), "traveler@example.com")
	if err != nil {
		t.Fatalf("creating token: %v", err)
	}
	if _, err := ValidateToken(tokenString); err != nil {
		t.Fatalf("token signed with the current secret must verify: %v", err)
	}

	t.Setenv("JWT_SECRET", "rotated-secret")
	if _, err := ValidateToken(tokenString); !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Fatalf("err = %v, want %v after secret rotation", err, jwt.ErrTokenSignatureInvalid)
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	claims := &Claims{
		UserID: uuid.NewString(),
		Email:  "traveler@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey())
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := ValidateToken(tokenString); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("err = %v, want %v", err, jwt.ErrTokenExpired)
	}
}

func TestForeignKeySignatureIsRejected(t *testing.T) {
	claims := &Claims{
		UserID: uuid.NewString(),
		Email:  "traveler@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := ValidateToken(tokenString); !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Fatalf("err = %v, want %v", err, jwt.ErrTokenSignatureInvalid)
	}
}
