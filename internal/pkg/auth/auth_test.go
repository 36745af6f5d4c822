package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	BcryptCost = bcrypt.MinCost
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if h1 == h2 {
		t.Errorf("equal passwords produced equal hashes")
	}
	if strings.Contains(h1, "secret1") {
		t.Errorf("hash contains plaintext")
	}
	if !CheckPassword(h1, "secret1") || !CheckPassword(h2, "secret1") {
		t.Errorf("CheckPassword() = false for correct password")
	}
	if CheckPassword(h1, "secret2") {
		t.Errorf("CheckPassword() = true for wrong password")
	}
}

func TestCheckPasswordOrDummy(t *testing.T) {
	if CheckPasswordOrDummy("", "anything") {
		t.Errorf("CheckPasswordOrDummy(empty hash) = true, want false")
	}
	h, _ := HashPassword("pw1234")
	if !CheckPasswordOrDummy(h, "pw1234") {
		t.Errorf("CheckPasswordOrDummy() = false for correct password")
	}
}

func TestDummyHashMatchesCost(t *testing.T) {
	h, _ := HashPassword("pw1234")
	realCost, err := bcrypt.Cost([]byte(h))
	if err != nil {
		t.Fatalf("bcrypt.Cost(real) error = %v", err)
	}
	got, err := bcrypt.Cost(dummyHash())
	if err != nil {
		t.Fatalf("bcrypt.Cost(dummy) error = %v", err)
	}
	if got != BcryptCost || got != realCost {
		t.Errorf("dummy hash cost = %d, want %d (real hash cost %d)", got, BcryptCost, realCost)
	}
}

func newTestJWT() *JWTService {
	return NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "mentorbridge-test"})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestJWT()
	user := &models.User{ID: "u-1", Email: "ada@example.com", Name: "Ada", RoleType: models.RoleMentor}

	token, expiresIn, err := svc.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims() error = %v", err)
	}
	if claims.UserID != "u-1" || claims.RoleType != "Mentor" || claims.Name != "Ada" {
		t.Errorf("claims = %+v, want user u-1 Mentor Ada", claims)
	}
}

func TestTokenExpired(t *testing.T) {
	svc := newTestJWT()
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := svc.GenerateAccessToken(&models.User{ID: "u-1", Email: "a@b.co", RoleType: models.RoleStudent})
	if err != nil {
		t.Fatal(err)
	}

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, _, _ := newTestJWT().GenerateAccessToken(&models.User{ID: "u-1", Email: "a@b.co", RoleType: models.RoleStudent})
	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour, TokenIssuer: "mentorbridge-test"})

	if _, err := other.ValidateToken(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"abc.def.ghi", "abc.def.ghi", false},
		{"", "", true},
		{"Bearer ", "", true},
		{"Basic dXNlcg==", "", true},
	}
	for _, tt := range tests {
		got, err := ExtractBearerToken(tt.header)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ExtractBearerToken(%q) = %q, %v; want %q, err=%v", tt.header, got, err, tt.want, tt.wantErr)
		}
	}
}
