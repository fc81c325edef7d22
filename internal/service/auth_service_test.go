package service_test

import (
	"context"
	"testing"

	"github.com/blog-platform-api/internal/models"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	req := &models.RegisterRequest{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Password:  "s3cret-pass",
	}

	user, fieldErrs, err := env.services.Auth.Register(ctx, req)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if len(fieldErrs) != 0 {
		t.Fatalf("expected no field errors, got %+v", fieldErrs)
	}
	if user.ID == "" {
		t.Fatal("expected a generated user id")
	}

	loggedIn, token, err := env.services.Auth.Login(ctx, "alice", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("login returned a different user: %s vs %s", loggedIn.ID, user.ID)
	}
	if token == "" {
		t.Fatal("expected an access token")
	}

	claims, err := env.services.Auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token carries user id %q, want %q", claims.UserID, user.ID)
	}
	if claims.Username != "alice" {
		t.Errorf("token carries username %q, want alice", claims.Username)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	env := newTestEnv()
	env.addUser("user-1", "alice")

	req := &models.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "s3cret-pass",
	}

	user, fieldErrs, err := env.services.Auth.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user != nil {
		t.Error("no user should be created on a duplicate username")
	}
	if len(fieldErrs) != 1 || fieldErrs[0].Field != "username" {
		t.Errorf("expected a username error, got %+v", fieldErrs)
	}
}

func TestAuthService_Register_InvalidPayload(t *testing.T) {
	env := newTestEnv()

	req := &models.RegisterRequest{
		Username: "a",
		Email:    "not-an-email",
		Password: "short",
	}

	_, fieldErrs, err := env.services.Auth.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if len(fieldErrs) != 3 {
		t.Errorf("expected errors on username, email and password, got %+v", fieldErrs)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	if _, _, err := env.services.Auth.Register(ctx, &models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, _, err := env.services.Auth.Login(ctx, "alice", "wrong"); err == nil {
		t.Error("wrong password should fail login")
	}
	if _, _, err := env.services.Auth.Login(ctx, "nobody", "s3cret-pass"); err == nil {
		t.Error("unknown username should fail login")
	}
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	env := newTestEnv()

	if _, err := env.services.Auth.ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token should not validate")
	}
}
