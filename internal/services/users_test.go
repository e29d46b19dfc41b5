package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dinefind/dinefind/internal/model"
)

func TestVerifyCredentials(t *testing.T) {
	fs := newFakeStore()
	fs.users["u1"] = &model.User{UserID: "u1", Password: "sesame"}
	svc := NewUserService(fs)
	ctx := context.Background()

	ok, err := svc.VerifyCredentials(ctx, "u1", "sesame")
	if err != nil || !ok {
		t.Fatalf("valid credentials: ok=%v err=%v", ok, err)
	}
	ok, err = svc.VerifyCredentials(ctx, "u1", "wrong")
	if err != nil || ok {
		t.Fatalf("wrong password: ok=%v err=%v", ok, err)
	}
	// Unknown user fails closed: deterministic false, no fault.
	ok, err = svc.VerifyCredentials(ctx, "ghost", "sesame")
	if err != nil || ok {
		t.Fatalf("unknown user must fail closed: ok=%v err=%v", ok, err)
	}
}

func TestDisplayName(t *testing.T) {
	fs := newFakeStore()
	fs.users["u1"] = &model.User{UserID: "u1", FirstName: "Grace", LastName: "Hopper"}
	svc := NewUserService(fs)

	name, err := svc.DisplayName(context.Background(), "u1")
	if err != nil || name != "Grace Hopper" {
		t.Fatalf("DisplayName: got %q err=%v", name, err)
	}
	if _, err := svc.DisplayName(context.Background(), "ghost"); !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}
