package authengine

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestResetRequestUnknownEmail(t *testing.T) {
	engine := newTestEngine(t, newTestClock())
	ctx := context.Background()

	result, err := engine.RequestPasswordReset(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("reset request failed: %v", err)
	}
	if !result.Success {
		t.Fatal("reset request for unknown email reported failure")
	}
	if result.Token != "" {
		t.Fatal("unknown email received a token")
	}
	if result.Message != "If the email exists, a reset link has been sent" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestResetRequestAntiEnumeration(t *testing.T) {
	engine := newTestEngine(t, newTestClock())
	ctx := context.Background()

	if _, err := engine.Register(ctx, "Ann", "ann@example.com", "password123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	known, errKnown := engine.RequestPasswordReset(ctx, "ann@example.com")
	unknown, errUnknown := engine.RequestPasswordReset(ctx, "nobody@example.com")

	// Apart from the out-of-band token, the two responses must be
	// identical.
	if errKnown != nil || errUnknown != nil {
		t.Fatalf("unexpected errors: %v / %v", errKnown, errUnknown)
	}
	if known.Success != unknown.Success || known.Message != unknown.Message {
		t.Fatalf("responses diverge: %+v vs %+v", known.Result, unknown.Result)
	}
	if known.Token == "" {
		t.Fatal("known account received no token")
	}
}

func TestResetRoundTrip(t *testing.T) {
	engine := newTestEngine(t, newTestClock())
	ctx := context.Background()

	if _, err := engine.Register(ctx, "Ann", "ann@example.com", "old-password"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	req, err := engine.RequestPasswordReset(ctx, "ann@example.com")
	if err != nil {
		t.Fatalf("reset request failed: %v", err)
	}

	result, err := engine.ResetPassword(ctx, req.Token, "new-password")
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if !result.Success || result.Message != "Password reset successfully" {
		t.Fatalf("unexpected result: %+v", result)
	}

	// Old password out, new password in.
	if _, err := engine.Login(ctx, "ann@example.com", "old-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password still works: %v", err)
	}
	login, err := engine.Login(ctx, "ann@example.com", "new-password")
	if err != nil || !login.Success {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestResetTokenSingleUse(t *testing.T) {
	engine := newTestEngine(t, newTestClock())
	ctx := context.Background()

	if _, err := engine.Register(ctx, "Ann", "ann@example.com", "old-password"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	req, err := engine.RequestPasswordReset(ctx, "ann@example.com")
	if err != nil {
		t.Fatalf("reset request failed: %v", err)
	}
	if _, err := engine.ResetPassword(ctx, req.Token, "new-password"); err != nil {
		t.Fatalf("first redemption failed: %v", err)
	}

	result, err := engine.ResetPassword(ctx, req.Token, "another-password")
	if !errors.Is(err, ErrInvalidOrExpiredToken) {
		t.Fatalf("expected ErrInvalidOrExpiredToken on replay, got %v", err)
	}
	if result.Success {
		t.Fatal("replayed token reported success")
	}
}

func TestResetTokenExpiry(t *testing.T) {
	clk := newTestClock()
	engine := newTestEngine(t, clk)
	ctx := context.Background()

	if _, err := engine.Register(ctx, "Ann", "ann@example.com", "old-password"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	req, err := engine.RequestPasswordReset(ctx, "ann@example.com")
	if err != nil {
		t.Fatalf("reset request failed: %v", err)
	}

	// Still valid one second before the 15-minute deadline.
	clk.Advance(15*time.Minute - time.Second)
	if _, err := engine.ResetPassword(ctx, req.Token, "new-password"); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}
}

func TestResetTokenExpiredAtDeadline(t *testing.T) {
	clk := newTestClock()
	engine := newTestEngine(t, clk)
	ctx := context.Background()

	if _, err := engine.Register(ctx, "Ann", "ann@example.com", "old-password"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	req, err := engine.RequestPasswordReset(ctx, "ann@example.com")
	if err != nil {
		t.Fatalf("reset request failed: %v", err)
	}

	// Exactly at the deadline the token is already dead.
	clk.Advance(15 * time.Minute)
	result, err := engine.ResetPassword(ctx, req.Token, "new-password")
	if !errors.Is(err, ErrInvalidOrExpiredToken) {
		t.Fatalf("expected ErrInvalidOrExpiredToken, got %v", err)
	}
	if result.Message != "Invalid or expired reset token" {
		t.Fatalf("unexpected message: %q", result.Message)
	}

	// The old password keeps working after a failed redemption.
	if login, err := engine.Login(ctx, "ann@example.com", "old-password"); err != nil || !login.Success {
		t.Fatalf("old password rejected after failed reset: %v", err)
	}
}

func TestResetBogusToken(t *testing.T) {
	engine := newTestEngine(t, newTestClock())
	ctx := context.Background()

	result, err := engine.ResetPassword(ctx, "deadbeef", "new-password")
	if !errors.Is(err, ErrInvalidOrExpiredToken) {
		t.Fatalf("expected ErrInvalidOrExpiredToken, got %v", err)
	}
	if result.Success {
		t.Fatal("bogus token reported success")
	}
}

func TestResetWeakNewPassword(t *testing.T) {
	engine := newTestEngine(t, newTestClock())
	ctx := context.Background()

	if _, err := engine.Register(ctx, "Ann", "ann@example.com", "old-password"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	req, err := engine.RequestPasswordReset(ctx, "ann@example.com")
	if err != nil {
		t.Fatalf("reset request failed: %v", err)
	}

	result, err := engine.ResetPassword(ctx, req.Token, "short")
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	if result.Success {
		t.Fatal("weak new password reported success")
	}

	// The rejection must not consume the token.
	if _, err := engine.ResetPassword(ctx, req.Token, "long-enough-password"); err != nil {
		t.Fatalf("token consumed by rejected redemption: %v", err)
	}
}

func TestResetReissueReplacesToken(t *testing.T) {
	engine := newTestEngine(t, newTestClock())
	ctx := context.Background()

	if _, err := engine.Register(ctx, "Ann", "ann@example.com", "old-password"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	first, err := engine.RequestPasswordReset(ctx, "ann@example.com")
	if err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	second, err := engine.RequestPasswordReset(ctx, "ann@example.com")
	if err != nil {
		t.Fatalf("second request failed: %v", err)
	}
	if first.Token == second.Token {
		t.Fatal("reissue returned the same token")
	}

	// A record holds one reset pair: the reissue invalidates the first
	// token.
	if _, err := engine.ResetPassword(ctx, first.Token, "new-password"); !errors.Is(err, ErrInvalidOrExpiredToken) {
		t.Fatalf("superseded token still redeemable: %v", err)
	}
	if _, err := engine.ResetPassword(ctx, second.Token, "new-password"); err != nil {
		t.Fatalf("current token rejected: %v", err)
	}
}

func TestResetDoesNotTouchSession(t *testing.T) {
	engine := newTestEngine(t, newTestClock())
	ctx := context.Background()

	if _, err := engine.Register(ctx, "Ann", "ann@example.com", "old-password"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := engine.Login(ctx, "ann@example.com", "old-password"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	req, err := engine.RequestPasswordReset(ctx, "ann@example.com")
	if err != nil {
		t.Fatalf("reset request failed: %v", err)
	}
	if _, err := engine.ResetPassword(ctx, req.Token, "new-password"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	// Redemption rewrites the credential record only; the live session
	// survives until it expires or logs out.
	sess, err := engine.CurrentSession(ctx)
	if err != nil || sess == nil {
		t.Fatalf("session lost across password reset: %v", err)
	}
}
