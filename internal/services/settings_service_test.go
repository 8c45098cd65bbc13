package services

import (
	"context"
	"errors"
	"testing"
)

func TestPINLifecycle(t *testing.T) {
	store := newTestStore(t)
	settings := NewSettingsService(store, "")
	ctx := context.Background()

	// Without a stored PIN the gate is open.
	hasPIN, err := settings.HasPIN(ctx)
	if err != nil || hasPIN {
		t.Fatalf("fresh store: hasPIN=%v err=%v", hasPIN, err)
	}
	ok, err := settings.VerifyPIN(ctx, "0000")
	if err != nil || !ok {
		t.Fatalf("verify without PIN: ok=%v err=%v", ok, err)
	}

	if err := settings.SetPIN(ctx, "4821"); err != nil {
		t.Fatalf("set: %v", err)
	}
	hasPIN, err = settings.HasPIN(ctx)
	if err != nil || !hasPIN {
		t.Fatalf("after set: hasPIN=%v err=%v", hasPIN, err)
	}

	ok, err = settings.VerifyPIN(ctx, "4821")
	if err != nil || !ok {
		t.Fatalf("correct code: ok=%v err=%v", ok, err)
	}
	ok, err = settings.VerifyPIN(ctx, "9999")
	if err != nil || ok {
		t.Fatalf("wrong code: ok=%v err=%v", ok, err)
	}

	// Only the hash lands in the store, never the raw code.
	value, present, err := store.GetSetting(ctx, "pin_hash")
	if err != nil || !present {
		t.Fatalf("setting: present=%v err=%v", present, err)
	}
	if value == "4821" {
		t.Fatal("raw PIN stored")
	}
}

func TestSetPINValidation(t *testing.T) {
	store := newTestStore(t)
	settings := NewSettingsService(store, "")
	ctx := context.Background()

	for _, pin := range []string{"", "123", "12345", "12a4", "١٢٣٤"} {
		if err := settings.SetPIN(ctx, pin); !errors.Is(err, ErrInvalidPIN) {
			t.Fatalf("%q: expected ErrInvalidPIN, got %v", pin, err)
		}
	}
}

func TestTheme(t *testing.T) {
	store := newTestStore(t)
	settings := NewSettingsService(store, ThemeDark)
	ctx := context.Background()

	// The configured default applies until the user picks one.
	theme, err := settings.Theme(ctx)
	if err != nil || theme != ThemeDark {
		t.Fatalf("default theme = %q err=%v", theme, err)
	}

	if err := settings.SetTheme(ctx, ThemeLight); err != nil {
		t.Fatalf("set: %v", err)
	}
	theme, err = settings.Theme(ctx)
	if err != nil || theme != ThemeLight {
		t.Fatalf("theme = %q err=%v", theme, err)
	}

	if err := settings.SetTheme(ctx, "solarized"); !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
}

func TestOnboarding(t *testing.T) {
	store := newTestStore(t)
	settings := NewSettingsService(store, "")
	ctx := context.Background()

	done, err := settings.OnboardingCompleted(ctx)
	if err != nil || done {
		t.Fatalf("fresh store: done=%v err=%v", done, err)
	}

	if err := settings.CompleteOnboarding(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}
	done, err = settings.OnboardingCompleted(ctx)
	if err != nil || !done {
		t.Fatalf("after complete: done=%v err=%v", done, err)
	}
}
