package services

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"finanzas/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

const (
	settingPINHash    = "pin_hash"
	settingTheme      = "theme"
	settingOnboarding = "onboarding_completed"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var (
	ErrInvalidPIN   = errors.New("PIN must be exactly four digits")
	ErrInvalidTheme = errors.New("theme must be 'light' or 'dark'")
)

// SettingsService wraps the app_config key/value table with typed access
// for the PIN gate, theme, and onboarding flag.
type SettingsService struct {
	store        *storage.Repository
	defaultTheme string
}

func NewSettingsService(store *storage.Repository, defaultTheme string) *SettingsService {
	if defaultTheme == "" {
		defaultTheme = ThemeLight
	}
	return &SettingsService{store: store, defaultTheme: defaultTheme}
}

// SetPIN stores a bcrypt hash of the 4-digit code. The raw code is never
// persisted.
func (s *SettingsService) SetPIN(ctx context.Context, pin string) error {
	if !validPIN(pin) {
		return ErrInvalidPIN
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}
	return s.store.SetSetting(ctx, settingPINHash, string(hash))
}

// VerifyPIN checks a code against the stored hash. When no PIN has been
// set the gate is open and any code passes.
func (s *SettingsService) VerifyPIN(ctx context.Context, pin string) (bool, error) {
	hash, ok, err := s.store.GetSetting(ctx, settingPINHash)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil, nil
}

func (s *SettingsService) HasPIN(ctx context.Context) (bool, error) {
	_, ok, err := s.store.GetSetting(ctx, settingPINHash)
	return ok, err
}

func (s *SettingsService) Theme(ctx context.Context) (string, error) {
	theme, ok, err := s.store.GetSetting(ctx, settingTheme)
	if err != nil {
		return "", err
	}
	if !ok {
		return s.defaultTheme, nil
	}
	return theme, nil
}

func (s *SettingsService) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrInvalidTheme
	}
	return s.store.SetSetting(ctx, settingTheme, theme)
}

func (s *SettingsService) OnboardingCompleted(ctx context.Context) (bool, error) {
	value, ok, err := s.store.GetSetting(ctx, settingOnboarding)
	if err != nil {
		return false, err
	}
	return ok && value == "1", nil
}

func (s *SettingsService) CompleteOnboarding(ctx context.Context) error {
	return s.store.SetSetting(ctx, settingOnboarding, "1")
}

func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
