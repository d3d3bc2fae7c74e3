package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	t.Run("valid email", func(t *testing.T) {
		if err := ValidateEmail("manager@example.com"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("missing domain rejected", func(t *testing.T) {
		if err := ValidateEmail("manager@"); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("surrounding whitespace tolerated", func(t *testing.T) {
		if err := ValidateEmail("  manager@example.com  "); err != nil {
			t.Fatalf("expected trimmed email to validate, got %v", err)
		}
	})
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	if err := ValidatePassword("secret"); err != nil {
		t.Fatalf("expected 6-char password to pass, got %v", err)
	}

	if err := ValidatePassword("short"); !errors.Is(err, ErrPasswordTooWeak) {
		t.Fatalf("expected ErrPasswordTooWeak, got %v", err)
	}

	tooLong := strings.Repeat("a", MaxPasswordLength+1)
	if err := ValidatePassword(tooLong); !errors.Is(err, ErrPasswordTooWeak) {
		t.Fatalf("expected ErrPasswordTooWeak, got %v", err)
	}
}

func TestNormalizePagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", page: 0, pageSize: 0, wantPage: 1, wantPageSize: DefaultPageSize},
		{name: "negative page", page: -3, pageSize: 10, wantPage: 1, wantPageSize: 10},
		{name: "oversized page size clamped", page: 2, pageSize: 500, wantPage: 2, wantPageSize: MaxPageSize},
		{name: "in range untouched", page: 4, pageSize: 25, wantPage: 4, wantPageSize: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := NormalizePagination(tt.page, tt.pageSize)
			if page != tt.wantPage || pageSize != tt.wantPageSize {
				t.Errorf("NormalizePagination(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.pageSize, page, pageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}
