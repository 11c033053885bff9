package validate

import (
	"regexp"
	"strings"
	"time"

	"satyaphoto/internal/domain"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9][0-9 \-]{8,14}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reQ     = regexp.MustCompile(`^[A-Za-z0-9 _'\\-]{1,50}$`)
)

func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 100 {
		return "", false
	}
	// Names end up in mail headers; control characters are never legitimate.
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return "", false
		}
	}
	return s, true
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 10 || len(s) > 16 {
		return "", false
	}
	return s, rePhone.MatchString(s)
}

// Category validates one of the seven service categories.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, domain.ValidCategory(s)
}

// GalleryFilter additionally allows the "all" pseudo-category.
func GalleryFilter(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "all" {
		return "all", true
	}
	return s, domain.ValidCategory(s)
}

func MediaType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s == "photo" || s == "video"
}

// EventDate accepts YYYY-MM-DD strings that are today or later.
func EventDate(s string, now time.Time) (string, bool) {
	s = strings.TrimSpace(s)
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s, !d.Before(today)
}

func Message(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, len(s) <= 1000
}

func Title(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, len(s) <= 100
}

// ID validates a simple resource identifier (media/package ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Q validates a search query: trims, enforces allowed characters and max length.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// Password enforces the login password policy.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 64 {
		return false
	}
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}
