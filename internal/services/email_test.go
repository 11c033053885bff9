package services

import (
	"strings"
	"testing"

	"satyaphoto/internal/domain"
)

func TestHeaderSafeStripsNewlines(t *testing.T) {
	cases := map[string]string{
		"Eve\r\nBcc: attacker@example.com": "EveBcc: attacker@example.com",
		"plain subject":                    "plain subject",
		"trailing\n":                       "trailing",
	}
	for in, want := range cases {
		if got := headerSafe(in); got != want {
			t.Errorf("headerSafe(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEmailTemplatesEscapeMarkup(t *testing.T) {
	q := domain.InquiryRecord{
		Name:      "<script>alert(1)</script>",
		Email:     "eve@example.test",
		Phone:     "9876543210",
		EventType: domain.CategoryWedding,
		EventDate: "2026-10-01",
		Message:   `<img src=x onerror=alert(1)>`,
	}

	for name, body := range map[string]string{
		"owner": ownerTemplate(q),
		"user":  userTemplate(q, "Satya Photography"),
	} {
		if strings.Contains(body, "<script>") || strings.Contains(body, "<img src=x") {
			t.Errorf("%s template passed raw markup through", name)
		}
		if !strings.Contains(body, "&lt;script&gt;") {
			t.Errorf("%s template should contain the escaped name", name)
		}
	}
}
