package validate

import (
	"regexp"
	"strings"
)

var (
	reEmail    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reQ        = regexp.MustCompile(`^[A-Za-z0-9 _'\\-]{1,50}$`)
	reID       = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reSubType  = regexp.MustCompile(`^(contact|order)$`)
	reFileName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Q validates a search query: trims, enforces allowed characters and max length
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

// ID validates a simple resource identifier (submission/item/user ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// SubmissionType validates the form-type discriminator.
func SubmissionType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reSubType.MatchString(s)
}

// Rating clamps testimonial ratings to the 1..5 window.
func Rating(n int) bool {
	return n >= 1 && n <= 5
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

// Password enforces a simple strength window for sign-up.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 72 {
		return false
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}

// FileName strips an uploaded file's name down to a safe base: path
// separators removed, disallowed runes collapsed to '-'. Returns false when
// nothing usable remains.
func FileName(s string) (string, bool) {
	// take the last path element regardless of separator style
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)
	s = reFileName.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-.")
	if s == "" || len(s) > 120 {
		return "", false
	}
	return s, true
}
