package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

const (
	MinPasswordLen = 8
	MaxPasswordLen = 72
	MaxUsernameLen = 64
)

var ErrSlugMismatch = errors.New("slug does not match")

// Slug checks a profile link's slug against the user's canonical slug. A
// mismatch means the link is stale or hand-edited and is treated as a hard
// failure, never silently corrected.
func Slug(canonical, given string) error {
	if canonical != given {
		return fmt.Errorf("%w: expected %q", ErrSlugMismatch, canonical)
	}
	return nil
}

// Slugify derives the canonical slug from a username.
func Slugify(username string) string {
	slug := strings.ToLower(strings.TrimSpace(username))
	var b strings.Builder
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// CleanReturnPath extracts the caller-supplied return path from the request
// form, accepting only site-relative paths. Anything absolute, scheme'd or
// protocol-relative is discarded.
func CleanReturnPath(returnPath string) string {
	if returnPath == "" || !strings.HasPrefix(returnPath, "/") || strings.HasPrefix(returnPath, "//") {
		return ""
	}

	u, err := url.Parse(returnPath)
	if err != nil || u.IsAbs() || u.Host != "" {
		return ""
	}
	return u.String()
}

func SignUpForm(name, password, email string) error {
	var errs = []error{}

	errs = append(errs, Username(name))

	errs = append(errs, Email(email))

	errs = append(errs, Password(password))

	return errors.Join(errs...)
}

func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l < MinPasswordLen:
		return fmt.Errorf("password too short; min %d characters", MinPasswordLen)
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}
	return nil
}

func Email(email string) error {
	if len(email) == 0 {
		return errors.New("empty email")
	}
	_, err := mail.ParseAddress(email)

	return err
}

func Username(username string) error {
	if l := len(username); l == 0 {
		return errors.New("empty username")
	} else if l > MaxUsernameLen {
		return fmt.Errorf("username too long; max %d characters", MaxUsernameLen)
	}
	if Slugify(username) == "" {
		return errors.New("username must contain letters or digits")
	}
	return nil
}
