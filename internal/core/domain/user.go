package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/genvoice/casetrack/internal/pkg/credentials"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 64
)

// specialCharacters is the closed set a password must draw at least one
// character from.
const specialCharacters = "$&+,:;=?@#|'<>.^*()%!-"

// User models an account in the case-tracking system. Name and Username are
// stored trimmed and lowercased; Password holds the salted digest, never the
// plaintext.
type User struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// NewUser validates raw registration input and returns a user ready for
// persistence: normalized name and username, password replaced by its
// digest, role defaulted to Junior. All field violations are collected into
// a single ValidationError; per field only the first broken rule is
// reported.
func NewUser(name, username, password, role string) (*User, error) {
	var messages []string

	username = strings.ToLower(strings.TrimSpace(username))
	if msg := validateUsername(username); msg != "" {
		messages = append(messages, msg)
	}

	if msg := validatePassword(password); msg != "" {
		messages = append(messages, msg)
	}

	parsedRole, err := ParseRole(role)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			messages = append(messages, ve.Messages...)
		} else {
			return nil, err
		}
	}

	if len(messages) > 0 {
		return nil, NewValidationError(messages...)
	}

	digest, err := credentials.Hash(password)
	if err != nil {
		return nil, err
	}

	return &User{
		Name:     strings.ToLower(strings.TrimSpace(name)),
		Username: username,
		Password: digest,
		Role:     parsedRole,
	}, nil
}

// DisplayName renders the stored name for output.
func (u *User) DisplayName() string {
	return credentials.NormalizeDisplayName(u.Name)
}

func validateUsername(username string) string {
	for _, r := range username {
		if !isUsernameRune(r) {
			return "Username should only contain letters, numbers and underscores"
		}
	}
	if len(username) > 0 && username[0] >= '0' && username[0] <= '9' {
		return "Username cannot begin with a number"
	}
	return ""
}

func isUsernameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	}
	return false
}

// validatePassword reports the first broken rule, in contract order:
// uppercase, lowercase, special character, minimum length, maximum length.
func validatePassword(password string) string {
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return "Password should contain at least one uppercase character"
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		return "Password should contain at least one lowercase character"
	}
	if !strings.ContainsAny(password, specialCharacters) {
		return "Password should contain at least one special character"
	}
	if len(password) < MinPasswordLength {
		return fmt.Sprintf("Password should be at least %d characters long", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Sprintf("Password should be at most %d characters long", MaxPasswordLength)
	}
	return ""
}
