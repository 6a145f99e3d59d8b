// Package credentials holds password digest helpers and display-name
// rendering shared by the domain and service layers.
package credentials

import (
	"encoding/base64"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Hash produces a salted bcrypt digest of password, wrapped in base64 so it
// can be stored and transported as plain text. The salt is random, so two
// calls on the same input yield different digests. An empty password yields
// an empty digest.
func Hash(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	raw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Verify reports whether candidate matches digest. It never fails: a missing
// candidate, a missing digest or an undecodable digest all report false.
func Verify(candidate, digest string) bool {
	if candidate == "" || digest == "" {
		return false
	}
	raw, err := base64.StdEncoding.DecodeString(digest)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword(raw, []byte(candidate)) == nil
}

// NormalizeDisplayName renders a stored name for output: trims surrounding
// whitespace, capitalizes each token and rejoins with single spaces.
func NormalizeDisplayName(name string) string {
	tokens := strings.Fields(name)
	for i, tok := range tokens {
		runes := []rune(strings.ToLower(tok))
		runes[0] = unicode.ToUpper(runes[0])
		tokens[i] = string(runes)
	}
	return strings.Join(tokens, " ")
}
