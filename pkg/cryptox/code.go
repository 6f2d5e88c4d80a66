package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
)

// InvitationCodeBytes is the entropy drawn for an invitation code. Hex
// encoding doubles this to the 64-character wire form.
const InvitationCodeBytes = 32

var invitationCodePattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// GenerateInvitationCode returns a 64-character lowercase hex token drawn
// from 32 cryptographically random bytes. The code acts as an unguessable
// capability embedded in registration links.
func GenerateInvitationCode() (string, error) {
	buf := make([]byte, InvitationCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invitation code: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ValidInvitationCode reports whether s has the shape of a generated code.
// It is a cheap pre-filter for lookups, not a substitute for them.
func ValidInvitationCode(s string) bool {
	return invitationCodePattern.MatchString(s)
}
