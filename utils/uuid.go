package utils

import (
	"regexp"

	"github.com/google/uuid"
)

// v4 only: version nibble must be 4 and the variant nibble 8, 9, a or b.
// uuid.Parse is deliberately not used here since it accepts any version.
var uuidV4Pattern = regexp.MustCompile(
	`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// IsValidUUID reports whether s is an RFC-4122 v4 UUID, case-insensitive.
func IsValidUUID(s string) bool {
	return uuidV4Pattern.MatchString(s)
}
