package util

import (
	"fmt"
	"strings"
)

const (
	maxMealNameLen    = 255
	maxDescriptionLen = 2000
)

// ValidateName rejects names that are blank once trimmed. Length is
// enforced by the request's binding tags.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is empty")
	}
	return nil
}

// ValidatePassword checks the password fits bcrypt's input limit. The limit
// is in bytes, which the "max" binding tag (runes) cannot express.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is empty")
	}
	if len(password) > MaxPasswordBytes {
		return fmt.Errorf("password too long, max %d bytes", MaxPasswordBytes)
	}
	return nil
}

// ValidateMealName checks a meal name.
func ValidateMealName(name string) error {
	if len(name) > maxMealNameLen {
		return fmt.Errorf("meal name too long, max %d characters", maxMealNameLen)
	}
	return nil
}

// ValidateDescription checks a meal description.
func ValidateDescription(desc string) error {
	if len(desc) > maxDescriptionLen {
		return fmt.Errorf("description too long, max %d characters", maxDescriptionLen)
	}
	return nil
}

// ParseInDiet converts the "T"/"F" wire flag to a bool. An empty flag is "F".
func ParseInDiet(flag string) (bool, error) {
	switch flag {
	case "T":
		return true, nil
	case "F", "":
		return false, nil
	default:
		return false, fmt.Errorf("inDiet must be \"T\" or \"F\", got %q", flag)
	}
}
