package catalog

import (
	"strings"

	"github.com/erp/production/internal/domain/shared"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

func validateCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return shared.NewValidationError("code cannot be empty")
	}
	return nil
}

func normalizeName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", shared.NewValidationError("%s cannot be empty", field)
	}
	if len(name) > maxNameLength {
		return "", shared.NewValidationError("%s cannot exceed %d characters", field, maxNameLength)
	}
	return name, nil
}

func validateDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return shared.NewValidationError("description cannot exceed %d characters", maxDescriptionLength)
	}
	return nil
}
