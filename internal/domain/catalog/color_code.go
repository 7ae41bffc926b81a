package catalog

import (
	"regexp"
	"strings"

	"github.com/erp/production/internal/domain/shared"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-F]{6}$`)

// ColorCode is a cataloged dye color
type ColorCode struct {
	shared.BaseAggregateRoot
	Code string
	Name string
	// Hex is an optional #RRGGBB swatch
	Hex string
}

// NewColorCode creates a color code with an allocated code
func NewColorCode(code, name, hex string) (*ColorCode, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	name, err := normalizeName("color name", name)
	if err != nil {
		return nil, err
	}
	hex = strings.ToUpper(strings.TrimSpace(hex))
	if hex != "" && !hexColorPattern.MatchString(hex) {
		return nil, shared.NewValidationError("hex must look like #RRGGBB")
	}

	return &ColorCode{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		Hex:               hex,
	}, nil
}

// Label renders the color for display
func (c *ColorCode) Label() string {
	return c.Code + " " + c.Name
}
