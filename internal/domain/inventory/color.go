package inventory

import (
	"strings"

	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
)

// ColorKind discriminates the ColorIdentity variants
type ColorKind string

const (
	ColorKindNone     ColorKind = "none"
	ColorKindCatalog  ColorKind = "catalog"
	ColorKindFreeform ColorKind = "freeform"
)

// maxColorDescriptionLength bounds freeform color descriptions
const maxColorDescriptionLength = 200

// IsValid returns true if the kind is one of the known variants
func (k ColorKind) IsValid() bool {
	switch k {
	case ColorKindNone, ColorKindCatalog, ColorKindFreeform:
		return true
	}
	return false
}

// String returns the string representation of ColorKind
func (k ColorKind) String() string {
	return string(k)
}

// ColorIdentity is the color part of a stock line's identity. Exactly one
// variant is set: no color, a reference to a cataloged color code, or a
// freeform description. The zero value is NoColor.
type ColorIdentity struct {
	kind        ColorKind
	colorCodeID uuid.UUID
	description string
}

// NoColor returns the identity of uncolored stock
func NoColor() ColorIdentity {
	return ColorIdentity{kind: ColorKindNone}
}

// CatalogColor returns an identity referencing a cataloged color code
func CatalogColor(colorCodeID uuid.UUID) (ColorIdentity, error) {
	if colorCodeID == uuid.Nil {
		return ColorIdentity{}, shared.NewValidationError("color code ID cannot be empty")
	}
	return ColorIdentity{kind: ColorKindCatalog, colorCodeID: colorCodeID}, nil
}

// FreeformColor returns an identity described by free text
func FreeformColor(description string) (ColorIdentity, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return ColorIdentity{}, shared.NewValidationError("color description cannot be empty")
	}
	if len(description) > maxColorDescriptionLength {
		return ColorIdentity{}, shared.NewValidationError("color description cannot exceed %d characters", maxColorDescriptionLength)
	}
	return ColorIdentity{kind: ColorKindFreeform, description: description}, nil
}

// ParseColorIdentity rebuilds a ColorIdentity from its discriminated parts.
// The fields that do not belong to kind must be empty.
func ParseColorIdentity(kind ColorKind, colorCodeID *uuid.UUID, description string) (ColorIdentity, error) {
	if kind == "" {
		kind = ColorKindNone
	}
	if !kind.IsValid() {
		return ColorIdentity{}, shared.NewValidationError("unknown color kind %q", kind)
	}

	hasCode := colorCodeID != nil && *colorCodeID != uuid.Nil
	hasDescription := strings.TrimSpace(description) != ""

	switch kind {
	case ColorKindCatalog:
		if hasDescription {
			return ColorIdentity{}, shared.NewValidationError("a catalog color cannot carry a description")
		}
		if !hasCode {
			return ColorIdentity{}, shared.NewValidationError("a catalog color requires a color code ID")
		}
		return CatalogColor(*colorCodeID)
	case ColorKindFreeform:
		if hasCode {
			return ColorIdentity{}, shared.NewValidationError("a freeform color cannot reference a color code")
		}
		return FreeformColor(description)
	default:
		if hasCode || hasDescription {
			return ColorIdentity{}, shared.NewValidationError("an uncolored identity cannot carry color details")
		}
		return NoColor(), nil
	}
}

// Kind returns the variant
func (c ColorIdentity) Kind() ColorKind {
	if c.kind == "" {
		return ColorKindNone
	}
	return c.kind
}

// ColorCodeID returns the referenced color code for catalog colors
func (c ColorIdentity) ColorCodeID() (uuid.UUID, bool) {
	return c.colorCodeID, c.Kind() == ColorKindCatalog
}

// Description returns the text of freeform colors
func (c ColorIdentity) Description() (string, bool) {
	return c.description, c.Kind() == ColorKindFreeform
}

// Key returns a string that is unique per identity. It is stored alongside
// the warehouse and product type to enforce stock line uniqueness.
func (c ColorIdentity) Key() string {
	switch c.Kind() {
	case ColorKindCatalog:
		return "catalog:" + c.colorCodeID.String()
	case ColorKindFreeform:
		return "freeform:" + strings.ToLower(c.description)
	default:
		return "none"
	}
}

// Equal reports whether two identities denote the same color
func (c ColorIdentity) Equal(other ColorIdentity) bool {
	return c.Key() == other.Key()
}

// Label renders the identity for display. Catalog colors render the
// resolved code label, which the caller looks up.
func (c ColorIdentity) Label(catalogLabel string) string {
	switch c.Kind() {
	case ColorKindCatalog:
		return catalogLabel
	case ColorKindFreeform:
		return c.description
	default:
		return ""
	}
}

// RestoreColorIdentity rebuilds an identity read back from storage.
// Input is trusted and not validated.
func RestoreColorIdentity(kind ColorKind, colorCodeID *uuid.UUID, description string) ColorIdentity {
	switch kind {
	case ColorKindCatalog:
		if colorCodeID != nil {
			return ColorIdentity{kind: ColorKindCatalog, colorCodeID: *colorCodeID}
		}
	case ColorKindFreeform:
		return ColorIdentity{kind: ColorKindFreeform, description: description}
	}
	return NoColor()
}
