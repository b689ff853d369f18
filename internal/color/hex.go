package color

import (
	"regexp"
	"strings"

	chromaerrors "github.com/alexisbeaulieu97/chromaramp/pkg/errors"
)

var hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Hex is an sRGB colour in canonical #RRGGBB uppercase form.
type Hex string

// String implements fmt.Stringer.
func (h Hex) String() string {
	return string(h)
}

// IsHex reports whether s is a #RGB or #RRGGBB colour.
func IsHex(s string) bool {
	return hexPattern.MatchString(strings.TrimSpace(s))
}

// NormalizeHex expands #RGB shorthand and uppercases the digits.
func NormalizeHex(s string) (Hex, error) {
	trimmed := strings.TrimSpace(s)
	if !hexPattern.MatchString(trimmed) {
		return "", chromaerrors.NewColorParseError(s, "expected #RGB or #RRGGBB")
	}
	digits := strings.ToUpper(trimmed[1:])
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	return Hex("#" + digits), nil
}
