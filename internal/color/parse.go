package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	chromaerrors "github.com/alexisbeaulieu97/chromaramp/pkg/errors"
)

// fullChromaPercent is the chroma that CSS maps to 100% in oklch().
const fullChromaPercent = 0.4

var oklchPattern = regexp.MustCompile(`^oklch\(\s*([0-9]*\.?[0-9]+%?)\s+([0-9]*\.?[0-9]+%?)\s+(-?[0-9]*\.?[0-9]+(?:deg)?|none)\s*(?:/\s*[0-9]*\.?[0-9]+%?\s*)?\)$`)

// parseWith decodes input, delegating the hex-to-OKLCH step to hexToOKLCH.
func parseWith(input string, hexToOKLCH func(Hex) (OKLCH, error)) (OKLCH, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return OKLCH{}, chromaerrors.NewColorParseError(input, "empty colour")
	}

	if trimmed == "transparent" {
		return OKLCH{}, nil
	}

	if named, ok := namedColors[trimmed]; ok {
		return hexToOKLCH(Hex(named))
	}

	if strings.HasPrefix(trimmed, "#") {
		hex, err := NormalizeHex(trimmed)
		if err != nil {
			return OKLCH{}, chromaerrors.NewColorParseError(input, "expected #RGB or #RRGGBB")
		}
		return hexToOKLCH(hex)
	}

	if strings.HasPrefix(trimmed, "oklch(") {
		return parseOKLCH(input, trimmed)
	}

	return OKLCH{}, chromaerrors.NewColorParseError(input, "unrecognised colour format")
}

func parseOKLCH(input, expr string) (OKLCH, error) {
	matches := oklchPattern.FindStringSubmatch(expr)
	if len(matches) != 4 {
		return OKLCH{}, chromaerrors.NewColorParseError(input, "malformed oklch() expression")
	}

	l, err := parseComponent(matches[1], 100)
	if err != nil {
		return OKLCH{}, chromaerrors.NewColorParseError(input, fmt.Sprintf("lightness: %v", err))
	}
	if l > 1 {
		return OKLCH{}, chromaerrors.NewColorParseError(input, "lightness out of range")
	}

	c, err := parseComponent(matches[2], 100/fullChromaPercent)
	if err != nil {
		return OKLCH{}, chromaerrors.NewColorParseError(input, fmt.Sprintf("chroma: %v", err))
	}

	h := 0.0
	if matches[3] != "none" {
		h, err = strconv.ParseFloat(strings.TrimSuffix(matches[3], "deg"), 64)
		if err != nil {
			return OKLCH{}, chromaerrors.NewColorParseError(input, fmt.Sprintf("hue: %v", err))
		}
	}

	return OKLCH{L: l, C: c, H: h}.Normalized(), nil
}

// parseComponent reads a plain number, or a percentage divided by percentScale.
func parseComponent(raw string, percentScale float64) (float64, error) {
	if strings.HasSuffix(raw, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		if err != nil {
			return 0, err
		}
		return v / percentScale, nil
	}
	return strconv.ParseFloat(raw, 64)
}
