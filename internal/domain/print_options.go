package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type PaperFormat string

const (
	FormatA4     PaperFormat = "A4"
	FormatLetter PaperFormat = "Letter"
	FormatLegal  PaperFormat = "Legal"
)

const DefaultMargin = "20px"

// PaperSize returns the portrait width and height of the format in inches.
// Unknown formats resolve to A4.
func (f PaperFormat) PaperSize() (width, height float64) {
	switch f {
	case FormatLetter:
		return 8.5, 11
	case FormatLegal:
		return 8.5, 14
	default:
		// A4: 210mm x 297mm
		return 8.27, 11.69
	}
}

type Margin struct {
	Top    string `json:"top,omitempty"`
	Right  string `json:"right,omitempty"`
	Bottom string `json:"bottom,omitempty"`
	Left   string `json:"left,omitempty"`
}

// PrintOptions controls the page geometry of an exported document.
type PrintOptions struct {
	Format          PaperFormat `json:"format,omitempty"`
	Landscape       bool        `json:"landscape,omitempty"`
	Margin          Margin      `json:"margin"`
	PrintBackground bool        `json:"printBackground"`
}

// Resolve fills defaults (A4, 20px margins), canonicalises the format name
// and forces background printing. It fails only on margins that are not CSS
// lengths.
func (o *PrintOptions) Resolve() (PrintOptions, error) {
	var out PrintOptions
	if o != nil {
		out = *o
	}
	out.Format = canonicalFormat(out.Format)
	out.PrintBackground = true

	for _, side := range []*string{&out.Margin.Top, &out.Margin.Right, &out.Margin.Bottom, &out.Margin.Left} {
		if strings.TrimSpace(*side) == "" {
			*side = DefaultMargin
		}
		if _, err := ParseLength(*side); err != nil {
			return PrintOptions{}, err
		}
	}
	return out, nil
}

// MarginInches converts the four margins to inches. Options must have been
// resolved first.
func (o PrintOptions) MarginInches() (top, right, bottom, left float64) {
	top, _ = ParseLength(o.Margin.Top)
	right, _ = ParseLength(o.Margin.Right)
	bottom, _ = ParseLength(o.Margin.Bottom)
	left, _ = ParseLength(o.Margin.Left)
	return
}

func canonicalFormat(f PaperFormat) PaperFormat {
	switch strings.ToLower(strings.TrimSpace(string(f))) {
	case "letter":
		return FormatLetter
	case "legal":
		return FormatLegal
	default:
		return FormatA4
	}
}

var unitsPerInch = map[string]float64{
	"px": 96,
	"pt": 72,
	"pc": 6,
	"in": 1,
	"cm": 2.54,
	"mm": 25.4,
}

// ParseLength converts a CSS absolute length ("20px", "1.5cm", "0") to
// inches. A bare number is taken as pixels.
func ParseLength(s string) (float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("invalid margin: empty length")
	}
	unit := "px"
	num := s
	for u := range unitsPerInch {
		if strings.HasSuffix(s, u) {
			unit = u
			num = strings.TrimSpace(strings.TrimSuffix(s, u))
			break
		}
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid margin %q: want a non-negative length such as 20px or 1cm", s)
	}
	return v / unitsPerInch[unit], nil
}
