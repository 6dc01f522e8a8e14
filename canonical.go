package stopedit

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrEmptyPalette is returned when an editor is created without stops.
	ErrEmptyPalette = errors.New("stopedit: palette must contain at least one stop")

	// ErrInvalidStop is returned for a stop that cannot be represented,
	// such as a canonical offset that is not a number.
	ErrInvalidStop = errors.New("stopedit: invalid stop")
)

// CanonicalStop is the externally visible form of a stop. Offset is fixed
// to three decimals.
type CanonicalStop struct {
	ID      int     `json:"id"`
	Offset  string  `json:"offset"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

// Sink receives the canonical palette after every change.
type Sink func([]CanonicalStop)

// FormatOffset renders an offset the way it appears in a canonical palette:
// three decimals, with exact halfway values rounded away from zero.
func FormatOffset(offset float64) string {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return strconv.FormatFloat(offset, 'f', 3, 64)
	}

	// Scale the exact binary value; 200 bits hold the product without loss.
	x := new(big.Float).SetPrec(200).SetFloat64(math.Abs(offset))
	x.Mul(x, big.NewFloat(1000))
	whole, _ := x.Int(nil)
	frac := new(big.Float).SetPrec(200).Sub(x, new(big.Float).SetInt(whole))
	if frac.Cmp(big.NewFloat(0.5)) != 0 {
		return strconv.FormatFloat(offset, 'f', 3, 64)
	}

	digits := whole.Add(whole, big.NewInt(1)).String()
	if len(digits) < 4 {
		digits = strings.Repeat("0", 4-len(digits)) + digits
	}
	out := digits[:len(digits)-3] + "." + digits[len(digits)-3:]
	if offset < 0 {
		out = "-" + out
	}
	return out
}

// Canonicalize sorts stops ascending by offset and formats each offset.
// Stops sharing an offset keep their relative order.
func Canonicalize(stops []ColorStop) []CanonicalStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	out := make([]CanonicalStop, len(sorted))
	for i, s := range sorted {
		out[i] = CanonicalStop{
			ID:      s.ID,
			Offset:  FormatOffset(s.Offset),
			Color:   s.Color,
			Opacity: s.Opacity,
		}
	}
	return out
}

// ParseCanonical converts an emitted palette back into stops so it can seed
// a new editor. Ids are preserved.
func ParseCanonical(stops []CanonicalStop) ([]ColorStop, error) {
	out := make([]ColorStop, len(stops))
	for i, c := range stops {
		offset, err := strconv.ParseFloat(c.Offset, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: stop %d offset %q: %w", ErrInvalidStop, c.ID, c.Offset, err)
		}
		out[i] = ColorStop{
			ID:      c.ID,
			Offset:  offset,
			Color:   c.Color,
			Opacity: c.Opacity,
		}
	}
	return out, nil
}
