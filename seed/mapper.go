package seed

import (
	"fmt"
	"math"
)

// Normalization selects the denominator used when mapping a parsed slice into a range
type Normalization uint8

const (
	// NormalizeParsedWidth divides by 10^digits(v)-1 where digits counts the parsed value.
	// Leading zeros shrink the denominator, so "05" maps like "5" rather than like "05" of 99.
	// This reproduces the installation's established visual output.
	NormalizeParsedWidth Normalization = iota
	// NormalizeExtractWidth divides by 10^width-1 for the requested slice width
	NormalizeExtractWidth
)

func (n Normalization) String() string {
	switch n {
	case NormalizeParsedWidth:
		return "parsed"
	case NormalizeExtractWidth:
		return "extract"
	default:
		return fmt.Sprintf("Normalization(%d)", n)
	}
}

// ParseNormalization accepts "parsed" or "extract"
func ParseNormalization(s string) (Normalization, error) {
	switch s {
	case "", "parsed":
		return NormalizeParsedWidth, nil
	case "extract":
		return NormalizeExtractWidth, nil
	default:
		return 0, fmt.Errorf("unknown normalization %q", s)
	}
}

// MapToRange maps v into [min, max] normalizing by v's own printed width
func MapToRange(v uint64, min, max float64) float64 {
	return MapToRangeWidth(v, digitCount(v), min, max)
}

// MapToRangeWidth maps v into [min, max] normalizing by 10^width-1
func MapToRangeWidth(v uint64, width int, min, max float64) float64 {
	if width <= 0 {
		return min
	}
	maxBase := math.Pow(10, float64(width)) - 1
	return min + float64(v)/maxBase*(max-min)
}

// Mapper reads slices from an Extractor and maps them into numeric ranges
type Mapper struct {
	ext  *Extractor
	mode Normalization
}

// NewMapper wraps a fresh Extractor over id
func NewMapper(id string, mode Normalization) *Mapper {
	return &Mapper{ext: NewExtractor(id), mode: mode}
}

// Float extracts width characters and maps them into [min, max]
func (m *Mapper) Float(width int, min, max float64) float64 {
	v := ParseDigits(m.ext.Next(width))
	if m.mode == NormalizeExtractWidth {
		return MapToRangeWidth(v, width, min, max)
	}
	return MapToRange(v, min, max)
}

// Int returns Float truncated toward zero
func (m *Mapper) Int(width int, min, max float64) int {
	return int(m.Float(width, min, max))
}

// Skip advances the underlying cursor
func (m *Mapper) Skip(n int) {
	m.ext.Skip(n)
}

// Extractor exposes the underlying cursor
func (m *Mapper) Extractor() *Extractor {
	return m.ext
}
