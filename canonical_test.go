package stopedit

import (
	"errors"
	"reflect"
	"testing"
)

func TestCanonicalizeSorts(t *testing.T) {
	stops := []ColorStop{
		{ID: 1, Offset: 0.7, Color: "a", Opacity: 1},
		{ID: 2, Offset: 0.2, Color: "b", Opacity: 1},
		{ID: 3, Offset: 0.5, Color: "c", Opacity: 0.5},
	}

	got := Canonicalize(stops)
	want := []CanonicalStop{
		{ID: 2, Offset: "0.200", Color: "b", Opacity: 1},
		{ID: 3, Offset: "0.500", Color: "c", Opacity: 0.5},
		{ID: 1, Offset: "0.700", Color: "a", Opacity: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Canonicalize() = %+v, want %+v", got, want)
	}

	if stops[0].ID != 1 {
		t.Error("Canonicalize modified its input")
	}
}

func TestCanonicalizeStableForTies(t *testing.T) {
	stops := []ColorStop{
		{ID: 5, Offset: 0.5},
		{ID: 1, Offset: 0.5},
		{ID: 3, Offset: 0},
	}
	got := Canonicalize(stops)
	ids := []int{got[0].ID, got[1].ID, got[2].ID}
	if !reflect.DeepEqual(ids, []int{3, 5, 1}) {
		t.Errorf("order = %v, want [3 5 1]", ids)
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	first := Canonicalize([]ColorStop{
		{ID: 1, Offset: 0.12345, Color: "#fff", Opacity: 1},
		{ID: 2, Offset: 0.0004, Color: "#000", Opacity: 0.3},
		{ID: 3, Offset: 1, Color: "red", Opacity: 1},
	})

	parsed, err := ParseCanonical(first)
	if err != nil {
		t.Fatalf("ParseCanonical() error = %v", err)
	}
	second := Canonicalize(parsed)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("canonicalize not idempotent:\n first  %+v\n second %+v", first, second)
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.000"},
		{0.5, "0.500"},
		{1, "1.000"},
		{0.12345, "0.123"},
		{0.9996, "1.000"},
		{0.0625, "0.063"},
		{0.3125, "0.313"},
		{0.5625, "0.563"},
		{0.8125, "0.813"},
		{1.0625, "1.063"},
		{-0.0625, "-0.063"},
		{0.0005, "0.001"},
	}
	for _, tt := range tests {
		if got := FormatOffset(tt.in); got != tt.want {
			t.Errorf("FormatOffset(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCanonicalInvalid(t *testing.T) {
	_, err := ParseCanonical([]CanonicalStop{{ID: 1, Offset: "left"}})
	if !errors.Is(err, ErrInvalidStop) {
		t.Errorf("ParseCanonical() error = %v, want ErrInvalidStop", err)
	}
}
