package geodetic

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/marcos-nsantos/geocoord/internal/domain/valueobject"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  segments
	}{
		{
			name:  "hemisphere after value",
			input: "34.5N/118.2W",
			want:  segments{lat: "34.5", lng: "118.2", latHem: valueobject.North, lngHem: valueobject.West},
		},
		{
			name:  "hemisphere before value",
			input: "N34.5 W118.2",
			want:  segments{lat: "34.5 ", lng: "118.2", latHem: valueobject.North, lngHem: valueobject.West},
		},
		{
			name:  "no hemisphere letters",
			input: "34.5, 118.2",
			want:  segments{lat: "34.5", lng: "118.2", latHem: valueobject.North, lngHem: valueobject.East},
		},
		{
			name:  "symbols become whitespace",
			input: `34°30'15"N 118°12'30"W`,
			want:  segments{lat: "34 30 15 ", lng: "118 12 30 ", latHem: valueobject.North, lngHem: valueobject.West},
		},
		{
			name:  "dashes and trailing punctuation trimmed",
			input: "  --12.5n 45.25e!!",
			want:  segments{lat: "12.5", lng: "45.25", latHem: valueobject.North, lngHem: valueobject.East},
		},
		{
			name:  "lower case southern hemisphere",
			input: "s33.8568 e151.2153",
			want:  segments{lat: "33.8568 ", lng: "151.2153", latHem: valueobject.South, lngHem: valueobject.East},
		},
		{
			name:  "missing longitude",
			input: "34.5N",
			want:  segments{lat: "34.5", latHem: valueobject.North, lngHem: valueobject.East},
		},
		{
			name:  "no digits",
			input: "garbage",
			want:  segments{latHem: valueobject.North, lngHem: valueobject.East},
		},
		{
			name:  "empty",
			input: "",
			want:  segments{latHem: valueobject.North, lngHem: valueobject.East},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(segments{})); diff != "" {
				t.Errorf("tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantAxis Axis
		wantKind valueobject.FormatKind
	}{
		{"single token", "34.5", Axis{Degree: 34.5}, valueobject.FormatDecimalDegrees},
		{"two tokens", "34 30.5", Axis{Degree: 34, Minute: 30.5}, valueobject.FormatDegreesMinutes},
		{"three tokens", " 34 30 15 ", Axis{Degree: 34, Minute: 30, Second: 15}, valueobject.FormatDegreesMinutesSeconds},
		{"no tokens", "   ", Axis{}, valueobject.FormatUnknown},
		{"too many tokens", "1 2 3 4", Axis{}, valueobject.FormatUnknown},
		{"unparsable token", "34 3..0", Axis{}, valueobject.FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis, kind, _ := extract(tt.text)
			if diff := cmp.Diff(tt.wantAxis, axis); diff != "" {
				t.Errorf("axis mismatch (-want +got):\n%s", diff)
			}
			if kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", kind, tt.wantKind)
			}
		})
	}
}

func TestValid(t *testing.T) {
	ok := Axis{Degree: 179, Minute: 59, Second: 59.9}

	if !valid(valueobject.FormatDegreesMinutesSeconds, ok, ok) {
		t.Error("in-range components rejected")
	}
	if valid(valueobject.FormatUnknown, ok, ok) {
		t.Error("unknown format accepted")
	}
	if !valid(valueobject.FormatDecimalDegrees, Axis{Degree: 120}, ok) {
		t.Error("latitude above 90 must pass the permissive bound")
	}

	for _, bad := range []Axis{
		{Degree: 180.5},
		{Degree: 10, Minute: 61},
		{Degree: 10, Second: 60.01},
	} {
		if valid(valueobject.FormatDegreesMinutesSeconds, ok, bad) {
			t.Errorf("out of range axis %+v accepted", bad)
		}
	}
}
