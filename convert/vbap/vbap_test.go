package vbap

import (
	"math"
	"strings"
	"testing"

	"github.com/jerry73204/max2sc/spatial"
)

func ringSpeakers(n int) []spatial.Speaker {
	speakers := make([]spatial.Speaker, n)
	for i := range speakers {
		speakers[i] = spatial.Speaker{
			ID:       i + 1,
			Position: spatial.SphericalCoord{Azimuth: float64(i) * 360.0 / float64(n), Distance: 2},
		}
	}

	return speakers
}

func TestOptimalSpreadRing(t *testing.T) {
	got := OptimalSpread(ringSpeakers(8))

	if math.Abs(got-45.0) > 1.0 {
		t.Fatalf("spread mismatch: got %v want 45 +- 1", got)
	}
}

func TestValidateSetupTooFewSpeakers(t *testing.T) {
	a := &spatial.SpeakerArray{Speakers: ringSpeakers(2)}

	res := ValidateSetup(a)
	if res.IsValid {
		t.Fatal("two speakers must not validate")
	}

	if len(res.Errors) == 0 {
		t.Fatal("expected an error message")
	}
}

func TestValidateSetupCloseSpeakersWarn(t *testing.T) {
	speakers := ringSpeakers(6)
	speakers = append(speakers, spatial.Speaker{
		ID:       7,
		Position: spatial.SphericalCoord{Azimuth: 5, Distance: 2},
	})

	res := ValidateSetup(&spatial.SpeakerArray{Speakers: speakers})
	if !res.IsValid {
		t.Fatalf("layout should validate, errors: %v", res.Errors)
	}

	if len(res.Warnings) == 0 {
		t.Fatal("expected a close-pair warning")
	}
}

func TestValidateSetupClusterWarnsPerPair(t *testing.T) {
	speakers := []spatial.Speaker{
		{ID: 1, Position: spatial.SphericalCoord{Azimuth: 0, Distance: 2}},
		{ID: 2, Position: spatial.SphericalCoord{Azimuth: 4, Distance: 2}},
		{ID: 3, Position: spatial.SphericalCoord{Azimuth: 8, Distance: 2}},
	}

	res := ValidateSetup(&spatial.SpeakerArray{Speakers: speakers})
	if !res.IsValid {
		t.Fatalf("layout should validate, errors: %v", res.Errors)
	}

	// Three speakers within 10 degrees conflict pairwise.
	if len(res.Warnings) != 3 {
		t.Fatalf("warning count mismatch: got %d want 3: %v", len(res.Warnings), res.Warnings)
	}
}

func TestValidateSetupCleanRing(t *testing.T) {
	res := ValidateSetup(&spatial.SpeakerArray{Speakers: ringSpeakers(8)})

	if !res.IsValid || len(res.Warnings) != 0 {
		t.Fatalf("clean ring should validate without warnings: %+v", res)
	}

	if math.Abs(res.OptimalSpread-45.0) > 1.0 {
		t.Fatalf("spread mismatch: got %v want 45 +- 1", res.OptimalSpread)
	}
}

func TestGenerateSetupRingIs2D(t *testing.T) {
	a := &spatial.SpeakerArray{
		Type:     spatial.ArrayType{Kind: spatial.Ring, Radius: 2},
		Speakers: ringSpeakers(8),
	}

	code := GenerateSetup(a).Code()
	if !strings.HasPrefix(code, "VBAPSpeakerArray.new(2, [") {
		t.Fatalf("ring setup mismatch: got %q", code)
	}
}

func TestGenerateSetupIrregularIs3D(t *testing.T) {
	a := &spatial.SpeakerArray{
		Type: spatial.ArrayType{Kind: spatial.Irregular},
		Speakers: []spatial.Speaker{
			{Position: spatial.SphericalCoord{Azimuth: 0, Elevation: 0, Distance: 2}},
			{Position: spatial.SphericalCoord{Azimuth: 120, Elevation: 20, Distance: 2}},
			{Position: spatial.SphericalCoord{Azimuth: 240, Elevation: -10, Distance: 3}},
		},
	}

	code := GenerateSetup(a).Code()
	if !strings.HasPrefix(code, "VBAPSpeakerArray.new(3, [[") {
		t.Fatalf("irregular setup mismatch: got %q", code)
	}
}

func TestGeneratePanner(t *testing.T) {
	a := &spatial.SpeakerArray{
		Type:     spatial.ArrayType{Kind: spatial.Ring, Radius: 2},
		Speakers: ringSpeakers(8),
	}

	code := GeneratePanner(8, GenerateSetup(a), false).Code()
	if !strings.HasPrefix(code, "VBAP.ar(8, \\sig, VBAPSpeakerArray.new(") {
		t.Fatalf("panner mismatch: got %q", code)
	}

	if strings.Contains(code, "\\elevation") {
		t.Fatalf("2D panner must not take elevation: %q", code)
	}

	code3d := GeneratePanner(8, GenerateSetup(a), true).Code()
	if !strings.Contains(code3d, "\\elevation") {
		t.Fatalf("3D panner missing elevation: %q", code3d)
	}
}

func TestGenerateSpreadVBAP(t *testing.T) {
	a := &spatial.SpeakerArray{
		Type:     spatial.ArrayType{Kind: spatial.Ring},
		Speakers: ringSpeakers(8),
	}

	code := GenerateSpreadVBAP(8, GenerateSetup(a), false, 45).Code()
	if !strings.Contains(code, "spread: 45.0") {
		t.Fatalf("spread missing: %q", code)
	}
}

func TestUse3D(t *testing.T) {
	if Use3D(ringSpeakers(8)) {
		t.Fatal("flat ring must not need 3D")
	}

	raised := append(ringSpeakers(8), spatial.Speaker{
		Position: spatial.SphericalCoord{Azimuth: 0, Elevation: 30, Distance: 2},
	})
	if !Use3D(raised) {
		t.Fatal("raised speaker must need 3D")
	}
}

// dome is a minimal 3D layout with independent speaker vectors.
func dome() []spatial.Speaker {
	return []spatial.Speaker{
		{Position: spatial.SphericalCoord{Azimuth: 0, Elevation: 0, Distance: 2}},
		{Position: spatial.SphericalCoord{Azimuth: 90, Elevation: 0, Distance: 2}},
		{Position: spatial.SphericalCoord{Azimuth: -90, Elevation: 0, Distance: 2}},
		{Position: spatial.SphericalCoord{Azimuth: 180, Elevation: 0, Distance: 2}},
		{Position: spatial.SphericalCoord{Azimuth: 0, Elevation: 90, Distance: 2}},
	}
}

func TestFindTriangleContainsNearest(t *testing.T) {
	speakers := dome()

	triplet, ok := FindTriangle(10, 5, speakers)
	if !ok {
		t.Fatal("expected a triplet")
	}

	found := false
	for _, idx := range triplet {
		if idx == 0 {
			found = true
		}
	}

	if !found {
		t.Fatalf("nearest speaker not in triplet %v", triplet)
	}
}

func TestFindTriangleTooFew(t *testing.T) {
	if _, ok := FindTriangle(0, 0, dome()[:2]); ok {
		t.Fatal("two speakers cannot form a triplet")
	}
}

func TestGainsOnSpeakerDirection(t *testing.T) {
	speakers := dome()

	triplet, ok := FindTriangle(0, 0, speakers)
	if !ok {
		t.Fatal("expected a triplet")
	}

	g := Gains(0, 0, triplet, speakers)

	// Source exactly on a speaker: that speaker dominates.
	var onSource float64
	for i, idx := range triplet {
		if idx == 0 {
			onSource = g[i]
		}
	}

	if onSource < 0.99 {
		t.Fatalf("on-speaker gain mismatch: got %v want ~1", onSource)
	}
}

func TestGainsPowerNormalized(t *testing.T) {
	speakers := dome()

	triplet, ok := FindTriangle(30, 20, speakers)
	if !ok {
		t.Fatal("expected a triplet")
	}

	g := Gains(30, 20, triplet, speakers)

	power := g[0]*g[0] + g[1]*g[1] + g[2]*g[2]
	if math.Abs(power-1.0) > 1e-9 {
		t.Fatalf("power mismatch: got %v want 1", power)
	}
}

func TestGainsDegenerateFallsBack(t *testing.T) {
	// Three coplanar-with-origin speakers: all on the x axis plane line.
	speakers := []spatial.Speaker{
		{Position: spatial.SphericalCoord{Azimuth: 0, Elevation: 0, Distance: 1}},
		{Position: spatial.SphericalCoord{Azimuth: 10, Elevation: 0, Distance: 1}},
		{Position: spatial.SphericalCoord{Azimuth: 20, Elevation: 0, Distance: 1}},
	}

	g := Gains(5, 0, [3]int{0, 1, 2}, speakers)

	want := 1 / math.Sqrt(3)
	for i, v := range g {
		if math.Abs(v-want) > 1e-9 {
			t.Fatalf("fallback gain %d mismatch: got %v want %v", i, v, want)
		}
	}
}
