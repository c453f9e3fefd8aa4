package spatial

import (
	"math"
	"testing"

	"github.com/jerry73204/max2sc/oscconfig"
	"github.com/jerry73204/max2sc/patch"
)

// layoutFromSpeakers builds an oscconfig layout from test speakers.
func layoutFromSpeakers(busID int, format, name string, speakers []Speaker) oscconfig.SpeakerLayout {
	entries := make([]oscconfig.SpeakerEntry, len(speakers))
	for i, s := range speakers {
		entries[i] = oscconfig.SpeakerEntry{
			ID:        s.ID,
			Azimuth:   s.Position.Azimuth,
			Elevation: s.Position.Elevation,
			Distance:  s.Position.Distance,
			Delay:     s.Delay,
			Gain:      s.Gain,
		}
	}

	return oscconfig.SpeakerLayout{BusID: busID, Format: format, Name: name, Speakers: entries}
}

// ringSpeakers returns n speakers evenly spread on a circle of the given
// radius.
func ringSpeakers(n int, radius float64) []Speaker {
	speakers := make([]Speaker, n)
	for i := range speakers {
		speakers[i] = Speaker{
			ID: i + 1,
			Position: SphericalCoord{
				Azimuth:  float64(i) * 360 / float64(n),
				Distance: radius,
			},
		}
	}

	return speakers
}

// stripSpeakers returns n speakers on a flat linear strip spanning
// [-span/2, span/2] degrees at the given distance.
func stripSpeakers(n int, span, distance float64) []Speaker {
	speakers := make([]Speaker, n)
	for i := range speakers {
		speakers[i] = Speaker{
			ID: i + 1,
			Position: SphericalCoord{
				Azimuth:  -span/2 + float64(i)*span/float64(n-1),
				Distance: distance,
			},
		}
	}

	return speakers
}

func TestClassifyArrayWFSStrip(t *testing.T) {
	got := ClassifyArray(stripSpeakers(16, 90, 3))
	if got.Kind != WFS {
		t.Fatalf("kind mismatch: got %v want wfs", got.Kind)
	}

	wantLength := 3 * 90 * math.Pi / 180
	if math.Abs(got.Length-wantLength) > 1e-9 {
		t.Fatalf("length mismatch: got %f want %f", got.Length, wantLength)
	}

	wantSpacing := 3 * (90.0 / 15.0) * math.Pi / 180
	if math.Abs(got.Spacing-wantSpacing) > 1e-9 {
		t.Fatalf("spacing mismatch: got %f want %f", got.Spacing, wantSpacing)
	}
}

func TestClassifyArrayRing(t *testing.T) {
	got := ClassifyArray(ringSpeakers(8, 2.5))
	if got.Kind != Ring {
		t.Fatalf("kind mismatch: got %v want ring", got.Kind)
	}

	if math.Abs(got.Radius-2.5) > 1e-9 {
		t.Fatalf("radius mismatch: got %f want 2.5", got.Radius)
	}
}

func TestClassifyArrayWFSBeatsRing(t *testing.T) {
	// A flat 16-speaker strip at constant distance satisfies both
	// heuristics; the WFS check has priority.
	if got := ClassifyArray(stripSpeakers(16, 90, 3)); got.Kind != WFS {
		t.Fatalf("priority mismatch: got %v want wfs", got.Kind)
	}
}

func TestClassifyArrayIrregular(t *testing.T) {
	speakers := []Speaker{
		{ID: 1, Position: SphericalCoord{Azimuth: 0, Distance: 1}},
		{ID: 2, Position: SphericalCoord{Azimuth: 90, Distance: 3}},
		{ID: 3, Position: SphericalCoord{Azimuth: 200, Distance: 5}},
	}

	if got := ClassifyArray(speakers); got.Kind != Irregular {
		t.Fatalf("kind mismatch: got %v want irregular", got.Kind)
	}
}

func TestClassifyArrayTiltedStripIsNotWFS(t *testing.T) {
	speakers := stripSpeakers(16, 90, 3)
	for i := range speakers {
		speakers[i].Position.Elevation = float64(i) * 4 // 0..60 degrees
	}

	got := ClassifyArray(speakers)
	if got.Kind == WFS {
		t.Fatal("tilted strip must not classify as wfs")
	}
}

func TestClassifyArrayIdempotent(t *testing.T) {
	speakers := ringSpeakers(8, 2.5)

	first := ClassifyArray(speakers)

	second := ClassifyArray(speakers)
	if first != second {
		t.Fatalf("classification not idempotent: %+v vs %+v", first, second)
	}
}

func TestAnalyzeObjects(t *testing.T) {
	src := `{
		"patcher": {
			"boxes": [
				{"box": {"id": "obj-1", "maxclass": "newobj", "text": "spat5.panoramix~", "numinlets": 1, "numoutlets": 8}},
				{"box": {"id": "obj-2", "maxclass": "newobj", "text": "spat5.hoa.encoder~ 3", "numinlets": 1, "numoutlets": 16}},
				{"box": {"id": "obj-3", "maxclass": "newobj", "text": "spat5.hoa.decoder~", "numinlets": 16, "numoutlets": 8}},
				{"box": {"id": "obj-4", "maxclass": "newobj", "text": "spat5.vbap~ 12", "numinlets": 1, "numoutlets": 12}},
				{"box": {"id": "obj-5", "maxclass": "newobj", "text": "spat5.reverb~", "numinlets": 2, "numoutlets": 2}},
				{"box": {"id": "obj-6", "maxclass": "newobj", "text": "cycle~ 440", "numinlets": 2, "numoutlets": 1}}
			],
			"lines": []
		}
	}`

	p, err := patch.ParseString(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	objects := AnalyzeObjects(p)
	if len(objects) != 5 {
		t.Fatalf("object count mismatch: got %d want 5", len(objects))
	}

	if objects[0].Type.Kind != Panoramix {
		t.Fatalf("obj-1 kind mismatch: %+v", objects[0].Type)
	}

	if objects[0].Format.Kind != FormatMultichannel || objects[0].Format.Channels != 8 {
		t.Fatalf("obj-1 format mismatch: %+v", objects[0].Format)
	}

	if objects[1].Type.Kind != HoaEncoder || objects[1].Type.Order != 3 {
		t.Fatalf("obj-2 type mismatch: %+v", objects[1].Type)
	}

	if objects[1].Format.Kind != FormatAmbisonic || objects[1].Format.Order != 3 || objects[1].Format.Dimension != 3 {
		t.Fatalf("obj-2 format mismatch: %+v", objects[1].Format)
	}

	// Missing order argument defaults to 1.
	if objects[2].Type.Kind != HoaDecoder || objects[2].Type.Order != 1 {
		t.Fatalf("obj-3 type mismatch: %+v", objects[2].Type)
	}

	if objects[3].Type.Kind != Vbap || objects[3].Type.NumSpeakers != 12 {
		t.Fatalf("obj-4 type mismatch: %+v", objects[3].Type)
	}

	if objects[4].Type.Kind != Generic || objects[4].Type.Name != "spat5.reverb~" {
		t.Fatalf("obj-5 type mismatch: %+v", objects[4].Type)
	}
}

func TestAnalyzeObjectsAttributeParams(t *testing.T) {
	src := `{
		"patcher": {
			"boxes": [
				{"box": {"id": "obj-1", "maxclass": "newobj", "text": "spat5.panoramix~ @channels 8 @gain -6.0", "numinlets": 1, "numoutlets": 8}}
			],
			"lines": []
		}
	}`

	p, err := patch.ParseString(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	objects := AnalyzeObjects(p)
	if len(objects) != 1 {
		t.Fatalf("object count mismatch: got %d", len(objects))
	}

	params := objects[0].Parameters
	if len(params) != 2 {
		t.Fatalf("param count mismatch: got %d want 2 (%+v)", len(params), params)
	}

	if params[0].Name != "channels" || params[0].Value != 8 {
		t.Fatalf("param mismatch: %+v", params[0])
	}

	if params[1].Name != "gain" || params[1].Value != -6 {
		t.Fatalf("param mismatch: %+v", params[1])
	}
}

func TestDetermineMethodPriority(t *testing.T) {
	wfsArray := SpeakerArray{Type: ArrayType{Kind: WFS}, Speakers: make([]Speaker, 16)}
	ringArray := SpeakerArray{Type: ArrayType{Kind: Ring}, Speakers: make([]Speaker, 8)}
	hoaObj := Object{Type: ObjectType{Kind: HoaEncoder, Order: 2}}

	cases := []struct {
		name string
		cfg  Config
		want ProcessingMethod
	}{
		{"wfs dominates", Config{Arrays: []SpeakerArray{ringArray, wfsArray}, Objects: []Object{hoaObj}}, MethodWFS},
		{"hoa before vbap", Config{Arrays: []SpeakerArray{ringArray}, Objects: []Object{hoaObj}}, MethodHOA},
		{"vbap from speaker count", Config{Arrays: []SpeakerArray{ringArray}}, MethodVBAP},
		{"stereo fallback", Config{Arrays: []SpeakerArray{{Speakers: make([]Speaker, 2)}}}, MethodStereo},
		{"empty config", Config{}, MethodStereo},
	}

	for _, tc := range cases {
		if got := DetermineMethod(&tc.cfg); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestFromLayoutDerivesWFSConfig(t *testing.T) {
	strip := stripSpeakers(16, 90, 3)

	layout := layoutFromSpeakers(1, "WFS", "Front Strip", strip)

	array := FromLayout(layout)
	if array.Type.Kind != WFS {
		t.Fatalf("kind mismatch: got %v", array.Type.Kind)
	}

	if array.ID != "Front Strip" {
		t.Fatalf("id mismatch: got %q", array.ID)
	}

	if array.WFS == nil {
		t.Fatal("wfs config missing")
	}

	wantAlias := 343.0 / (2 * array.Type.Spacing)
	if math.Abs(array.WFS.AliasingFrequency-wantAlias) > 1e-9 {
		t.Fatalf("aliasing frequency mismatch: got %f want %f", array.WFS.AliasingFrequency, wantAlias)
	}
}

func TestFromLayoutKeepsDelayGain(t *testing.T) {
	layout := layoutFromSpeakers(2, "Stereo", "", []Speaker{
		{ID: 1, Position: SphericalCoord{Azimuth: -30, Distance: 2}, Delay: 0.01, Gain: -3},
		{ID: 2, Position: SphericalCoord{Azimuth: 30, Distance: 2}, Delay: 0.02, Gain: -1.5},
	})

	array := FromLayout(layout)
	if array.ID != "bus-2" {
		t.Fatalf("fallback id mismatch: got %q", array.ID)
	}

	if array.Speakers[0].Delay != 0.01 || array.Speakers[1].Gain != -1.5 {
		t.Fatalf("delay/gain not carried: %+v", array.Speakers)
	}

	if array.WFS != nil {
		t.Fatal("non-wfs array should have no wfs config")
	}
}
