package oscconfig

import (
	"math"
	"testing"
)

const simpleDump = `# Test OSC configuration
/master/name "Master"
/master/numio 32 32
/bus/1/format "WFS"
/bus/1/name "WFS Bus 1"
/bus/1/speakers/aed -39.3518 0.0 1.29321 -35.3748 0.0 1.22642 -30.9638 0.0 1.16619
/bus/1/speaker/1/delay 0.0186
/bus/1/speaker/2/delay 0.2132
/bus/1/speaker/1/gain -3.5
/bus/1/speaker/2/gain -2.1
`

func TestParseTextSimpleDump(t *testing.T) {
	cfg, err := ParseText(simpleDump)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(cfg.Commands) == 0 {
		t.Fatal("no commands parsed")
	}

	if len(cfg.SpeakerArrays) != 1 {
		t.Fatalf("array count mismatch: got %d want 1", len(cfg.SpeakerArrays))
	}

	layout := cfg.SpeakerArrays[0]
	if layout.BusID != 1 {
		t.Fatalf("bus id mismatch: got %d want 1", layout.BusID)
	}

	if layout.Format != "WFS" {
		t.Fatalf("format mismatch: got %q want WFS", layout.Format)
	}

	if layout.Name != "WFS Bus 1" {
		t.Fatalf("name mismatch: got %q", layout.Name)
	}

	if len(layout.Speakers) != 3 {
		t.Fatalf("speaker count mismatch: got %d want 3", len(layout.Speakers))
	}

	sp := layout.Speakers[0]
	if sp.ID != 1 {
		t.Fatalf("speaker id mismatch: got %d want 1", sp.ID)
	}

	if math.Abs(sp.Azimuth-(-39.3518)) > 1e-9 {
		t.Fatalf("azimuth mismatch: got %f", sp.Azimuth)
	}

	if sp.Elevation != 0 {
		t.Fatalf("elevation mismatch: got %f", sp.Elevation)
	}

	if math.Abs(sp.Distance-1.29321) > 1e-9 {
		t.Fatalf("distance mismatch: got %f", sp.Distance)
	}

	if math.Abs(sp.Delay-0.0186) > 1e-9 {
		t.Fatalf("delay mismatch: got %f", sp.Delay)
	}

	if math.Abs(sp.Gain-(-3.5)) > 1e-9 {
		t.Fatalf("gain mismatch: got %f", sp.Gain)
	}

	if math.Abs(layout.Speakers[1].Delay-0.2132) > 1e-9 {
		t.Fatalf("speaker 2 delay mismatch: got %f", layout.Speakers[1].Delay)
	}

	if layout.Speakers[2].Delay != 0 || layout.Speakers[2].Gain != 0 {
		t.Fatalf("speaker 3 should keep zero delay/gain: %+v", layout.Speakers[2])
	}
}

func TestParseTextMultipleBuses(t *testing.T) {
	dump := `/bus/2/format "VBAP"
/bus/2/speakers/aed 0 0 2 90 0 2 180 0 2 270 0 2
/bus/1/format "Stereo"
/bus/1/speakers/aed -30 0 2 30 0 2
`

	cfg, err := ParseText(dump)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(cfg.SpeakerArrays) != 2 {
		t.Fatalf("array count mismatch: got %d want 2", len(cfg.SpeakerArrays))
	}

	// File order, not bus-id order.
	if cfg.SpeakerArrays[0].BusID != 2 || cfg.SpeakerArrays[1].BusID != 1 {
		t.Fatalf("bus order mismatch: got %d, %d", cfg.SpeakerArrays[0].BusID, cfg.SpeakerArrays[1].BusID)
	}

	if len(cfg.SpeakerArrays[0].Speakers) != 4 {
		t.Fatalf("bus 2 speaker count mismatch: got %d", len(cfg.SpeakerArrays[0].Speakers))
	}
}

func TestParseTextUnknownAddressesRetained(t *testing.T) {
	dump := `/master/gain -6.0
/reverb/room/size 0.8
`

	cfg, err := ParseText(dump)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(cfg.Commands) != 2 {
		t.Fatalf("command count mismatch: got %d want 2", len(cfg.Commands))
	}

	if len(cfg.SpeakerArrays) != 0 {
		t.Fatalf("unexpected speaker arrays: %d", len(cfg.SpeakerArrays))
	}

	if cfg.Commands[1].Address != "/reverb/room/size" || cfg.Commands[1].Args[0] != "0.8" {
		t.Fatalf("command mismatch: %+v", cfg.Commands[1])
	}
}

func TestParseTextBadAEDCount(t *testing.T) {
	if _, err := ParseText("/bus/1/speakers/aed 0 0\n"); err == nil {
		t.Fatal("expected error for truncated aed list")
	}
}

func TestParseTextOutOfRangeSpeakerIgnored(t *testing.T) {
	dump := `/bus/1/speakers/aed 0 0 2
/bus/1/speaker/9/gain -3
`

	cfg, err := ParseText(dump)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if cfg.SpeakerArrays[0].Speakers[0].Gain != 0 {
		t.Fatal("out-of-range speaker line should not touch existing speakers")
	}
}

func TestTokenizeQuotedArgs(t *testing.T) {
	tokens := tokenize(`/bus/1/name "WFS Bus 1" trailing`)
	if len(tokens) != 3 {
		t.Fatalf("token count mismatch: got %d (%v)", len(tokens), tokens)
	}

	if tokens[1] != "WFS Bus 1" {
		t.Fatalf("quoted token mismatch: got %q", tokens[1])
	}
}
