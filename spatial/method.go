package spatial

import (
	"github.com/jerry73204/max2sc/oscconfig"
	"github.com/jerry73204/max2sc/patch"
)

const vbapMinSpeakers = 4

// Options gates parts of the analysis. The zero value runs everything;
// SkipSpatial suppresses object discovery so a conversion can fall back to
// plain channel mapping.
type Options struct {
	SkipSpatial bool
}

// DetermineMethod selects the processing method for a config. Priority:
// any WFS array wins, then explicit HOA objects, then a VBAP-sized array,
// then stereo.
func DetermineMethod(cfg *Config) ProcessingMethod {
	for _, a := range cfg.Arrays {
		if a.Type.Kind == WFS {
			return MethodWFS
		}
	}

	for _, o := range cfg.Objects {
		if o.Type.Kind == HoaEncoder || o.Type.Kind == HoaDecoder {
			return MethodHOA
		}
	}

	maxSpeakers := 0
	for _, a := range cfg.Arrays {
		if len(a.Speakers) > maxSpeakers {
			maxSpeakers = len(a.Speakers)
		}
	}

	if maxSpeakers >= vbapMinSpeakers {
		return MethodVBAP
	}

	return MethodStereo
}

// Analyze builds the full spatial config for one conversion run. osc may be
// nil when no speaker setup accompanies the patch.
func Analyze(p *patch.Patch, osc *oscconfig.Config, opts Options) *Config {
	cfg := &Config{}

	if !opts.SkipSpatial {
		cfg.Objects = AnalyzeObjects(p)
	}

	if osc != nil {
		cfg.Arrays = make([]SpeakerArray, 0, len(osc.SpeakerArrays))
		for _, layout := range osc.SpeakerArrays {
			cfg.Arrays = append(cfg.Arrays, FromLayout(layout))
		}
	}

	cfg.Method = DetermineMethod(cfg)

	return cfg
}
