package convert

import (
	"fmt"

	"github.com/jerry73204/max2sc/convert/hoa"
	"github.com/jerry73204/max2sc/convert/vbap"
	"github.com/jerry73204/max2sc/convert/wfs"
	"github.com/jerry73204/max2sc/graph"
	"github.com/jerry73204/max2sc/oscconfig"
	"github.com/jerry73204/max2sc/patch"
	"github.com/jerry73204/max2sc/sc"
	"github.com/jerry73204/max2sc/spatial"
)

// Options gates parts of a conversion run. The zero value converts
// everything.
type Options struct {
	SkipSpatial      bool
	SkipMultichannel bool
	SkipOSC          bool
	Simplified       bool
}

// Project is the result of converting one patch: the analyzed spatial
// config, the traced signal chains, the per-box conversions, and the
// method-specific setup objects. Soft failures are collected as warnings
// rather than aborting the run.
type Project struct {
	Graph    *graph.SignalFlowGraph
	Spatial  *spatial.Config
	Chains   []graph.SignalChain
	Objects  map[string]*sc.Object
	Setup    []*sc.Object
	Warnings []string
}

// Convert runs a full conversion. osc may be nil when no speaker setup
// accompanies the patch. Graph construction failures are hard errors;
// everything downstream degrades to warnings.
func Convert(p *patch.Patch, osc *oscconfig.Config, opts Options) (*Project, error) {
	g, err := graph.Build(p)
	if err != nil {
		return nil, err
	}

	if opts.SkipOSC {
		osc = nil
	}

	proj := &Project{
		Graph:   g,
		Chains:  graph.AnalyzeSignalChains(g, graph.ChainOptions{}),
		Spatial: spatial.Analyze(p, osc, spatial.Options{SkipSpatial: opts.SkipSpatial}),
		Objects: make(map[string]*sc.Object),
	}

	for _, box := range p.Patcher.Boxes {
		obj, err := ConvertObject(box.Content)
		if err != nil {
			proj.warnf("box %s: %v", box.Content.ID, err)
			continue
		}

		if obj != nil {
			proj.Objects[box.Content.ID] = obj
		}
	}

	if !opts.Simplified && !opts.SkipMultichannel {
		proj.generateSetup()
	}

	return proj, nil
}

// generateSetup emits the algorithm-specific setup objects for the
// selected processing method.
func (p *Project) generateSetup() {
	switch p.Spatial.Method {
	case spatial.MethodWFS:
		for i := range p.Spatial.Arrays {
			a := &p.Spatial.Arrays[i]
			if a.Type.Kind != spatial.WFS {
				continue
			}

			p.Setup = append(p.Setup, wfs.GenerateArray(a))

			if a.WFS != nil {
				p.Setup = append(p.Setup, wfs.GeneratePrefilter(a.WFS))
			}
		}
	case spatial.MethodVBAP:
		for i := range p.Spatial.Arrays {
			a := &p.Spatial.Arrays[i]

			res := vbap.ValidateSetup(a)
			for _, w := range res.Warnings {
				p.warnf("array %s: %s", a.ID, w)
			}

			if !res.IsValid {
				for _, e := range res.Errors {
					p.warnf("array %s: %s", a.ID, e)
				}

				continue
			}

			setup := vbap.GenerateSetup(a)
			p.Setup = append(p.Setup, setup,
				vbap.GeneratePanner(len(a.Speakers), setup, vbap.Use3D(a.Speakers)))
		}
	case spatial.MethodHOA:
		p.generateHOASetup()
	case spatial.MethodStereo:
	}
}

func (p *Project) generateHOASetup() {
	order := 0

	for _, o := range p.Spatial.Objects {
		if o.Type.Kind == spatial.HoaEncoder || o.Type.Kind == spatial.HoaDecoder {
			if o.Type.Order > order {
				order = o.Type.Order
			}
		}
	}

	var array *spatial.SpeakerArray
	if len(p.Spatial.Arrays) > 0 {
		array = &p.Spatial.Arrays[0]
	}

	if order == 0 {
		if array == nil {
			return
		}

		order = hoa.OptimalOrder(len(array.Speakers))
	}

	enc, err := hoa.GenerateEncoder(order, 3)
	if err != nil {
		p.warnf("hoa encoder: %v", err)
		return
	}

	p.Setup = append(p.Setup, enc)

	if array != nil {
		res := hoa.ValidateConfig(order, len(array.Speakers))
		for _, w := range res.Warnings {
			p.warnf("array %s: %s", array.ID, w)
		}

		if !res.IsValid {
			for _, e := range res.Errors {
				p.warnf("array %s: %s; recommended order %d", array.ID, e, res.RecommendedOrder)
			}

			return
		}

		dec, err := hoa.GenerateDecoder(order, array, hoa.DecoderBasic)
		if err != nil {
			p.warnf("hoa decoder: %v", err)
			return
		}

		p.Setup = append(p.Setup, dec)
	}
}

func (p *Project) warnf(format string, args ...interface{}) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}
