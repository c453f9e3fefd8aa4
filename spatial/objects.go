package spatial

import (
	"strconv"
	"strings"

	"github.com/jerry73204/max2sc/patch"
)

const (
	defaultHoaOrder     = 1
	defaultVbapSpeakers = 8
)

// AnalyzeObjects scans the patch for Spat5 objects. Recognized families get
// typed entries; any other spat5.* object becomes a Generic entry carrying
// its name. Non-spatial boxes are skipped, never errors.
func AnalyzeObjects(p *patch.Patch) []Object {
	var objects []Object

	for _, box := range p.Patcher.Boxes {
		c := box.Content

		kind := patch.ParseKind(c.MaxClass, c.Text)
		if kind.Kind != patch.KindSpat {
			continue
		}

		obj := Object{
			ID:      c.ID,
			Inputs:  c.NumInlets,
			Outputs: c.NumOutlets,
		}

		switch kind.Name {
		case "spat5.panoramix~":
			obj.Type = ObjectType{Kind: Panoramix}
			obj.Format = Multichannel(c.NumOutlets)
			obj.Parameters = attributeParams(kind.Args)
		case "spat5.hoa.encoder~":
			order := leadingInt(kind.Args, defaultHoaOrder)
			obj.Type = ObjectType{Kind: HoaEncoder, Order: order}
			obj.Format = Ambisonic(order, 3)
		case "spat5.hoa.decoder~":
			order := leadingInt(kind.Args, defaultHoaOrder)
			obj.Type = ObjectType{Kind: HoaDecoder, Order: order}
			obj.Format = Multichannel(c.NumOutlets)
		case "spat5.vbap~":
			n := leadingInt(kind.Args, defaultVbapSpeakers)
			obj.Type = ObjectType{Kind: Vbap, NumSpeakers: n}
			obj.Format = Multichannel(n)
		default:
			obj.Type = ObjectType{Kind: Generic, Name: kind.Name}
			obj.Format = Multichannel(c.NumOutlets)
		}

		objects = append(objects, obj)
	}

	return objects
}

// leadingInt parses the first argument as an integer, falling back to def
// when absent or non-numeric.
func leadingInt(args []string, def int) int {
	if len(args) == 0 {
		return def
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return def
	}

	return n
}

// attributeParams extracts "@name value" attribute pairs with numeric
// values. Non-numeric attributes are skipped; ranges are unknown at this
// point and stay unbounded.
func attributeParams(args []string) []Parameter {
	var params []Parameter

	for i := 0; i+1 < len(args); i++ {
		if !strings.HasPrefix(args[i], "@") {
			continue
		}

		val, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			continue
		}

		params = append(params, Parameter{
			Name:  strings.TrimPrefix(args[i], "@"),
			Value: val,
		})
	}

	return params
}
