// Command max2sc converts a Max/MSP patch to SuperCollider code.
//
// Usage:
//
//	max2sc [flags] input.maxpat
//
// It parses the patch, traces its signal flow, classifies the speaker
// setup when one is given, and writes the generated .scd files to the
// output directory. Conversion problems that do not prevent output are
// logged as warnings; only unreadable input aborts the run.
//
// Examples:
//
//	max2sc patch.maxpat
//	max2sc -o out -speakers setup.txt patch.maxpat
//	max2sc -simplified -skip-osc patch.maxpat
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jerry73204/max2sc/convert"
	"github.com/jerry73204/max2sc/convert/wfs"
	"github.com/jerry73204/max2sc/oscconfig"
	"github.com/jerry73204/max2sc/patch"
	"github.com/jerry73204/max2sc/sc"
)

func main() {
	output := flag.String("o", "output", "output directory for generated .scd files")
	speakers := flag.String("speakers", "", "speaker setup file (OSC dump format)")
	temperature := flag.Float64("temperature", 20.0, "air temperature in degrees Celsius, sets the speed of sound")
	skipSpatial := flag.Bool("skip-spatial", false, "skip spatial object analysis")
	skipMultichannel := flag.Bool("skip-multichannel", false, "skip multichannel setup generation")
	skipOSC := flag.Bool("skip-osc", false, "ignore the speaker setup file")
	simplified := flag.Bool("simplified", false, "generate plain channel mapping without spatial algorithms")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: max2sc [flags] input.maxpat\n\n")
		fmt.Fprintf(os.Stderr, "Converts a Max/MSP patch to SuperCollider code.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  max2sc patch.maxpat\n")
		fmt.Fprintf(os.Stderr, "  max2sc -o out -speakers setup.txt patch.maxpat\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log.SetFlags(0)
	log.SetPrefix("max2sc: ")

	input := flag.Arg(0)

	p, err := patch.ParseFile(input)
	if err != nil {
		log.Fatalf("reading patch: %v", err)
	}

	var osc *oscconfig.Config
	if *speakers != "" && !*skipOSC {
		osc, err = oscconfig.ParseFile(*speakers)
		if err != nil {
			log.Fatalf("reading speaker setup: %v", err)
		}
	}

	opts := convert.Options{
		SkipSpatial:      *skipSpatial,
		SkipMultichannel: *skipMultichannel,
		SkipOSC:          *skipOSC,
		Simplified:       *simplified,
	}

	proj, err := convert.Convert(p, osc, opts)
	if err != nil {
		log.Fatalf("conversion failed: %v", err)
	}

	for _, w := range proj.Warnings {
		log.Printf("warning: %s", w)
	}

	if err := writeProject(*output, input, proj, *temperature); err != nil {
		log.Fatalf("writing output: %v", err)
	}

	log.Printf("converted %s: %d objects, %d chains, method %s",
		filepath.Base(input), len(proj.Objects), len(proj.Chains), proj.Spatial.Method)
}

func writeProject(dir, input string, proj *convert.Project, temperature float64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	files := map[string]string{
		"main.scd":    renderMain(input, proj, temperature),
		"objects.scd": renderObjects(proj),
	}

	if len(proj.Setup) > 0 {
		files["setup.scd"] = renderSetup(proj)
	}

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}

	return nil
}

func renderMain(input string, proj *convert.Project, temperature float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// Converted from %s\n", filepath.Base(input))
	fmt.Fprintf(&b, "// Processing method: %s\n\n", proj.Spatial.Method)
	b.WriteString("(\n")
	fmt.Fprintf(&b, "~speedOfSound = %.1f;\n", wfs.SpeedOfSound(temperature))
	b.WriteString("s.waitForBoot {\n")

	if len(proj.Setup) > 0 {
		b.WriteString("\t\"setup.scd\".loadRelative;\n")
	}

	b.WriteString("\t\"objects.scd\".loadRelative;\n")
	b.WriteString("};\n")
	b.WriteString(")\n")

	return b.String()
}

func renderObjects(proj *convert.Project) string {
	var b strings.Builder

	b.WriteString("// Converted signal objects, one per patch box.\n\n")

	for _, chain := range proj.Chains {
		names := make([]string, len(chain.Path))
		for i, node := range chain.Path {
			names[i] = proj.Graph.Node(node).ID
		}

		fmt.Fprintf(&b, "// chain: %s\n", strings.Join(names, " -> "))
	}

	if len(proj.Chains) > 0 {
		b.WriteString("\n")
	}

	for _, id := range sortedKeys(proj.Objects) {
		fmt.Fprintf(&b, "// %s\n%s;\n\n", id, proj.Objects[id].Code())
	}

	return b.String()
}

func renderSetup(proj *convert.Project) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// Speaker setup, method %s.\n\n", proj.Spatial.Method)

	for _, o := range proj.Setup {
		fmt.Fprintf(&b, "%s;\n\n", o.Code())
	}

	return b.String()
}

func sortedKeys(m map[string]*sc.Object) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
