// Command gohypdemo exercises the strategy stack end to end: it builds
// a descriptor, draws and reifies a template, and, depending on -format,
// exports its basic form, renders it as SVG, or shrinks it and renders a
// short shrink strip as SVG.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/gohyp/pkg/composite"
	"github.com/dshills/gohyp/pkg/config"
	"github.com/dshills/gohyp/pkg/leaf"
	"github.com/dshills/gohyp/pkg/seed"
	"github.com/dshills/gohyp/pkg/strategy"
	"github.com/dshills/gohyp/pkg/visualize"
)

const version = "0.1.0"

var (
	configPath = flag.String("config", "", "Path to YAML settings file (empty = built-in defaults)")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	format     = flag.String("format", "basic", "Export format: basic, svg, shrink, or all")
	descName   = flag.String("descriptor", "tuple-list-set", "Built-in descriptor to draw: tuple-list-set, nested-map, or record")
	propName   = flag.String("property", "demo", "Property name, used to derive the draw's seed")
	seedFlag   = flag.Uint64("seed", 0, "Override the master seed from config (0 = use config seed)")
	shrinkN    = flag.Int("shrink-steps", 6, "Number of shrink-sequence candidates to render with -format shrink")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("gohypdemo version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	validFormats := map[string]bool{"basic": true, "svg": true, "shrink": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: basic, svg, shrink, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", settings.Seed, *seedFlag)
		}
		settings.Seed = *seedFlag
	}

	if *verbose {
		fmt.Printf("Using seed: %d\n", settings.Seed)
		fmt.Printf("average_list_length: %v\n", settings.AverageListLength())
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	reg := buildRegistry()
	desc, err := builtinDescriptor(*descName)
	if err != nil {
		return err
	}

	stage := seed.New(settings.Seed, *propName, settings.Hash())
	str, err := reg.Build(desc, settings)
	if err != nil {
		return fmt.Errorf("building strategy: %w", err)
	}

	start := time.Now()
	pv := str.Parameter().Draw(stage.Rand())
	tmpl, err := str.ProduceTemplate(stage.Rand(), pv)
	if err != nil {
		return fmt.Errorf("drawing a template: %w", err)
	}
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Drew a template in %v\n", elapsed)
	}

	reified, err := str.Reify(tmpl)
	if err != nil {
		return fmt.Errorf("reifying the template: %w", err)
	}
	fmt.Printf("property=%s seed=%d descriptor=%s\n", *propName, stage.Seed(), desc)
	fmt.Printf("value: %#v\n", reified)

	baseName := fmt.Sprintf("gohyp_%s_%d", *propName, stage.Seed())

	if *format == "basic" || *format == "all" {
		if err := exportBasic(str, tmpl, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(reg, str, tmpl, settings, baseName); err != nil {
			return err
		}
	}
	if *format == "shrink" || *format == "all" {
		if err := exportShrink(reg, str, tmpl, settings, baseName); err != nil {
			return err
		}
	}

	return nil
}

func loadSettings() (config.Settings, error) {
	if *configPath == "" {
		return config.Default(), nil
	}
	if *verbose {
		fmt.Printf("Loading settings from %s\n", *configPath)
	}
	return config.Load(*configPath)
}

func buildRegistry() *strategy.Registry {
	reg := strategy.NewRegistry()
	composite.Register(reg)
	reg.Register(strategy.KindLeaf, func(r *strategy.Registry, d strategy.Descriptor, s strategy.Settings) (strategy.Strategy, error) {
		switch leaf.Token(d.LeafToken().String()) {
		case "bool":
			return leaf.Bool(), nil
		case "name":
			return leaf.ASCIIString(24), nil
		default:
			return leaf.Int(-1000, 1000), nil
		}
	})
	return reg
}

func builtinDescriptor(name string) (strategy.Descriptor, error) {
	intDesc := strategy.Leaf(leaf.Token("int"))
	boolDesc := strategy.Leaf(leaf.Token("bool"))
	nameDesc := strategy.Leaf(leaf.Token("name"))

	switch name {
	case "tuple-list-set":
		return strategy.Tuple("", intDesc, strategy.List(intDesc), strategy.Set(boolDesc)), nil
	case "nested-map":
		return strategy.Map(map[string]strategy.Descriptor{
			"id":     intDesc,
			"active": boolDesc,
			"tags":   strategy.List(nameDesc),
		}), nil
	case "record":
		return strategy.Tuple("", nameDesc, strategy.FrozenSet(intDesc)), nil
	default:
		return strategy.Descriptor{}, fmt.Errorf("unknown descriptor %q, must be one of: tuple-list-set, nested-map, record", name)
	}
}

func exportBasic(str strategy.Strategy, tmpl strategy.Template, baseName string) error {
	bv, err := str.ToBasic(tmpl)
	if err != nil {
		return fmt.Errorf("serializing to basic form: %w", err)
	}
	filename := filepath.Join(*outputDir, baseName+".basic")
	if *verbose {
		fmt.Printf("Exporting basic form to %s\n", filename)
	}
	return os.WriteFile(filename, []byte(fmt.Sprintf("%#v\n", bv)), 0644)
}

func exportSVG(reg *strategy.Registry, str strategy.Strategy, tmpl strategy.Template, settings strategy.Settings, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}
	opts := visualize.DefaultOptions()
	opts.Title = fmt.Sprintf("%s (seed=%d)", *propName, settings.(config.Settings).Seed)
	if err := visualize.SaveTemplateSVG(reg, str, tmpl, settings, filename, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	return reportSize(filename)
}

func exportShrink(reg *strategy.Registry, str strategy.Strategy, tmpl strategy.Template, settings strategy.Settings, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+"_shrink.svg")
	if *verbose {
		fmt.Printf("Exporting shrink strip to %s\n", filename)
	}
	opts := visualize.DefaultOptions()
	opts.Title = fmt.Sprintf("%s shrink strip", *propName)
	data, err := visualize.RenderShrinkSteps(reg, str, tmpl, settings, *shrinkN, opts)
	if err != nil {
		return fmt.Errorf("failed to render shrink strip: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write shrink strip: %w", err)
	}
	return reportSize(filename)
}

func reportSize(filename string) error {
	if !*verbose {
		return nil
	}
	info, err := os.Stat(filename)
	if err != nil {
		return nil
	}
	fmt.Printf("  Wrote %d bytes\n", info.Size())
	return nil
}

func printHelp() {
	fmt.Printf("gohypdemo version %s\n\n", version)
	fmt.Println("Draws, reifies, and optionally shrinks/visualizes a built-in descriptor.")
	fmt.Println("\nUsage:")
	fmt.Println("  gohypdemo [options]")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML settings file (default: built-in defaults)")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: basic, svg, shrink, or all (default: basic)")
	fmt.Println("  -descriptor string")
	fmt.Println("        Built-in descriptor: tuple-list-set, nested-map, or record (default: tuple-list-set)")
	fmt.Println("  -property string")
	fmt.Println("        Property name, used to derive the draw's seed (default: demo)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the master seed from config (0 = use config seed)")
	fmt.Println("  -shrink-steps int")
	fmt.Println("        Number of shrink-sequence candidates to render with -format shrink (default: 6)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  gohypdemo -descriptor nested-map -format all -verbose")
	fmt.Println("  gohypdemo -descriptor record -format shrink -shrink-steps 10")
}
