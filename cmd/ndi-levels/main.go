// Command ndi-levels plots SMPTE and EBU reference-level charts and converts
// floating-point samples to 16-bit integers.
//
// Usage:
//
//	ndi-levels                                  # interactive menu
//	ndi-levels -s ebu -c 1.0,0.5                # convert samples
//	ndi-levels -s smpte -p log -o charts        # write charts/smpte_log.png
//	ndi-levels -s ebu -t                        # print the calibration table
//	ndi-levels --config ndi-levels.yaml -v      # settings file, debug logging
//
// Without -c, -p or -t the interactive menu runs on stdin/stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/spf13/pflag"
	"github.com/tphakala/simd/cpu"

	levels "github.com/tphakala/go-audio-levels"
	"github.com/tphakala/go-audio-levels/internal/chart"
	"github.com/tphakala/go-audio-levels/internal/config"
	"github.com/tphakala/go-audio-levels/internal/logger"
	"github.com/tphakala/go-audio-levels/internal/shell"
)

// options holds parsed command-line flags.
type options struct {
	configPath string
	standard   string
	convert    []float64
	plot       string
	table      bool
	outputDir  string
	format     string
	verbose    bool
	version    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := pflag.NewFlagSet("ndi-levels", pflag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "YAML settings file")
	fs.StringVarP(&opts.standard, "standard", "s", defaultStandard, "Standard for one-shot mode: smpte, ebu")
	fs.Float64SliceVarP(&opts.convert, "convert", "c", nil, "Convert samples and exit (comma separated)")
	fs.StringVarP(&opts.plot, "plot", "p", "", "Write a chart and exit: linear, log")
	fs.BoolVarP(&opts.table, "table", "t", false, "Print the calibration table and exit")
	fs.StringVarP(&opts.outputDir, "out-dir", "o", "", "Chart output directory (overrides config)")
	fs.StringVar(&opts.format, "format", "", "Chart format: png, svg, pdf, jpg (overrides config)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *options) oneShot() bool {
	return len(o.convert) > 0 || o.plot != "" || o.table
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if opts.version {
		fmt.Fprintf(stdout, "ndi-levels %s (SIMD: %s)\n", Version, cpu.Info())
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LoggerConfig()); err != nil {
		return fmt.Errorf("failed to initialise logging: %w", err)
	}
	defer logger.Sync()

	for _, std := range levels.Standards() {
		table, err := levels.TableFor(std)
		if err != nil {
			return err
		}
		if err := table.Validate(); err != nil {
			return err
		}
	}

	renderer, err := chart.New(cfg.ChartOptions())
	if err != nil {
		return err
	}

	logger.Debugf("ndi-levels %s starting (charts: %s/*.%s, SIMD: %s)",
		Version, cfg.Chart.OutputDir, cfg.Chart.Format, cpu.Info())

	if opts.oneShot() {
		return runOneShot(opts, renderer, stdout)
	}

	return shell.New(stdin, stdout, renderer).Run()
}

// loadConfig reads the settings file if given and applies flag overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.outputDir != "" {
		cfg.Chart.OutputDir = opts.outputDir
	}
	if opts.format != "" {
		cfg.Chart.Format = opts.format
	}
	if opts.verbose {
		cfg.Log.Level = verboseLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runOneShot handles -t, -c and -p, in that order, without the menu.
func runOneShot(opts *options, renderer *chart.Renderer, stdout io.Writer) error {
	std, err := levels.ParseStandard(opts.standard)
	if err != nil {
		return err
	}

	if opts.table {
		table, err := levels.TableFor(std)
		if err != nil {
			return err
		}
		if err := levels.FormatTable(stdout, table); err != nil {
			return fmt.Errorf("failed to print table: %w", err)
		}
	}

	if len(opts.convert) > 0 {
		buf := &audio.FloatBuffer{
			Format: &audio.Format{SampleRate: oneShotSampleRate, NumChannels: oneShotChannels},
			Data:   opts.convert,
		}
		out, err := levels.ConvertBuffer(std, buf)
		if err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}
		for i, v := range out.Data {
			fmt.Fprintf(stdout, "%g -> %d\n", opts.convert[i], v)
		}
		logger.Infof("converted %d samples for %s", len(out.Data), std)
	}

	if opts.plot != "" {
		scale, err := levels.ParseScale(opts.plot)
		if err != nil {
			return err
		}
		path, err := renderer.Render(std, scale)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Chart saved to %s\n", path)
	}

	return nil
}
