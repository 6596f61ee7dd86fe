// Command imagecore converts, inspects and tiles images.
//
//	imagecore convert --colorspace CMYK in.tm2 out.tiff
//	imagecore identify a.png b.tm2
//	imagecore montage --tile 3x2 --geometry 128x128+4 out.png *.png
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/mrjoshuak/go-imagecore"
)

type app struct {
	cfg        Config
	configPath string
	logLevel   string
	logger     *slog.Logger
	stderr     io.Writer
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: DefaultConfig(), stderr: stderr}
	root := &cobra.Command{
		Use:           "imagecore",
		Short:         "Convert, inspect and tile images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Flags())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "TOML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.Int("workers", 0, "worker goroutines (0 uses GOMAXPROCS)")
	pf.String("mode", "", "numeric mode (quantized, extended)")
	pf.Int64("memory-limit", 0, "lookup table memory limit in bytes (0 is unlimited)")

	root.AddCommand(newConvertCmd(a), newIdentifyCmd(a), newMontageCmd(a))
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w\n%s", err, c.UsageString())
	})
	return root
}

// setup loads the configuration file and applies flag overrides.
func (a *app) setup(flags *pflag.FlagSet) error {
	if a.configPath != "" {
		cfg, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if flags.Changed("workers") {
		a.cfg.Transform.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("mode") {
		a.cfg.Transform.Mode, _ = flags.GetString("mode")
	}
	if flags.Changed("memory-limit") {
		a.cfg.Transform.MemoryLimit, _ = flags.GetInt64("memory-limit")
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	level, err := a.cfg.Log.level()
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

// transformer builds a Transformer from the configuration. Progress is
// drawn only when stderr is a terminal.
func (a *app) transformer() (*imagecore.Transformer, error) {
	pol, err := imagecore.ParsePolicy(a.cfg.Transform.Mode, a.cfg.Transform.MaxMap)
	if err != nil {
		return nil, err
	}
	opts := []imagecore.Option{
		imagecore.WithPolicy(pol),
		imagecore.WithWorkers(a.cfg.Transform.Workers),
		imagecore.WithMemoryLimit(a.cfg.Transform.MemoryLimit),
		imagecore.WithLogger(a.logger),
	}
	if f, ok := a.stderr.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		opts = append(opts, imagecore.WithProgress(func(tag string, done, total int) bool {
			fmt.Fprintf(f, "\r%s %d/%d", tag, done, total)
			if done == total {
				fmt.Fprintln(f)
			}
			return true
		}))
	}
	return imagecore.NewTransformer(opts...), nil
}
