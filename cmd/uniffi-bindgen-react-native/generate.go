package main

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ianthetechie/uniffi-bindgen-react-native/pkg/codegen/naming"
	"github.com/ianthetechie/uniffi-bindgen-react-native/pkg/codegen/typescript"
	"github.com/ianthetechie/uniffi-bindgen-react-native/pkg/component"
	"github.com/ianthetechie/uniffi-bindgen-react-native/pkg/logger"
)

type generateOptions struct {
	model          string
	config         string
	out            string
	logLevel       string
	logFormat      string
	skipValidation bool

	// stdout receives the plan when no output file is given.
	stdout io.Writer
}

func newGenerateCommand() *cobra.Command {
	opts := &generateOptions{stdout: os.Stdout}
	cmd := &cobra.Command{
		Use:   "generate MODEL",
		Short: "Generate a TypeScript bindings plan from an interface model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.model = args[0]
			return runGenerate(opts)
		},
	}
	installGenerateFlags(cmd.Flags(), opts)
	return cmd
}

func installGenerateFlags(flags *pflag.FlagSet, opts *generateOptions) {
	flags.StringVarP(&opts.config, "config", "c", "", "Path to the uniffi.toml bindings config")
	flags.StringVarP(&opts.out, "out", "o", "", "Write the bindings plan to a file instead of stdout")
	flags.StringVar(&opts.logLevel, "log-level", "info", `Set the logging level ("debug"|"info"|"warn"|"error")`)
	flags.StringVar(&opts.logFormat, "log-format", "text", `Set the logging format ("text"|"json")`)
	flags.BoolVar(&opts.skipValidation, "skip-validation", false, "Skip plan validation after generation")
}

func runGenerate(opts *generateOptions) error {
	start := time.Now()

	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	if err := logger.Init(logger.Config{Level: level, Format: opts.logFormat}); err != nil {
		return errors.Wrap(err, "initializing logger")
	}
	logger.LogGeneratorStart([]string{opts.model})

	logger.LogFileProcessing(opts.model)
	data, err := os.ReadFile(opts.model)
	if err != nil {
		return errors.Wrap(err, "reading interface model")
	}

	logger.LogPhase("load")
	iface, err := component.Load(data)
	if err != nil {
		logger.LogGeneratorComplete(false, time.Since(start).String())
		return errors.Wrap(err, "loading interface model")
	}
	logger.LogModelLoad(iface.Name, len(iface.DeclNames())+len(iface.Functions))
	logger.LogPhaseComplete("load")

	cfg := typescript.Config{}
	if opts.config != "" {
		raw, err := os.ReadFile(opts.config)
		if err != nil {
			return errors.Wrap(err, "reading bindings config")
		}
		if cfg, err = typescript.ParseConfig(raw); err != nil {
			return err
		}
	}

	logger.LogPhase("generate")
	gen := typescript.NewGenerator(iface, cfg)

	var plan *typescript.BindingsPlan
	if opts.skipValidation {
		plan, err = gen.Generate()
	} else {
		plan, err = gen.GenerateWithValidation()
	}
	if err != nil {
		var collision *naming.CollisionError
		if errors.As(err, &collision) {
			logger.LogCollision(collision.Name)
		}
		logger.LogGeneratorComplete(false, time.Since(start).String())
		return err
	}
	logger.LogTypeResolution(iface.Name, gen.Oracle().Registry().Len())
	logger.LogGeneration("typescript", plan.Module, len(plan.Helpers))
	logger.LogPhaseComplete("generate")

	if err := writePlan(plan, opts); err != nil {
		logger.LogGeneratorComplete(false, time.Since(start).String())
		return err
	}

	logger.LogGeneratorComplete(true, time.Since(start).String())
	return nil
}

func writePlan(plan *typescript.BindingsPlan, opts *generateOptions) error {
	out := opts.stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(plan); err != nil {
		return errors.Wrap(err, "writing bindings plan")
	}
	return nil
}
