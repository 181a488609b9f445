package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/rmcodec"
	"github.com/rawbytedev/rmcodec/internal/config"
	"github.com/rawbytedev/rmcodec/internal/observability"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	registry *prometheus.Registry
}

func (a *app) options() rmcodec.Options {
	opts := rmcodec.Options{
		InitialCapacity: a.cfg.Store.InitialCapacity,
		Logger:          a.log,
		Namespace:       a.cfg.Metrics.Namespace,
	}
	if a.registry != nil {
		opts.Registerer = a.registry
	}
	return opts
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		debug   bool
		a       = &app{}
	)

	cmd := &cobra.Command{
		Use:          "rmcodec",
		Short:        "Encode and inspect reference model records",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if debug {
				cfg.Log.Level = "debug"
			}
			log, err := observability.SetupLogger(cfg.Log)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			if cfg.Metrics.Enable {
				a.registry = prometheus.NewRegistry()
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.registry != nil {
				if err := printMetrics(a.registry); err != nil {
					return err
				}
			}
			_ = a.log.Sync()
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ./rmcodec.yaml)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every encode and decode")

	cmd.AddCommand(
		demoCmd(a),
		inspectCmd(a),
		decodeCmd(a),
		roundtripCmd(a),
	)
	return cmd
}

func printYAML(v any) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func printMetrics(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	out := make(map[string]float64)
	for _, f := range families {
		for _, m := range f.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				out[f.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[f.GetName()] += m.GetGauge().GetValue()
			}
		}
	}
	return printYAML(map[string]any{"metrics": out})
}
