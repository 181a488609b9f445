package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rawbytedev/rmcodec"
	"github.com/rawbytedev/rmcodec/internal/sample"
	"github.com/rawbytedev/rmcodec/pkg/control"
	"github.com/rawbytedev/rmcodec/pkg/kind"
	"github.com/rawbytedev/rmcodec/pkg/record"
)

func demoCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Serialize a sample composition and print store statistics",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := rmcodec.New(a.options())
			h, err := c.SerializeComposition(sample.Composition())
			if err != nil {
				return err
			}
			if _, err := c.DeserializeComposition(); err != nil {
				return err
			}
			a.log.Info("composition written", zap.Uint32("handle", uint32(h)))
			if out != "" {
				data, err := c.Snapshot()
				if err != nil {
					return err
				}
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return err
				}
				a.log.Info("snapshot saved", zap.String("path", out), zap.Int("bytes", len(data)))
			}
			return printYAML(c.Stats())
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write a snapshot to this file")
	return cmd
}

func openSnapshot(a *app, path string) (*rmcodec.Codec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return rmcodec.OpenSnapshot(data, a.options())
}

func inspectCmd(a *app) *cobra.Command {
	var fields bool

	cmd := &cobra.Command{
		Use:   "inspect <snapshot>",
		Short: "Print what a snapshot holds",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := openSnapshot(a, args[0])
			if err != nil {
				return err
			}
			st := c.Stats()
			if !fields {
				return printYAML(st)
			}
			layout := make(map[string][]string, len(st.Instances))
			for name := range st.Instances {
				k, err := kind.Parse(name)
				if err != nil {
					return err
				}
				if layout[name], err = record.Default().Fields(k); err != nil {
					return err
				}
			}
			return printYAML(map[string]any{"stats": st, "fields": layout})
		},
	}

	cmd.Flags().BoolVar(&fields, "fields", false, "also list the field layout of every kind present")
	return cmd
}

func decodeCmd(a *app) *cobra.Command {
	var (
		kindName string
		handle   int
		last     bool
	)

	cmd := &cobra.Command{
		Use:   "decode <snapshot>",
		Short: "Decode one record from a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			k, err := kind.Parse(kindName)
			if err != nil {
				return err
			}
			c, err := openSnapshot(a, args[0])
			if err != nil {
				return err
			}
			h := control.Handle(handle)
			if last {
				if h, err = c.Index().Last(k); err != nil {
					return err
				}
			}
			r, err := c.DecodeAt(k, h)
			if err != nil {
				return err
			}
			return printYAML(map[string]any{"kind": k.String(), "handle": h, "record": r})
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "Composition", "record kind")
	cmd.Flags().IntVar(&handle, "handle", 0, "instance handle")
	cmd.Flags().BoolVar(&last, "last", false, "decode the most recent instance of the kind")
	return cmd
}

func roundtripCmd(a *app) *cobra.Command {
	var (
		parallel int
		rounds   int
	)

	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Round-trip one sample of every kind, each worker on its own codec",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if parallel < 1 || rounds < 1 {
				return errors.New("--parallel and --rounds must be positive")
			}
			samples := sample.All()
			g, _ := errgroup.WithContext(cmd.Context())
			for w := 0; w < parallel; w++ {
				w := w
				g.Go(func() error {
					c := rmcodec.New(a.options())
					for i := 0; i < rounds; i++ {
						for _, k := range kind.All() {
							v := samples[k]
							h, err := c.Serialize(v)
							if err != nil {
								return fmt.Errorf("worker %d: serialize %s: %w", w, k, err)
							}
							got, err := c.DecodeAt(k, h)
							if err != nil {
								return fmt.Errorf("worker %d: decode %s: %w", w, k, err)
							}
							if diff := cmp.Diff(v, got); diff != "" {
								return fmt.Errorf("worker %d: %s changed across the round trip (-want +got):\n%s", w, k, diff)
							}
						}
					}
					a.log.Debug("worker done", zap.Int("worker", w), zap.Any("stats", c.Stats()))
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			return printYAML(map[string]int{
				"workers": parallel,
				"records": parallel * rounds * len(samples),
			})
		},
	}

	cmd.Flags().IntVarP(&parallel, "parallel", "p", 4, "number of independent codecs")
	cmd.Flags().IntVarP(&rounds, "rounds", "n", 10, "round trips of every kind per worker")
	return cmd
}
