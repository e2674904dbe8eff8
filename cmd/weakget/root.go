package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	"github.com/ib-77/weakget/pkg/weakget"
	"github.com/ib-77/weakget/pkg/weakget/lookup"
	"github.com/ib-77/weakget/pkg/weakget/path"
)

const (
	modeWeak     = "weak"
	modeCoalesce = "coalesce"

	formatAuto = "auto"
	formatJSON = "json"
	formatYAML = "yaml"
)

var boundFlags = []string{"default", "mode", "format", "output", "fold-case"}

type options struct {
	Default  string
	Mode     string
	Format   string
	Output   string
	FoldCase bool
}

func newRootCmd() *cobra.Command {
	cfg := viper.New()
	cfg.SetEnvPrefix("WEAKGET")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "weakget EXPR [FILE]",
		Short: "Evaluate a chain expression against a JSON or YAML document.",
		Long: `Evaluate a chain expression such as .users[0].name against a JSON or YAML
document read from FILE or stdin. When the chain collapses the default is
printed instead.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options{
				Default:  cfg.GetString("default"),
				Mode:     cfg.GetString("mode"),
				Format:   cfg.GetString("format"),
				Output:   cfg.GetString("output"),
				FoldCase: cfg.GetBool("fold-case"),
			}
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.String("default", "null", "value printed when the chain collapses, parsed as YAML")
	flags.String("mode", modeWeak, "chain kind: weak collapses on missing keys, coalesce on nulls")
	flags.String("format", formatAuto, "input format: auto, json or yaml")
	flags.StringP("output", "o", formatJSON, "output format: json or yaml")
	flags.Bool("fold-case", false, "match attribute names case-insensitively")
	for _, name := range boundFlags {
		if err := cfg.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(errors.Wrapf(err, "binding --%s", name))
		}
	}
	return cmd
}

func run(cmd *cobra.Command, opts options, args []string) error {
	steps, err := path.Parse(args[0])
	if err != nil {
		return err
	}

	doc, err := readDocument(cmd, opts.Format, args[1:])
	if err != nil {
		return err
	}

	var def any
	if err := yaml.Unmarshal([]byte(opts.Default), &def); err != nil {
		return errors.Wrap(err, "parsing --default")
	}

	start, err := startChain(opts, doc)
	if err != nil {
		return err
	}

	end := steps.Apply(start)
	out, err := end.Or(def)
	if err != nil {
		return err
	}
	log.Debug().
		Str("expr", steps.String()).
		Str("mode", opts.Mode).
		Bool("collapsed", weakget.IsNothing(end)).
		Msg("chain evaluated")

	return write(cmd.OutOrStdout(), opts.Output, out)
}

func startChain(opts options, doc any) (weakget.Chain, error) {
	resolverOpts := []lookup.Option{lookup.WithMapKeys()}
	if opts.FoldCase {
		resolverOpts = append(resolverOpts, lookup.WithFoldCase())
	}
	g := weakget.Using(lookup.New(resolverOpts...))

	switch opts.Mode {
	case modeWeak:
		return g.Of(doc), nil
	case modeCoalesce:
		return g.Coalesce(doc), nil
	}
	return nil, errors.Errorf("unknown mode %q", opts.Mode)
}

func readDocument(cmd *cobra.Command, format string, args []string) (any, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading document")
	}

	var doc any
	switch format {
	case formatJSON:
		err = json.Unmarshal(data, &doc)
	case formatAuto, formatYAML:
		// YAML is a superset of JSON
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, errors.Errorf("unknown input format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(err, "decoding document")
	}
	return doc, nil
}

func write(w io.Writer, format string, v any) error {
	var (
		out []byte
		err error
	)
	switch format {
	case formatJSON:
		out, err = json.Marshal(v)
	case formatYAML:
		out, err = yaml.Marshal(v)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return errors.Wrap(err, "encoding result")
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	if format == formatJSON {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
