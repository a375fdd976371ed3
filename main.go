package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cli-table/internal/config"
	"cli-table/internal/grid"
	"cli-table/internal/log"
	"cli-table/internal/table"
	"cli-table/internal/width"
)

// renderParams holds the width and style flags shared by every command.
type renderParams struct {
	configPath string
	verbose    bool

	style    string
	align    string
	target   string
	suffix   string
	truncate int
	wrap     int
	increase int
	plain    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	p := &renderParams{}

	root := &cobra.Command{
		Use:   "cli-table",
		Short: "Render tables that fit the terminal",
		Long: `Render tables from CSV or PostgreSQL queries, truncating, wrapping or
widening cells so the result fits the space available.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if p.verbose {
				log.SetLevel(log.LevelDebug)
			}
		},
	}

	fs := root.PersistentFlags()
	fs.StringVar(&p.configPath, "config", "", "config file (default ~/.config/cli-table/config.json)")
	fs.BoolVarP(&p.verbose, "verbose", "v", false, "log every table change to stderr")
	fs.IntVar(&p.truncate, "truncate", 0, "truncate cells to this many columns (0 disables)")
	fs.StringVar(&p.suffix, "suffix", "...", "text appended to truncated cells")
	fs.IntVar(&p.wrap, "wrap", 0, "wrap cells at this many columns (0 disables)")
	fs.IntVar(&p.increase, "increase", 0, "widen the table to this percentage of its width (0 disables)")
	fs.StringVar(&p.target, "target", "all", "cells to truncate or wrap: all, row:N, col:N or cell:R,C")
	fs.StringVar(&p.style, "style", "markdown", "table style: "+strings.Join(grid.StyleNames(), ", "))
	fs.StringVar(&p.align, "align", "left", "cell alignment: left, center or right")
	fs.BoolVar(&p.plain, "plain", false, "measure code points, counting escape sequences as text")

	root.AddCommand(
		newRenderCommand(p),
		newQueryCommand(p),
		newTablesCommand(p),
		newViewCommand(p),
		newDemoCommand(p),
		newConnCommand(p),
	)
	return root
}

// load reads the config file and resolves the render settings, with flags
// set on the command line taking precedence over the file.
func (p *renderParams) load(cmd *cobra.Command) (*config.Config, table.Settings, error) {
	cfg, err := config.Load(p.configPath)
	if err != nil {
		return nil, table.Settings{}, err
	}
	s, err := settingsFrom(p.merge(cfg.Render, cmd.Flags()))
	if err != nil {
		return nil, table.Settings{}, err
	}
	log.Debug("settings: %s", s.Describe())
	return cfg, s, nil
}

func (p *renderParams) merge(r config.Render, fs *pflag.FlagSet) config.Render {
	if fs.Changed("style") {
		r.Style = p.style
	}
	if fs.Changed("align") {
		r.Align = p.align
	}
	if fs.Changed("target") {
		r.Target = p.target
	}
	if fs.Changed("suffix") {
		r.Suffix = p.suffix
	}
	if fs.Changed("truncate") {
		r.Truncate = p.truncate
	}
	if fs.Changed("wrap") {
		r.Wrap = p.wrap
	}
	if fs.Changed("increase") {
		r.Increase = p.increase
	}
	if fs.Changed("plain") {
		r.Plain = p.plain
	}
	return r
}

func settingsFrom(r config.Render) (table.Settings, error) {
	s := table.DefaultSettings()

	if r.Style != "" {
		st, err := grid.LookupStyle(r.Style)
		if err != nil {
			return s, err
		}
		s.Style = st
	}
	align, err := grid.ParseAlignment(r.Align)
	if err != nil {
		return s, err
	}
	s.Align = align
	if r.Target != "" {
		target, err := grid.ParseEntity(r.Target)
		if err != nil {
			return s, err
		}
		s.Target = target
	}
	if r.Truncate < 0 || r.Wrap < 0 {
		return s, fmt.Errorf("widths must not be negative (truncate %d, wrap %d)", r.Truncate, r.Wrap)
	}
	if r.Increase != 0 {
		if _, err := width.NewPercent(r.Increase); err != nil {
			return s, err
		}
	}

	s.Suffix = r.Suffix
	s.Truncate = r.Truncate
	s.Wrap = r.Wrap
	s.Increase = r.Increase
	if r.Plain {
		s.Measurer = width.Plain{}
	}
	return s, nil
}
