package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cli-table/internal/grid"
	"cli-table/internal/table"
)

func newRenderCommand(p *renderParams) *cobra.Command {
	return &cobra.Command{
		Use:   "render [file.csv]",
		Short: "Render CSV from a file or stdin",
		Long: `Render CSV as a table. The first record is the header. With no file,
or with "-", CSV is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := p.load(cmd)
			if err != nil {
				return err
			}
			t, err := readCSV(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			if err := s.Apply(t); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func readCSV(stdin io.Reader, args []string) (*table.Table, error) {
	if len(args) == 0 || args[0] == "-" {
		return table.ReadCSV(stdin)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return table.ReadCSV(f)
}

var demoRecords = [][]string{
	{"Hello World!!!", "3.3.22.2"},
	{"Guten Morgen", "1.1.1.1"},
	{"Добры вечар", "127.0.0.1"},
	{"Bonjour le monde", ""},
	{"Ciao mondo", ""},
}

func newDemoCommand(p *renderParams) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show a table truncated, wrapped and widened in turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, s, err := p.load(cmd)
			if err != nil {
				return err
			}
			return demo(cmd.OutOrStdout(), s)
		},
	}
}

// demo prints each stage of the same table; every stage builds on the
// previous one.
func demo(w io.Writer, s table.Settings) error {
	widen, err := table.IncreaseBy(200)
	if err != nil {
		return err
	}

	t := table.New(demoRecords).With(
		table.Style(s.Style),
		table.Align(s.Align),
	)
	stages := []struct {
		title string
		opt   table.TableOption
	}{
		{"Original table", nil},
		{"Truncated table", table.TruncateTo(20).Suffix("...").Measure(s.Measurer)},
		{"Wrapped table", table.Modify(grid.All()).With(table.WrapTo(5).Measure(s.Measurer))},
		{"Widen table", widen},
	}
	for _, st := range stages {
		if st.opt != nil {
			t.With(st.opt)
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", st.title, t); err != nil {
			return err
		}
	}
	return nil
}
