package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cli-table/internal/config"
	"cli-table/internal/db"
	"cli-table/internal/log"
	"cli-table/internal/table"
	"cli-table/internal/ui"
)

const queryTimeout = 30 * time.Second

// connParams selects a database: a saved connection by name or a URI.
type connParams struct {
	name string
	uri  string
}

func (c *connParams) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.name, "conn", "c", "", "name of a saved connection")
	cmd.Flags().StringVar(&c.uri, "uri", os.Getenv("DATABASE_URL"), "postgres:// connection URI (default $DATABASE_URL)")
}

func (c *connParams) connect(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	uri := c.uri
	if c.name != "" {
		saved, ok := cfg.Connection(c.name)
		if !ok {
			return nil, fmt.Errorf("no saved connection named %q", c.name)
		}
		uri = saved.ConnString()
	}
	if uri == "" {
		return nil, errors.New("no database selected: use --conn or --uri")
	}
	conn, err := db.ConnectURI(ctx, uri)
	if err != nil {
		return nil, err
	}
	log.Debug("connected to %s", conn.ConnInfo())
	return conn, nil
}

func runQuery(cmd *cobra.Command, p *renderParams, c *connParams, sql string) (*db.QueryResult, table.Settings, error) {
	cfg, s, err := p.load(cmd)
	if err != nil {
		return nil, s, err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), queryTimeout)
	defer cancel()

	conn, err := c.connect(ctx, cfg)
	if err != nil {
		return nil, s, err
	}
	defer conn.Close()

	res, err := conn.Query(ctx, sql)
	if err != nil {
		return nil, s, err
	}
	return res, s, nil
}

func newQueryCommand(p *renderParams) *cobra.Command {
	c := &connParams{}
	cmd := &cobra.Command{
		Use:   "query SQL",
		Short: "Run SQL against PostgreSQL and render the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, s, err := runQuery(cmd, p, c, strings.Join(args, " "))
			if err != nil {
				return err
			}
			t := table.New(res.Records())
			if err := s.Apply(t); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			log.Info("%d rows in %s", len(res.Rows), res.ExecTime.Round(time.Millisecond))
			return nil
		},
	}
	c.addFlags(cmd)
	return cmd
}

func newTablesCommand(p *renderParams) *cobra.Command {
	c := &connParams{}
	var describe string
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List the tables of the public schema, or describe one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, s, err := p.load(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), queryTimeout)
			defer cancel()

			conn, err := c.connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			var records [][]string
			if describe != "" {
				cols, err := conn.GetColumns(ctx, describe)
				if err != nil {
					return err
				}
				records = db.ColumnsRecords(cols)
			} else {
				tables, err := conn.ListTables(ctx)
				if err != nil {
					return err
				}
				records = db.TablesRecords(tables)
			}

			t := table.New(records)
			if err := s.Apply(t); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
	c.addFlags(cmd)
	cmd.Flags().StringVarP(&describe, "describe", "d", "", "show the columns of this table")
	return cmd
}

func newViewCommand(p *renderParams) *cobra.Command {
	c := &connParams{}
	var sql string
	cmd := &cobra.Command{
		Use:   "view [file.csv]",
		Short: "Browse a table interactively",
		Long: `Browse CSV, or the result of --sql, in a full-screen viewer where
truncation, wrapping, widening and style can be changed with single keys.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var m ui.ResultsModel
			if sql != "" {
				res, s, err := runQuery(cmd, p, c, sql)
				if err != nil {
					return err
				}
				m = ui.NewResultsModel("query", res.Records(), s)
				m.SetQuery(sql, res.ExecTime)
			} else {
				_, s, err := p.load(cmd)
				if err != nil {
					return err
				}
				t, err := readCSV(cmd.InOrStdin(), args)
				if err != nil {
					return err
				}
				title := "stdin"
				if len(args) == 1 {
					title = args[0]
				}
				m = ui.NewResultsModel(title, t.Grid().Records(), s)
			}

			opts := []tea.ProgramOption{tea.WithAltScreen()}
			if sql == "" && (len(args) == 0 || args[0] == "-") {
				// stdin carried the CSV; read keys from the terminal.
				opts = append(opts, tea.WithInputTTY())
			}
			_, err := tea.NewProgram(m, opts...).Run()
			return err
		},
	}
	c.addFlags(cmd)
	cmd.Flags().StringVar(&sql, "sql", "", "query to browse instead of CSV")
	return cmd
}
