package main

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"cli-table/internal/config"
	"cli-table/internal/db"
	"cli-table/internal/table"
)

func newConnCommand(p *renderParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conn",
		Short: "Manage saved PostgreSQL connections",
	}
	cmd.AddCommand(
		newConnAddCommand(p),
		newConnListCommand(p),
		newConnRemoveCommand(p),
		newConnTestCommand(p),
	)
	return cmd
}

func newConnAddCommand(p *renderParams) *cobra.Command {
	var conn config.SavedConnection
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Save a connection under NAME, replacing any with that name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := p.load(cmd)
			if err != nil {
				return err
			}
			conn.Name = args[0]
			if conn.URI == "" && conn.Host == "" {
				return errors.New("either --uri or --host is required")
			}
			cfg.Add(conn)
			if err := cfg.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s to %s\n", conn.Name, cfg.Path())
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&conn.URI, "uri", "", "postgres:// connection URI")
	fs.StringVar(&conn.Host, "host", "", "server host")
	fs.StringVar(&conn.Port, "port", "", "server port (default 5432)")
	fs.StringVar(&conn.User, "user", "", "user name")
	fs.StringVar(&conn.Password, "password", "", "password, stored in the config file")
	fs.StringVar(&conn.Database, "database", "", "database name")
	return cmd
}

func newConnListCommand(p *renderParams) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved connections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, s, err := p.load(cmd)
			if err != nil {
				return err
			}
			t := table.FromColumns([]string{"name", "host", "port", "user", "database", "uri"}, connectionRows(cfg.Connections))
			if err := s.Apply(t); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

// connectionRows lists saved connections without their passwords.
func connectionRows(conns []config.SavedConnection) [][]string {
	rows := make([][]string, 0, len(conns))
	for _, c := range conns {
		uri := ""
		if c.URI != "" {
			uri = "yes"
		}
		rows = append(rows, []string{c.Name, c.Host, c.Port, c.User, c.Database, uri})
	}
	return rows
}

func newConnRemoveCommand(p *renderParams) *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME",
		Short: "Delete a saved connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := p.load(cmd)
			if err != nil {
				return err
			}
			i := slices.IndexFunc(cfg.Connections, func(c config.SavedConnection) bool { return c.Name == args[0] })
			if i < 0 {
				return fmt.Errorf("no saved connection named %q", args[0])
			}
			cfg.Delete(i)
			return cfg.Save()
		},
	}
}

func newConnTestCommand(p *renderParams) *cobra.Command {
	return &cobra.Command{
		Use:   "test NAME",
		Short: "Connect with a saved connection and report the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := p.load(cmd)
			if err != nil {
				return err
			}
			saved, ok := cfg.Connection(args[0])
			if !ok {
				return fmt.Errorf("no saved connection named %q", args[0])
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), queryTimeout)
			defer cancel()

			var conn *db.DB
			if saved.URI != "" {
				conn, err = db.ConnectURI(ctx, saved.URI)
			} else {
				conn, err = db.Connect(ctx, db.Params{
					Host:     saved.Host,
					Port:     saved.Port,
					User:     saved.User,
					Password: saved.Password,
					Database: saved.Database,
				})
			}
			if err != nil {
				return err
			}
			defer conn.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "connected to %s (database %s)\n", conn.ConnInfo(), conn.Database())
			return nil
		},
	}
}
