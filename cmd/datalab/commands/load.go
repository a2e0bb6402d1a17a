package commands

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/penguinistakc/datalab/lib/playerdb"
	"github.com/penguinistakc/datalab/lib/serviceutil"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
)

var loadCsv *string

func init() {
	loadCsv = loadCmd.Flags().String("csv", "players.csv", "The player biographical CSV to load.")
	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load [--csv <path/to/players.csv>]",
	Short: "Starts a throwaway Postgres container and bulk loads player records into it.",
	Long: "Starts a throwaway Postgres container, bulk loads the player biographical CSV " +
		"into it and keeps the container alive until interrupted, so the class can poke " +
		"at the data with psql.",
	Run: func(cmd *cobra.Command, args []string) {
		file, err := os.Open(*loadCsv)
		if err != nil {
			serviceutil.Fatal("failed to open csv", err)
		}
		defer file.Close()

		ctx := cmd.Context()

		container, dsn, err := playerdb.StartContainer(ctx)
		if err != nil {
			serviceutil.Fatal("failed to start database container", err)
		}
		defer container.Terminate(context.Background())

		db, err := sql.Open("pgx", dsn)
		if err != nil {
			serviceutil.Fatal("failed to open database", err)
		}
		defer db.Close()

		_, err = db.ExecContext(ctx, playerdb.Schema)
		if err != nil {
			serviceutil.Fatal("failed to apply schema", err)
		}

		count, err := playerdb.Load(ctx, db, file)
		if err != nil {
			serviceutil.Fatal("failed to load csv", err)
		}

		slog.Info("loaded players", "count", count, "dsn", dsn)
		slog.Info("press Ctrl+C to tear the container down")
		<-serviceutil.SignalContext().Done()
	},
}
