package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/penguinistakc/datalab/lib/configutil"
	"github.com/penguinistakc/datalab/lib/telemetry"

	"github.com/spf13/cobra"
)

// identifies the class project to the sites it scrapes
const defaultUserAgent = "PYT200-064 Class Demo (educational project)"

type Config struct {
	UserAgent      string `json:"user_agent"`
	PokeapiBaseUrl string `json:"pokeapi_base_url"`
	WikiBaseUrl    string `json:"wiki_base_url"`
}

// loadConfig reads config.json5 if present; everything has a working
// default so the tool runs without any config file at all.
func loadConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return cfg
}

var verbose *bool

var rootCmd = &cobra.Command{
	Use:   "datalab",
	Short: "datalab is a grab bag of data-acquisition class demos: an API lookup, a scraper and a database loader.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
}

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every request at debug level.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
