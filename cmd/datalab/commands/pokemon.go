package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/penguinistakc/datalab/lib/scrapers/pokeapi"

	"github.com/spf13/cobra"
)

var pokemonRaw *bool

func init() {
	pokemonRaw = pokemonCmd.Flags().Bool("raw", false, "Print the complete raw JSON response.")
	rootCmd.AddCommand(pokemonCmd)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// typeNames digs the type names out of the decoded response; entries that
// don't have the expected shape are ignored.
func typeNames(data map[string]any) []string {
	entries, _ := data["types"].([]any)
	var names []string
	for _, entry := range entries {
		obj, _ := entry.(map[string]any)
		typ, _ := obj["type"].(map[string]any)
		name, _ := typ["name"].(string)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

var pokemonCmd = &cobra.Command{
	Use:   "pokemon <name> [--raw]",
	Short: "Looks up a pokemon on the PokeAPI and prints its vitals.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := pokeapi.NewClient(pokeapi.ClientOptions{
			BaseUrl:   cfg.PokeapiBaseUrl,
			UserAgent: cfg.UserAgent,
		})

		data := client.Lookup(cmd.Context(), args[0])
		if data == nil {
			fmt.Fprintln(os.Stderr, "Failed to retrieve Pokemon data.")
			os.Exit(1)
		}

		if *pokemonRaw {
			raw, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Println(string(raw))
			return
		}

		name, _ := data["name"].(string)
		fmt.Printf("Pokemon: %s\n", capitalize(name))
		fmt.Printf("Height: %v\n", data["height"])
		fmt.Printf("Weight: %v\n", data["weight"])
		fmt.Printf("Types: %s\n", strings.Join(typeNames(data), ", "))
	},
}
