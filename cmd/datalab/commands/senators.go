package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/penguinistakc/datalab/lib/scrapers/senate"
	"github.com/penguinistakc/datalab/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var senatorNotes *bool

func init() {
	senatorNotes = senatorsCmd.Flags().Bool("notes", false, "Include the footnote column in the output.")
	rootCmd.AddCommand(senatorsCmd)
}

var senatorsCmd = &cobra.Command{
	Use:   "senators",
	Short: "Scrapes the list of current US senators along with their websites.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := senate.NewClient(senate.ClientOptions{
			BaseUrl:   cfg.WikiBaseUrl,
			UserAgent: cfg.UserAgent,
		})

		t1 := time.Now()
		roster, err := client.Roster(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to scrape senator roster", err)
		}
		t2 := time.Now()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		if *senatorNotes {
			t.AppendHeader(table.Row{"Senator", "State", "Party", "Website", "Notes"})
		} else {
			t.AppendHeader(table.Row{"Senator", "State", "Party", "Website"})
		}
		for _, s := range roster {
			if *senatorNotes {
				t.AppendRow(table.Row{s.Name, s.State, s.Party, s.Website, s.Notes})
			} else {
				t.AppendRow(table.Row{s.Name, s.State, s.Party, s.Website})
			}
		}
		t.SetStyle(table.StyleRounded)
		t.Render()

		fmt.Printf("\nTotal: %d senators (%.1fs)\n", len(roster), t2.Sub(t1).Seconds())
	},
}
