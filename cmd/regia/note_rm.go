package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var noteRmCmd = &cobra.Command{
	Use:   "rm [search]",
	Short: "Remove notes matching a search term",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		svc := openService(cfg)

		victims := svc.SearchNotes(args[0])
		if len(victims) == 0 {
			fmt.Println("No matching notes.")
			return
		}

		plural := ""
		if len(victims) > 1 {
			plural = "s"
		}
		fmt.Printf("Found %s note%s that match:\n", color.MagentaString("%d", len(victims)), plural)
		for _, n := range victims {
			fmt.Println(renderNote(n))
		}

		if !confirm(color.MagentaString("Complete?")) {
			return
		}

		for _, n := range victims {
			svc.RemoveNote(n.ID)
		}
		if err := svc.Save(); err != nil {
			fatal("Failed to save database", err)
		}
	},
}

func init() {
	noteCmd.AddCommand(noteRmCmd)
}
