package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tlasser/regia/pkg/core"
)

var noteAddCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Add a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		note := core.NewNote(args[0])

		cfg := loadConfig()
		svc := openService(cfg)
		svc.AddNote(note)
		if err := svc.Save(); err != nil {
			fatal("Failed to save database", err)
		}

		fmt.Printf("Note added: %s\n", note.ID)
	},
}

func init() {
	noteCmd.AddCommand(noteAddCmd)
}
