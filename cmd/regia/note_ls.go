package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var noteLong bool

var noteLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List notes, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		svc := openService(cfg)

		for _, n := range svc.NotesByCreation() {
			if noteLong {
				fmt.Printf("%s  %s  %s\n", n.ID, n.Created.Format("2006-01-02 15:04"), n.Content)
			} else {
				fmt.Println(renderNote(n))
			}
		}
	},
}

func init() {
	noteCmd.AddCommand(noteLsCmd)
	noteLsCmd.Flags().BoolVarP(&noteLong, "long", "L", false, "Show identities and timestamps")
}
