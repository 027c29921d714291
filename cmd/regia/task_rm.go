package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tlasser/regia/pkg/core"
)

var rmID string

var taskRmCmd = &cobra.Command{
	Use:   "rm [search]",
	Short: "Remove tasks matching a search term or identity",
	Long: `Remove tasks whose content contains the search term, or a single task
named by --id. Matches are listed and removal is confirmed interactively.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		svc := openService(cfg)

		var victims []core.Task
		switch {
		case rmID != "":
			id, err := core.ParseID(rmID)
			if err != nil {
				fatal("Bad identity", err)
			}
			if t, err := svc.Task(id); err == nil {
				victims = append(victims, t)
			}
		case len(args) == 1:
			victims = svc.SearchTasks(args[0])
		default:
			fatal("Nothing to remove", errors.New("a search term or --id is required"))
		}

		if len(victims) == 0 {
			fmt.Println("No matching tasks.")
			return
		}

		plural := ""
		if len(victims) > 1 {
			plural = "s"
		}
		fmt.Printf("Found %s task%s that match:\n", color.MagentaString("%d", len(victims)), plural)
		rules := colorRules(cfg)
		for _, t := range victims {
			fmt.Println(renderTask(t, rules))
		}

		if !confirm(color.MagentaString("Complete?")) {
			return
		}

		for _, t := range victims {
			svc.RemoveTask(t.ID)
		}
		if err := svc.Save(); err != nil {
			fatal("Failed to save database", err)
		}
	},
}

func init() {
	taskCmd.AddCommand(taskRmCmd)
	taskRmCmd.Flags().StringVar(&rmID, "id", "", "Remove the task with this identity")
}
