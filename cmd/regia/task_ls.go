package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var taskLong bool

var taskLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List tasks, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		svc := openService(cfg)
		rules := colorRules(cfg)

		for _, t := range svc.TasksByCreation() {
			if taskLong {
				fmt.Println(renderTaskLong(t, rules))
			} else {
				fmt.Println(renderTask(t, rules))
			}
		}
	},
}

func init() {
	taskCmd.AddCommand(taskLsCmd)
	taskLsCmd.Flags().BoolVarP(&taskLong, "long", "L", false, "Show identities, priorities and due dates")
}
