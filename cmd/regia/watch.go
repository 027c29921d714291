package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tlasser/regia/pkg/db"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the task list whenever the database changes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		svc := openService(cfg)
		rules := colorRules(cfg)

		render := func(*db.Database) {
			fmt.Printf("--- %s ---\n", time.Now().Format("15:04:05"))
			for _, t := range svc.TasksByCreation() {
				fmt.Println(renderTask(t, rules))
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		render(svc.Database())
		if err := svc.Watch(ctx, render); err != nil {
			fatal("Watch failed", err)
		}
		slog.Debug("watch stopped")
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
