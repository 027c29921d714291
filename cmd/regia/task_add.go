package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tlasser/regia/pkg/core"
)

var (
	addDue      string
	addPriority uint32
	addRepeats  string
	addDepends  []string
)

var taskAddCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Add a task",
	Long: `Add a task with the given content. A due date classifies the task as a
deadline; a repetition period classifies it as repeated. Dependencies name
other tasks by their identity.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content := args[0]

		kind := core.KindNone
		repeat := core.RepeatNone
		if addRepeats != "" {
			parsed, err := parseRepeat(addRepeats)
			if err != nil {
				fatal("Bad repeats string", err)
			}
			kind = core.KindRepeated
			repeat = parsed
		}

		var due *time.Time
		if addDue != "" {
			parsed, err := parseDue(addDue)
			if err != nil {
				fatal("Bad datetime string", err)
			}
			due = &parsed
			if kind == core.KindNone {
				kind = core.KindDeadline
			}
		}

		var task core.Task
		if kind == core.KindNone {
			task = core.NewTask(content, addPriority)
		} else {
			task = core.NewScheduledTask(content, addPriority, due, kind, repeat)
		}

		for _, dep := range addDepends {
			id, err := core.ParseID(dep)
			if err != nil {
				fatal("Bad depends identity", err)
			}
			task.AddDependency(id)
		}

		cfg := loadConfig()
		svc := openService(cfg)
		svc.AddTask(task)
		if err := svc.Save(); err != nil {
			fatal("Failed to save database", err)
		}

		fmt.Printf("Task added: %s\n", task.ID)
	},
}

func init() {
	taskCmd.AddCommand(taskAddCmd)
	taskAddCmd.Flags().StringVarP(&addDue, "due", "d", "", "Due date (RFC 2822, e.g. 'Mon, 02 Jan 2026 15:04:05 -0700')")
	taskAddCmd.Flags().Uint32VarP(&addPriority, "priority", "p", 0, "Priority (lower is more urgent)")
	taskAddCmd.Flags().StringVarP(&addRepeats, "repeats", "r", "", "Repetition period (daily, weekly, monthly)")
	taskAddCmd.Flags().StringArrayVarP(&addDepends, "depends", "l", nil, "Identity of a task this one depends on (repeatable)")
}

// parseRepeat converts the textual repetition period.
func parseRepeat(s string) (core.Repeat, error) {
	switch strings.ToLower(s) {
	case "daily":
		return core.RepeatDaily, nil
	case "weekly":
		return core.RepeatWeekly, nil
	case "monthly":
		return core.RepeatMonthly, nil
	default:
		return core.RepeatNone, fmt.Errorf("unknown period %q", s)
	}
}

// parseDue accepts RFC 2822 style dates and normalizes them to UTC.
func parseDue(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC1123Z, time.RFC1123} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q", s)
}
