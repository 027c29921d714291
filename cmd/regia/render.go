package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/tlasser/regia/pkg/core"
	"github.com/tlasser/regia/pkg/regia"
)

// colorRule colors tasks whose priority is below the threshold. Rules are
// checked in order; the first match wins.
type colorRule struct {
	below uint32
	color *color.Color
}

func colorRules(cfg regia.Config) []colorRule {
	rules := make([]colorRule, 0, len(cfg.Priorities))
	for _, p := range cfg.Priorities {
		rules = append(rules, colorRule{below: p.Below, color: namedColor(p.Color)})
	}
	return rules
}

func namedColor(name string) *color.Color {
	switch strings.ToLower(name) {
	case "red":
		return color.New(color.FgRed)
	case "green":
		return color.New(color.FgGreen)
	case "yellow":
		return color.New(color.FgYellow)
	case "blue":
		return color.New(color.FgBlue)
	case "magenta":
		return color.New(color.FgMagenta)
	case "cyan":
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgWhite)
	}
}

func renderTask(t core.Task, rules []colorRule) string {
	c := color.New(color.FgWhite)
	for _, r := range rules {
		if t.Priority < r.below {
			c = r.color
			break
		}
	}
	return c.Sprintf("* %s", t.Content)
}

func renderTaskLong(t core.Task, rules []colorRule) string {
	line := fmt.Sprintf("%s  p%d  %s", t.ID, t.Priority, renderTask(t, rules))
	if t.Due != nil {
		line += fmt.Sprintf("  (due %s)", t.Due.Format("2006-01-02 15:04"))
	}
	if t.Repeat != core.RepeatNone {
		line += fmt.Sprintf("  (repeats %s)", t.Repeat)
	}
	if len(t.Depends) > 0 {
		line += fmt.Sprintf("  [%d deps]", len(t.Depends))
	}
	return line
}

func renderNote(n core.Note) string {
	return fmt.Sprintf("* %s", n.Content)
}
