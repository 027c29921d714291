package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// confirm asks a y/N question on stdin. Empty input and "n" decline;
// anything unrecognized re-prompts.
func confirm(prompt string) bool {
	bold := color.New(color.Bold)
	fmt.Printf("%s [%s/%s]\n", prompt, bold.Sprint("y"), bold.Sprint("N"))

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			return true
		case "", "n", "no":
			return false
		default:
			fmt.Printf("Didn't understand %q, please type y or n\n", scanner.Text())
		}
	}
	return false
}
