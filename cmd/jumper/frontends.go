package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List all available frontends",
	Long:  `Shows the frontends that can host a play session.`,
	Run:   runFrontends,
}

func runFrontends(cmd *cobra.Command, args []string) {
	list := registry.List()

	if len(list) == 0 {
		fmt.Println("No frontends available.")
		return
	}

	fmt.Println("Available frontends:")
	fmt.Println()

	maxLen := 4 // "Name" header
	for _, f := range list {
		if len(f.Name) > maxLen {
			maxLen = len(f.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxLen, "----", "-----------")
	for _, f := range list {
		fmt.Printf("  %-*s  %s\n", maxLen, f.Name, f.Description)
	}

	fmt.Println()
	fmt.Println("Run 'jumper play --frontend <name>' to use one.")
}
