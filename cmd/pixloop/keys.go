package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pixloop/pkg/input"
)

var keysCmd = &cobra.Command{
	Use:   "keys [name...]",
	Short: "List key names and scancodes",
	Long: `Print the scancode of every named key, or look up the given names.

Examples:
  pixloop keys
  pixloop keys space f12 leftctrl`,
	RunE: runKeys,
}

func runKeys(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		var unknown []string
		for _, name := range args {
			k, ok := input.ParseKey(name)
			if !ok {
				unknown = append(unknown, name)
				continue
			}
			fmt.Fprintf(out, "%-12s %3d\n", k, uint8(k))
		}
		if len(unknown) > 0 {
			return fmt.Errorf("unknown key(s): %s", strings.Join(unknown, ", "))
		}
		return nil
	}

	for i := 0; i < input.KeyCount; i++ {
		k := input.Key(i)
		if k.Named() {
			fmt.Fprintf(out, "%-12s %3d\n", k, i)
		}
	}
	for b := input.Button(0); b < input.ButtonCount; b++ {
		fmt.Fprintf(out, "mouse %-6s bit %d\n", b, uint8(b))
	}
	return nil
}
