package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdejongh/configdiff/pkg/parsers"
)

// NewFormatsCommand creates the formats command
func NewFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported configuration formats",
		Run: func(cmd *cobra.Command, args []string) {
			registry := parsers.NewRegistry()

			for _, name := range registry.Formats() {
				parser, err := registry.ByFormat(name)
				if err != nil {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n",
					name, strings.Join(parser.Extensions(), ", "))
			}
		},
	}
}
