package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/depscope/depscope/pkg/deps"
)

// languagesCommand creates the languages command listing every supported
// language with its file extensions and import patterns.
func (c *CLI) languagesCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and their import patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, lang := range deps.DefaultLanguages() {
				fmt.Println(StyleTitle.Render(lang.Name))
				printKeyValue("extensions", strings.Join(lang.Extensions, ", "))
				printKeyValue("patterns", fmt.Sprintf("%d", len(lang.Patterns)))
				if verbose {
					for _, p := range lang.Patterns {
						printDetail("%-26s %s", p.Name, p.Kind)
					}
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "patterns", "p", false, "list individual import patterns")

	return cmd
}
