package suspects

import (
	"fmt"
	"github.com/myrjola/pitwall/internal/casefile"
	"github.com/spf13/cobra"
)

var List = &cobra.Command{
	Use:   "suspects",
	Short: "List the suspects",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, s := range casefile.Suspects() {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s: %s\n", s.Name, s.Title, s.Role)
		}
	},
}
