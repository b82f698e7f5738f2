package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gol-cycle/internal/core"
)

// PatternInfo describes a registered pattern with its default parameters.
type PatternInfo struct {
	Name  string `json:"name"`
	Cells int    `json:"cells"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
}

// PatternList is the text/JSON payload of the patterns command.
type PatternList []PatternInfo

func (l PatternList) String() string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCELLS\tSIZE")
	for _, p := range l {
		fmt.Fprintf(tw, "%s\t%d\t%dx%d\n", p.Name, p.Cells, p.Rows, p.Cols)
	}
	tw.Flush()
	return strings.TrimSuffix(sb.String(), "\n")
}

// NewPatternsCommand creates the patterns command.
func NewPatternsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "patterns",
		Short:         "List built-in patterns",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if err := formatter.Success(listPatterns()); err != nil {
				return WrapExitError(ExitFailure, "failed to write output", err)
			}
			return nil
		},
	}
}

func listPatterns() PatternList {
	var list PatternList
	for _, name := range core.Names() {
		coords := core.Patterns()[name](nil)
		info := PatternInfo{Name: name, Cells: len(coords)}
		if min, max, ok := core.Bounds(coords); ok {
			info.Rows = max.Row - min.Row + 1
			info.Cols = max.Col - min.Col + 1
		}
		list = append(list, info)
	}
	return list
}
