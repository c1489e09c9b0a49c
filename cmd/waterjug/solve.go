package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/waterjug/internal/presentation/graph"
	"github.com/aretw0/waterjug/internal/presentation/tui"
	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/spf13/cobra"
)

const (
	formatTable   = "table"
	formatJSON    = "json"
	formatMermaid = "mermaid"
)

var solveCmd = &cobra.Command{
	Use:   "solve X Y TARGET",
	Short: "Solve one water jug problem",
	Long: `Prints the shortest sequence of actions that leaves TARGET units of water
in either jug, starting with both jugs empty.

Formats:
- table (default): a table, rendered with colors on a terminal.
- json: the same body the HTTP API returns.
- mermaid: a flowchart of the visited states.`,
	Example: `  waterjug solve 3 5 4
  waterjug solve 2 100 96 --format json`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		switch format {
		case formatTable, formatJSON, formatMermaid:
		default:
			return fmt.Errorf("unknown format %q: supported: table, json, mermaid", format)
		}

		p, err := parseProblem(args)
		if err != nil {
			return err
		}

		svc, cleanup, err := buildService(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}
		defer cleanup()

		steps, err := svc.Solve(cmd.Context(), p)
		if err != nil {
			return err
		}
		return printSolution(cmd.OutOrStdout(), format, p, steps)
	},
}

func parseProblem(args []string) (domain.Problem, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return domain.Problem{}, domain.ErrInvalidInput
		}
		values[i] = v
	}
	return domain.Problem{CapacityX: values[0], CapacityY: values[1], Target: values[2]}, nil
}

func printSolution(w io.Writer, format string, p domain.Problem, steps domain.Solution) error {
	switch format {
	case formatJSON:
		if steps == nil {
			steps = domain.Solution{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"steps": steps})
	case formatMermaid:
		_, err := io.WriteString(w, graph.GenerateMermaid(p, steps))
		return err
	default:
		return tui.PrintSolution(w, p, steps)
	}
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringP("format", "f", formatTable, "Output format: table, json or mermaid")
}
