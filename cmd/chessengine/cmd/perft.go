package cmd

import (
	"fmt"
	"sort"

	"github.com/cdean-eng/knightfall/internal/movegen"
	"github.com/cdean-eng/knightfall/internal/position"
	"github.com/spf13/cobra"
)

func perftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "perft <fen> <depth>",
		Short: "Count leaf nodes reachable from a position at a given depth",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, depth, err := parsePerftArgs(args)
			if err != nil {
				return err
			}
			nodes := movegen.Perft(p, depth)
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", nodes)
			return nil
		},
	}
}

func divideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divide <fen> <depth>",
		Short: "Break perft down by root move, to localize a move-generator bug",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, depth, err := parsePerftArgs(args)
			if err != nil {
				return err
			}
			perMove, total := movegen.Divide(p, depth)

			moves := make([]string, 0, len(perMove))
			for m := range perMove {
				moves = append(moves, m)
			}
			sort.Strings(moves)

			out := cmd.OutOrStdout()
			for _, m := range moves {
				fmt.Fprintf(out, "%s: %d\n", m, perMove[m])
			}
			fmt.Fprintf(out, "\nTotal: %d\n", total)
			return nil
		},
	}
}

func parsePerftArgs(args []string) (*position.Position, int, error) {
	p, err := position.LoadFEN(args[0])
	if err != nil {
		return nil, 0, err
	}
	var depth int
	if _, err := fmt.Sscanf(args[1], "%d", &depth); err != nil {
		return nil, 0, fmt.Errorf("invalid depth %q: %w", args[1], err)
	}
	return p, depth, nil
}
