// Package cmd defines the chessengine CLI's cobra command tree.
package cmd

import "github.com/spf13/cobra"

// EngineName and EngineAuthor are reported by the UCI "id" response,
// carried over from the teacher's interface/uci.go constants.
const (
	EngineName   = "Knightfall 0.1"
	EngineAuthor = "Christian Dean"
)

// Root returns the chessengine command tree's root command. Run with no
// subcommand, it runs the uci subcommand with that subcommand's default
// flag values.
func Root() *cobra.Command {
	uciSub := uciCmd()
	root := &cobra.Command{
		Use:   "chessengine",
		Short: "A UCI-compatible chess engine",
		RunE:  uciSub.RunE,
	}
	root.AddCommand(uciSub)
	root.AddCommand(perftCmd())
	root.AddCommand(divideCmd())
	return root
}
