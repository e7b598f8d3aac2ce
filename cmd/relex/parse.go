package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"relex"
)

var (
	debugFlag bool
	cfgDebug  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "parse a file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug := debugFlag
		if !cmd.Flags().Changed("debug") {
			debug = cfgDebug
		}

		gp, e := requireGrammar()
		if e != nil {
			return e
		}

		opts := make([]relex.Option, 0, 1)
		if debug {
			opts = append(opts, relex.WithDebug(os.Stderr))
		}

		p, e := relex.NewFromFile(gp, opts...)
		if e != nil {
			return e
		}

		t, e := p.ParseFile(args[0])
		if e != nil {
			return e
		}

		fmt.Print(t.Pretty())
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&debugFlag, "debug", false, "dump the parse tree to stderr before any transformation")
	rootCmd.AddCommand(parseCmd)
}
