package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"relex"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "print the flattened token stream of a file and its includes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gp, e := requireGrammar()
		if e != nil {
			return e
		}

		p, e := relex.NewFromFile(gp)
		if e != nil {
			return e
		}

		toks, e := p.TokenizeFile(args[0])
		for _, t := range toks {
			fmt.Printf("%s:%d:%d\t%s\t%q\n", t.Source().Name(), t.Line(), t.Col(), t.TypeName(), t.Text())
		}
		return e
	},
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}
