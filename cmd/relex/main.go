// Command relex parses or tokenizes source files according to a grammar
// description, following include directives across files.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	grammarPath string
	colorMode   string
)

var rootCmd = &cobra.Command{
	Use:           "relex",
	Short:         "include-aware parsing front-end",
	Long:          "relex parses source files according to a grammar description,\nsplicing included files into the token stream as it goes.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if e := loadConfig(); e != nil {
			return e
		}
		return setupColor()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&grammarPath, "grammar", "g", "", "grammar description file")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize diagnostics: auto, always, never")
}

func setupColor() error {
	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		color.NoColor = !term.IsTerminal(int(os.Stderr.Fd()))
	default:
		return fmt.Errorf("invalid --color mode %q (want auto, always, or never)", colorMode)
	}
	return nil
}

func requireGrammar() (string, error) {
	if grammarPath == "" {
		return "", fmt.Errorf("no grammar: pass --grammar or set grammar.path in %s", configName)
	}
	return grammarPath, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("relex: %s", err.Error()))
		os.Exit(1)
	}
}
