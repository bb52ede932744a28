package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmdConfig carries flags shared across subcommands, mirroring
// pbanos/botanic/cmd/botanic/main.go's rootCmdConfig and its Logf
// verbose-gated logger.
type rootCmdConfig struct {
	verbose bool
}

func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	if !rcc.verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintln(os.Stderr, "")
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ebmgrow",
		Short: "ebmgrow grows single-feature boosting trees",
		Long:  `A tool to grow single-feature, histogram-based regression trees from sampled residuals and flatten them into model deltas`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&config.verbose, "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), trainCmd(config))
	return rootCmd
}
