// Command tricolorgen generates DIMACS graph-coloring training data for
// 1-, 2-, 3-, and 4-bit addition circuits. Generation follows a fixed
// schedule over every operand combination at each width, wrapped in a
// cobra root command so --out and a hidden --debug flag can adjust its
// behavior without touching the generation logic itself.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lvlath-labs/tricolor/internal/buildinfo"
)

var outDir string

func main() {
	rootCmd := &cobra.Command{
		Use:   "tricolorgen",
		Short: "tricolorgen",
		Long:  `Generates DIMACS .col training graphs for bitwise addition circuits.`,

		PreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},

		RunE: runGenerate,
	}

	rootCmd.Flags().StringVar(&outDir, "out", "training_graphs", "directory to write generated .col files into")

	rootCmd.Flags().Bool("debug", false, "enable debug logging")
	if err := rootCmd.Flags().MarkHidden("debug"); err != nil {
		log.Panic(err.Error())
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	version := buildinfo.Parsed()
	log.WithFields(log.Fields{
		"version": version.String(),
		"major":   version.Major,
	}).Info("tricolorgen starting")

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for _, width := range []int{1, 2, 3, 4} {
		if err := generateAdditions(outDir, width); err != nil {
			return err
		}
	}

	log.Info("all training graphs generated successfully")

	return nil
}
