package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"carbon/internal/hashing"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var algorithmFlag string

	cmd := &cobra.Command{
		Use:   "compare <file> <file>",
		Short: "Check whether two files have identical content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			algorithmValue := algorithmFlag
			if algorithmValue == "" {
				algorithmValue = cfg.Scan.Algorithm
			}
			algorithm, err := hashing.ParseAlgorithm(algorithmValue)
			if err != nil {
				return err
			}

			pathA, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			pathB, err := filepath.Abs(args[1])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			same, err := hashing.CompareFiles(pathA, pathB, algorithm)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if same {
				fmt.Fprintf(out, "Identical (%s)\n", algorithm)
				return nil
			}
			fmt.Fprintf(out, "Different (%s)\n", algorithm)
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithmFlag, "algorithm", "a", "", "Hash algorithm: md5 or sha256")

	return cmd
}
