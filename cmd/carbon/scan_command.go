package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"carbon/internal/engine"
	"carbon/internal/hashing"
	"carbon/internal/resolver"
	"carbon/internal/session"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var recursiveFlag bool
	var algorithmFlag string
	var applyFlag string
	var targetFlag string
	var workersFlag int
	var interactiveFlag bool

	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Scan a directory for duplicate files",
		Long: "Scan walks the directory, fingerprints every regular file, and prints the " +
			"duplicate groups it finds. With --apply the matching resolution action runs " +
			"over every group; with --interactive you choose an action per group.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			root, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			recursive := cfg.Scan.Recursive
			if cmd.Flags().Changed("recursive") {
				recursive = recursiveFlag
			}

			algorithmValue := algorithmFlag
			if algorithmValue == "" {
				algorithmValue = cfg.Scan.Algorithm
			}
			algorithm, err := hashing.ParseAlgorithm(algorithmValue)
			if err != nil {
				return err
			}

			applyValue := applyFlag
			if applyValue == "" {
				applyValue = cfg.Resolve.DefaultAction
			}
			action, err := resolver.ParseAction(applyValue)
			if err != nil {
				return err
			}

			target := targetFlag
			if target == "" {
				target = cfg.Resolve.TargetDir
			}
			if target != "" {
				if target, err = filepath.Abs(target); err != nil {
					return fmt.Errorf("resolve target: %w", err)
				}
			}

			workers := workersFlag
			if workers == 0 {
				workers = cfg.Scan.Workers
			}

			out := cmd.OutOrStdout()
			eng := engine.New(logger, workers)
			sess, err := eng.Run(cmd.Context(), root, recursive, algorithm, scanProgress())
			if err != nil {
				return err
			}

			if len(sess.Groups) == 0 {
				fmt.Fprintln(out, "No duplicate files found.")
				fmt.Fprintln(out, renderStats(sess.Stats(), 0))
				return nil
			}

			fmt.Fprintln(out, renderGroupsTable(sess.Groups))
			fmt.Fprintln(out, renderStats(sess.Stats(), wastedBytes(sess)))

			res := resolver.New(logger)
			switch {
			case interactiveFlag:
				// The TTY requirement applies to the stream the prompt will
				// read, which callers may have swapped off os.Stdin.
				if in, ok := cmd.InOrStdin().(*os.File); ok && !isatty.IsTerminal(in.Fd()) {
					return fmt.Errorf("--interactive requires a terminal")
				}
				decider := newPromptDecider(cmd.InOrStdin(), out, target)
				return resolveWithLock(cfg.LockFilePath(), func() error {
					reports, err := res.ResolveAll(cmd.Context(), sess.Groups, decider)
					renderReports(out, reports)
					return err
				})
			case action.Mutating():
				decider := resolver.FixedDecider{Action: action, TargetDir: target}
				return resolveWithLock(cfg.LockFilePath(), func() error {
					reports, err := res.ResolveAll(cmd.Context(), sess.Groups, decider)
					renderReports(out, reports)
					return err
				})
			default:
				// show: the tables above are the whole story.
				return nil
			}
		},
	}

	cmd.Flags().BoolVarP(&recursiveFlag, "recursive", "r", true, "Descend into subdirectories")
	cmd.Flags().StringVarP(&algorithmFlag, "algorithm", "a", "", "Hash algorithm: md5 or sha256")
	cmd.Flags().StringVar(&applyFlag, "apply", "", "Resolution action for every group: show, delete, move, or hardlink")
	cmd.Flags().StringVarP(&targetFlag, "target", "t", "", "Target directory for move and hardlink")
	cmd.Flags().IntVar(&workersFlag, "workers", 0, "Parallel hashing workers (0 = one per CPU)")
	cmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "Choose an action per duplicate group")

	return cmd
}

// resolveWithLock guards a mutating resolution pass against a second carbon
// instance working the same machine.
func resolveWithLock(lockPath string, pass func() error) error {
	lock := resolver.NewPassLock(lockPath)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()
	return pass()
}

// scanProgress renders a hashing progress bar when stderr is a terminal.
// The bar is created on the first callback, once the file total is known.
func scanProgress() engine.ProgressFunc {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return nil
	}

	var once sync.Once
	var bar *progressbar.ProgressBar
	return func(processed, total int) {
		once.Do(func() {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("hashing"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)
		})
		_ = bar.Set(processed)
	}
}

func wastedBytes(sess *session.Session) int64 {
	var wasted int64
	for _, group := range sess.Groups {
		wasted += group.WastedBytes()
	}
	return wasted
}

func renderReports(out io.Writer, reports []resolver.Report) {
	applied := 0
	failed := 0
	for _, report := range reports {
		for _, result := range report.Results {
			switch {
			case result.Err != nil:
				failed++
				fmt.Fprintf(out, "Failed: %s: %v\n", result.Path, result.Err)
			case result.Action == resolver.ActionDelete:
				applied++
				fmt.Fprintf(out, "Deleted: %s\n", result.Path)
			case result.Action == resolver.ActionMove:
				applied++
				fmt.Fprintf(out, "Moved: %s -> %s\n", result.Path, result.FinalPath)
			case result.Action == resolver.ActionHardlink:
				applied++
				fmt.Fprintf(out, "Linked: %s -> %s\n", result.Path, result.FinalPath)
			}
		}
	}
	if applied > 0 || failed > 0 {
		fmt.Fprintf(out, "%d actions applied, %d failed\n", applied, failed)
	}
}
