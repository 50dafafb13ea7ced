/*
 * twirl is a small CLI around the twirl spinner library: browse the
 * catalog, spin while a command runs, or play a scripted scene.
 */
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/exapsy/twirl"
	"github.com/exapsy/twirl/script"
	"github.com/exapsy/twirl/spinners"
)

var errPrefix = color.New(color.FgRed, color.Bold).Sprint("✖ ERROR:")

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errPrefix, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "twirl",
		Short:         "Terminal spinners",
		Long:          `Animated terminal spinners: list the built-in catalog, spin while a command runs, or play a YAML scene.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(listCmd(), runCmd(), playCmd())

	return root
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in spinner catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bold := color.New(color.Bold)
			for _, name := range spinners.Names() {
				fs, err := spinners.Named(name)
				if err != nil {
					return err
				}
				preview := strings.Join(fs.Frames, " ")
				if r := []rune(preview); len(r) > 40 {
					preview = string(r[:40]) + "…"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %4dms  %s\n", bold.Sprint(name), fs.Interval.Milliseconds(), preview)
			}
			return nil
		},
	}
}

func runCmd() *cobra.Command {
	var (
		spinnerName string
		message     string
		colorName   string
		useStderr   bool
	)

	cmd := &cobra.Command{
		Use:   "run [flags] -- command [args...]",
		Short: "Show a spinner while a command runs",
		Long:  `Runs a command with its output captured, spinning until it exits. Persists a green check on success or a red cross on failure.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, err := spinners.Named(spinnerName)
			if err != nil {
				return err
			}
			c, err := twirl.ParseColor(colorName)
			if err != nil {
				return err
			}

			stream := twirl.Stdout
			if useStderr {
				stream = twirl.Stderr
			}
			if message == "" {
				message = "Running " + args[0] + "..."
			}

			sp, err := twirl.NewWithStream(frames, message, c, stream)
			if err != nil {
				return err
			}

			child := exec.Command(args[0], args[1:]...)
			out, runErr := child.CombinedOutput()
			if runErr != nil {
				_ = sp.Fail(args[0] + " failed")
				os.Stderr.Write(out)
				return runErr
			}

			if err := sp.Success(args[0] + " finished"); err != nil {
				return err
			}
			os.Stdout.Write(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&spinnerName, "spinner", "s", "dots", "catalog spinner name (see \"twirl list\")")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message shown next to the spinner")
	cmd.Flags().StringVarP(&colorName, "color", "c", "cyan", "glyph color, or \"none\"")
	cmd.Flags().BoolVar(&useStderr, "stderr", false, "draw the spinner on stderr instead of stdout")

	return cmd
}

func playCmd() *cobra.Command {
	var useStderr bool

	cmd := &cobra.Command{
		Use:   "play SCENE.yaml",
		Short: "Play a YAML spinner scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			scene, err := script.LoadFile(args[0])
			if err != nil {
				return err
			}

			stream := twirl.Stdout
			if useStderr {
				stream = twirl.Stderr
			}
			return scene.Play(script.PlayConfig{Stream: stream})
		},
	}

	cmd.Flags().BoolVar(&useStderr, "stderr", false, "draw the spinner on stderr instead of stdout")

	return cmd
}
