package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/tabdrag/internal/replay"
)

var replayJSON bool

var replayCmd = &cobra.Command{
	Use:   "replay <scenario.toml>...",
	Short: "Replay recorded pointer scenarios",
	Long: `Replay pointer scenarios against a fresh engine each and print the drag
operations they commit, followed by the final board layout.

A scenario file declares the board (tabs per container), the drop zones
with their geometry, and a sequence of down/move/up pointer events.
Scenarios are independent and run concurrently; output stays in argument
order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "output as JSON")
}

func runReplay(cmd *cobra.Command, args []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	results := make([]*replay.Result, len(args))
	g, ctx := errgroup.WithContext(a.Ctx())
	for i, path := range args {
		g.Go(func() error {
			scenario, err := replay.LoadScenario(path)
			if err != nil {
				return fmt.Errorf("load scenario %s: %w", path, err)
			}
			result, err := replay.Run(ctx, scenario)
			if err != nil {
				return fmt.Errorf("run scenario %s: %w", path, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, result := range results {
		if len(args) > 1 {
			fmt.Printf("== %s ==\n", args[i])
		}
		if err := printResult(result); err != nil {
			return err
		}
	}
	return nil
}

func printResult(result *replay.Result) error {
	if replayJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Operations)
	}

	if len(result.Operations) == 0 {
		fmt.Println("no operations committed")
	}
	for i, op := range result.Operations {
		fmt.Printf("%d. %s\n", i+1, op.String())
	}

	fmt.Println()
	for _, container := range result.Board.Containers() {
		fmt.Printf("%s:\n", container.String())
		for i, tab := range result.Board.Tabs(container) {
			fmt.Printf("  %d. %s (%s)\n", i, tab.Title, tab.ID)
		}
	}
	return nil
}
