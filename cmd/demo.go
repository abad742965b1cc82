package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/charchat/internal/demo"
	"github.com/zhubert/charchat/internal/demo/scenarios"
)

var (
	demoOutput     string
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay scripted walkthroughs of charchat",
	Long: `Replay scripted walkthroughs of charchat for documentation and bug reports.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a scenario and print its frames
  cast      - Write an asciinema cast file`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		printScenarios(cmd.OutOrStdout())
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and print its frames",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoRun,
}

var demoCastCmd = &cobra.Command{
	Use:   "cast <scenario>",
	Short: "Write an asciinema cast file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoCast,
}

func init() {
	for _, cmd := range []*cobra.Command{demoRunCmd, demoCastCmd} {
		cmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Output file")
		cmd.Flags().IntVarP(&demoWidth, "width", "w", 0, "Terminal width (default: scenario width)")
		cmd.Flags().IntVarP(&demoHeight, "height", "H", 0, "Terminal height (default: scenario height)")
		cmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every key (for debugging)")
	}

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	demoCmd.AddCommand(demoCastCmd)
	rootCmd.AddCommand(demoCmd)
}

func printScenarios(w io.Writer) {
	fmt.Fprintln(w, "Available demo scenarios:")
	fmt.Fprintln(w)
	for _, s := range scenarios.All() {
		fmt.Fprintf(w, "  %-10s %s\n", s.Name, s.Description)
	}
}

func getScenario(name string) (*demo.Scenario, error) {
	scenario := scenarios.Get(name)
	if scenario == nil {
		return nil, fmt.Errorf("unknown scenario %q\nRun 'charchat demo list' to see available scenarios", name)
	}

	// Copy so overrides don't leak into the shared scenario
	s := *scenario
	if demoWidth > 0 {
		s.Width = demoWidth
	}
	if demoHeight > 0 {
		s.Height = demoHeight
	}
	return &s, nil
}

func executeScenario(scenario *demo.Scenario) ([]demo.Frame, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}

	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = demoCaptureAll
	execCfg.Catalog = cat

	return demo.NewExecutor(execCfg).Run(scenario)
}

// outputWriter opens --output, or returns w when no file was given.
func outputWriter(w io.Writer, fallback string) (io.Writer, func() error, error) {
	path := demoOutput
	if path == "" {
		path = fallback
	}
	if path == "" {
		return w, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating output file: %w", err)
	}
	return f, f.Close, nil
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	w, closeFn, err := outputWriter(cmd.OutOrStdout(), "")
	if err != nil {
		return err
	}
	defer closeFn()
	return printFrames(w, frames)
}

func printFrames(w io.Writer, frames []demo.Frame) error {
	fmt.Fprintf(w, "Captured %d frames\n", len(frames))
	for i, f := range frames {
		fmt.Fprintf(w, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(w, "Annotation: %s\n", f.Annotation)
		}
		if _, err := fmt.Fprintln(w, f.Content); err != nil {
			return err
		}
	}
	return nil
}

func runDemoCast(cmd *cobra.Command, args []string) error {
	scenarioName := args[0]
	scenario, err := getScenario(scenarioName)
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	outputFile := demoOutput
	if outputFile == "" {
		outputFile = scenarioName + ".cast"
	}
	w, closeFn, err := outputWriter(nil, outputFile)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := writeCast(w, frames, scenario.Width, scenario.Height); err != nil {
		return fmt.Errorf("error writing cast file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d frames)\n", outputFile, len(frames))
	fmt.Fprintf(cmd.OutOrStdout(), "Play with: asciinema play %s\n", outputFile)
	return nil
}

// castHeader is the first line of an asciicast v2 file.
type castHeader struct {
	Version int `json:"version"`
	Width   int `json:"width"`
	Height  int `json:"height"`
}

// writeCast writes frames as asciicast v2: a header line followed by one
// [time, "o", data] event per frame. Each frame clears the screen and uses
// CRLF line endings.
func writeCast(w io.Writer, frames []demo.Frame, width, height int) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(castHeader{Version: 2, Width: width, Height: height}); err != nil {
		return err
	}
	var elapsed float64
	for _, f := range frames {
		elapsed += f.Delay.Seconds()
		if err := enc.Encode([]any{elapsed, "o", "\x1b[2J\x1b[H" + strings.ReplaceAll(f.Content, "\n", "\r\n")}); err != nil {
			return err
		}
	}
	return nil
}
