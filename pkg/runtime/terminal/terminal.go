package terminal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bev-tools/guidance/pkg/adapters"
	"github.com/bev-tools/guidance/pkg/models/api"
	"github.com/bev-tools/guidance/pkg/services/forecast"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{reporter: NewReporter(opts.Output)}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guidance",
		Short: "Depletions forecast guidance tool",
	}

	cmd.AddCommand(cli.newReportCmd())
	return cmd
}

type reportCmd struct {
	factsPath     string
	overridesPath string
	scope         string
	reporter      *Reporter
}

func (cli *CLI) newReportCmd() *cobra.Command {
	rc := &reportCmd{reporter: cli.reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Roll a facts snapshot up and print a brand/variant summary",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.factsPath, "facts", "", "Path to the raw facts JSON file")
	cmd.Flags().StringVar(&rc.overridesPath, "overrides", "", "Path to the manual overrides JSON file")
	cmd.Flags().StringVar(&rc.scope, "scope", "market", "View scope: market or customer")

	_ = cmd.MarkFlagRequired("facts")

	return cmd
}

func (rc *reportCmd) run(cmd *cobra.Command, args []string) error {
	var facts []api.RawFact
	if err := readJSONFile(rc.factsPath, &facts); err != nil {
		return fmt.Errorf("failed to read facts: %w", err)
	}

	var overrides []api.ManualOverride
	if rc.overridesPath != "" {
		if err := readJSONFile(rc.overridesPath, &overrides); err != nil {
			return fmt.Errorf("failed to read overrides: %w", err)
		}
	}

	scope := adapters.MapAPIScopeToDomain(rc.scope)
	items := forecast.Aggregate(
		adapters.MapAPIFactsToDomain(facts),
		adapters.MapAPIOverridesToDomain(overrides),
		scope,
	)
	rollup := forecast.RollUp(items)

	return rc.reporter.Handle(BuildReport(rollup, scope))
}

func readJSONFile(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(out)
}
