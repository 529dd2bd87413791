package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harelcain/electiontransfer/ballot"
	"github.com/harelcain/electiontransfer/catalog"
	"github.com/harelcain/electiontransfer/pipeline"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Args:  cobra.NoArgs,
	Short: "Aggregate precincts to settlement level and compare two elections",
	Long:  `Rolls up precinct rows into settlement summaries and, when both elections are given, reports the average Pedersen volatility and one party's HHI concentration in each election.`,
	RunE:  runAggregate,
}

func init() {
	aggregateCmd.Flags().String("source", "", "path to source-election ballot rows JSON")
	aggregateCmd.Flags().String("target", "", "path to target-election ballot rows JSON (optional)")
	aggregateCmd.Flags().String("source-election", "", "source election id")
	aggregateCmd.Flags().String("target-election", "", "target election id (required with --target)")
	aggregateCmd.Flags().String("source-parties", "", "comma-separated source party column order")
	aggregateCmd.Flags().String("target-parties", "", "comma-separated target party column order")
	aggregateCmd.Flags().String("catalog", "", "path to a catalog JSON file (bases/overrides/family_links)")
	aggregateCmd.Flags().String("hhi-party", "", "party code to report HHI concentration for")
	aggregateCmd.Flags().Int("divisor", 0, "precinct_number_divisor for both elections")
}

func runAggregate(cmd *cobra.Command, args []string) error {
	return runStage("aggregate", func() error { return doAggregate(cmd) })
}

func doAggregate(cmd *cobra.Command) error {
	source, _ := cmd.Flags().GetString("source")
	target, _ := cmd.Flags().GetString("target")
	sourceElection, _ := cmd.Flags().GetString("source-election")
	targetElection, _ := cmd.Flags().GetString("target-election")
	sourceParties, _ := cmd.Flags().GetString("source-parties")
	targetParties, _ := cmd.Flags().GetString("target-parties")
	catalogPath, _ := cmd.Flags().GetString("catalog")
	hhiParty, _ := cmd.Flags().GetString("hhi-party")
	divisor, _ := cmd.Flags().GetInt("divisor")
	if source == "" || sourceElection == "" {
		return fmt.Errorf("--source and --source-election are required")
	}

	sourceRows, err := loadBallotRows(source)
	if err != nil {
		return err
	}
	e1 := ballot.Load(sourceRows, ballot.ElectionId(sourceElection), divisor, nil)

	log := newCLILogger()
	runID := pipeline.RunID()
	runLog := log.WithRun(runID, sourceElection, targetElection)

	e1Settlements := pipeline.AggregateElection(runLog, e1, splitColumns(sourceParties))
	fmt.Fprintf(os.Stdout, "run_id=%s source_settlements=%d\n", runID, len(e1Settlements))

	if target == "" {
		return nil
	}
	if targetElection == "" {
		return fmt.Errorf("--target-election is required with --target")
	}

	targetRows, err := loadBallotRows(target)
	if err != nil {
		return err
	}
	e2 := ballot.Load(targetRows, ballot.ElectionId(targetElection), divisor, nil)
	e2Settlements := pipeline.AggregateElection(runLog, e2, splitColumns(targetParties))

	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	comparison := pipeline.Compare(hhiParty, e1Settlements, e2Settlements,
		catalog.ElectionId(sourceElection), catalog.ElectionId(targetElection), cat)

	fmt.Fprintf(os.Stdout, "target_settlements=%d average_pedersen=%.3f hhi_source=%.4f hhi_target=%.4f\n",
		len(e2Settlements), comparison.AveragePedersen, comparison.HHISource.HHI, comparison.HHITarget.HHI)
	return nil
}
