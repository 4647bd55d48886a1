package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	gc "nickandperla.net/genetic_crossover"
)

/*
	Read tool config (TOML)

	cross:   read two parents (TOML), run OX1 once, print offspring
	random:  breed random permutation pairs in parallel
	history: print stored crossover records
*/

type options struct {
	configPath  string
	logLevel    string
	parentsPath string
	seed        int64
	persist     bool
	length      int
	pairs       int
	limit       int
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Fatalf("oxcross: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "oxcross",
		Short:         "Ordered Crossover (OX1) over permutation chromosomes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "./config.toml", "The config file for genetic_crossover tools to use")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Overrides log_level from the config file")

	cross := &cobra.Command{
		Use:   "cross",
		Short: "Cross the two parents of a parents file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCross(opts)
		},
	}
	cross.Flags().StringVar(&opts.parentsPath, "parents", "./parents.toml", "TOML file with parent1 and parent2 arrays")
	addRunFlags(cross.Flags(), opts)

	random := &cobra.Command{
		Use:   "random",
		Short: "Breed random permutation pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRandom(cmd.Context(), opts)
		},
	}
	random.Flags().IntVar(&opts.length, "length", 10, "Chromosome length")
	random.Flags().IntVar(&opts.pairs, "pairs", 100, "Number of parent pairs")
	addRunFlags(random.Flags(), opts)

	history := &cobra.Command{
		Use:   "history",
		Short: "Print stored crossover records, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts)
		},
	}
	history.Flags().IntVar(&opts.limit, "limit", gc.DefaultRecordListLimit, "Maximum records to print")

	root.AddCommand(cross, random, history)
	return root
}

func addRunFlags(fs *pflag.FlagSet, opts *options) {
	fs.Int64Var(&opts.seed, "seed", 0, "Random seed (0 uses the config seed, then the clock)")
	fs.BoolVar(&opts.persist, "persist", false, "Store the crossover records")
}

func loadConfig(opts *options) (*gc.ToolConfig, error) {
	var toolConfig *gc.ToolConfig
	if _, err := os.Stat(opts.configPath); err == nil {
		if toolConfig, err = gc.LoadToolConfig(opts.configPath); err != nil {
			return nil, err
		}
	} else {
		logrus.Debugf("No tool config at %s, using defaults", opts.configPath)
		toolConfig = &gc.ToolConfig{}
	}

	level := toolConfig.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	if err := gc.ParseLogLevel(level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if opts.seed != 0 {
		toolConfig.Seed = opts.seed
	}
	return toolConfig, nil
}

func openPersistence(toolConfig *gc.ToolConfig, wanted bool) (*gc.Persistence, error) {
	if !wanted {
		return nil, nil
	}
	if toolConfig.Persistence == nil {
		return nil, fmt.Errorf("persistence requested but the config has no [persistence] table")
	}
	return gc.NewPersistence(toolConfig.Persistence)
}

func runCross(opts *options) error {
	toolConfig, err := loadConfig(opts)
	if err != nil {
		return err
	}

	parentsConfig, err := gc.LoadParentsConfig(opts.parentsPath)
	if err != nil {
		return err
	}
	parents := parentsConfig.Parents()

	crossover := gc.NewOrderedCrossover[int](gc.NewBasicRandomization(toolConfig.Seed))
	offspring, low, high, err := crossover.CrossWithCuts(parents)
	if err != nil {
		return err
	}

	evals := gc.NewEvaluator[int](toolConfig.Evaluator).Evaluate(parents, offspring)
	fmt.Printf("Cut points:  [%d, %d]\n", low, high)
	for i := range offspring {
		fmt.Printf("Offspring %d: %v\n", i+1, offspring[i])
		fmt.Printf("  Set fidelity:     %d\n", evals[i].SetFidelity)
		fmt.Printf("  Inversions:       %d\n", evals[i].Inversions)
		fmt.Printf("  Primary distance: %d\n", evals[i].PrimaryDistance)
		fmt.Printf("  Filler distance:  %d\n", evals[i].FillerDistance)
	}

	persist, err := openPersistence(toolConfig, opts.persist)
	if err != nil {
		return err
	}
	if persist == nil {
		return nil
	}
	defer persist.Shutdown()

	record := gc.NewCrossoverRecord(crossover.Name(), parents, offspring, low, high, evals)
	if err := persist.SaveRecords([]*gc.CrossoverRecord{record}); err != nil {
		return err
	}
	fmt.Printf("Record:      %s\n", record.UUID)
	return nil
}

func runRandom(ctx context.Context, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	toolConfig, err := loadConfig(opts)
	if err != nil {
		return err
	}

	persist, err := openPersistence(toolConfig, opts.persist)
	if err != nil {
		return err
	}
	if persist != nil {
		defer persist.Shutdown()
	}

	rnd := gc.NewBasicRandomization(toolConfig.Seed)
	pairs := make([][2]gc.Chromosome[int], opts.pairs)
	for i := range pairs {
		pairs[i] = [2]gc.Chromosome[int]{
			gc.NewRandomPermutation(opts.length, rnd),
			gc.NewRandomPermutation(opts.length, rnd),
		}
	}

	breeder := gc.NewBreeder[int](gc.NewOrderedCrossover[int](rnd), persist, toolConfig.Breeder)
	if toolConfig.Evaluator != nil {
		breeder.Evaluator = gc.NewEvaluator[int](toolConfig.Evaluator)
	}
	offspring, err := breeder.Breed(ctx, pairs)
	if err != nil {
		return err
	}

	for i, children := range offspring {
		fmt.Printf("%4d  %v x %v -> %v %v\n", i+1, pairs[i][0], pairs[i][1], children[0], children[1])
	}
	return nil
}

func runHistory(opts *options) error {
	toolConfig, err := loadConfig(opts)
	if err != nil {
		return err
	}
	persist, err := openPersistence(toolConfig, true)
	if err != nil {
		return err
	}
	defer persist.Shutdown()

	count, err := persist.CountRecords()
	if err != nil {
		return err
	}
	records, err := persist.ListRecords(opts.limit)
	if err != nil {
		return err
	}

	fmt.Printf("Stored crossover records: %d\n", count)
	for _, r := range records {
		fmt.Println(r)
	}
	return nil
}
