package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/classmix/regroup"
	"github.com/classmix/regroup/export"
	"github.com/classmix/regroup/internal/logging"
	"github.com/classmix/regroup/roster"
	"github.com/classmix/regroup/types"
)

var generateFlags struct {
	configPath string
	items      int
	groupSize  int
	rounds     int
	seed       int64
	labelsFile string
	output     string
	verbose    bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a multi-round group schedule",
	Long: `Generate partitions the population into groups for every round,
prints the schedule and pairing statistics, and optionally writes the
result to an .xlsx workbook or .csv table.

Configuration comes from flags, or from a YAML file via --config (flags
override file values when both are given).`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateFlags.configPath, "config", "c", "", "YAML config file")
	generateCmd.Flags().IntVarP(&generateFlags.items, "items", "n", 0, "number of items to partition")
	generateCmd.Flags().IntVarP(&generateFlags.groupSize, "group-size", "g", 0, "target group size")
	generateCmd.Flags().IntVarP(&generateFlags.rounds, "rounds", "r", 0, "number of rounds")
	generateCmd.Flags().Int64Var(&generateFlags.seed, "seed", 0, "random seed (0 = nondeterministic)")
	generateCmd.Flags().StringVar(&generateFlags.labelsFile, "labels-file", "", "file with one display label per line")
	generateCmd.Flags().StringVarP(&generateFlags.output, "output", "o", "", "write result to .xlsx or .csv file")
	generateCmd.Flags().BoolVarP(&generateFlags.verbose, "verbose", "v", false, "debug logging")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGenerateConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewSlog(newLogger(generateFlags.verbose))

	eng, err := regroup.NewEngine(cfg, regroup.WithLogger(logger))
	if err != nil {
		return err
	}

	schedule := eng.Generate()
	stats := regroup.ComputeStatistics(schedule)
	ros := roster.New(cfg.Labels)

	printSchedule(cmd.OutOrStdout(), schedule, ros)
	printStats(cmd.OutOrStdout(), stats, ros)

	if generateFlags.output != "" {
		if err := writeOutput(generateFlags.output, schedule, stats, ros); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\nwrote %s\n", generateFlags.output)
	}

	return nil
}

func loadGenerateConfig(cmd *cobra.Command) (regroup.Config, error) {
	var cfg regroup.Config

	if generateFlags.configPath != "" {
		raw, err := os.ReadFile(generateFlags.configPath)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	// Flags override file values when explicitly set.
	if cmd.Flags().Changed("items") {
		cfg.ItemCount = generateFlags.items
	}
	if cmd.Flags().Changed("group-size") {
		cfg.GroupSize = generateFlags.groupSize
	}
	if cmd.Flags().Changed("rounds") {
		cfg.Rounds = generateFlags.rounds
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = generateFlags.seed
	}

	if generateFlags.labelsFile != "" {
		raw, err := os.ReadFile(generateFlags.labelsFile)
		if err != nil {
			return cfg, fmt.Errorf("read labels file: %w", err)
		}

		cfg.Labels = roster.ParseLabels(string(raw))
	}

	return cfg, nil
}

func printSchedule(out io.Writer, schedule types.Schedule, ros *roster.Roster) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	for ri, round := range schedule {
		fmt.Fprintf(w, "Round %d\n", ri+1)

		for gi, group := range round {
			fmt.Fprintf(w, "  Group %d\t%s\n", gi+1, strings.Join(ros.Names(group), ", "))
		}
	}

	w.Flush()
}

func printStats(out io.Writer, stats types.Stats, ros *roster.Roster) {
	fmt.Fprintf(out, "\nUnique pairs: %d  Repeated: %d  Consecutive repeats: %d  Max repetitions: %d\n",
		stats.TotalUniquePairs, stats.RepeatedPairs, stats.ConsecutiveRepeats, stats.MaxRepetitions)

	for _, p := range stats.RepeatedPairDetails.SortedPairs() {
		fmt.Fprintf(out, "  %s & %s paired %d times\n", ros.Name(p.A), ros.Name(p.B), stats.RepeatedPairDetails[p])
	}
}

func writeOutput(path string, schedule types.Schedule, stats types.Stats, ros *roster.Roster) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".xlsx":
		return export.WriteWorkbook(f, schedule, stats, ros)
	case ".csv":
		return export.WriteAssignmentsCSV(f, schedule, ros)
	default:
		return fmt.Errorf("unsupported output format %q (want .xlsx or .csv)", filepath.Ext(path))
	}
}
