package main

import (
	"fmt"
	"os"

	"github.com/joshharrison/slackline/internal/analyze"
	"github.com/joshharrison/slackline/internal/graph"
	"github.com/joshharrison/slackline/internal/loader"
	"github.com/joshharrison/slackline/internal/reporter"
	"github.com/joshharrison/slackline/internal/schedule"
	"github.com/joshharrison/slackline/internal/task"
	"github.com/joshharrison/slackline/internal/ui"
	"github.com/spf13/cobra"
)

var (
	flagInput     string
	flagFormat    string
	flagStrict    bool
	flagTolerance float64
	flagJSON      bool
	flagOutput    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "slackline",
		Short: "Earliest-start scheduling for dependent tasks with PERT estimates",
		Long: `Slackline reads a task list with three-point (best/expected/worst) hour
estimates and predecessor references, computes the earliest feasible start
for every task over the dependency graph, and reports the project makespan
and per-task float.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "Task file (csv, xlsx, json, yaml, or hcl)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "Input format override (default: by file extension)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Reject estimates that violate best <= expected <= worst")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "slackline: %v\n", err)
		os.Exit(1)
	}
}

// loadTasks is shared logic for the analyze and check commands.
func loadTasks() ([]task.Task, error) {
	if flagInput == "" {
		return nil, fmt.Errorf("no input file (use --input)")
	}

	tasks, err := loader.Load(flagInput, loader.Format(flagFormat))
	if err != nil {
		return nil, err
	}

	if flagStrict {
		for _, t := range tasks {
			if err := task.CheckEstimateOrder(t); err != nil {
				return nil, err
			}
		}
	}

	return tasks, nil
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute the earliest-start schedule and per-task float",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := loadTasks()
			if err != nil {
				return err
			}

			g := graph.Build(tasks)
			s, err := schedule.Solve(g)
			if err != nil {
				return err
			}

			report := analyze.Analyze(tasks, s)
			rpt := reporter.New(report, g.Unresolved, flagTolerance)

			if flagJSON || flagOutput != "" {
				data, err := rpt.JSON()
				if err != nil {
					return err
				}
				if flagOutput != "" {
					return os.WriteFile(flagOutput, data, 0644)
				}
				fmt.Println(string(data))
				return nil
			}

			rpt.PrintSchedule(os.Stdout)
			return nil
		},
	}

	cmd.Flags().Float64Var(&flagTolerance, "tolerance", analyze.DefaultCriticalTolerance, "Zero-float tolerance for marking tasks critical")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Write the JSON report to a file")

	return cmd
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a task file without solving",
		Long: `Check loads the task file, builds the dependency graph, and reports
unresolved predecessor references and dependency cycles without computing
a schedule.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := loadTasks()
			if err != nil {
				return err
			}

			g := graph.Build(tasks)

			for _, u := range g.Unresolved {
				fmt.Fprintf(os.Stderr, "%s %s\n", ui.Yellow("warning:"), u.String())
			}

			if cycle := g.DetectCycle(); cycle != nil {
				return &schedule.CycleError{Tasks: cycle}
			}

			fmt.Printf("%s %d tasks, %d unresolved reference(s), no cycles\n",
				ui.Green("ok:"), g.TaskCount(), len(g.Unresolved))
			return nil
		},
	}

	return cmd
}
