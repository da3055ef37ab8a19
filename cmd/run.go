// cmd/run.go
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hrevolve-go/hrevolve/schedule"
)

var (
	runConfigPath string
	runMaxN       int64
	runPasses     int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build a schedule from a config file and drive it against a toy forward/adjoint solver",
	Run: func(cmd *cobra.Command, args []string) {
		bundle, err := schedule.LoadScheduleBundle(runConfigPath)
		if err != nil {
			logrus.Fatalf("loading schedule config: %v", err)
		}

		sched, err := bundle.Build()
		if err != nil {
			logrus.Fatalf("building schedule: %v", err)
		}

		maxN := runMaxN
		if bundle.Strategy == "hrevolve" {
			maxN = bundle.HRevolve.MaxN
		}
		if maxN <= 0 {
			logrus.Fatalf("max-n must be positive for a %s schedule (set --max-n)", bundle.Strategy)
		}
		if err := sched.FinalizeForward(maxN); err != nil {
			logrus.Fatalf("finalizing forward pass: %v", err)
		}

		passes := runPasses
		if bundle.Strategy == "hrevolve" {
			passes = 1
		}

		logrus.Infof("running %s schedule, max_n=%d", bundle.Strategy, maxN)
		solver := NewToySolver()
		if err := solver.Drive(sched.Iter(), passes); err != nil {
			logrus.Fatalf("schedule run failed: %v", err)
		}
		logrus.Infof("schedule complete: %s", solver.Summary())
	},
}

func init() {
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "Path to a schedule YAML config file")
	runCmd.Flags().Int64Var(&runMaxN, "max-n", 0, "Total forward steps (required for two-level schedules)")
	runCmd.Flags().IntVar(&runPasses, "passes", 1, "Number of reverse passes to run for a restartable (two-level) schedule")
	_ = runCmd.MarkFlagRequired("config")
}
