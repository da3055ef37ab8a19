// cmd/cost.go
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hrevolve-go/hrevolve/schedule"
)

var (
	costLmax            int
	costSnapshotsInRAM  int
	costSnapshotsOnDisk int
	costWriteRAM        float64
	costWriteDisk       float64
	costReadRAM         float64
	costReadDisk        float64
	costForwardStep     float64
	costBackwardStep    float64
)

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Print the H-Revolve optimal cost for a given step count and memory budget",
	Run: func(cmd *cobra.Command, args []string) {
		levels := schedule.LevelVectors{
			Cvect: []int64{int64(costSnapshotsInRAM), int64(costSnapshotsOnDisk)},
			Wvect: []float64{costWriteRAM, costWriteDisk},
			Rvect: []float64{costReadRAM, costReadDisk},
		}
		params := schedule.Params{Cfwd: costForwardStep, Cbwd: costBackwardStep, Levels: levels}

		ct, err := schedule.BuildCostTables(costLmax, levels, params)
		if err != nil {
			logrus.Fatalf("building cost tables: %v", err)
		}

		topLevel := levels.NumLevels() - 1
		topCap := int(levels.Cvect[topLevel])
		optimal := ct.Opt[topLevel][costLmax][topCap]
		logrus.Infof("opt[%d][%d][%d] = %.6g", topLevel, costLmax, topCap, optimal)
	},
}

func init() {
	costCmd.Flags().IntVar(&costLmax, "max-n", 10, "Total number of forward steps")
	costCmd.Flags().IntVar(&costSnapshotsInRAM, "ram", 2, "Checkpoint slots in RAM")
	costCmd.Flags().IntVar(&costSnapshotsOnDisk, "disk", 0, "Checkpoint slots on disk")
	costCmd.Flags().Float64Var(&costWriteRAM, "write-ram", 0.0, "Write cost for RAM")
	costCmd.Flags().Float64Var(&costWriteDisk, "write-disk", 0.1, "Write cost for disk")
	costCmd.Flags().Float64Var(&costReadRAM, "read-ram", 0.0, "Read cost for RAM")
	costCmd.Flags().Float64Var(&costReadDisk, "read-disk", 0.1, "Read cost for disk")
	costCmd.Flags().Float64Var(&costForwardStep, "uf", 1.0, "Forward step cost")
	costCmd.Flags().Float64Var(&costBackwardStep, "ub", 2.0, "Backward step cost")
}
