package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"lightcurve/adapters/dmdt"
	"lightcurve/adapters/lcio"
)

func newDmDtCmd() *cobra.Command {
	var gaussian bool
	var minLgDt, maxLgDt, minDm, maxDm float64

	cmd := &cobra.Command{
		Use:   "dmdt [light-curve-file]",
		Short: "Compute a dm-dt density map and write it as a grayscale PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfigOrExit()
			runID := uuid.New()
			logger := runLogger(runID)

			lc, err := lcio.NewReader(args[0]).Read()
			if err != nil {
				return err
			}
			logger.Printf("loaded %d observations from %s", len(lc.T), args[0])

			lgdtGrid := dmdt.NewGrid(minLgDt, maxLgDt, cfg.Output.DmDtSize)
			dmGrid := dmdt.NewGrid(minDm, maxDm, cfg.Output.DmDtSize)
			engine := dmdt.New(lgdtGrid, dmGrid)

			ts := timeSeriesFromLightCurve(lc)

			var normalized []byte
			if gaussian {
				if lc.W == nil {
					return fmt.Errorf("gaussian dm-dt requires a weight column")
				}
				normalized = dmdt.Normalise(engine.Gausses(ts))
			} else {
				normalized = dmdt.NormaliseInts(engine.Points(ts))
			}

			outPath := filepath.Join(cfg.Output.Dir, fmt.Sprintf("%s-dmdt.png", runID.String()[:8]))
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()

			rows, cols := engine.Shape()
			if err := dmdt.WritePNG(f, normalized, rows, cols); err != nil {
				return err
			}
			logger.Printf("dm-dt map written to %s", outPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&gaussian, "gaussian", false, "use Gaussian-smeared weighting instead of hard counts")
	cmd.Flags().Float64Var(&minLgDt, "min-lgdt", -2, "lower bound of the log10(time gap) axis")
	cmd.Flags().Float64Var(&maxLgDt, "max-lgdt", 3, "upper bound of the log10(time gap) axis")
	cmd.Flags().Float64Var(&minDm, "min-dm", -5, "lower bound of the magnitude-difference axis")
	cmd.Flags().Float64Var(&maxDm, "max-dm", 5, "upper bound of the magnitude-difference axis")

	return cmd
}
