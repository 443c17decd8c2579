package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"lightcurve/adapters/lcio"
	"lightcurve/adapters/stats/engine"
	"lightcurve/adapters/stats/features"
	"lightcurve/domain/timeseries"
)

func newFeaturesCmd() *cobra.Command {
	var sidecarPath, sidecarField, reportFormat string
	var fillOnError bool

	cmd := &cobra.Command{
		Use:   "features [light-curve-file]",
		Short: "Compute the default feature set for a light curve",
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
			if sanityMean, err := stats.Mean(lc.M); err == nil {
				logger.Printf("sanity check: montanaflynn/stats mean=%.6f", sanityMean)
			}

			ts := timeseries.New(lc.T, lc.M, lc.W)
			extractor := defaultExtractor()

			var values []float64
			if fillOnError {
				values = extractor.EvalOrFill(ts, 0)
			} else {
				values, err = extractor.Eval(ts)
				if err != nil {
					return fmt.Errorf("feature extraction failed: %w", err)
				}
			}

			names := extractor.Names()
			result := map[string]any{
				"run_id": runID.String(),
				"source": args[0],
			}
			featureMap := make(map[string]float64, len(names))
			for i, name := range names {
				featureMap[name] = values[i]
			}
			result["features"] = featureMap

			if sidecarPath != "" {
				meta, err := lcio.LoadSidecarMetadata(sidecarPath, sidecarField)
				if err != nil {
					logger.Printf("sidecar metadata not applied: %v", err)
				} else {
					result["object_id"] = meta
				}
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return err
			}

			if cfg.Output.WriteReport || reportFormat != "" {
				format := cfg.Output.ReportFormat
				if reportFormat != "" {
					format = reportFormat
				}
				outPath := filepath.Join(cfg.Output.Dir, fmt.Sprintf("%s-report.%s", runID.String()[:8], format))
				if err := writeReport(outPath, format, names, values); err != nil {
					logger.Printf("report not written: %v", err)
				} else {
					logger.Printf("report written to %s", outPath)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sidecarPath, "metadata", "", "sidecar JSON metadata file")
	cmd.Flags().StringVar(&sidecarField, "metadata-field", "object_id", "gjson path into the sidecar metadata file")
	cmd.Flags().StringVar(&reportFormat, "report", "", "render a report (md or html) in addition to JSON output")
	cmd.Flags().BoolVar(&fillOnError, "fill-on-error", false, "substitute zero for evaluators that fail instead of aborting")

	return cmd
}

// defaultExtractor builds the float64 feature set run by the CLI: the
// scalar evaluators that need no weights plus a Periodogram (default
// resolution 10) reporting the top-2 peaks.
func defaultExtractor() *engine.FeatureExtractor[float64] {
	interPercentile20, _ := features.NewInterPercentileRange[float64](0.2)
	bufferRange, _ := features.NewMedianBufferRangePercentage[float64](0.1)
	percentDiff, _ := features.NewPercentDifferenceMagnitudePercentile[float64](0.05)
	magRatio, _ := features.NewMagnitudePercentageRatio[float64](0.4, 0.05)

	return engine.New[float64](
		features.Mean[float64]{},
		features.Median[float64]{},
		features.StandardDeviation[float64]{},
		features.Amplitude[float64]{},
		features.PercentAmplitude[float64]{},
		features.Skew[float64]{},
		features.Kurtosis[float64]{},
		features.NewBeyondNStd[float64](1),
		features.MedianAbsoluteDeviation[float64]{},
		bufferRange,
		interPercentile20,
		magRatio,
		percentDiff,
		features.Cusum[float64]{},
		features.Eta[float64]{},
		features.EtaE[float64]{},
		features.MaximumSlope[float64]{},
		features.LinearTrend[float64]{},
		features.AndersonDarlingNormal[float64]{},
		features.NewPeriodogram[float64](2),
	)
}
