package run

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"

	"github.com/kvload/kvload/cmd/util"
	"github.com/kvload/kvload/lib/loadgen"
	"github.com/kvload/kvload/lib/store"
)

// execute runs the configured workload against the target backend, closes it
// and reports the results.
func execute(target store.Store) error {
	params, err := util.GetLoadParams()
	if err != nil {
		return err
	}

	log.Infof("starting load: threads=%d pattern=%s duration=%v", params.Threads, params.Pattern, params.Duration)

	stats, runErr := loadgen.Run(target, params)

	// Close even when the run failed so async shard writers drain.
	if err := target.Close(); err != nil {
		log.Errorf("closing store: %v", err)
	}
	if runErr != nil {
		return runErr
	}

	if err := loadgen.LogStats(stats); err != nil {
		return err
	}

	if csvPath := viper.GetString("csv"); csvPath != "" {
		log.Infof("exporting results to CSV: %s", csvPath)
		if err := writeResultsToCSV(csvPath, stats); err != nil {
			return fmt.Errorf("failed to export results to CSV: %w", err)
		}
	}

	if metricsPath := viper.GetString("metrics-file"); metricsPath != "" {
		log.Infof("dumping metrics to %s", metricsPath)
		if err := writeMetricsFile(metricsPath); err != nil {
			return fmt.Errorf("failed to dump metrics: %w", err)
		}
	}

	return nil
}

// writeResultsToCSV writes per-worker results plus the aggregate row
func writeResultsToCSV(csvPath string, stats []loadgen.Stats) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Worker", "Ops", "RuntimeSec", "OpsPerSec"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, s := range stats {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatInt(s.Ops, 10),
			fmt.Sprintf("%.6f", s.Runtime.Seconds()),
			fmt.Sprintf("%.2f", s.OpsPerSec()),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for worker %d: %w", i, err)
		}
	}

	summary, err := loadgen.Summarize(stats)
	if err != nil {
		return err
	}
	total := []string{
		"total",
		strconv.FormatInt(summary.TotalOps, 10),
		fmt.Sprintf("%.6f", summary.TotalRuntime.Seconds()),
		fmt.Sprintf("%.2f", summary.TotalOpsPerSec),
	}
	return writer.Write(total)
}

// writeMetricsFile dumps the Prometheus metrics collected during the run
func writeMetricsFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	loadgen.WriteMetrics(file)
	return nil
}
