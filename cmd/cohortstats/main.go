// Command cohortstats aggregates a patient CSV export into per-BMI-range
// glucose and age statistics.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/adeydebor/patient-analytics/cohort"
	"github.com/adeydebor/patient-analytics/config"
	"github.com/adeydebor/patient-analytics/logging"
	"github.com/adeydebor/patient-analytics/validation"
)

func main() {
	// A missing .env is fine, the config has defaults for everything
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogDir, cfg.LogRetentionWeeks, logging.ParseLevel(cfg.LogLevel))

	stats, err := cohort.Analyze(cfg.CohortInputFile)
	if err != nil {
		// Both error kinds are reported and swallowed here, matching
		// the contract that the presentation layer does not re-raise.
		if errors.Is(err, cohort.ErrNotFound) {
			fmt.Printf("Error: %v\n", err)
			fmt.Println("Please ensure the patient CSV file exists at the configured path.")
		} else {
			fmt.Printf("An error occurred during analysis: %v\n", err)
		}
		logging.Error("Cohort analysis failed", "input", cfg.CohortInputFile, "error", err)
		return
	}

	if err := validation.NewDataValidator().ValidateCohortStats(stats); err != nil {
		logging.Warn("Cohort results failed integrity check", "error", err)
	}

	cohort.WriteReport(os.Stdout, stats)
}
