// Command patientclean loads raw patient records from a JSON export,
// normalizes and deduplicates them, and prints the surviving records.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/adeydebor/patient-analytics/cleaner"
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

	patients, err := cleaner.LoadPatients(cfg.PatientsFile)
	if err != nil {
		if errors.Is(err, cleaner.ErrNotFound) {
			fmt.Println("File not found!")
		} else {
			fmt.Printf("Failed to load patient data: %v\n", err)
		}
		logging.Error("Patient load failed", "path", cfg.PatientsFile, "error", err)
		os.Exit(1)
	}

	if len(patients) == 0 {
		fmt.Println("No patient data loaded.")
		return
	}

	cleaned := cleaner.Clean(patients)
	if len(cleaned) == 0 {
		fmt.Println("No patients meet the criteria after cleaning.")
		return
	}

	if err := validation.NewDataValidator().ValidateCleanedData(cleaned); err != nil {
		logging.Warn("Cleaned records failed integrity check", "error", err)
	}

	cleaner.WriteReport(os.Stdout, cleaned)
}
