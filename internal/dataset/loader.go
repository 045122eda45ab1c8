// Package dataset reads the founders and investors CSV datasets. Datasets
// are small and re-read on every request so edits to the files are picked
// up without a restart.
package dataset

import (
	"fmt"
	"os"

	"github.com/sasank-sasi/Vertx/internal/models"

	"github.com/gocarina/gocsv"
)

// LoadFounders reads the founders dataset from path.
func LoadFounders(path string) ([]models.FounderRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open founders dataset: %w", err)
	}
	defer file.Close()

	var founders []models.FounderRecord
	if err := gocsv.UnmarshalFile(file, &founders); err != nil {
		return nil, fmt.Errorf("failed to parse founders dataset: %w", err)
	}

	return founders, nil
}

// LoadInvestors reads the investors dataset from path.
func LoadInvestors(path string) ([]models.InvestorRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open investors dataset: %w", err)
	}
	defer file.Close()

	var investors []models.InvestorRecord
	if err := gocsv.UnmarshalFile(file, &investors); err != nil {
		return nil, fmt.Errorf("failed to parse investors dataset: %w", err)
	}

	return investors, nil
}
