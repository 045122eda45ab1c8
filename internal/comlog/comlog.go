// Package comlog appends communication records to two parallel append-only
// logs: a newline-delimited JSON file and a CSV file whose header is
// written once on creation. There is no read path; the files exist for
// durability and audit.
package comlog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/sasank-sasi/Vertx/internal/models"

	"go.uber.org/zap"
)

// csvHeader fixes the column order of the tabular log.
var csvHeader = []string{
	"timestamp",
	"founder_name",
	"company_name",
	"investor_name",
	"investor_firm",
	"email_variant",
	"email_subject",
	"success",
}

// Writer appends entries to both log files. A mutex serializes writers
// within this process; across processes the files rely on filesystem
// append semantics.
type Writer struct {
	mu       sync.Mutex
	dir      string
	jsonPath string
	csvPath  string
	logger   *zap.Logger
}

// NewWriter creates a log writer rooted at dir.
func NewWriter(dir string, logger *zap.Logger) *Writer {
	return &Writer{
		dir:      dir,
		jsonPath: filepath.Join(dir, "email_logs.json"),
		csvPath:  filepath.Join(dir, "email_logs.csv"),
		logger:   logger,
	}
}

// Append writes one entry to both logs. Each log is attempted even when the
// other fails; the last failure is returned so callers can report it
// without treating it as fatal.
func (w *Writer) Append(entry models.CommunicationLogEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	var lastErr error

	if err := w.appendJSON(entry); err != nil {
		w.logger.Error("Failed to write JSON log", zap.Error(err))
		lastErr = err
	}

	if err := w.appendCSV(entry); err != nil {
		w.logger.Error("Failed to write CSV log", zap.Error(err))
		lastErr = err
	}

	return lastErr
}

func (w *Writer) appendJSON(entry models.CommunicationLogEntry) error {
	file, err := os.OpenFile(w.jsonPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open JSON log: %w", err)
	}
	defer file.Close()

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	if _, err := file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append JSON log: %w", err)
	}

	return nil
}

func (w *Writer) appendCSV(entry models.CommunicationLogEntry) error {
	_, statErr := os.Stat(w.csvPath)
	writeHeader := os.IsNotExist(statErr)

	file, err := os.OpenFile(w.csvPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open CSV log: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if writeHeader {
		if err := writer.Write(csvHeader); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	record := []string{
		entry.Timestamp.Format(time.RFC3339),
		entry.FounderName,
		entry.CompanyName,
		entry.InvestorName,
		entry.InvestorFirm,
		string(entry.Variant),
		entry.Subject,
		strconv.FormatBool(entry.Success),
	}

	if err := writer.Write(record); err != nil {
		return fmt.Errorf("failed to write CSV record: %w", err)
	}

	writer.Flush()
	return writer.Error()
}
