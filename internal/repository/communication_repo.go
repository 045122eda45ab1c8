package repository

import (
	"database/sql"
	"fmt"

	"github.com/sasank-sasi/Vertx/internal/models"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// CommunicationRepository stores the send history for the read endpoints.
// The JSONL/CSV logs remain the durability record; this store only backs
// /communications and its stats.
type CommunicationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCommunicationRepository creates a new repository
func NewCommunicationRepository(dbPath string, logger *zap.Logger) (*CommunicationRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	repo := &CommunicationRepository{
		db:     db,
		logger: logger,
	}

	if err := repo.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Communication repository initialized", zap.String("db_path", dbPath))

	return repo, nil
}

// migrate creates tables
func (r *CommunicationRepository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS communications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		founder_name TEXT NOT NULL,
		company_name TEXT NOT NULL,
		investor_name TEXT NOT NULL,
		investor_firm TEXT,
		email_variant TEXT NOT NULL,
		email_subject TEXT,
		success BOOLEAN DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_comm_timestamp ON communications(timestamp);
	CREATE INDEX IF NOT EXISTS idx_comm_variant ON communications(email_variant);
	`

	_, err := r.db.Exec(schema)
	return err
}

// SaveCommunication appends a single send record
func (r *CommunicationRepository) SaveCommunication(entry *models.CommunicationLogEntry) error {
	query := `
		INSERT INTO communications (
			timestamp, founder_name, company_name, investor_name,
			investor_firm, email_variant, email_subject, success
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		entry.Timestamp,
		entry.FounderName,
		entry.CompanyName,
		entry.InvestorName,
		entry.InvestorFirm,
		string(entry.Variant),
		entry.Subject,
		entry.Success,
	)

	if err != nil {
		return fmt.Errorf("failed to save communication: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	entry.ID = id
	return nil
}

// GetAllCommunications retrieves the full send history, newest first
func (r *CommunicationRepository) GetAllCommunications() ([]*models.CommunicationLogEntry, error) {
	query := `
		SELECT id, timestamp, founder_name, company_name, investor_name,
		       investor_firm, email_variant, email_subject, success
		FROM communications
		ORDER BY timestamp DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query communications: %w", err)
	}
	defer rows.Close()

	var entries []*models.CommunicationLogEntry
	for rows.Next() {
		entry := &models.CommunicationLogEntry{}
		var variant string
		err := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.FounderName,
			&entry.CompanyName,
			&entry.InvestorName,
			&entry.InvestorFirm,
			&variant,
			&entry.Subject,
			&entry.Success,
		)
		if err != nil {
			r.logger.Error("Failed to scan communication", zap.Error(err))
			continue
		}
		entry.Variant = models.EmailVariant(variant)
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetStats returns statistics about sent communications
func (r *CommunicationRepository) GetStats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	// Total count
	var total int
	err := r.db.QueryRow("SELECT COUNT(*) FROM communications").Scan(&total)
	if err != nil {
		return nil, err
	}
	stats["total"] = total

	// Successful sends
	var sent int
	err = r.db.QueryRow("SELECT COUNT(*) FROM communications WHERE success = 1").Scan(&sent)
	if err != nil {
		return nil, err
	}
	stats["sent"] = sent

	// By variant
	query := `
		SELECT email_variant, COUNT(*) as count
		FROM communications
		GROUP BY email_variant
		ORDER BY email_variant
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byVariant := make(map[string]int)
	for rows.Next() {
		var variant string
		var count int
		if err := rows.Scan(&variant, &count); err != nil {
			continue
		}
		byVariant[variant] = count
	}
	stats["by_variant"] = byVariant

	return stats, nil
}

// Close closes the database connection
func (r *CommunicationRepository) Close() error {
	return r.db.Close()
}
