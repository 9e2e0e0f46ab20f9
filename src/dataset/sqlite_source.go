package dataset

import (
	"database/sql"
	"fmt"

	"coinscope/src/helpers"
	"coinscope/src/logger"
	"coinscope/src/models"

	_ "modernc.org/sqlite"
)

// -----------------------------------------------------------------------------

// SQLiteSource reads the dataset from a local SQLite file.
type SQLiteSource struct {
	Config *models.MConfig
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewSQLiteSource(cfg *models.MConfig, log *logger.Logger) *SQLiteSource {
	return &SQLiteSource{
		Config: cfg,
		Logger: log,
	}
}

// -----------------------------------------------------------------------------

func (s *SQLiteSource) Name() string {
	return "sqlite"
}

// -----------------------------------------------------------------------------

func (s *SQLiteSource) FetchRows() ([]models.MRow, []string, error) {
	db, err := sql.Open("sqlite", s.Config.Dataset.DBPath)
	if err != nil {
		return nil, nil, helpers.NewDatasetError("failed to open sqlite dataset", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, nil, helpers.NewDatasetError("failed to reach sqlite dataset", err)
	}

	// Table name comes from validated config, not request input.
	query := fmt.Sprintf("SELECT * FROM %s", s.Config.Dataset.Table)
	result, err := db.Query(query)
	if err != nil {
		return nil, nil, helpers.NewDatasetError("failed to query sqlite dataset", err)
	}
	defer result.Close()

	rows, header, err := scanRows(result)
	if err != nil {
		return nil, nil, helpers.NewDatasetError("failed to scan sqlite dataset", err)
	}

	s.Logger.Debug("Read %d rows from sqlite table %s", len(rows), s.Config.Dataset.Table)
	return rows, header, nil
}
