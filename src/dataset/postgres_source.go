package dataset

import (
	"database/sql"
	"fmt"

	"coinscope/src/helpers"
	"coinscope/src/logger"
	"coinscope/src/models"

	_ "github.com/lib/pq"
)

// -----------------------------------------------------------------------------

// PostgresSource reads the dataset from a Postgres table.
type PostgresSource struct {
	Config *models.MConfig
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewPostgresSource(cfg *models.MConfig, log *logger.Logger) *PostgresSource {
	return &PostgresSource{
		Config: cfg,
		Logger: log,
	}
}

// -----------------------------------------------------------------------------

func (s *PostgresSource) Name() string {
	return "postgres"
}

// -----------------------------------------------------------------------------

func (s *PostgresSource) FetchRows() ([]models.MRow, []string, error) {
	db, err := sql.Open("postgres", s.Config.Dataset.DBConnectionString)
	if err != nil {
		return nil, nil, helpers.NewDatasetError("failed to open postgres dataset", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, nil, helpers.NewDatasetError("failed to reach postgres dataset", err)
	}

	query := fmt.Sprintf(`SELECT * FROM "%s"`, s.Config.Dataset.Table)
	result, err := db.Query(query)
	if err != nil {
		return nil, nil, helpers.NewDatasetError("failed to query postgres dataset", err)
	}
	defer result.Close()

	rows, header, err := scanRows(result)
	if err != nil {
		return nil, nil, helpers.NewDatasetError("failed to scan postgres dataset", err)
	}

	s.Logger.Debug("Read %d rows from postgres table %s", len(rows), s.Config.Dataset.Table)
	return rows, header, nil
}
