package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"coinscope/src/helpers"
	"coinscope/src/logger"
	"coinscope/src/models"
)

// -----------------------------------------------------------------------------

// CSVSource reads the dataset from the first existing file in an ordered
// candidate path list.
type CSVSource struct {
	Config *models.MConfig
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewCSVSource(cfg *models.MConfig, log *logger.Logger) *CSVSource {
	return &CSVSource{
		Config: cfg,
		Logger: log,
	}
}

// -----------------------------------------------------------------------------

func (s *CSVSource) Name() string {
	return "csv"
}

// -----------------------------------------------------------------------------

func (s *CSVSource) FetchRows() ([]models.MRow, []string, error) {
	path, found := s.resolvePath()
	if !found {
		return nil, nil, helpers.NewDatasetError(
			fmt.Sprintf("no dataset file found in candidate paths %v", s.Config.Dataset.Paths), nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, helpers.NewDatasetError("failed to open dataset file "+path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// roi cells contain commas inside quoted pseudo-JSON; rows may also be
	// ragged, so field count enforcement is off.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, helpers.NewDatasetError("failed to parse dataset file "+path, err)
	}
	if len(records) == 0 {
		return nil, nil, helpers.NewDatasetError("dataset file "+path+" has no header row", nil)
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}

	rows := make([]models.MRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(models.MRow, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	s.Logger.Debug("Parsed %d rows from %s", len(rows), path)
	return rows, header, nil
}

// -----------------------------------------------------------------------------

// resolvePath walks the candidate list and picks the first existing file.
func (s *CSVSource) resolvePath() (string, bool) {
	for _, candidate := range s.Config.Dataset.Paths {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
