package dataset

import (
	"database/sql"

	"coinscope/src/models"
)

// -----------------------------------------------------------------------------

// scanRows converts a generic SQL result set into raw string rows, keyed by
// the result's column names. SQL NULL becomes the empty string so that the
// normalizer's fallback paths apply uniformly across backends.
func scanRows(result *sql.Rows) ([]models.MRow, []string, error) {
	columns, err := result.Columns()
	if err != nil {
		return nil, nil, err
	}

	var rows []models.MRow
	for result.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := result.Scan(dest...); err != nil {
			return nil, nil, err
		}

		row := make(models.MRow, len(columns))
		for i, col := range columns {
			if values[i].Valid {
				row[col] = values[i].String
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	if err := result.Err(); err != nil {
		return nil, nil, err
	}
	return rows, columns, nil
}
