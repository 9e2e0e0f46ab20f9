package dataset

import (
	"database/sql"
	"path/filepath"
	"testing"

	"coinscope/src/logger"
	"coinscope/src/models"

	_ "modernc.org/sqlite"
)

// -----------------------------------------------------------------------------

func TestSQLiteSourceFetchRows(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "coins.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := db.Exec(`CREATE TABLE coins (id TEXT, symbol TEXT, name TEXT, market_cap TEXT)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO coins VALUES ('bitcoin','btc','Bitcoin','880000000000'), ('ethereum','eth','Ethereum',NULL)`); err != nil {
		t.Fatalf("failed to insert rows: %v", err)
	}
	db.Close()

	cfg := &models.MConfig{
		Dataset: models.MDatasetConfig{Backend: "sqlite", DBPath: dbPath, Table: "coins"},
	}
	source := NewSQLiteSource(cfg, logger.NewLogger("ERROR", "test"))

	rows, header, err := source.FetchRows()
	if err != nil {
		t.Fatalf("FetchRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(header) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(header))
	}
	if rows[0]["id"] != "bitcoin" {
		t.Fatalf("expected bitcoin first, got %q", rows[0]["id"])
	}

	// SQL NULL must read as the empty string for the normalizer fallbacks
	if rows[1]["market_cap"] != "" {
		t.Fatalf("expected NULL to map to empty string, got %q", rows[1]["market_cap"])
	}
}
