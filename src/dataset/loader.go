package dataset

import (
	"sync"

	"coinscope/src/interfaces"
	"coinscope/src/logger"
	"coinscope/src/models"
)

// -----------------------------------------------------------------------------

// knownColumns is the fixed coin schema; columns outside it are passed
// through untouched but flagged once at load time.
var knownColumns = map[string]struct{}{
	"id": {}, "symbol": {}, "name": {}, "image": {},
	"current_price": {}, "market_cap": {}, "market_cap_rank": {},
	"fully_diluted_valuation": {}, "total_volume": {},
	"high_24h": {}, "low_24h": {},
	"price_change_24h": {}, "price_change_percentage_24h": {},
	"market_cap_change_24h": {}, "market_cap_change_percentage_24h": {},
	"circulating_supply": {}, "total_supply": {}, "max_supply": {},
	"ath": {}, "ath_change_percentage": {}, "ath_date": {},
	"atl": {}, "atl_change_percentage": {}, "atl_date": {},
	"roi": {}, "last_updated": {},
}

// -----------------------------------------------------------------------------

// Snapshot is the immutable in-memory dataset. It is populated at most once
// per process and never mutated afterwards; all analytical computations are
// pure functions over it.
type Snapshot struct {
	Rows   []models.MRow
	Header []string
	Count  int
}

// -----------------------------------------------------------------------------

// Loader owns the load-once dataset cache.
type Loader struct {
	Config *models.MConfig
	Logger *logger.Logger

	source   interfaces.IDatasetSource
	once     sync.Once
	snapshot *Snapshot
}

// -----------------------------------------------------------------------------

func NewLoader(cfg *models.MConfig, log *logger.Logger, source interfaces.IDatasetSource) *Loader {
	return &Loader{
		Config: cfg,
		Logger: log,
		source: source,
	}
}

// -----------------------------------------------------------------------------

// EnsureLoaded populates the cache on first call and returns the snapshot.
// A missing or unparsable dataset degrades to an empty snapshot, logged but
// never surfaced as an error; every caller must treat zero rows as a valid
// state. Safe to call from every request.
func (l *Loader) EnsureLoaded() *Snapshot {
	l.once.Do(func() {
		rows, header, err := l.source.FetchRows()
		if err != nil {
			l.Logger.Warning("Dataset load failed, serving empty dataset: %v", err)
			l.snapshot = &Snapshot{Rows: []models.MRow{}, Header: []string{}, Count: 0}
			return
		}

		l.flagUnknownColumns(header)
		l.snapshot = &Snapshot{Rows: rows, Header: header, Count: len(rows)}
		l.Logger.Info("Dataset loaded from %s source: %d rows, %d columns",
			l.source.Name(), len(rows), len(header))
	})
	return l.snapshot
}

// -----------------------------------------------------------------------------

// SourceName reports the backing source identifier.
func (l *Loader) SourceName() string {
	return l.source.Name()
}

// -----------------------------------------------------------------------------

func (l *Loader) flagUnknownColumns(header []string) {
	for _, col := range header {
		if _, ok := knownColumns[col]; !ok {
			l.Logger.Warning("Dataset column %q is not part of the coin schema", col)
		}
	}
}
