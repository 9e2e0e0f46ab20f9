package interfaces

import "coinscope/src/models"

// -----------------------------------------------------------------------------
// IDatasetSource is the contract for reading the tabular coin dataset.
// Sources are read-once: the loader calls FetchRows a single time per
// process lifetime.
// -----------------------------------------------------------------------------

type IDatasetSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// FetchRows reads the full dataset and returns the ordered rows plus
	// the ordered column header they were parsed against.
	FetchRows() ([]models.MRow, []string, error)
}
