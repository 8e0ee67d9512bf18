package export

import "errors"

// Sentinel errors for the export stage.
var (
	// ErrMissingSourceAsset is returned when a composition step needs a
	// previously generated bitmap that is absent on disk. The affected
	// output is skipped; sibling renders proceed.
	ErrMissingSourceAsset = errors.New("export: source asset not found")
)
