package catalog

// ==================== File Names ====================

const (
	// DefaultFileName is the bulk item export shipped next to the binary
	DefaultFileName = "items.min.json"
)

// ==================== Error Messages ====================

const (
	ErrMsgReadFileFailed  = "failed to read item catalog file: %w"
	ErrMsgParseFileFailed = "failed to parse item catalog: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded     = "Item catalog loaded"
	LogMsgCatalogLoadFailed = "Item catalog unavailable, continuing with empty catalog"
	LogMsgRecordSkipped     = "Skipping invalid item record"
)
