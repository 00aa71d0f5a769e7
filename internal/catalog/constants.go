package catalog

import "errors"

// ErrEmptyCatalog is reported by CheckHealth before anything is loaded.
var ErrEmptyCatalog = errors.New("catalog has no templates")

// ==================== Error Messages ====================

// Error format strings (use with fmt.Errorf)
const (
	ErrMsgReadFileFailed      = "failed to read catalog file %s: %w"
	ErrMsgParseYAMLFailed     = "failed to parse YAML %s: %w"
	ErrMsgConvertYAMLFailed   = "failed to convert YAML %s: %w"
	ErrMsgSchemaFailed        = "schema validation failed for %s: %w"
	ErrMsgParseFailed         = "failed to parse %s: %w"
	ErrMsgStructFailed        = "%w: %s: %v"
	ErrFmtDuplicateTemplate   = "%w: item template %q"
	ErrFmtDuplicateSpawnList  = "%w: spawn list %q"
	ErrFmtDuplicateRegion     = "%w: region %d already has spawn list %q"
	ErrFmtDuplicateContainer  = "%w: container %q"
	ErrFmtUnknownTemplate     = "%w: %q referenced by %s"
	ErrFmtTemplateFacet       = "template %q: %w"
	ErrFmtRandomSlotsNoTable  = "%w: container %q has random slots but no table"
	ErrFmtMinAboveMax         = "%w: spawn list %q min_alive %d > max_alive %d"
	ErrFmtInstantiateQuantity = "%w: quantity %d for %q"
)

// ==================== Log Messages ====================

const (
	LogMsgItemsLoaded      = "Item templates loaded"
	LogMsgPopulationLoaded = "Population rules loaded"
)

// ==================== Log Fields ====================

const (
	LogFieldPath       = "path"
	LogFieldTemplates  = "templates"
	LogFieldSpawnLists = "spawn_lists"
	LogFieldContainers = "containers"
)

// Document formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)
