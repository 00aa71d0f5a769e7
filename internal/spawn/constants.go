package spawn

// Reason explains a spawn attempt that produced nothing.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonRegionFull  Reason = "region_full"
	ReasonCoolingDown Reason = "cooling_down"
)

// Cooldown keys are namespaced per region.
const CooldownKeyFmt = "spawn:region:%d"

// ==================== Error Messages ====================

const (
	ErrMsgNonPositiveWeight = "weights must be positive"
	ErrMsgEmptyTemplate     = "entry template is required"
	ErrMsgNilList           = "nil spawn list"
	ErrMsgNilEntity         = "factory returned no entity"
	ErrFmtDuplicateRegion   = "%w: region %d already has spawn list %q"
	ErrFmtDuplicateList     = "%w: spawn list %q"
	ErrFmtUnknownRegion     = "%w: %d"
	ErrFmtCreateFailed      = "spawn %q in region %d: %w"
	ErrFmtBadBounds         = "%w: spawn list %q needs 0 <= min_alive <= max_alive and max_alive >= 1"
)

// ==================== Log Messages ====================

const (
	LogMsgListRegistered = "Spawn list registered"
	LogMsgSpawned        = "Entity spawned"
	LogMsgSpawnRefused   = "Spawn refused"
	LogMsgDespawned      = "Entity despawned"
	LogMsgPopulated      = "Region populated"
)

// ==================== Log Fields ====================

const (
	LogFieldRegion    = "region"
	LogFieldList      = "list"
	LogFieldTemplate  = "template"
	LogFieldEntityID  = "entity_id"
	LogFieldPosition  = "position"
	LogFieldReason    = "reason"
	LogFieldAlive     = "alive"
	LogFieldRemaining = "remaining_turns"
	LogFieldSpawned   = "spawned"
)
