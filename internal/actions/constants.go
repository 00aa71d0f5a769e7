package actions

// Action names used for logging and the action error counter
const (
	ActionPickUp  = "pick_up"
	ActionDrop    = "drop"
	ActionUse     = "use"
	ActionFire    = "fire"
	ActionReload  = "reload"
	ActionEquip   = "equip"
	ActionUnequip = "unequip"
)

// AutoAmmo asks Reload to pick the first compatible ammunition stack.
const AutoAmmo = -1

const (
	LogMsgPickedUp      = "Item picked up"
	LogMsgDropped       = "Item dropped"
	LogMsgUsed          = "Item used"
	LogMsgFired         = "Weapon fired"
	LogMsgDryFire       = "Weapon clicked empty"
	LogMsgReloaded      = "Weapon reloaded"
	LogMsgNoAmmo        = "No ammunition to reload with"
	LogMsgEquipped      = "Item equipped"
	LogMsgUnequipped    = "Item unequipped"
	LogMsgActionFailed  = "Action failed"
	LogMsgConsumedEntry = "Depleted entry removed"
)

const (
	LogFieldActor    = "actor"
	LogFieldAction   = "action"
	LogFieldItem     = "item"
	LogFieldKind     = "kind"
	LogFieldQuantity = "quantity"
	LogFieldMerged   = "merged"
	LogFieldRounds   = "rounds"
	LogFieldMoved    = "transferred"
	LogFieldSlot     = "slot"
	LogFieldPrevious = "previous"
	LogFieldError    = "error"
)

const (
	ErrMsgNilActor  = "nil actor"
	ErrMsgNoTarget  = "no item at target"
	ErrFmtRollback  = "%w (rollback failed: %v)"
)
