package item

// Facet identifies one optional capability of an item.
type Facet uint8

const (
	FacetSized Facet = iota
	FacetColored
	FacetPositioned
	FacetDimensioned
	FacetStackable
	FacetEquipable
	FacetUseable

	facetCount
)

var facetNames = [facetCount]string{
	FacetSized:       "sized",
	FacetColored:     "colored",
	FacetPositioned:  "positioned",
	FacetDimensioned: "dimensioned",
	FacetStackable:   "stackable",
	FacetEquipable:   "equipable",
	FacetUseable:     "useable",
}

func (f Facet) String() string {
	if f >= facetCount {
		return "unknown"
	}
	return facetNames[f]
}

// Unbounded is the max-per-slot and capacity marker for "no limit" and
// "not loadable".
const Unbounded = -1

// DefaultReloadSpeed is the rounds moved per reload call when unspecified.
const DefaultReloadSpeed = 1

// ==================== Error Messages ====================

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgEmptyIdentity      = "item id and kind are required"
	ErrMsgNegativeQuantity   = "quantity must be non-negative"
	ErrMsgNegativeValue      = "unit value must be non-negative"
	ErrMsgBadMaxPerSlot      = "max per slot must be -1 or positive"
	ErrMsgQuantityOverCap    = "quantity exceeds max per slot"
	ErrMsgNegativeCombat     = "range and damage must be non-negative"
	ErrMsgBadCapacity        = "capacity outside [0, maximum]"
	ErrMsgBadMaximum         = "maximum capacity must be positive for loadable items"
	ErrMsgMissingAmmo        = "loadable items need an ammunition type"
	ErrMsgBadReloadSpeed     = "reload speed must be positive"
	ErrMsgMergeDifferentKind = "kinds differ"
	ErrMsgMergeNotMergeable  = "both stacks must be mergeable"
	ErrMsgMergeSelf          = "cannot merge a stack into itself"
)

// Effect description formats
const (
	EffectFmtUse   = "You use the %s."
	EffectFmtFire  = "You fire the %s."
	EffectFmtEmpty = "The %s clicks. It is empty."
)
