package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Argument errors
	ErrMsgInvalidArgument = "invalid argument"

	// Item facet errors
	ErrMsgNotLoadable       = "item is not loadable"
	ErrMsgNotUseable        = "item is not useable"
	ErrMsgNotEquipable      = "item is not equipable"
	ErrMsgNotStackable      = "item has no quantity"
	ErrMsgAmmoMismatch      = "ammunition does not match"
	ErrMsgIncompatibleMerge = "items cannot be merged"

	// Inventory errors
	ErrMsgInventoryFull = "inventory is full"
	ErrMsgOverburdened  = "carry load exceeded"
	ErrMsgSlotEmpty     = "equipment slot is empty"

	// Template errors
	ErrMsgDuplicateIdentity = "duplicate identity"
	ErrMsgTemplateNotFound  = "template not found"

	// Population errors
	ErrMsgUnknownRegion = "unknown region"
	ErrMsgEmptyTable    = "spawn table is empty"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)

	ErrNotLoadable       = errors.New(ErrMsgNotLoadable)
	ErrNotUseable        = errors.New(ErrMsgNotUseable)
	ErrNotEquipable      = errors.New(ErrMsgNotEquipable)
	ErrNotStackable      = errors.New(ErrMsgNotStackable)
	ErrAmmoMismatch      = errors.New(ErrMsgAmmoMismatch)
	ErrIncompatibleMerge = errors.New(ErrMsgIncompatibleMerge)

	ErrInventoryFull = errors.New(ErrMsgInventoryFull)
	ErrOverburdened  = errors.New(ErrMsgOverburdened)
	ErrSlotEmpty     = errors.New(ErrMsgSlotEmpty)

	ErrDuplicateIdentity = errors.New(ErrMsgDuplicateIdentity)
	ErrTemplateNotFound  = errors.New(ErrMsgTemplateNotFound)

	ErrUnknownRegion = errors.New(ErrMsgUnknownRegion)
	ErrEmptyTable    = errors.New(ErrMsgEmptyTable)
)
