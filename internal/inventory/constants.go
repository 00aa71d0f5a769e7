package inventory

const (
	ErrMsgIndexOutOfRange = "inventory index out of range"
	ErrMsgNilItem         = "nil item"
	ErrMsgEmptyStack      = "cannot add an empty stack"
)
