package equipment

const (
	ErrMsgNilItem = "nil item"
)
