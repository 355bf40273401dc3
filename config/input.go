package config

// ActionID represents a logical game action. Values index the level's input arrays.
type ActionID int

const (
	ActionLeft ActionID = iota
	ActionRight
	ActionJump
	ActionShoot
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionJump:
		return "jump"
	case ActionShoot:
		return "shoot"
	}
	return "unknown"
}
