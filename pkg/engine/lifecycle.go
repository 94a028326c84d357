package engine

type Lifecycle int

const (
	Uninitialized Lifecycle = iota
	Ready
	Running
	ShuttingDown
	Destroyed
)

func (l Lifecycle) String() string {
	switch l {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting-down"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// ExitReason records why the loop ended.
type ExitReason int

const (
	ExitNone ExitReason = iota
	ExitClosed
	ExitStopped
	ExitCreateFailed
	ExitFailed
)

func (r ExitReason) String() string {
	switch r {
	case ExitClosed:
		return "closed"
	case ExitStopped:
		return "stopped"
	case ExitCreateFailed:
		return "create-failed"
	case ExitFailed:
		return "failed"
	default:
		return "none"
	}
}
