package exam

import "fmt"

// InvalidTransitionError reports a state-machine operation attempted in a
// mode it is not valid for. The operation is a no-op; existing state is
// never touched.
type InvalidTransitionError struct {
	Op   string
	Mode ViewMode
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s not valid in %s mode", e.Op, e.Mode)
}
