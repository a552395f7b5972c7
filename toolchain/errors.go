package toolchain

import "fmt"

// NotEnoughLogicCellsError reports that the design needs more logic cells
// than the fabric provides.
type NotEnoughLogicCellsError struct {
	Needed    int
	Available int
}

func (e *NotEnoughLogicCellsError) Error() string {
	return fmt.Sprintf("toolchain: design needs %d logic cells but the fabric has only %d", e.Needed, e.Available)
}

// NotEnoughIoBlocksError reports that the design needs more I/O blocks than
// the fabric provides.
type NotEnoughIoBlocksError struct {
	Needed    int
	Available int
}

func (e *NotEnoughIoBlocksError) Error() string {
	return fmt.Sprintf("toolchain: design needs %d I/O blocks but the fabric has only %d", e.Needed, e.Available)
}

// FailedToRouteError reports that annealing exhausted its step budget
// without finding a placement Pathfinder could route cleanly.
type FailedToRouteError struct {
	Congestion int
}

func (e *FailedToRouteError) Error() string {
	return fmt.Sprintf("toolchain: failed to route design, residual congestion = %d", e.Congestion)
}
