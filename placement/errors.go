package placement

import "fmt"

// NotEnoughLogicCellsError reports that the fabric has fewer logic cell
// sites than the design has logic cells.
type NotEnoughLogicCellsError struct {
	Needed    int
	Available int
}

func (e *NotEnoughLogicCellsError) Error() string {
	return fmt.Sprintf("placement: design needs %d logic cells but the fabric has only %d", e.Needed, e.Available)
}

// NotEnoughIoBlocksError reports that the fabric has fewer I/O block sites
// than the design has module ports.
type NotEnoughIoBlocksError struct {
	Needed    int
	Available int
}

func (e *NotEnoughIoBlocksError) Error() string {
	return fmt.Sprintf("placement: design needs %d I/O blocks but the fabric has only %d", e.Needed, e.Available)
}
