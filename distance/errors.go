// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
)

var (
	// ErrDataLoad is returned when the distance data is missing or cannot be
	// turned into a complete mapping of mappings. It is fatal for a run.
	ErrDataLoad = errors.New("distance: cannot load distance table")

	// ErrInvalidNode is matched by *InvalidNodeError. It is recoverable: the
	// caller may ask for another name.
	ErrInvalidNode = errors.New("distance: node not in table")
)

// InvalidNodeError reports a requested name that is not in the table.
type InvalidNodeError struct {
	Name string
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("distance: node %q not in table", e.Name)
}

// Is makes errors.Is(err, ErrInvalidNode) hold.
func (e *InvalidNodeError) Is(target error) bool {
	return target == ErrInvalidNode
}
