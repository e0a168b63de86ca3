package inventory

import (
	"fmt"

	"github.com/GamaDu30/Day-and-Night/catalog"
)

// Item is a stack of a single item type. The zero value is the empty stack.
type Item struct {
	Type   catalog.ItemType
	Amount int
}

// Empty reports whether the stack holds nothing.
func (i Item) Empty() bool {
	return i.Type == catalog.ItemNil || i.Amount <= 0
}

func (i Item) String() string {
	if i.Empty() {
		return "empty"
	}
	return fmt.Sprintf("%s x%d", i.Type, i.Amount)
}

func (i Item) validate(stackSize int) error {
	switch {
	case i.Type == catalog.ItemNil && i.Amount != 0:
		return fmt.Errorf("%w: empty stack with amount %d", ErrInvalidStack, i.Amount)
	case i.Type != catalog.ItemNil && i.Amount <= 0:
		return fmt.Errorf("%w: %s with amount %d", ErrInvalidStack, i.Type, i.Amount)
	case i.Amount > stackSize:
		return fmt.Errorf("%w: %s exceeds stack size %d", ErrInvalidStack, i, stackSize)
	}
	return nil
}
