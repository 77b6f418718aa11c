package statemachine

import (
	"fmt"

	"github.com/restotrack/restaurant-app/models"
)

// validOrderTransitions is the authoritative order state machine.
// Closed and cancelled are terminal.
var validOrderTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderPending:   {models.OrderPreparing, models.OrderCancelled},
	models.OrderPreparing: {models.OrderServed, models.OrderCancelled},
	models.OrderServed:    {models.OrderClosed, models.OrderCancelled},
	models.OrderClosed:    {},
	models.OrderCancelled: {},
}

// CanTransitionOrder reports whether an order may move from one status
// to another. The order itself is never mutated here.
func CanTransitionOrder(from, to models.OrderStatus) error {
	nexts, ok := validOrderTransitions[from]
	if !ok {
		return fmt.Errorf("unknown order status '%s'", from)
	}
	for _, n := range nexts {
		if n == to {
			return nil
		}
	}
	return fmt.Errorf("%s -> %s is not allowed. Valid transitions from %s are: %s",
		from, to, from, describe(nexts))
}

// ValidOrderTransitionsFrom returns all valid next statuses from a
// given status, for documentation endpoints.
func ValidOrderTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	return validOrderTransitions[status]
}

// IsTerminalOrderStatus reports whether no further transition exists.
func IsTerminalOrderStatus(status models.OrderStatus) bool {
	return len(validOrderTransitions[status]) == 0
}

func describe[S ~string](nexts []S) string {
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
