package statemachine

import (
	"fmt"

	"github.com/restotrack/restaurant-app/models"
)

// Reservation machine: active -> completed | cancelled, both terminal.
var validReservationTransitions = map[models.ReservationStatus][]models.ReservationStatus{
	models.ReservationActive:    {models.ReservationCompleted, models.ReservationCancelled},
	models.ReservationCompleted: {},
	models.ReservationCancelled: {},
}

func CanTransitionReservation(from, to models.ReservationStatus) error {
	nexts, ok := validReservationTransitions[from]
	if !ok {
		return fmt.Errorf("unknown reservation status '%s'", from)
	}
	for _, n := range nexts {
		if n == to {
			return nil
		}
	}
	return fmt.Errorf("%s -> %s is not allowed. Valid transitions from %s are: %s",
		from, to, from, describe(nexts))
}

func IsTerminalReservationStatus(status models.ReservationStatus) bool {
	return len(validReservationTransitions[status]) == 0
}
