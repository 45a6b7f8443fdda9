// services/booking_transitions.go
package services

import (
	"srvices-backend/entity"
	"srvices-backend/pkg/apperr"
)

// bookingTransitions is the single source of truth for the lifecycle:
//
//	pending_offers -> active -> completed
//	pending_offers -> cancelled
//	active         -> cancelled
//
// Terminal states have no outgoing edges; nothing re-enters pending_offers
// or active. Enforced here and again at the row level by the conditional
// UPDATE in BookingRepository.UpdateStatusGuard.
var bookingTransitions = map[entity.BookingStatus][]entity.BookingStatus{
	entity.BookingPendingOffers: {entity.BookingActive, entity.BookingCancelled},
	entity.BookingActive:        {entity.BookingCompleted, entity.BookingCancelled},
	entity.BookingCompleted:     {},
	entity.BookingCancelled:     {},
}

// CanTransition reports whether from -> to is a legal booking transition.
func CanTransition(from, to entity.BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// guardTransition returns the taxonomy error for an illegal edge.
func guardTransition(from, to entity.BookingStatus) error {
	if !CanTransition(from, to) {
		return &apperr.InvalidTransitionError{From: string(from), To: string(to)}
	}
	return nil
}
