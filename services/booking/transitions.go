package booking

import (
	"nepwork/models"
)

// Action is a user intent on the bookings board.
type Action string

const (
	ActionAccept   Action = "accept"
	ActionDecline  Action = "decline"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
	ActionRate     Action = "rate"
	ActionRequest  Action = "request"
)

// Transition is a single allowed edge of the booking lifecycle.
type Transition struct {
	Action Action
	From   models.BookingStatus
	To     models.BookingStatus
	Roles  []models.Role
}

// Rating leaves the status in place; it is listed so that its role and
// source status are validated like every other action.
var transitionsTable = []Transition{
	{Action: ActionAccept, From: models.StatusPending, To: models.StatusConfirmed, Roles: []models.Role{models.RoleProvider, models.RoleAdmin}},
	{Action: ActionDecline, From: models.StatusPending, To: models.StatusCancelled, Roles: []models.Role{models.RoleProvider, models.RoleAdmin}},
	{Action: ActionComplete, From: models.StatusConfirmed, To: models.StatusCompleted, Roles: []models.Role{models.RoleProvider, models.RoleAdmin}},
	{Action: ActionCancel, From: models.StatusPending, To: models.StatusCancelled, Roles: []models.Role{models.RoleCustomer}},
	{Action: ActionRate, From: models.StatusCompleted, To: models.StatusCompleted, Roles: []models.Role{models.RoleCustomer}},
}

// requestRoles may create new bookings.
var requestRoles = []models.Role{models.RoleCustomer}

// boardActions is the display order of per-booking actions.
var boardActions = []Action{ActionAccept, ActionDecline, ActionComplete, ActionCancel, ActionRate}

// TransitionFor returns the table entry for action.
func TransitionFor(action Action) (Transition, bool) {
	for _, tr := range transitionsTable {
		if tr.Action == action {
			return tr, true
		}
	}
	return Transition{}, false
}

// CanTransition reports whether the lifecycle has an edge from -> to.
// Nothing leaves a terminal status.
func CanTransition(from, to models.BookingStatus) bool {
	if from == to || from.Terminal() {
		return false
	}
	for _, tr := range transitionsTable {
		if tr.From == from && tr.To == to {
			return true
		}
	}
	return false
}

// Check validates action by role against the booking's current state.
func Check(action Action, role models.Role, b models.Booking) error {
	tr, ok := TransitionFor(action)
	if !ok {
		return ErrUnknownAction
	}
	if !roleIn(role, tr.Roles) {
		return ErrRoleNotAllowed
	}
	if b.Status != tr.From {
		return ErrInvalidTransition
	}
	if tr.From == tr.To {
		// rate annotates a completed booking once
		if b.Rated() {
			return ErrAlreadyRated
		}
		return nil
	}
	if !CanTransition(b.Status, tr.To) {
		return ErrInvalidTransition
	}
	return nil
}

// CheckRequest validates that role may create bookings.
func CheckRequest(role models.Role) error {
	if !roleIn(role, requestRoles) {
		return ErrRoleNotAllowed
	}
	return nil
}

// AvailableActions lists what role may do to b right now.
func AvailableActions(role models.Role, b models.Booking) []Action {
	actions := []Action{}
	for _, a := range boardActions {
		if Check(a, role, b) == nil {
			actions = append(actions, a)
		}
	}
	return actions
}

func roleIn(role models.Role, roles []models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
