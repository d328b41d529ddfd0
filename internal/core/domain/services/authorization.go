package services

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
)

// Action identifies a capability an actor may request on an order.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// ActionCreateOrder creates a new order (any authenticated actor;
	// the creator becomes the owner).
	ActionCreateOrder

	// ActionStart moves a pending order into progress.
	ActionStart

	// ActionDeliverContent delivers or amends the order's admin content.
	ActionDeliverContent

	// ActionAppendFeedback appends a client response to a delivery.
	ActionAppendFeedback

	// ActionViewOrder reads one order's detail.
	ActionViewOrder

	// ActionListOrders lists orders visible to the actor.
	ActionListOrders
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionUnknown:        "unknown",
		ActionCreateOrder:    "createOrder",
		ActionStart:          "start",
		ActionDeliverContent: "deliverContent",
		ActionAppendFeedback: "appendFeedback",
		ActionViewOrder:      "viewOrder",
		ActionListOrders:     "listOrders",
	}
}

// String returns the capability name of the action.
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// capability describes who may perform an action.
type capability struct {
	administrator bool
	owningClient  bool
	anyClient     bool
}

// capabilityTable is the single source of truth for role and ownership
// rules. Every mutating operation consults this table through CanPerform
// instead of re-deriving the rule inline.
func capabilityTable() map[Action]capability {
	return map[Action]capability{
		ActionCreateOrder:    {administrator: true, anyClient: true},
		ActionStart:          {administrator: true},
		ActionDeliverContent: {administrator: true},
		ActionAppendFeedback: {owningClient: true},
		ActionViewOrder:      {administrator: true, owningClient: true},
		ActionListOrders:     {administrator: true, anyClient: true},
	}
}

// AuthorizationGate evaluates whether a given actor may perform a requested
// action on a given order. It is the single capability check consumed by
// every operation.
//
// The gate is stateless; the zero value is ready to use.
type AuthorizationGate struct{}

// NewAuthorizationGate creates the capability checker.
func NewAuthorizationGate() AuthorizationGate {
	return AuthorizationGate{}
}

// CanPerform decides allow/deny for the requested action.
//
// The target order is required for actions that depend on ownership
// (appendFeedback, viewOrder) and for per-order mutations; list and create
// actions pass nil. A denial is returned as an ActionIsForbiddenError and
// never mutates anything.
func (AuthorizationGate) CanPerform(actor kernel.Actor, action Action, ord *order.Order) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	cap, ok := capabilityTable()[action]
	if !ok {
		return errs.NewActionIsForbiddenErrorWithCause(
			action.String(), actor.Role().String(),
			errors.New("action is not defined in the capability table"),
		)
	}

	if cap.administrator && actor.IsAdministrator() {
		return nil
	}

	if actor.Role() == kernel.RoleClient {
		if cap.anyClient {
			return nil
		}
		if cap.owningClient {
			if ord == nil {
				return errs.NewActionIsForbiddenErrorWithCause(
					action.String(), actor.Role().String(),
					errors.New("ownership cannot be checked without a target order"),
				)
			}
			if actor.Owns(ord.ClientID()) {
				return nil
			}
			return errs.NewActionIsForbiddenErrorWithCause(
				action.String(), actor.Role().String(),
				errors.New("actor does not own the order"),
			)
		}
	}

	return errs.NewActionIsForbiddenError(action.String(), actor.Role().String())
}
