package kernel

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// ErrActorIsNotConstructed indicates that an Actor was not created through
// the NewActor constructor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("Actor must be created via NewActor constructor")

// Role identifies the authorization role of an actor.
// Roles are resolved by the identity collaborator before a request reaches
// the core; the core never derives them itself.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleClient is the requesting party. Clients create orders, view and
	// list their own orders, and respond to deliveries with feedback.
	RoleClient

	// RoleAdministrator is the fulfilling party. Administrators start
	// orders, deliver content, and can view every order.
	RoleAdministrator
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:       "Unknown",
		RoleClient:        "Client",
		RoleAdministrator: "Administrator",
	}
}

// RoleFromString parses a role from its string representation.
// Accepts the canonical names ("Client", "Administrator") and the upper-case
// wire forms ("CLIENT", "ADMIN", "ADMINISTRATOR") used in tokens.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "Client", "CLIENT":
		return RoleClient, nil
	case "Administrator", "ADMIN", "ADMINISTRATOR":
		return RoleAdministrator, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not a known role", s),
		)
	}
}

// Validate checks if the Role value is valid.
// RoleUnknown and out-of-range values are invalid.
func (r Role) Validate() error {
	if r != RoleClient && r != RoleAdministrator {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// Actor is a value object carrying an already-resolved identity: who is
// acting and in which role. Every core operation receives an Actor explicitly
// rather than reaching into transport-layer state, so authorization decisions
// are made from one well-defined value.
//
// Actor is immutable; construct it with NewActor.
type Actor struct {
	id   UUID
	role Role

	isConstructed bool
}

// NewActor creates a new Actor with validation.
// The id must be a constructed UUID and the role must be valid.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's identity.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdministrator reports whether the actor holds the administrator role.
func (a Actor) IsAdministrator() bool {
	return a.role == RoleAdministrator
}

// Owns reports whether the actor is the owner identified by ownerID.
func (a Actor) Owns(ownerID UUID) bool {
	return a.id.IsEqual(ownerID)
}
