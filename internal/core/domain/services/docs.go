// Package services provides domain services that implement business rules
// spanning more than one domain concept in the atelier system.
//
// The package includes:
//   - AuthorizationGate: The capability table deciding which actor may
//     perform which action on which order
//
// Domain services hold logic that doesn't naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
