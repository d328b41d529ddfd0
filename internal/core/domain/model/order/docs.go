// Package order provides domain entities and business logic for creative-work
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, ownership, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Priority: The urgency classification of an order
//   - Attachment: The metadata record for one uploaded asset
//   - AdminContent: The single delivered-work record, amended in place
//   - Feedback: An immutable, append-only client response to a delivery
//
// Key business rules:
//   - Orders must have a valid identifier, code, owner, non-empty title, and valid priority
//   - Order status follows the workflow: PENDING -> IN_PROGRESS -> REVIEW -> {COMPLETED | REVISION}
//   - A content delivery forces REVIEW from every non-terminal status
//   - Client feedback resolves REVIEW into COMPLETED (approval) or REVISION
//   - COMPLETED is terminal; no operation changes a completed order
//   - Delivered files accumulate across deliveries and are never removed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
