package models

import "time"

// InvitationStatus is the lifecycle state of an invitation. The only legal
// transitions are pending -> accepted | expired | cancelled; none reverse.
type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationExpired   InvitationStatus = "expired"
	InvitationCancelled InvitationStatus = "cancelled"
)

// Invitation pre-binds a recipient channel to a share so the gate knows
// where to deliver one-time codes.
type Invitation struct {
	Token            string
	ShareID          string
	RecipientChannel string
	ExpiresAt        time.Time
	Status           InvitationStatus
	CreatedAt        time.Time
}
