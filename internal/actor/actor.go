// Package actor is the boundary to the remote backend actor.
//
// The actor owns every submitted record and every profile; this package
// only describes its procedure set (Actor), speaks its JSON wire protocol
// (Client on the calling side, Handler on the serving side) and tracks
// whether a connection has been established (Conn).
package actor

import (
	"context"
	"errors"
	"fmt"

	"github.com/samarpantrust/outreach/internal/domain"
)

// Actor is the fixed procedure set exposed by the remote backend.
// Lookups return (nil, nil) when nothing matches.
type Actor interface {
	SubmitVolunteerInterest(ctx context.Context, interest domain.VolunteerInterest) error
	SubmitContactMessage(ctx context.Context, message domain.ContactMessage) error
	SubmitDonationPledge(ctx context.Context, pledge domain.DonationPledge) error

	ListVolunteerInterests(ctx context.Context) ([]domain.VolunteerInterest, error)
	ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error)
	ListDonationPledges(ctx context.Context) ([]domain.DonationPledge, error)

	GetVolunteerInterestByEmail(ctx context.Context, email string) (*domain.VolunteerInterest, error)
	GetContactMessageByEmail(ctx context.Context, email string) (*domain.ContactMessage, error)
	GetDonationPledgeByEmail(ctx context.Context, email string) (*domain.DonationPledge, error)

	GetCallerUserProfile(ctx context.Context) (*domain.UserProfile, error)
	GetUserProfile(ctx context.Context, user domain.Principal) (*domain.UserProfile, error)
	SaveCallerUserProfile(ctx context.Context, profile domain.UserProfile) error
	GetCallerUserRole(ctx context.Context) (domain.UserRole, error)
	AssignCallerUserRole(ctx context.Context, user domain.Principal, role domain.UserRole) error
	IsCallerAdmin(ctx context.Context) (bool, error)
}

// Sentinel errors shared by both sides of the wire.
var (
	ErrNotConnected  = errors.New("actor connection not established")
	ErrUnauthorized  = errors.New("caller is not authorized")
	ErrUnknownMethod = errors.New("unknown actor method")
)

// RemoteError is returned when the actor answered a call with a failure.
type RemoteError struct {
	Method  string
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("actor %s failed (status %d): %s", e.Method, e.Status, e.Message)
}
