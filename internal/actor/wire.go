package actor

import (
	"context"
	"encoding/json"

	"github.com/samarpantrust/outreach/internal/domain"
)

// Procedure names as they appear in the /rpc/{method} path.
const (
	MethodSubmitVolunteerInterest     = "submitVolunteerInterest"
	MethodSubmitContactMessage        = "submitContactMessage"
	MethodSubmitDonationPledge        = "submitDonationPledge"
	MethodListVolunteerInterests      = "listVolunteerInterests"
	MethodListContactMessages         = "listContactMessages"
	MethodListDonationPledges         = "listDonationPledges"
	MethodGetVolunteerInterestByEmail = "getVolunteerInterestByEmail"
	MethodGetContactMessageByEmail    = "getContactMessageByEmail"
	MethodGetDonationPledgeByEmail    = "getDonationPledgeByEmail"
	MethodGetCallerUserProfile        = "getCallerUserProfile"
	MethodGetUserProfile              = "getUserProfile"
	MethodSaveCallerUserProfile       = "saveCallerUserProfile"
	MethodGetCallerUserRole           = "getCallerUserRole"
	MethodAssignCallerUserRole        = "assignCallerUserRole"
	MethodIsCallerAdmin               = "isCallerAdmin"
)

// maxResponseBytes bounds how much of an actor reply is read into memory.
const maxResponseBytes = 4 << 20

type rpcRequest struct {
	Args []json.RawMessage `json:"args"`
}

type rpcResponse struct {
	Ok  json.RawMessage `json:"ok,omitempty"`
	Err string          `json:"err,omitempty"`
}

// AnonymousPrincipal is the identity of a caller that presented no token.
const AnonymousPrincipal domain.Principal = "2vxsx-fae"

type callerKey struct{}

// WithCaller returns a context carrying the calling principal.
func WithCaller(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, callerKey{}, p)
}

// CallerFrom returns the principal stored by WithCaller, or AnonymousPrincipal.
func CallerFrom(ctx context.Context) domain.Principal {
	if p, ok := ctx.Value(callerKey{}).(domain.Principal); ok && p != "" {
		return p
	}
	return AnonymousPrincipal
}
