package actor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samarpantrust/outreach/internal/domain"
	"github.com/samarpantrust/outreach/internal/pkg/logger"
)

// Handler serves the actor wire protocol on top of any Actor. It backs the
// local stub actor and the client tests.
type Handler struct {
	actor Actor
	key   []byte
	log   logger.Logger
}

// NewHandler returns an http.Handler exposing a over /status and
// /rpc/{method}. With a non-empty key, requests without a valid bearer token
// are rejected; without one, every caller is anonymous.
func NewHandler(a Actor, key []byte, log logger.Logger) http.Handler {
	h := &Handler{actor: a, key: key, log: log}

	r := chi.NewRouter()
	r.Get("/status", h.status)
	r.Post("/rpc/{method}", h.rpc)
	return r
}

func (h *Handler) status(w http.ResponseWriter, _ *http.Request) {
	writeEnvelope(w, http.StatusOK, rpcResponse{Ok: json.RawMessage(`"ready"`)})
}

func (h *Handler) rpc(w http.ResponseWriter, r *http.Request) {
	method := chi.URLParam(r, "method")

	ctx := r.Context()
	if len(h.key) > 0 {
		raw, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeEnvelope(w, http.StatusUnauthorized, rpcResponse{Err: err.Error()})
			return
		}
		p, err := VerifyToken(raw, h.key)
		if err != nil {
			writeEnvelope(w, http.StatusUnauthorized, rpcResponse{Err: "invalid caller token"})
			return
		}
		ctx = WithCaller(ctx, p)
	}

	var req rpcRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxResponseBytes)).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, rpcResponse{Err: "invalid request body"})
		return
	}

	result, err := h.dispatch(ctx, method, req.Args)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrUnknownMethod):
			status = http.StatusNotFound
		case errors.Is(err, errBadArgs):
			status = http.StatusBadRequest
		case errors.Is(err, ErrUnauthorized):
			status = http.StatusForbidden
		}
		if status == http.StatusInternalServerError {
			h.log.Error().Str("method", method).Str("err", logger.RedactText(err.Error())).Msg("actor call failed")
		}
		writeEnvelope(w, status, rpcResponse{Err: err.Error()})
		return
	}

	var ok json.RawMessage
	if result != nil {
		ok, err = json.Marshal(result)
		if err != nil {
			writeEnvelope(w, http.StatusInternalServerError, rpcResponse{Err: "encoding result failed"})
			return
		}
	}
	writeEnvelope(w, http.StatusOK, rpcResponse{Ok: ok})
}

var errBadArgs = errors.New("bad arguments")

// some wraps a lookup result so that a nil pointer is encoded as null rather
// than dropped from the envelope.
type some struct{ v any }

func (s some) MarshalJSON() ([]byte, error) { return json.Marshal(s.v) }

func (h *Handler) dispatch(ctx context.Context, method string, args []json.RawMessage) (any, error) {
	switch method {
	case MethodSubmitVolunteerInterest:
		var in domain.VolunteerInterest
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return nil, h.actor.SubmitVolunteerInterest(ctx, in)
	case MethodSubmitContactMessage:
		var in domain.ContactMessage
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return nil, h.actor.SubmitContactMessage(ctx, in)
	case MethodSubmitDonationPledge:
		var in domain.DonationPledge
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return nil, h.actor.SubmitDonationPledge(ctx, in)

	case MethodListVolunteerInterests:
		return h.actor.ListVolunteerInterests(ctx)
	case MethodListContactMessages:
		return h.actor.ListContactMessages(ctx)
	case MethodListDonationPledges:
		return h.actor.ListDonationPledges(ctx)

	case MethodGetVolunteerInterestByEmail:
		var email string
		if err := decodeArgs(args, &email); err != nil {
			return nil, err
		}
		v, err := h.actor.GetVolunteerInterestByEmail(ctx, email)
		return some{v}, err
	case MethodGetContactMessageByEmail:
		var email string
		if err := decodeArgs(args, &email); err != nil {
			return nil, err
		}
		v, err := h.actor.GetContactMessageByEmail(ctx, email)
		return some{v}, err
	case MethodGetDonationPledgeByEmail:
		var email string
		if err := decodeArgs(args, &email); err != nil {
			return nil, err
		}
		v, err := h.actor.GetDonationPledgeByEmail(ctx, email)
		return some{v}, err

	case MethodGetCallerUserProfile:
		v, err := h.actor.GetCallerUserProfile(ctx)
		return some{v}, err
	case MethodGetUserProfile:
		var user domain.Principal
		if err := decodeArgs(args, &user); err != nil {
			return nil, err
		}
		v, err := h.actor.GetUserProfile(ctx, user)
		return some{v}, err
	case MethodSaveCallerUserProfile:
		var in domain.UserProfile
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return nil, h.actor.SaveCallerUserProfile(ctx, in)
	case MethodGetCallerUserRole:
		return h.actor.GetCallerUserRole(ctx)
	case MethodAssignCallerUserRole:
		var user domain.Principal
		var role domain.UserRole
		if err := decodeArgs(args, &user, &role); err != nil {
			return nil, err
		}
		if !role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", errBadArgs, role)
		}
		return nil, h.actor.AssignCallerUserRole(ctx, user, role)
	case MethodIsCallerAdmin:
		return h.actor.IsCallerAdmin(ctx)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
}

func decodeArgs(args []json.RawMessage, dst ...any) error {
	if len(args) != len(dst) {
		return fmt.Errorf("%w: want %d, got %d", errBadArgs, len(dst), len(args))
	}
	for i := range dst {
		if err := json.Unmarshal(args[i], dst[i]); err != nil {
			return fmt.Errorf("%w: arg %d: %v", errBadArgs, i, err)
		}
	}
	return nil
}

func writeEnvelope(w http.ResponseWriter, status int, resp rpcResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
