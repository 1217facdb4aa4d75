// Package actortest provides an in-memory Actor for tests and for the local
// stub actor. It keeps submissions in insertion order and records how many
// times each procedure was called.
package actortest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/samarpantrust/outreach/internal/actor"
	"github.com/samarpantrust/outreach/internal/domain"
)

// Memory is an in-memory actor.Actor. The zero value is not usable; call New.
type Memory struct {
	mu        sync.Mutex
	interests []domain.VolunteerInterest
	messages  []domain.ContactMessage
	pledges   []domain.DonationPledge
	profiles  map[domain.Principal]domain.UserProfile
	roles     map[domain.Principal]domain.UserRole
	calls     map[string]int
	failures  map[string]error
	failAll   error
}

var _ actor.Actor = (*Memory)(nil)

// New returns an empty Memory actor.
func New() *Memory {
	return &Memory{
		profiles: make(map[domain.Principal]domain.UserProfile),
		roles:    make(map[domain.Principal]domain.UserRole),
		calls:    make(map[string]int),
		failures: make(map[string]error),
	}
}

// FailWith makes every subsequent call fail with err. A nil err clears it.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failAll = err
}

// FailMethod makes calls to method fail with err. A nil err clears it.
func (m *Memory) FailMethod(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, method)
		return
	}
	m.failures[method] = err
}

// Calls returns how many times method has been invoked.
func (m *Memory) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// SetRole assigns role to p without any authorization check.
func (m *Memory) SetRole(p domain.Principal, role domain.UserRole) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles[p] = role
}

// enter records a call and returns any configured failure. Callers hold m.mu.
func (m *Memory) enter(method string) error {
	m.calls[method]++
	if m.failAll != nil {
		return m.failAll
	}
	return m.failures[method]
}

func (m *Memory) SubmitVolunteerInterest(_ context.Context, interest domain.VolunteerInterest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(actor.MethodSubmitVolunteerInterest); err != nil {
		return err
	}
	m.interests = append(m.interests, interest)
	return nil
}

func (m *Memory) SubmitContactMessage(_ context.Context, message domain.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(actor.MethodSubmitContactMessage); err != nil {
		return err
	}
	m.messages = append(m.messages, message)
	return nil
}

func (m *Memory) SubmitDonationPledge(_ context.Context, pledge domain.DonationPledge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(actor.MethodSubmitDonationPledge); err != nil {
		return err
	}
	if pledge.Message != nil {
		msg := *pledge.Message
		pledge.Message = &msg
	}
	m.pledges = append(m.pledges, pledge)
	return nil
}

func (m *Memory) ListVolunteerInterests(_ context.Context) ([]domain.VolunteerInterest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(actor.MethodListVolunteerInterests); err != nil {
		return nil, err
	}
	return append([]domain.VolunteerInterest{}, m.interests...), nil
}

func (m *Memory) ListContactMessages(_ context.Context) ([]domain.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(actor.MethodListContactMessages); err != nil {
		return nil, err
	}
	return append([]domain.ContactMessage{}, m.messages...), nil
}

func (m *Memory) ListDonationPledges(_ context.Context) ([]domain.DonationPledge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(actor.MethodListDonationPledges); err != nil {
		return nil, err
	}
	return append([]domain.DonationPledge{}, m.pledges...), nil
}

// Lookups return the most recent submission for the address, compared
// case-insensitively.

func (m *Memory) GetVolunteerInterestByEmail(_ context.Context, email string) (*domain.VolunteerInterest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(actor.MethodGetVolunteerInterestByEmail); err != nil {
		return nil, err
	}
	for i := len(m.interests) - 1; i >= 0; i-- {
		if sameEmail(m.interests[i].Email, email) {
			v := m.interests[i]
			return &v, nil
		}
	}
	return nil, nil
}

func (m *Memory) GetContactMessageByEmail(_ context.Context, email string) (*domain.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(actor.MethodGetContactMessageByEmail); err != nil {
		return nil, err
	}
	for i := len(m.messages) - 1; i >= 0; i-- {
		if sameEmail(m.messages[i].Email, email) {
			v := m.messages[i]
			return &v, nil
		}
	}
	return nil, nil
}

func (m *Memory) GetDonationPledgeByEmail(_ context.Context, email string) (*domain.DonationPledge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(actor.MethodGetDonationPledgeByEmail); err != nil {
		return nil, err
	}
	for i := len(m.pledges) - 1; i >= 0; i-- {
		if sameEmail(m.pledges[i].Email, email) {
			v := m.pledges[i]
			return &v, nil
		}
	}
	return nil, nil
}

func (m *Memory) GetCallerUserProfile(ctx context.Context) (*domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(actor.MethodGetCallerUserProfile); err != nil {
		return nil, err
	}
	p, ok := m.profiles[actor.CallerFrom(ctx)]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *Memory) GetUserProfile(ctx context.Context, user domain.Principal) (*domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(actor.MethodGetUserProfile); err != nil {
		return nil, err
	}
	caller := actor.CallerFrom(ctx)
	if caller != user && m.roles[caller] != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: can only view your own profile", actor.ErrUnauthorized)
	}
	p, ok := m.profiles[user]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *Memory) SaveCallerUserProfile(ctx context.Context, profile domain.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(actor.MethodSaveCallerUserProfile); err != nil {
		return err
	}
	caller := actor.CallerFrom(ctx)
	if caller == actor.AnonymousPrincipal {
		return fmt.Errorf("%w: anonymous callers cannot save profiles", actor.ErrUnauthorized)
	}
	m.profiles[caller] = profile
	return nil
}

func (m *Memory) GetCallerUserRole(ctx context.Context) (domain.UserRole, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(actor.MethodGetCallerUserRole); err != nil {
		return "", err
	}
	return m.roleOf(actor.CallerFrom(ctx)), nil
}

func (m *Memory) AssignCallerUserRole(ctx context.Context, user domain.Principal, role domain.UserRole) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(actor.MethodAssignCallerUserRole); err != nil {
		return err
	}
	if m.roleOf(actor.CallerFrom(ctx)) != domain.RoleAdmin {
		return fmt.Errorf("%w: only admins can assign roles", actor.ErrUnauthorized)
	}
	m.roles[user] = role
	return nil
}

func (m *Memory) IsCallerAdmin(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(actor.MethodIsCallerAdmin); err != nil {
		return false, err
	}
	return m.roleOf(actor.CallerFrom(ctx)) == domain.RoleAdmin, nil
}

func (m *Memory) roleOf(p domain.Principal) domain.UserRole {
	if role, ok := m.roles[p]; ok {
		return role
	}
	if p == actor.AnonymousPrincipal {
		return domain.RoleGuest
	}
	return domain.RoleUser
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
