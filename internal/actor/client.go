package actor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"github.com/samarpantrust/outreach/internal/config"
	"github.com/samarpantrust/outreach/internal/domain"
)

// Client calls the remote actor over its JSON wire protocol. Each call is a
// single attempt: failures are returned to the caller as they happen.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Actor = (*Client)(nil)

// NewClient creates a new actor client. When a signing key is configured,
// every request carries a bearer token naming the site's principal.
func NewClient(cfg config.ActorConfig) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout()}
	if cfg.SigningKey != "" {
		src := NewTokenSource(domain.Principal(cfg.Principal), []byte(cfg.SigningKey), cfg.TokenTTL())
		httpClient.Transport = &oauth2.Transport{
			Source: oauth2.ReuseTokenSource(nil, src),
			Base:   http.DefaultTransport,
		}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// Ping checks that the actor answers its status endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status", nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("actor status check returned %d", resp.StatusCode)
	}
	return nil
}

// call invokes method with args and decodes the "ok" payload into result
// when result is non-nil.
func (c *Client) call(ctx context.Context, method string, result any, args ...any) error {
	rawArgs := make([]json.RawMessage, 0, len(args))
	for _, a := range args {
		b, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("encoding %s args: %w", method, err)
		}
		rawArgs = append(rawArgs, b)
	}
	body, err := json.Marshal(rpcRequest{Args: rawArgs})
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rpc/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("reading %s response: %w", method, err)
	}

	var envelope rpcResponse
	decodeErr := json.Unmarshal(data, &envelope)

	if resp.StatusCode != http.StatusOK {
		msg := envelope.Err
		if decodeErr != nil || msg == "" {
			msg = strings.TrimSpace(string(data))
		}
		return &RemoteError{Method: method, Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return fmt.Errorf("decoding %s response: %w", method, decodeErr)
	}
	if envelope.Err != "" {
		return &RemoteError{Method: method, Status: resp.StatusCode, Message: envelope.Err}
	}

	if result == nil || len(envelope.Ok) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Ok, result); err != nil {
		return fmt.Errorf("decoding %s result: %w", method, err)
	}
	return nil
}

func (c *Client) SubmitVolunteerInterest(ctx context.Context, interest domain.VolunteerInterest) error {
	return c.call(ctx, MethodSubmitVolunteerInterest, nil, interest)
}

func (c *Client) SubmitContactMessage(ctx context.Context, message domain.ContactMessage) error {
	return c.call(ctx, MethodSubmitContactMessage, nil, message)
}

func (c *Client) SubmitDonationPledge(ctx context.Context, pledge domain.DonationPledge) error {
	return c.call(ctx, MethodSubmitDonationPledge, nil, pledge)
}

func (c *Client) ListVolunteerInterests(ctx context.Context) ([]domain.VolunteerInterest, error) {
	var out []domain.VolunteerInterest
	if err := c.call(ctx, MethodListVolunteerInterests, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.VolunteerInterest{}
	}
	return out, nil
}

func (c *Client) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	var out []domain.ContactMessage
	if err := c.call(ctx, MethodListContactMessages, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.ContactMessage{}
	}
	return out, nil
}

func (c *Client) ListDonationPledges(ctx context.Context) ([]domain.DonationPledge, error) {
	var out []domain.DonationPledge
	if err := c.call(ctx, MethodListDonationPledges, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.DonationPledge{}
	}
	return out, nil
}

func (c *Client) GetVolunteerInterestByEmail(ctx context.Context, email string) (*domain.VolunteerInterest, error) {
	var out *domain.VolunteerInterest
	if err := c.call(ctx, MethodGetVolunteerInterestByEmail, &out, email); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetContactMessageByEmail(ctx context.Context, email string) (*domain.ContactMessage, error) {
	var out *domain.ContactMessage
	if err := c.call(ctx, MethodGetContactMessageByEmail, &out, email); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDonationPledgeByEmail(ctx context.Context, email string) (*domain.DonationPledge, error) {
	var out *domain.DonationPledge
	if err := c.call(ctx, MethodGetDonationPledgeByEmail, &out, email); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCallerUserProfile(ctx context.Context) (*domain.UserProfile, error) {
	var out *domain.UserProfile
	if err := c.call(ctx, MethodGetCallerUserProfile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetUserProfile(ctx context.Context, user domain.Principal) (*domain.UserProfile, error) {
	var out *domain.UserProfile
	if err := c.call(ctx, MethodGetUserProfile, &out, user); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SaveCallerUserProfile(ctx context.Context, profile domain.UserProfile) error {
	return c.call(ctx, MethodSaveCallerUserProfile, nil, profile)
}

func (c *Client) GetCallerUserRole(ctx context.Context) (domain.UserRole, error) {
	var out domain.UserRole
	if err := c.call(ctx, MethodGetCallerUserRole, &out); err != nil {
		return "", err
	}
	return out, nil
}

func (c *Client) AssignCallerUserRole(ctx context.Context, user domain.Principal, role domain.UserRole) error {
	return c.call(ctx, MethodAssignCallerUserRole, nil, user, role)
}

func (c *Client) IsCallerAdmin(ctx context.Context) (bool, error) {
	var out bool
	if err := c.call(ctx, MethodIsCallerAdmin, &out); err != nil {
		return false, err
	}
	return out, nil
}
