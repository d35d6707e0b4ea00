package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"portfolio_api/internal/logger"
	"portfolio_api/internal/model"

	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL = "http://localhost:5000/api"
	DefaultTimeout = 10 * time.Second
)

// Fallback administrator accepted by Login when the API cannot be reached.
// The token it yields is not signed and the API never accepts it.
const (
	FallbackAdminEmail    = "admin@example.com"
	FallbackAdminPassword = "password123"
	FallbackToken         = "mock-token-123"
	FallbackAdminID       = "mock-admin-id"
)

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zerolog.Logger
	Now        func() time.Time
}

// Client is the front end's single way to reach portfolio content.
type Client struct {
	t      *transport
	tokens *TokenStore
	log    zerolog.Logger

	projects   DataAccess[model.Project]
	experience DataAccess[model.ExperienceEntry]
	messages   DataAccess[model.Message]
}

// New builds a Client whose fallback sets start from the built-in data.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	clientLog := logger.Component("client")
	if opts.Logger != nil {
		clientLog = *opts.Logger
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	tokens := &TokenStore{}
	t := &transport{
		http:    httpClient,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		tokens:  tokens,
	}

	return &Client{
		t:      t,
		tokens: tokens,
		log:    clientLog,
		projects: NewFallbackSource[model.Project]("projects",
			&RemoteSource[model.Project]{
				t:          t,
				listPath:   "/projects",
				createPath: "/projects",
				deletePath: "/projects",
				encode:     func(p model.Project) any { return p.WithIdentity("") },
			},
			NewLocalSource(fallbackProjects()),
			clientLog,
		),
		experience: NewFallbackSource[model.ExperienceEntry]("experience",
			&RemoteSource[model.ExperienceEntry]{
				t:          t,
				listPath:   "/experience",
				createPath: "/experience",
				deletePath: "/experience",
				encode:     func(e model.ExperienceEntry) any { return e.WithIdentity("") },
			},
			NewLocalSource(fallbackExperience()),
			clientLog,
		),
		messages: NewFallbackSource[model.Message]("messages",
			&RemoteSource[model.Message]{
				t:          t,
				listPath:   "/messages",
				createPath: "/contact",
				encode:     func(m model.Message) any { return m.Request() },
				echo:       true,
			},
			NewLocalSource(fallbackMessages(now()),
				WithPrepend[model.Message](),
				WithStamp(func(m model.Message) model.Message {
					m.CreatedAt = now()
					return m
				}),
			),
			clientLog,
		),
	}
}

// Login exchanges credentials for a session token and remembers it. When the
// API fails, the fallback administrator still gets a local session.
func (c *Client) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	var resp model.AuthResponse
	err := c.t.do(ctx, http.MethodPost, "/auth/login", model.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		if email == FallbackAdminEmail && password == FallbackAdminPassword {
			c.log.Warn().Err(err).Msg("Backend API unreachable, using fallback login")
			c.tokens.Set(FallbackToken)
			return &model.AuthResponse{
				Token: FallbackToken,
				User:  model.PublicUser{ID: FallbackAdminID, Email: FallbackAdminEmail, Role: model.RoleAdmin},
			}, nil
		}
		return nil, err
	}

	c.tokens.Set(resp.Token)
	return &resp, nil
}

func (c *Client) Logout() {
	c.tokens.Clear()
}

// IsLoggedIn reports whether a token is held. It does not check the token.
func (c *Client) IsLoggedIn() bool {
	return c.tokens.Get() != ""
}

func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	return c.projects.List(ctx)
}

func (c *Client) CreateProject(ctx context.Context, p model.Project) (model.Project, error) {
	return c.projects.Create(ctx, p)
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.projects.Delete(ctx, id)
}

func (c *Client) ListExperience(ctx context.Context) ([]model.ExperienceEntry, error) {
	return c.experience.List(ctx)
}

func (c *Client) CreateExperience(ctx context.Context, e model.ExperienceEntry) (model.ExperienceEntry, error) {
	return c.experience.Create(ctx, e)
}

func (c *Client) DeleteExperience(ctx context.Context, id string) error {
	return c.experience.Delete(ctx, id)
}

// SendMessage submits the contact form. A *model.ValidationError means the
// API rejected the input; any other failure is absorbed by the fallback set.
func (c *Client) SendMessage(ctx context.Context, m model.Message) (model.Message, error) {
	return c.messages.Create(ctx, m)
}

func (c *Client) ListMessages(ctx context.Context) ([]model.Message, error) {
	return c.messages.List(ctx)
}
