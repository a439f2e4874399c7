package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/martijn/trainhub/internal/api/dto"
)

// Payload is a create or update body serialized sparsely.
type Payload interface {
	Fields() map[string]any
}

// Resource is the CRUD endpoint set of one backend collection.
// W is the wire entity, C the create payload, U the update payload.
type Resource[W any, C, U Payload] struct {
	client *Client
	path   string
}

func newResource[W any, C, U Payload](c *Client, path string) *Resource[W, C, U] {
	return &Resource[W, C, U]{client: c, path: path}
}

func (r *Resource[W, C, U]) Path() string {
	return r.path
}

func (r *Resource[W, C, U]) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}

// List handles GET /{resource}
func (r *Resource[W, C, U]) List(ctx context.Context) ([]W, error) {
	return requestJSON[[]W](ctx, r.client, r.path, http.MethodGet, nil)
}

// Get handles GET /{resource}/{id}
func (r *Resource[W, C, U]) Get(ctx context.Context, id int64) (W, error) {
	return requestJSON[W](ctx, r.client, r.itemPath(id), http.MethodGet, nil)
}

// Create handles POST /{resource}
func (r *Resource[W, C, U]) Create(ctx context.Context, payload C) (W, error) {
	return requestJSON[W](ctx, r.client, r.path, http.MethodPost, payload.Fields())
}

// Update handles PUT /{resource}/{id}; only set fields are sent.
func (r *Resource[W, C, U]) Update(ctx context.Context, id int64, payload U) (W, error) {
	return requestJSON[W](ctx, r.client, r.itemPath(id), http.MethodPut, payload.Fields())
}

// Delete handles DELETE /{resource}/{id}
func (r *Resource[W, C, U]) Delete(ctx context.Context, id int64) error {
	return r.client.RequestNoContent(ctx, r.itemPath(id), http.MethodDelete, nil)
}

// ParentResource is a collection that sessions reference by foreign key.
type ParentResource[W any, C, U Payload] struct {
	*Resource[W, C, U]
}

// SessionsFor handles GET /{resource}/{id}/sessions
func (r ParentResource[W, C, U]) SessionsFor(ctx context.Context, id int64) ([]dto.Session, error) {
	return requestJSON[[]dto.Session](ctx, r.client, r.itemPath(id)+"/sessions", http.MethodGet, nil)
}

type (
	ClientsResource    = ParentResource[dto.Client, dto.ClientCreate, dto.ClientUpdate]
	EcolesResource     = ParentResource[dto.Ecole, dto.EcoleCreate, dto.EcoleUpdate]
	FormateursResource = ParentResource[dto.Formateur, dto.FormateurCreate, dto.FormateurUpdate]
	SessionsResource   = Resource[dto.Session, dto.SessionCreate, dto.SessionUpdate]
	UsersResource      = Resource[dto.User, dto.UserCreate, dto.UserUpdate]
)

func (c *Client) Clients() ClientsResource {
	return ClientsResource{newResource[dto.Client, dto.ClientCreate, dto.ClientUpdate](c, "/clients")}
}

func (c *Client) Ecoles() EcolesResource {
	return EcolesResource{newResource[dto.Ecole, dto.EcoleCreate, dto.EcoleUpdate](c, "/ecoles")}
}

func (c *Client) Formateurs() FormateursResource {
	return FormateursResource{newResource[dto.Formateur, dto.FormateurCreate, dto.FormateurUpdate](c, "/formateurs")}
}

func (c *Client) Sessions() *SessionsResource {
	return newResource[dto.Session, dto.SessionCreate, dto.SessionUpdate](c, "/sessions")
}

func (c *Client) Users() *UsersResource {
	return newResource[dto.User, dto.UserCreate, dto.UserUpdate](c, "/users")
}

// Login handles POST /auth/login
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	return requestJSON[dto.AuthResponse](ctx, c, "/auth/login", http.MethodPost, req)
}

// Register handles POST /auth/register
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	return requestJSON[dto.AuthResponse](ctx, c, "/auth/register", http.MethodPost, req)
}

// Health handles GET /health
func (c *Client) Health(ctx context.Context) (dto.HealthResponse, error) {
	return requestJSON[dto.HealthResponse](ctx, c, "/health", http.MethodGet, nil)
}

// DBHealth handles GET /health/db
func (c *Client) DBHealth(ctx context.Context) (dto.DBHealthResponse, error) {
	return requestJSON[dto.DBHealthResponse](ctx, c, "/health/db", http.MethodGet, nil)
}

// Me handles GET /auth/me
func (c *Client) Me(ctx context.Context) (dto.User, error) {
	return requestJSON[dto.User](ctx, c, "/auth/me", http.MethodGet, nil)
}
