package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/martijn/trainhub/internal/api/util"
	"github.com/martijn/trainhub/internal/core/repository"
	"github.com/martijn/trainhub/internal/logging"
)

// sessionParents maps a parent resource to its foreign key on sessions.
var sessionParents = map[string]string{
	ResourceClients:    "client_id",
	ResourceEcoles:     "ecole_id",
	ResourceFormateurs: "formateur_id",
}

// CatalogService implements the sandbox backend over record repositories.
type CatalogService struct {
	schemas map[string]*Schema
	repos   map[string]repository.RecordRepository
	tokens  *TokenService
	logger  *slog.Logger

	// serializes writes that check cross-record constraints
	writeMu sync.Mutex
}

func NewCatalogService(
	repos map[string]repository.RecordRepository,
	tokens *TokenService,
	logger *slog.Logger,
) *CatalogService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &CatalogService{
		schemas: Schemas(),
		repos:   repos,
		tokens:  tokens,
		logger:  logger,
	}
}

func (s *CatalogService) lookup(resource string) (*Schema, repository.RecordRepository, error) {
	schema, ok := s.schemas[resource]
	repo, hasRepo := s.repos[resource]
	if !ok || !hasRepo {
		return nil, nil, NewServiceError(http.StatusNotFound, fmt.Sprintf("unknown resource %q", resource))
	}
	return schema, repo, nil
}

// ParseListFilter builds a record filter from the query and order
// parameters, restricted to the resource's fields.
func (s *CatalogService) ParseListFilter(resource, query, order string) (repository.RecordFilter, error) {
	schema, _, err := s.lookup(resource)
	if err != nil {
		return repository.RecordFilter{}, err
	}

	filters, err := util.ParseQueryString(query)
	if err != nil {
		return repository.RecordFilter{}, NewServiceError(http.StatusBadRequest, err.Error())
	}
	orders, err := util.ParseOrderString(order)
	if err != nil {
		return repository.RecordFilter{}, NewServiceError(http.StatusBadRequest, err.Error())
	}
	if err := util.ValidateFields(filters, orders, schema.FieldNames()); err != nil {
		return repository.RecordFilter{}, NewServiceError(http.StatusBadRequest, err.Error())
	}

	return repository.RecordFilter{ListFilter: util.ListFilter{Filters: filters, Order: orders}}, nil
}

func (s *CatalogService) List(ctx context.Context, resource string, filter repository.RecordFilter) ([]repository.Record, error) {
	_, repo, err := s.lookup(resource)
	if err != nil {
		return nil, err
	}
	records, err := repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", resource, err)
	}
	for _, rec := range records {
		redact(rec)
	}
	return records, nil
}

func (s *CatalogService) Get(ctx context.Context, resource string, id int64) (repository.Record, error) {
	_, repo, err := s.lookup(resource)
	if err != nil {
		return nil, err
	}
	rec, err := s.find(ctx, resource, repo, id)
	if err != nil {
		return nil, err
	}
	return redact(rec), nil
}

func (s *CatalogService) find(ctx context.Context, resource string, repo repository.RecordRepository, id int64) (repository.Record, error) {
	rec, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound(resource, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %d: %w", resource, id, err)
	}
	return rec, nil
}

// Create validates body and stores a new record.
func (s *CatalogService) Create(ctx context.Context, resource string, body repository.Record) (repository.Record, error) {
	schema, repo, err := s.lookup(resource)
	if err != nil {
		return nil, err
	}

	clean, problems := schema.validate(body, true)
	if problems != nil {
		return nil, invalid("validation failed", problems)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.checkConstraints(ctx, schema, 0, clean); err != nil {
		return nil, err
	}
	if err := s.hashPassword(clean); err != nil {
		return nil, err
	}

	rec, err := repo.Insert(ctx, clean)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", resource, err)
	}
	logging.FromContext(ctx, s.logger).Info("record created", "resource", resource, "id", rec["id"])
	return redact(rec), nil
}

// Update applies a sparse update: absent keys are untouched and null keys
// are cleared.
func (s *CatalogService) Update(ctx context.Context, resource string, id int64, body repository.Record) (repository.Record, error) {
	schema, repo, err := s.lookup(resource)
	if err != nil {
		return nil, err
	}

	clean, problems := schema.validate(body, false)
	if problems != nil {
		return nil, invalid("validation failed", problems)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current, err := s.find(ctx, resource, repo, id)
	if err != nil {
		return nil, err
	}

	merged := make(repository.Record, len(current)+len(clean))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range clean {
		if v == nil {
			delete(merged, k)
		} else {
			merged[k] = v
		}
	}
	if err := s.checkConstraints(ctx, schema, id, merged); err != nil {
		return nil, err
	}
	if err := s.hashPassword(clean); err != nil {
		return nil, err
	}

	rec, err := repo.Patch(ctx, id, clean)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s %d: %w", resource, id, err)
	}
	logging.FromContext(ctx, s.logger).Info("record updated", "resource", resource, "id", id, "fields", keys(clean))
	return redact(rec), nil
}

func (s *CatalogService) Delete(ctx context.Context, resource string, id int64) error {
	_, repo, err := s.lookup(resource)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(resource, id)
		}
		return fmt.Errorf("failed to delete %s %d: %w", resource, id, err)
	}

	// Sessions keep existing but lose the reference
	if key, ok := sessionParents[resource]; ok {
		if err := s.detachSessions(ctx, key, id); err != nil {
			return err
		}
	}
	logging.FromContext(ctx, s.logger).Info("record deleted", "resource", resource, "id", id)
	return nil
}

// SessionsFor lists the sessions whose foreign key points at the parent.
func (s *CatalogService) SessionsFor(ctx context.Context, parent string, id int64) ([]repository.Record, error) {
	key, ok := sessionParents[parent]
	if !ok {
		return nil, NewServiceError(http.StatusNotFound, fmt.Sprintf("%s have no sessions", parent))
	}
	if _, err := s.Get(ctx, parent, id); err != nil {
		return nil, err
	}
	return s.List(ctx, ResourceSessions, sessionsWith(key, id))
}

func sessionsWith(key string, id int64) repository.RecordFilter {
	return repository.RecordFilter{ListFilter: util.ListFilter{Filters: []util.QueryFilter{
		{Field: key, Operator: util.OpEq, Value: fmt.Sprint(id)},
	}}}
}

func (s *CatalogService) detachSessions(ctx context.Context, key string, id int64) error {
	sessions, ok := s.repos[ResourceSessions]
	if !ok {
		return nil
	}
	linked, err := sessions.List(ctx, sessionsWith(key, id))
	if err != nil {
		return fmt.Errorf("failed to list linked sessions: %w", err)
	}
	for _, rec := range linked {
		sid, _ := rec["id"].(int64)
		if _, err := sessions.Patch(ctx, sid, repository.Record{key: nil}); err != nil {
			return fmt.Errorf("failed to detach session %d: %w", sid, err)
		}
	}
	return nil
}

// checkConstraints validates rec as it would be stored under id (0 for a
// new record): references must exist, date ranges must be ordered and
// emails unique among users.
func (s *CatalogService) checkConstraints(ctx context.Context, schema *Schema, id int64, rec repository.Record) error {
	problems := map[string]string{}

	for _, f := range schema.Fields {
		if f.Ref == "" {
			continue
		}
		target, ok := rec[f.Name].(int64)
		if !ok {
			continue
		}
		repo, ok := s.repos[f.Ref]
		if !ok {
			continue
		}
		if _, err := repo.FindByID(ctx, target); err != nil {
			problems[f.Name] = fmt.Sprintf("references unknown %s %d", f.Ref, target)
		}
	}

	if debut, ok := rec["date_debut"].(string); ok {
		if fin, ok := rec["date_fin"].(string); ok && fin < debut {
			problems["date_fin"] = "must not be before date_debut"
		}
	}

	if schema.Name == ResourceUsers {
		if email, ok := rec["email"].(string); ok {
			existing, err := s.findUserByEmail(ctx, email)
			if err != nil {
				return err
			}
			if existing != nil && existing["id"] != id {
				problems["email"] = "is already registered"
			}
		}
	}

	if len(problems) > 0 {
		return invalid("validation failed", problems)
	}
	return nil
}

func (s *CatalogService) findUserByEmail(ctx context.Context, email string) (repository.Record, error) {
	users, ok := s.repos[ResourceUsers]
	if !ok {
		return nil, nil
	}
	all, err := users.List(ctx, repository.RecordFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for _, u := range all {
		if e, _ := u["email"].(string); strings.EqualFold(e, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (s *CatalogService) hashPassword(rec repository.Record) error {
	pw, ok := rec["password"].(string)
	if !ok {
		return nil
	}
	hash, err := s.tokens.HashPassword(pw)
	if err != nil {
		return err
	}
	delete(rec, "password")
	rec["password_hash"] = hash
	return nil
}

// Register creates a user account and signs a token for it.
func (s *CatalogService) Register(ctx context.Context, email, password string, extra repository.Record) (string, repository.Record, error) {
	body := repository.Record{"email": email, "password": password}
	for k, v := range extra {
		if k != "role" {
			body[k] = v
		}
	}
	user, err := s.Create(ctx, ResourceUsers, body)
	if err != nil {
		return "", nil, err
	}
	token, err := s.issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login checks the credentials and signs a token.
func (s *CatalogService) Login(ctx context.Context, email, password string) (string, repository.Record, error) {
	user, err := s.findUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", nil, err
	}
	hash, _ := user["password_hash"].(string)
	if user == nil || !s.tokens.VerifyPassword(password, hash) {
		return "", nil, NewServiceError(http.StatusUnauthorized, "invalid credentials")
	}
	token, err := s.issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, redact(user), nil
}

func (s *CatalogService) issue(user repository.Record) (string, error) {
	id, _ := user["id"].(int64)
	email, _ := user["email"].(string)
	role, _ := user["role"].(string)
	return s.tokens.Issue(id, email, role)
}

// redact drops write-only values before a record leaves the service.
func redact(rec repository.Record) repository.Record {
	delete(rec, "password_hash")
	return rec
}

func keys(rec repository.Record) []string {
	out := make([]string, 0, len(rec))
	for k := range rec {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
