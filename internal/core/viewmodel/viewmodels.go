package viewmodel

import (
	"context"
	"log/slog"
	"sync"

	"github.com/martijn/trainhub/internal/adapter/apiclient"
	"github.com/martijn/trainhub/internal/api/dto"
	"github.com/martijn/trainhub/internal/core/domain"
	"github.com/martijn/trainhub/internal/core/filter"
	"github.com/martijn/trainhub/internal/core/mapper"
	"github.com/martijn/trainhub/internal/core/repository"
)

// noExtras is used when no extras store is configured.
type noExtras struct{}

func (noExtras) ClientExtras(int64) domain.ClientExtras       { return domain.ClientExtras{} }
func (noExtras) FormateurExtras(int64) domain.FormateurExtras { return domain.FormateurExtras{} }

func orNoExtras(r repository.ExtrasReader) repository.ExtrasReader {
	if r == nil {
		return noExtras{}
	}
	return r
}

type sessionLister interface {
	SessionsFor(ctx context.Context, id int64) ([]dto.Session, error)
}

// sessionsOf returns the mapped sessions referencing parent id.
func sessionsOf(ctx context.Context, r sessionLister, id int64) ([]domain.Session, error) {
	wires, err := r.SessionsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Session, 0, len(wires))
	for _, w := range wires {
		out = append(out, mapper.SessionToDomain(w))
	}
	return out, nil
}

// searchText is the free-text criterion shared by every view-model.
type searchText struct {
	mu    sync.RWMutex
	query string
}

func (s *searchText) set(q string) {
	s.mu.Lock()
	s.query = q
	s.mu.Unlock()
}

func (s *searchText) get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

type ClientsViewModel struct {
	*Collection[dto.Client, domain.Client, dto.ClientCreate, dto.ClientUpdate]
	parent apiclient.ClientsResource
	search searchText
}

func NewClients(api *apiclient.Client, extras repository.ExtrasReader, logger *slog.Logger) *ClientsViewModel {
	extras = orNoExtras(extras)
	res := api.Clients()
	return &ClientsViewModel{
		Collection: newCollection(
			res.Resource,
			func(w dto.Client) domain.Client { return mapper.ClientToDomain(w, extras.ClientExtras(w.ID)) },
			func(c domain.Client) int64 { return c.ID },
			logger,
		),
		parent: res,
	}
}

func (vm *ClientsViewModel) SetSearch(q string) {
	vm.search.set(q)
	vm.notify()
}

// FilteredItems matches the search on name, city, contact and email.
func (vm *ClientsViewModel) FilteredItems() []domain.Client {
	return filter.Apply(vm.Items(), filter.ContainsFold(vm.search.get(),
		func(c domain.Client) string { return c.Nom },
		func(c domain.Client) string { return c.Ville },
		func(c domain.Client) string { return c.ContactNom },
		func(c domain.Client) string { return c.Email },
	))
}

// Sessions lists the sessions of one client without touching the collection.
func (vm *ClientsViewModel) Sessions(ctx context.Context, id int64) ([]domain.Session, error) {
	return sessionsOf(ctx, vm.parent, id)
}

type EcolesViewModel struct {
	*Collection[dto.Ecole, domain.Ecole, dto.EcoleCreate, dto.EcoleUpdate]
	parent apiclient.EcolesResource
	search searchText
}

func NewEcoles(api *apiclient.Client, logger *slog.Logger) *EcolesViewModel {
	res := api.Ecoles()
	return &EcolesViewModel{
		Collection: newCollection(
			res.Resource,
			mapper.EcoleToDomain,
			func(e domain.Ecole) int64 { return e.ID },
			logger,
		),
		parent: res,
	}
}

func (vm *EcolesViewModel) SetSearch(q string) {
	vm.search.set(q)
	vm.notify()
}

func (vm *EcolesViewModel) FilteredItems() []domain.Ecole {
	return filter.Apply(vm.Items(), filter.ContainsFold(vm.search.get(),
		func(e domain.Ecole) string { return e.Nom },
		func(e domain.Ecole) string { return e.Ville },
	))
}

func (vm *EcolesViewModel) Sessions(ctx context.Context, id int64) ([]domain.Session, error) {
	return sessionsOf(ctx, vm.parent, id)
}

type FormateursViewModel struct {
	*Collection[dto.Formateur, domain.Formateur, dto.FormateurCreate, dto.FormateurUpdate]
	parent apiclient.FormateursResource
	search searchText

	catMu    sync.RWMutex
	category domain.Category
}

func NewFormateurs(api *apiclient.Client, extras repository.ExtrasReader, logger *slog.Logger) *FormateursViewModel {
	extras = orNoExtras(extras)
	res := api.Formateurs()
	return &FormateursViewModel{
		Collection: newCollection(
			res.Resource,
			func(w dto.Formateur) domain.Formateur {
				return mapper.FormateurToDomain(w, extras.FormateurExtras(w.ID))
			},
			func(f domain.Formateur) int64 { return f.ID },
			logger,
		),
		parent: res,
	}
}

func (vm *FormateursViewModel) SetSearch(q string) {
	vm.search.set(q)
	vm.notify()
}

// SetCategory restricts the list to internal or external trainers;
// CategoryAll lifts the restriction.
func (vm *FormateursViewModel) SetCategory(c domain.Category) {
	vm.catMu.Lock()
	vm.category = c
	vm.catMu.Unlock()
	vm.notify()
}

func (vm *FormateursViewModel) FilteredItems() []domain.Formateur {
	vm.catMu.RLock()
	category := vm.category
	vm.catMu.RUnlock()

	preds := []filter.Predicate[domain.Formateur]{
		filter.ContainsFold(vm.search.get(),
			domain.Formateur.FullName,
			func(f domain.Formateur) string { return f.Specialite },
			func(f domain.Formateur) string { return f.Email },
		),
	}
	if category != domain.CategoryAll {
		preds = append(preds, filter.Equal(category, domain.Formateur.Category))
	}
	return filter.Apply(vm.Items(), preds...)
}

func (vm *FormateursViewModel) Sessions(ctx context.Context, id int64) ([]domain.Session, error) {
	return sessionsOf(ctx, vm.parent, id)
}

type SessionsViewModel struct {
	*Collection[dto.Session, domain.Session, dto.SessionCreate, dto.SessionUpdate]
	search searchText

	critMu sync.RWMutex
	month  domain.Month
	status string
}

func NewSessions(api *apiclient.Client, logger *slog.Logger) *SessionsViewModel {
	return &SessionsViewModel{
		Collection: newCollection(
			api.Sessions(),
			mapper.SessionToDomain,
			func(s domain.Session) int64 { return s.ID },
			logger,
		),
	}
}

func (vm *SessionsViewModel) SetSearch(q string) {
	vm.search.set(q)
	vm.notify()
}

// SetMonth keeps sessions starting in m; the zero Month lifts the filter.
func (vm *SessionsViewModel) SetMonth(m domain.Month) {
	vm.critMu.Lock()
	vm.month = m
	vm.critMu.Unlock()
	vm.notify()
}

// SetStatus keeps sessions with the given statut; "" lifts the filter.
func (vm *SessionsViewModel) SetStatus(status string) {
	vm.critMu.Lock()
	vm.status = status
	vm.critMu.Unlock()
	vm.notify()
}

func (vm *SessionsViewModel) FilteredItems() []domain.Session {
	vm.critMu.RLock()
	month, status := vm.month, vm.status
	vm.critMu.RUnlock()

	preds := []filter.Predicate[domain.Session]{
		filter.ContainsFold(vm.search.get(),
			func(s domain.Session) string { return s.Titre },
			func(s domain.Session) string { return s.Lieu },
		),
	}
	if !month.IsZero() {
		preds = append(preds, filter.Equal(month, domain.Session.Month))
	}
	if status != "" {
		preds = append(preds, filter.Equal(status, func(s domain.Session) string { return s.Statut }))
	}
	return filter.Apply(vm.Items(), preds...)
}

type UsersViewModel struct {
	*Collection[dto.User, domain.User, dto.UserCreate, dto.UserUpdate]
	search searchText

	roleMu sync.RWMutex
	role   string
}

func NewUsers(api *apiclient.Client, logger *slog.Logger) *UsersViewModel {
	return &UsersViewModel{
		Collection: newCollection(
			api.Users(),
			mapper.UserToDomain,
			func(u domain.User) int64 { return u.ID },
			logger,
		),
	}
}

func (vm *UsersViewModel) SetSearch(q string) {
	vm.search.set(q)
	vm.notify()
}

// SetRole keeps users with the given role; "" lifts the filter.
func (vm *UsersViewModel) SetRole(role string) {
	vm.roleMu.Lock()
	vm.role = role
	vm.roleMu.Unlock()
	vm.notify()
}

func (vm *UsersViewModel) FilteredItems() []domain.User {
	vm.roleMu.RLock()
	role := vm.role
	vm.roleMu.RUnlock()

	preds := []filter.Predicate[domain.User]{
		filter.ContainsFold(vm.search.get(),
			domain.User.FullName,
			func(u domain.User) string { return u.Email },
		),
	}
	if role != "" {
		preds = append(preds, filter.Equal(role, func(u domain.User) string { return u.Role }))
	}
	return filter.Apply(vm.Items(), preds...)
}
