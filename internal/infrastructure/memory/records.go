package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/martijn/trainhub/internal/core/repository"
)

// Records is an in-process record table. Stored records are never handed
// out; callers always receive copies.
type Records struct {
	mu     sync.RWMutex
	name   string
	nextID int64
	rows   map[int64]repository.Record
	order  []int64
	now    func() time.Time
}

var _ repository.RecordRepository = (*Records)(nil)

func NewRecords(name string) *Records {
	return &Records{
		name:   name,
		nextID: 1,
		rows:   make(map[int64]repository.Record),
		now:    time.Now,
	}
}

func (r *Records) timestamp() string {
	return r.now().UTC().Format(time.RFC3339)
}

func (r *Records) Insert(_ context.Context, rec repository.Record) (repository.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	row := maps.Clone(rec)
	if row == nil {
		row = repository.Record{}
	}
	ts := r.timestamp()
	row["id"] = id
	row["created_at"] = ts
	row["updated_at"] = ts

	r.rows[id] = row
	r.order = append(r.order, id)
	return maps.Clone(row), nil
}

func (r *Records) FindByID(_ context.Context, id int64) (repository.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, fmt.Errorf("%s %d: %w", r.name, id, repository.ErrNotFound)
	}
	return maps.Clone(row), nil
}

func (r *Records) Patch(_ context.Context, id int64, fields repository.Record) (repository.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, fmt.Errorf("%s %d: %w", r.name, id, repository.ErrNotFound)
	}
	for k, v := range fields {
		switch k {
		case "id", "created_at", "updated_at":
			continue
		}
		if v == nil {
			delete(row, k)
			continue
		}
		row[k] = v
	}
	row["updated_at"] = r.timestamp()
	return maps.Clone(row), nil
}

func (r *Records) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return fmt.Errorf("%s %d: %w", r.name, id, repository.ErrNotFound)
	}
	delete(r.rows, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns matching records in insertion order unless the filter
// orders them.
func (r *Records) List(_ context.Context, filter repository.RecordFilter) ([]repository.Record, error) {
	r.mu.RLock()
	out := make([]repository.Record, 0, len(r.order))
	for _, id := range r.order {
		if row := r.rows[id]; filter.Match(row) {
			out = append(out, maps.Clone(row))
		}
	}
	r.mu.RUnlock()

	filter.Sort(out)
	return filter.Paginate(out), nil
}

func (r *Records) Count(_ context.Context, filter repository.RecordFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, row := range r.rows {
		if filter.Match(row) {
			n++
		}
	}
	return n, nil
}
