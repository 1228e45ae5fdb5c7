package handlers

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sagarp07/college-portal/backend/internal/models"
	"github.com/sagarp07/college-portal/backend/internal/repositories"
	"github.com/sagarp07/college-portal/backend/internal/storage"
)

// fakeResolver hands back deterministic URLs, preserving the upload's
// extension so the resulting URL passes the same checks a real
// resolver's URL would.
type fakeResolver struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (f *fakeResolver) Resolve(_ context.Context, fh *multipart.FileHeader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", storage.ErrUnsupportedType
	}
	f.calls++
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	return fmt.Sprintf("https://media.test/%d%s", f.calls, ext), nil
}

type fakeActivityRepo struct {
	mu      sync.Mutex
	records map[string]*models.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{records: make(map[string]*models.Activity)}
}

func (r *fakeActivityRepo) Create(_ context.Context, activity *models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	activity.ID = primitive.NewObjectID()
	copied := *activity
	r.records[activity.ID.Hex()] = &copied
	return nil
}

func (r *fakeActivityRepo) GetByID(_ context.Context, id string) (*models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *rec
	return &copied, nil
}

func (r *fakeActivityRepo) GetAll(_ context.Context, skip, limit int64) ([]models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Activity, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, *rec)
	}
	return out, nil
}

func (r *fakeActivityRepo) Update(_ context.Context, id string, activity *models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return repositories.ErrNotFound
	}
	copied := *activity
	r.records[id] = &copied
	return nil
}

func (r *fakeActivityRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

// fakeFarewellRepo enforces date uniqueness under its lock, mirroring
// the unique index a real collection carries. That keeps the
// concurrent-create test honest: the guarantee lives in the store.
type fakeFarewellRepo struct {
	mu      sync.Mutex
	records map[string]*models.Farewell
}

func newFakeFarewellRepo() *fakeFarewellRepo {
	return &fakeFarewellRepo{records: make(map[string]*models.Farewell)}
}

func (r *fakeFarewellRepo) Create(_ context.Context, farewell *models.Farewell) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.Date.Equal(farewell.Date) {
			return repositories.ErrDuplicateDate
		}
	}
	farewell.ID = primitive.NewObjectID()
	copied := *farewell
	r.records[farewell.ID.Hex()] = &copied
	return nil
}

func (r *fakeFarewellRepo) GetByID(_ context.Context, id string) (*models.Farewell, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *rec
	return &copied, nil
}

func (r *fakeFarewellRepo) GetAll(_ context.Context, skip, limit int64) ([]models.Farewell, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Farewell, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, *rec)
	}
	return out, nil
}

func (r *fakeFarewellRepo) Update(_ context.Context, id string, farewell *models.Farewell) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return repositories.ErrNotFound
	}
	for otherID, existing := range r.records {
		if otherID != id && existing.Date.Equal(farewell.Date) {
			return repositories.ErrDuplicateDate
		}
	}
	copied := *farewell
	r.records[id] = &copied
	return nil
}

func (r *fakeFarewellRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

type fakeAlumniRepo struct {
	mu      sync.Mutex
	records map[string]*models.Alumni
	fail    bool
}

func newFakeAlumniRepo() *fakeAlumniRepo {
	return &fakeAlumniRepo{records: make(map[string]*models.Alumni)}
}

func (r *fakeAlumniRepo) Create(_ context.Context, alumni *models.Alumni) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("store unreachable")
	}
	alumni.ID = primitive.NewObjectID()
	copied := *alumni
	r.records[alumni.ID.Hex()] = &copied
	return nil
}

func (r *fakeAlumniRepo) GetByID(_ context.Context, id string) (*models.Alumni, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *rec
	return &copied, nil
}

func (r *fakeAlumniRepo) GetAll(_ context.Context, skip, limit int64) ([]models.Alumni, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Alumni, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, *rec)
	}
	return out, nil
}

func (r *fakeAlumniRepo) Update(_ context.Context, id string, alumni *models.Alumni) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return repositories.ErrNotFound
	}
	copied := *alumni
	r.records[id] = &copied
	return nil
}

func (r *fakeAlumniRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.records, id)
	return nil
}
