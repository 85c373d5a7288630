package project

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dataminder/dataminder/internal/kv"
	"github.com/google/uuid"
)

// Store is the single source of truth for all projects. Every mutation
// persists the full collection before returning; persistence failures are
// logged and swallowed so a storage outage never loses the in-memory session.
type Store struct {
	kv     kv.Store
	logger *slog.Logger

	mu       sync.Mutex
	projects []Project
}

// NewStore creates a project store backed by the given substrate.
func NewStore(store kv.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{kv: store, logger: logger}
}

// Init rehydrates the collection from the substrate. A missing or unreadable
// value starts the store empty.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var projects []Project
	found, err := s.kv.Load(ctx, ProjectsKey, &projects)
	if err != nil {
		s.logger.Warn("could not load projects, starting empty", "error", err)
		s.projects = nil
		return nil
	}
	if !found {
		s.projects = nil
		return nil
	}
	s.projects = projects
	return nil
}

// persist writes the full collection. Callers must hold the lock.
func (s *Store) persist(ctx context.Context) {
	if err := s.kv.Save(ctx, ProjectsKey, s.projects); err != nil {
		s.logger.Warn("projects not persisted", "error", err)
	}
}

// AddProject inserts a new project at the head of the collection with an
// empty notebook list and all-false progress. An empty id is generated.
func (s *Store) AddProject(ctx context.Context, id, name string) (*Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) >= 0 {
		return nil, ErrDuplicateID
	}

	proj := Project{
		ID:        id,
		Name:      name,
		UpdatedAt: time.Now().UTC(),
	}
	s.projects = append([]Project{proj}, s.projects...)
	s.persist(ctx)

	return cloneProject(&proj), nil
}

// DeleteProject removes the project and all its notebooks. Deletion is
// idempotent; an unknown id is a no-op.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.projects = append(s.projects[:i], s.projects[i+1:]...)
	s.persist(ctx)
	return nil
}

// AddNotebook prepends a notebook to the project's list and selects it as
// the current notebook. An empty id is generated.
func (s *Store) AddNotebook(ctx context.Context, projectID, id, name string) (*Notebook, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	proj := s.find(projectID)
	if proj == nil {
		return nil, ErrProjectNotFound
	}
	for _, nb := range proj.Notebooks {
		if nb.ID == id {
			return nil, ErrDuplicateID
		}
	}

	nb := Notebook{
		ID:        id,
		Name:      name,
		UpdatedAt: time.Now().UTC(),
	}
	proj.Notebooks = append([]Notebook{nb}, proj.Notebooks...)
	proj.CurrentNotebookID = nb.ID
	proj.UpdatedAt = time.Now().UTC()
	s.persist(ctx)

	clone := nb
	return &clone, nil
}

// DeleteNotebook removes the notebook from the project's list. Unknown
// project or notebook ids are a no-op.
func (s *Store) DeleteNotebook(ctx context.Context, projectID, notebookID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	proj := s.find(projectID)
	if proj == nil {
		return nil
	}
	for i, nb := range proj.Notebooks {
		if nb.ID == notebookID {
			proj.Notebooks = append(proj.Notebooks[:i], proj.Notebooks[i+1:]...)
			if proj.CurrentNotebookID == notebookID {
				proj.CurrentNotebookID = ""
			}
			proj.UpdatedAt = time.Now().UTC()
			s.persist(ctx)
			return nil
		}
	}
	return nil
}

// UpdateProject merges the given fields into the project.
func (s *Store) UpdateProject(ctx context.Context, id string, update ProjectUpdate) (*Project, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	proj := s.find(id)
	if proj == nil {
		return nil, ErrProjectNotFound
	}
	if update.Name != nil {
		proj.Name = *update.Name
	}
	if update.DataDescription != nil {
		desc := *update.DataDescription
		proj.DataDescription = &desc
	}
	proj.UpdatedAt = time.Now().UTC()
	s.persist(ctx)

	return cloneProject(proj), nil
}

// UpdateNotebook renames a notebook and refreshes its timestamp.
func (s *Store) UpdateNotebook(ctx context.Context, projectID, notebookID, name string) (*Notebook, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	proj := s.find(projectID)
	if proj == nil {
		return nil, ErrProjectNotFound
	}
	for i := range proj.Notebooks {
		if proj.Notebooks[i].ID == notebookID {
			proj.Notebooks[i].Name = name
			proj.Notebooks[i].UpdatedAt = time.Now().UTC()
			proj.UpdatedAt = time.Now().UTC()
			s.persist(ctx)
			clone := proj.Notebooks[i]
			return &clone, nil
		}
	}
	return nil, ErrNotebookNotFound
}

// SetCurrentNotebook updates the active-notebook reference. The notebook
// must belong to the project.
func (s *Store) SetCurrentNotebook(ctx context.Context, projectID, notebookID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	proj := s.find(projectID)
	if proj == nil {
		return ErrProjectNotFound
	}
	for _, nb := range proj.Notebooks {
		if nb.ID == notebookID {
			proj.CurrentNotebookID = notebookID
			proj.UpdatedAt = time.Now().UTC()
			s.persist(ctx)
			return nil
		}
	}
	return ErrNotebookNotFound
}

// UpdateProgress merges the given fields into the project's progress record
// and refreshes the project timestamp.
func (s *Store) UpdateProgress(ctx context.Context, projectID string, update ProgressUpdate) (*Project, error) {
	if update.HypothesesCount != nil && *update.HypothesesCount < 0 {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	proj := s.find(projectID)
	if proj == nil {
		return nil, ErrProjectNotFound
	}
	update.apply(&proj.Progress)
	proj.UpdatedAt = time.Now().UTC()
	s.persist(ctx)

	return cloneProject(proj), nil
}

// ProgressPercent returns the derived completion percentage for the project,
// or 0 when the project doesn't exist.
func (s *Store) ProgressPercent(_ context.Context, projectID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	proj := s.find(projectID)
	if proj == nil {
		return 0
	}
	return proj.Progress.Percent()
}

// Get returns a copy of the project.
func (s *Store) Get(_ context.Context, id string) (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	proj := s.find(id)
	if proj == nil {
		return nil, ErrProjectNotFound
	}
	return cloneProject(proj), nil
}

// Projects returns a copy of the full collection, most recently created first.
func (s *Store) Projects(_ context.Context) []Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Project, 0, len(s.projects))
	for i := range s.projects {
		out = append(out, *cloneProject(&s.projects[i]))
	}
	return out
}

func (s *Store) find(id string) *Project {
	if i := s.indexOf(id); i >= 0 {
		return &s.projects[i]
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneProject(proj *Project) *Project {
	clone := *proj
	clone.Notebooks = append([]Notebook(nil), proj.Notebooks...)
	clone.Progress.UploadedDatasets = append([]string(nil), proj.Progress.UploadedDatasets...)
	if proj.DataDescription != nil {
		desc := *proj.DataDescription
		clone.DataDescription = &desc
	}
	return &clone
}
