package movies

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

type memory struct {
	mu     sync.Mutex
	movies []Movie
	nextID int
	logger *slog.Logger
}

// NewMemory creates an in-process store holding the seed records.
// Records returned to callers are copies.
func NewMemory(logger *slog.Logger) System {
	m := &memory{
		nextID: 1,
		logger: logger.With("system", "movies", "store", "memory"),
	}
	for _, in := range Seed() {
		m.movies = append(m.movies, in.movie(m.nextID))
		m.nextID++
	}
	return m
}

func (m *memory) List(ctx context.Context) ([]Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Movie, len(m.movies))
	for i, mv := range m.movies {
		out[i] = mv.clone()
	}
	return out, nil
}

func (m *memory) Find(ctx context.Context, id int) (*Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	mv := m.movies[i].clone()
	return &mv, nil
}

func (m *memory) Create(ctx context.Context, in Input) (*Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mv := in.movie(m.nextID)
	m.nextID++
	m.movies = append(m.movies, mv)

	m.logger.Info("movie created", "id", mv.ID)
	out := mv.clone()
	return &out, nil
}

func (m *memory) Update(ctx context.Context, id int, in Input) (*Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	m.movies[i] = in.movie(id)

	m.logger.Info("movie updated", "id", id)
	out := m.movies[i].clone()
	return &out, nil
}

func (m *memory) Delete(ctx context.Context, id int) (*Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	removed := m.movies[i]
	m.movies = slices.Delete(m.movies, i, i+1)

	m.logger.Info("movie deleted", "id", id)
	return &removed, nil
}

func (m *memory) index(id int) int {
	return slices.IndexFunc(m.movies, func(mv Movie) bool {
		return mv.ID == id
	})
}
