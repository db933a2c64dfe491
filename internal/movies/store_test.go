package movies_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/JaimeStill/movies-api/internal/movies"
	"github.com/JaimeStill/movies-api/pkg/database"
	"github.com/JaimeStill/movies-api/pkg/lifecycle"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSQLite(t *testing.T) movies.System {
	t.Helper()

	cfg := &database.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("database config: %v", err)
	}

	db, err := database.New(cfg, testLogger())
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}

	lc := lifecycle.New()
	if err := db.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(func() { lc.Shutdown(time.Second) })

	if err := db.Migrate(movies.Migrations, movies.MigrationsDir); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	return movies.New(db.Connection(), testLogger())
}

var stores = []struct {
	name string
	new  func(t *testing.T) movies.System
}{
	{"memory", func(t *testing.T) movies.System { return movies.NewMemory(testLogger()) }},
	{"sqlite", newSQLite},
}

func eachStore(t *testing.T, fn func(t *testing.T, sys movies.System)) {
	for _, s := range stores {
		t.Run(s.name, func(t *testing.T) {
			fn(t, s.new(t))
		})
	}
}

func str(s string) *string { return &s }
func num(n int) *int       { return &n }

func TestStore_Seed(t *testing.T) {
	eachStore(t, func(t *testing.T, sys movies.System) {
		list, err := sys.List(context.Background())
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}

		seed := movies.Seed()
		if len(list) != len(seed) {
			t.Fatalf("List() = %d movies, want %d", len(list), len(seed))
		}
		for i, m := range list {
			if m.ID != i+1 {
				t.Errorf("movie %d id = %d", i, m.ID)
			}
			if *m.Title != *seed[i].Title || *m.Director != *seed[i].Director || *m.Year != *seed[i].Year {
				t.Errorf("movie %d = %+v, want %+v", i, m, seed[i])
			}
		}
	})
}

func TestStore_Find(t *testing.T) {
	eachStore(t, func(t *testing.T, sys movies.System) {
		m, err := sys.Find(context.Background(), 2)
		if err != nil {
			t.Fatalf("Find(2) error = %v", err)
		}
		if *m.Title != "The Matrix" {
			t.Errorf("Find(2).Title = %q", *m.Title)
		}

		for _, id := range []int{0, -1, 99} {
			if _, err := sys.Find(context.Background(), id); !errors.Is(err, movies.ErrNotFound) {
				t.Errorf("Find(%d) error = %v, want ErrNotFound", id, err)
			}
		}
	})
}

func TestStore_CreateNullFields(t *testing.T) {
	eachStore(t, func(t *testing.T, sys movies.System) {
		m, err := sys.Create(context.Background(), movies.Input{Title: str("Tenet")})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		if m.ID != 4 {
			t.Errorf("ID = %d, want 4", m.ID)
		}
		if m.Title == nil || *m.Title != "Tenet" {
			t.Errorf("Title = %v", m.Title)
		}
		if m.Director != nil || m.Year != nil {
			t.Errorf("absent fields = %v, %v, want nil", m.Director, m.Year)
		}

		list, _ := sys.List(context.Background())
		if len(list) != 4 || list[3].ID != 4 {
			t.Errorf("created movie not appended: %+v", list)
		}
	})
}

func TestStore_IDsNeverReused(t *testing.T) {
	eachStore(t, func(t *testing.T, sys movies.System) {
		ctx := context.Background()

		if _, err := sys.Delete(ctx, 3); err != nil {
			t.Fatalf("Delete(3) error = %v", err)
		}

		m, err := sys.Create(ctx, movies.Input{Title: str("Dunkirk")})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if m.ID != 4 {
			t.Errorf("ID after deleting the last movie = %d, want 4", m.ID)
		}
	})
}

func TestStore_Update(t *testing.T) {
	eachStore(t, func(t *testing.T, sys movies.System) {
		ctx := context.Background()

		m, err := sys.Update(ctx, 1, movies.Input{Title: str("Inception (IMAX)"), Year: num(2010)})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if m.ID != 1 || *m.Title != "Inception (IMAX)" || *m.Year != 2010 {
			t.Errorf("Update() = %+v", m)
		}
		if m.Director != nil {
			t.Errorf("Director = %q, want null after overwrite", *m.Director)
		}

		found, _ := sys.Find(ctx, 1)
		if found.Director != nil || *found.Title != "Inception (IMAX)" {
			t.Errorf("stored = %+v", found)
		}

		if _, err := sys.Update(ctx, 42, movies.Input{}); !errors.Is(err, movies.ErrNotFound) {
			t.Errorf("Update(42) error = %v, want ErrNotFound", err)
		}
	})
}

func TestStore_Delete(t *testing.T) {
	eachStore(t, func(t *testing.T, sys movies.System) {
		ctx := context.Background()

		removed, err := sys.Delete(ctx, 2)
		if err != nil {
			t.Fatalf("Delete(2) error = %v", err)
		}
		if removed.ID != 2 || *removed.Title != "The Matrix" {
			t.Errorf("removed = %+v", removed)
		}

		list, _ := sys.List(ctx)
		if len(list) != 2 || list[0].ID != 1 || list[1].ID != 3 {
			t.Errorf("remaining = %+v, want ids [1 3]", list)
		}

		if _, err := sys.Delete(ctx, 2); !errors.Is(err, movies.ErrNotFound) {
			t.Errorf("second Delete(2) error = %v, want ErrNotFound", err)
		}
	})
}

func TestStore_ConcurrentCreates(t *testing.T) {
	eachStore(t, func(t *testing.T, sys movies.System) {
		ctx := context.Background()
		const n = 20

		var wg sync.WaitGroup
		ids := make(chan int, n)
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				m, err := sys.Create(ctx, movies.Input{Title: str("Parallel")})
				if err != nil {
					t.Errorf("Create() error = %v", err)
					return
				}
				ids <- m.ID
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[int]bool)
		for id := range ids {
			if seen[id] {
				t.Errorf("id %d assigned twice", id)
			}
			seen[id] = true
		}

		list, _ := sys.List(ctx)
		if len(list) != 3+n {
			t.Errorf("List() = %d movies, want %d", len(list), 3+n)
		}
	})
}

func TestMemory_ReturnsCopies(t *testing.T) {
	sys := movies.NewMemory(testLogger())
	ctx := context.Background()

	m, _ := sys.Find(ctx, 1)
	*m.Title = "mutated"

	list, _ := sys.List(ctx)
	*list[1].Title = "mutated"

	again, _ := sys.Find(ctx, 1)
	if *again.Title != "Inception" {
		t.Errorf("stored title = %q, want Inception", *again.Title)
	}
	second, _ := sys.Find(ctx, 2)
	if *second.Title != "The Matrix" {
		t.Errorf("stored title = %q, want The Matrix", *second.Title)
	}
}
