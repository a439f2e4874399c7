package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/martijn/trainhub/internal/core/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCredentialRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCredentialRepository(newTestDB(t))

	if _, ok := repo.Get("auth_token"); ok {
		t.Fatal("expected no token in a fresh store")
	}

	if err := repo.Set(ctx, "auth_token", "first"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Set(ctx, "auth_token", "second"); err != nil {
		t.Fatalf("Set (overwrite): %v", err)
	}

	got, ok := repo.Get("auth_token")
	if !ok || got != "second" {
		t.Errorf("expected overwritten token, got %q (%v)", got, ok)
	}

	if err := repo.Delete(ctx, "auth_token"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := repo.Get("auth_token"); ok {
		t.Error("expected token to be gone after Delete")
	}

	// Deleting a missing key is not an error
	if err := repo.Delete(ctx, "auth_token"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestExtrasRepositoryClient(t *testing.T) {
	ctx := context.Background()
	repo := NewExtrasRepository(newTestDB(t))

	if got := repo.ClientExtras(1); got != (domain.ClientExtras{}) {
		t.Errorf("expected zero extras for unknown client, got %+v", got)
	}

	want := domain.ClientExtras{NumeroTVA: "FR40303265045", RaisonSociale: "Acme SAS"}
	if err := repo.SetClientExtras(ctx, 1, want); err != nil {
		t.Fatalf("SetClientExtras: %v", err)
	}
	if got := repo.ClientExtras(1); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	want.NumeroTVA = ""
	if err := repo.SetClientExtras(ctx, 1, want); err != nil {
		t.Fatalf("SetClientExtras (overwrite): %v", err)
	}
	if got := repo.ClientExtras(1); got != want {
		t.Errorf("after overwrite got %+v, want %+v", got, want)
	}

	if err := repo.DeleteClientExtras(ctx, 1); err != nil {
		t.Fatalf("DeleteClientExtras: %v", err)
	}
	if got := repo.ClientExtras(1); got != (domain.ClientExtras{}) {
		t.Errorf("expected zero extras after delete, got %+v", got)
	}
}

func TestExtrasRepositoryFormateur(t *testing.T) {
	ctx := context.Background()
	repo := NewExtrasRepository(newTestDB(t))

	want := domain.FormateurExtras{IsExternal: true, SocieteNom: "Curie Conseil", NumeroTVA: "FR123"}
	if err := repo.SetFormateurExtras(ctx, 7, want); err != nil {
		t.Fatalf("SetFormateurExtras: %v", err)
	}
	if got := repo.FormateurExtras(7); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got := repo.FormateurExtras(8); got != (domain.FormateurExtras{}) {
		t.Errorf("expected zero extras for another id, got %+v", got)
	}

	if err := repo.DeleteFormateurExtras(ctx, 7); err != nil {
		t.Fatalf("DeleteFormateurExtras: %v", err)
	}
	if got := repo.FormateurExtras(7); got.IsExternal {
		t.Error("expected extras to be removed")
	}
}

func TestNewCreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trainhub.sqlite3")

	db, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	repo := NewCredentialRepository(db)
	if err := repo.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
}
