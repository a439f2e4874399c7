package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/martijn/trainhub/internal/core/domain"
	"github.com/martijn/trainhub/internal/core/repository"
)

type extrasRepository struct {
	db *DB
}

func NewExtrasRepository(db *DB) repository.ExtrasRepository {
	return &extrasRepository{db: db}
}

func (r *extrasRepository) ClientExtras(id int64) domain.ClientExtras {
	var extras domain.ClientExtras
	query := `SELECT numero_tva, raison_sociale FROM client_extras WHERE client_id = ?`
	if err := r.db.Get(&extras, query, id); err != nil {
		return domain.ClientExtras{}
	}
	return extras
}

func (r *extrasRepository) FormateurExtras(id int64) domain.FormateurExtras {
	var extras domain.FormateurExtras
	query := `SELECT is_external, societe_nom, numero_tva FROM formateur_extras WHERE formateur_id = ?`
	if err := r.db.Get(&extras, query, id); err != nil {
		return domain.FormateurExtras{}
	}
	return extras
}

func (r *extrasRepository) SetClientExtras(ctx context.Context, id int64, extras domain.ClientExtras) error {
	query := `
		INSERT INTO client_extras (client_id, numero_tva, raison_sociale, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(client_id) DO UPDATE SET
			numero_tva = excluded.numero_tva,
			raison_sociale = excluded.raison_sociale,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, id, extras.NumeroTVA, extras.RaisonSociale, time.Now()); err != nil {
		return fmt.Errorf("failed to store client extras: %w", err)
	}
	return nil
}

func (r *extrasRepository) SetFormateurExtras(ctx context.Context, id int64, extras domain.FormateurExtras) error {
	query := `
		INSERT INTO formateur_extras (formateur_id, is_external, societe_nom, numero_tva, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(formateur_id) DO UPDATE SET
			is_external = excluded.is_external,
			societe_nom = excluded.societe_nom,
			numero_tva = excluded.numero_tva,
			updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query, id, extras.IsExternal, extras.SocieteNom, extras.NumeroTVA, time.Now())
	if err != nil {
		return fmt.Errorf("failed to store formateur extras: %w", err)
	}
	return nil
}

func (r *extrasRepository) DeleteClientExtras(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM client_extras WHERE client_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete client extras: %w", err)
	}
	return nil
}

func (r *extrasRepository) DeleteFormateurExtras(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM formateur_extras WHERE formateur_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete formateur extras: %w", err)
	}
	return nil
}
