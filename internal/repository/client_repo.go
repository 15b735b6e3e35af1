package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"psy-match/internal/domain"
)

// ClientRepository define la lectura del perfil de preferencias de un cliente.
type ClientRepository interface {
	GetByUserID(ctx context.Context, userID string) (domain.Client, error)
}

// PgClientRepository implementa ClientRepository usando pgxpool.
type PgClientRepository struct {
	pool *pgxpool.Pool
}

func NewPgClientRepository(pool *pgxpool.Pool) *PgClientRepository {
	return &PgClientRepository{pool: pool}
}

// GetByUserID devuelve pgx.ErrNoRows si el usuario no tiene perfil de cliente.
func (r *PgClientRepository) GetByUserID(ctx context.Context, userID string) (domain.Client, error) {
	const query = `
		SELECT c.id::text, c.user_id::text, u.first_name, u.last_name,
		       c.budget::float8, c.prefer_online, c.prefer_offline,
		       c.preferred_gender, c.preferred_language, c.issues, c.created_at
		FROM clients c
		JOIN users u ON u.id = c.user_id
		WHERE c.user_id = $1
	`
	var (
		c      domain.Client
		issues string
	)
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&c.ID,
		&c.UserID,
		&c.FirstName,
		&c.LastName,
		&c.Budget,
		&c.PreferOnline,
		&c.PreferOffline,
		&c.PreferredGender,
		&c.PreferredLanguage,
		&issues,
		&c.CreatedAt,
	)
	if err != nil {
		return domain.Client{}, err
	}
	c.Issues = domain.SplitIssues(issues)
	return c, nil
}
