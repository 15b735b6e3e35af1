package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"psy-match/internal/domain"
)

// SpecialistRepository entrega el pool de candidatos para el ranking.
type SpecialistRepository interface {
	ListActive(ctx context.Context) ([]domain.Specialist, error)
}

type PgSpecialistRepository struct {
	pool *pgxpool.Pool
}

func NewPgSpecialistRepository(pool *pgxpool.Pool) *PgSpecialistRepository {
	return &PgSpecialistRepository{pool: pool}
}

// ListActive devuelve los especialistas activos en orden estable (alta, id);
// de ese orden depende el desempate del ranking.
func (r *PgSpecialistRepository) ListActive(ctx context.Context) ([]domain.Specialist, error) {
	const query = `
		SELECT s.id::text, s.user_id::text, u.first_name, u.last_name, u.email, u.phone,
		       s.education, s.experience, s.specializations, s.price::float8,
		       s.online, s.offline, s.gender, s.language, s.is_active, s.created_at
		FROM specialists s
		JOIN users u ON u.id = s.user_id
		WHERE s.is_active
		ORDER BY s.created_at, s.id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSpecialists(rows)
}

func scanSpecialists(rows pgxRows) ([]domain.Specialist, error) {
	specialists := []domain.Specialist{}
	for rows.Next() {
		var s domain.Specialist
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.FirstName,
			&s.LastName,
			&s.Email,
			&s.Phone,
			&s.Education,
			&s.Experience,
			&s.Specializations,
			&s.Price,
			&s.Online,
			&s.Offline,
			&s.Gender,
			&s.Language,
			&s.IsActive,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		s.Specializations = domain.NormalizeLabels(s.Specializations)
		specialists = append(specialists, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return specialists, nil
}

// pgxRows es la parte de pgx.Rows que usa el escaneo; permite probarlo sin base.
type pgxRows interface {
	Next() bool
	Scan(...interface{}) error
	Err() error
	Close()
}
