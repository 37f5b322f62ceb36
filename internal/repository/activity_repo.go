package repository

import (
	"context"
	"errors"
	"fmt"

	"activities-signup/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ActivityRepo реализует хранилище каталога кружков на базе PostgreSQL.
// Порядок кружков и участников задаётся порядком вставки (id).
type ActivityRepo struct {
	db *Postgres
	tx *TransactionManager
}

// NewActivityRepo создаёт репозиторий поверх подключения и менеджера транзакций.
func NewActivityRepo(db *Postgres, tx *TransactionManager) *ActivityRepo {
	return &ActivityRepo{db: db, tx: tx}
}

// ListActivities возвращает весь каталог вместе с участниками.
func (r *ActivityRepo) ListActivities(ctx context.Context) (model.Catalog, error) {
	q := r.db.GetQueryExecutor(ctx)

	rows, err := q.Query(ctx, `
SELECT a.name, a.description, a.schedule, a.max_participants, p.email
FROM activities a
LEFT JOIN activity_participants p ON p.activity_id = a.id
ORDER BY a.id, p.id
`)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	catalog := make(model.Catalog, 0)
	for rows.Next() {
		var a model.NamedActivity
		var email *string
		if err := rows.Scan(&a.Name, &a.Description, &a.Schedule, &a.MaxParticipants, &email); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}

		last := len(catalog) - 1
		if last < 0 || catalog[last].Name != a.Name {
			a.Participants = make([]string, 0)
			catalog = append(catalog, a)
			last++
		}
		if email != nil {
			catalog[last].Participants = append(catalog[last].Participants, *email)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return catalog, nil
}

// AddParticipant записывает email на кружок. Строка кружка блокируется
// (FOR UPDATE), поэтому проверка лимита и вставка атомарны.
func (r *ActivityRepo) AddParticipant(ctx context.Context, activityName, email string) error {
	return r.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		q := r.db.GetQueryExecutor(ctx)

		activityID, maxParticipants, err := lockActivity(ctx, q, activityName)
		if err != nil {
			return err
		}

		var count int
		var signedUp bool
		err = q.QueryRow(ctx, `
SELECT COUNT(*), COALESCE(BOOL_OR(email = $2), FALSE)
FROM activity_participants
WHERE activity_id = $1
`, activityID, email).Scan(&count, &signedUp)
		if err != nil {
			return fmt.Errorf("count participants: %w", err)
		}

		if signedUp {
			return ErrAlreadySignedUp
		}
		if count >= maxParticipants {
			return ErrActivityFull
		}

		_, err = q.Exec(ctx, `
INSERT INTO activity_participants (activity_id, email)
VALUES ($1, $2)
`, activityID, email)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ErrAlreadySignedUp
			}
			return fmt.Errorf("insert participant: %w", err)
		}
		return nil
	})
}

// RemoveParticipant удаляет email из участников кружка.
func (r *ActivityRepo) RemoveParticipant(ctx context.Context, activityName, email string) error {
	return r.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		q := r.db.GetQueryExecutor(ctx)

		activityID, _, err := lockActivity(ctx, q, activityName)
		if err != nil {
			return err
		}

		cmdTag, err := q.Exec(ctx, `
DELETE FROM activity_participants
WHERE activity_id = $1 AND email = $2
`, activityID, email)
		if err != nil {
			return fmt.Errorf("delete participant: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrParticipantNotFound
		}
		return nil
	})
}

// SeedIfEmpty заполняет пустую базу переданным каталогом.
// Возвращает true, если каталог был записан.
func (r *ActivityRepo) SeedIfEmpty(ctx context.Context, catalog model.Catalog) (bool, error) {
	seeded := false
	err := r.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		q := r.db.GetQueryExecutor(ctx)

		var count int
		if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM activities`).Scan(&count); err != nil {
			return fmt.Errorf("count activities: %w", err)
		}
		if count > 0 {
			return nil
		}

		for _, a := range catalog {
			var activityID int64
			err := q.QueryRow(ctx, `
INSERT INTO activities (name, description, schedule, max_participants)
VALUES ($1, $2, $3, $4)
RETURNING id
`, a.Name, a.Description, a.Schedule, a.MaxParticipants).Scan(&activityID)
			if err != nil {
				return fmt.Errorf("insert activity %s: %w", a.Name, err)
			}

			if len(a.Participants) == 0 {
				continue
			}
			batch := &pgx.Batch{}
			for _, email := range a.Participants {
				batch.Queue(`
INSERT INTO activity_participants (activity_id, email)
VALUES ($1, $2)
`, activityID, email)
			}
			if err := q.SendBatch(ctx, batch).Close(); err != nil {
				return fmt.Errorf("insert participants of %s: %w", a.Name, err)
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}

func lockActivity(ctx context.Context, q DBTX, name string) (int64, int, error) {
	var id int64
	var maxParticipants int
	err := q.QueryRow(ctx, `
SELECT id, max_participants
FROM activities
WHERE name = $1
FOR UPDATE
`, name).Scan(&id, &maxParticipants)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, ErrActivityNotFound
		}
		return 0, 0, fmt.Errorf("get activity: %w", err)
	}
	return id, maxParticipants, nil
}
