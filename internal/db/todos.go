package db

import (
	"context"

	"github.com/gotodo/backend/internal/model"
)

func (db *Postgres) CreateTodo(ctx context.Context, ownerID int64, title, description string) (*model.Todo, error) {
	query := `
		INSERT INTO todos (title, description, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, title, description, is_completed, owner_id, created_at, updated_at
	`
	var todo model.Todo
	err := db.Pool.QueryRow(ctx, query, title, description, ownerID).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Description,
		&todo.Completed,
		&todo.OwnerID,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (db *Postgres) ListTodosByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error) {
	query := `
		SELECT id, title, description, is_completed, owner_id, created_at, updated_at
		FROM todos
		WHERE owner_id = $1
		ORDER BY created_at, id
	`
	rows, err := db.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Todo
	for rows.Next() {
		var todo model.Todo
		if err := rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Description,
			&todo.Completed,
			&todo.OwnerID,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.Todo{}
	}
	return list, nil
}

// UpdateTodo applies a partial update in a single statement. COALESCE keeps the
// stored value for fields absent from the payload, and the compound WHERE scopes
// the write to the owner, so nonexistence and foreign ownership both surface as
// pgx.ErrNoRows.
func (db *Postgres) UpdateTodo(ctx context.Context, id, ownerID int64, req model.UpdateTodoRequest) (*model.Todo, error) {
	query := `
		UPDATE todos
		SET
			title = COALESCE($3, title),
			description = COALESCE($4, description),
			is_completed = COALESCE($5, is_completed),
			updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING id, title, description, is_completed, owner_id, created_at, updated_at
	`
	var todo model.Todo
	err := db.Pool.QueryRow(ctx, query, id, ownerID, req.Title, req.Description, req.Completed).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Description,
		&todo.Completed,
		&todo.OwnerID,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (db *Postgres) DeleteTodo(ctx context.Context, id, ownerID int64) (*model.Todo, error) {
	query := `
		DELETE FROM todos
		WHERE id = $1 AND owner_id = $2
		RETURNING id, title, description, is_completed, owner_id, created_at, updated_at
	`
	var todo model.Todo
	err := db.Pool.QueryRow(ctx, query, id, ownerID).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Description,
		&todo.Completed,
		&todo.OwnerID,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}
