package service

import (
	"context"
	"errors"

	"github.com/gotodo/backend/internal/db"
	"github.com/gotodo/backend/internal/model"
)

// ErrNotFound covers both a nonexistent todo id and one owned by another user;
// callers cannot tell the two apart.
var ErrNotFound = errors.New("todo not found")

// TodoStore is the slice of the datastore the todo handlers need. Every write
// and read is scoped to an owner.
type TodoStore interface {
	CreateTodo(ctx context.Context, ownerID int64, title, description string) (*model.Todo, error)
	ListTodosByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error)
	UpdateTodo(ctx context.Context, id, ownerID int64, req model.UpdateTodoRequest) (*model.Todo, error)
	DeleteTodo(ctx context.Context, id, ownerID int64) (*model.Todo, error)
}

type TodoService struct {
	store TodoStore
}

func NewTodoService(store TodoStore) *TodoService {
	return &TodoService{store: store}
}

func (s *TodoService) Create(ctx context.Context, ownerID int64, req model.CreateTodoRequest) (*model.Todo, error) {
	return s.store.CreateTodo(ctx, ownerID, req.Title, req.Description)
}

func (s *TodoService) List(ctx context.Context, ownerID int64) ([]model.Todo, error) {
	return s.store.ListTodosByOwner(ctx, ownerID)
}

func (s *TodoService) Update(ctx context.Context, id, ownerID int64, req model.UpdateTodoRequest) (*model.Todo, error) {
	todo, err := s.store.UpdateTodo(ctx, id, ownerID, req)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, id, ownerID int64) (*model.Todo, error) {
	todo, err := s.store.DeleteTodo(ctx, id, ownerID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return todo, nil
}
