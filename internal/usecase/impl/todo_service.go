package impl

import (
	"context"
	"log/slog"

	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultTodoLimit = 10

	// undefinedQueryValue is what some clients send for an unset query parameter.
	undefinedQueryValue = "undefined"
)

// todoService implements the TodoUsecase interface.
type todoService struct {
	txManager repository.TransactionManager
	todoRepo  repository.TodoRepository
	logger    *slog.Logger
}

// NewTodoService is the constructor for todoService.
func NewTodoService(
	txManager repository.TransactionManager,
	todoRepo repository.TodoRepository,
	logger *slog.Logger,
) usecase.TodoUsecase {
	return &todoService{
		txManager: txManager,
		todoRepo:  todoRepo,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *todoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindAll lists one page of todos across all users.
func (srv *todoService) FindAll(ctx context.Context, input *usecase.ListTodosInput) (*entity.TodoPage, error) {
	filter := buildTodoFilter(input)
	srv.log(ctx).Debug("Listing todos",
		slog.Int("limit", filter.Limit),
		slog.Int("offset", filter.Offset),
		slog.String("search", filter.Search),
		slog.String("sortField", filter.SortField),
		slog.String("sortOrder", string(filter.SortOrder)),
	)

	page, err := srv.todoRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list todos", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list todos")
	}

	return page, nil
}

// buildTodoFilter applies listing defaults. Non-positive paging values fall back to the defaults.
func buildTodoFilter(input *usecase.ListTodosInput) entity.TodoFilter {
	if input == nil {
		input = &usecase.ListTodosInput{}
	}

	filter := entity.TodoFilter{
		Limit:     input.Limit,
		Offset:    input.Offset,
		Search:    presentQueryValue(input.Search),
		SortField: presentQueryValue(input.SortField),
		SortOrder: entity.ParseSortOrder(input.SortOrder),
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultTodoLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return filter
}

func presentQueryValue(value string) string {
	if value == undefinedQueryValue {
		return ""
	}

	return value
}

// Create stores a todo owned by input.UserID.
func (srv *todoService) Create(ctx context.Context, input *usecase.CreateTodoInput) (*entity.Todo, error) {
	switch {
	case input.Title == "":
		return nil, domainerrors.ErrTitleRequired
	case input.Description == "":
		return nil, domainerrors.ErrDescriptionRequired
	}

	todo := &entity.Todo{
		Title:       input.Title,
		Description: input.Description,
		UserID:      input.UserID,
	}

	if err := srv.todoRepo.Create(ctx, todo); err != nil {
		srv.log(ctx).Error("Failed to create todo", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create todo")
	}
	srv.log(ctx).Info("Todo created", slog.Int64("todoID", todo.ID), slog.Int64("userID", todo.UserID))

	return todo, nil
}

// FindOne returns the todo, or nil when it does not exist.
func (srv *todoService) FindOne(ctx context.Context, id int64) (*entity.Todo, error) {
	todo, err := srv.todoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, nil
		}

		srv.log(ctx).Error("Failed to find todo", slog.Int64("todoID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find todo")
	}

	return todo, nil
}

// Update applies a partial update and returns the number of affected rows.
// An unknown id affects nothing and is not an error.
func (srv *todoService) Update(ctx context.Context, input *usecase.UpdateTodoInput) (int64, error) {
	patch := entity.TodoPatch{
		Title:       input.Title,
		Description: input.Description,
	}

	affected, err := srv.todoRepo.Update(ctx, input.ID, patch)
	if err != nil {
		srv.log(ctx).Error("Failed to update todo", slog.Int64("todoID", input.ID), slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to update todo")
	}
	srv.log(ctx).Info("Todo updated", slog.Int64("todoID", input.ID), slog.Int64("affected", affected))

	return affected, nil
}

// Remove loads and deletes the todo in one transaction.
func (srv *todoService) Remove(ctx context.Context, id int64) (int64, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		todoRepo := repoFactory.TodoRepo()

		// 1. Load
		if _, err := todoRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrTodoNotFound) {
				return domainerrors.ErrTodoNotFound.WrapMessage("failed to remove todo")
			}

			return errors.Wrap(err, "failed to find todo")
		}

		// 2. Delete
		if err := todoRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrTodoNotFound) {
				return domainerrors.ErrTodoNotFound.WrapMessage("failed to remove todo")
			}

			return errors.Wrap(err, "failed to delete todo")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to remove todo", slog.Int64("todoID", id), slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to remove todo")
	}
	srv.log(ctx).Info("Todo removed", slog.Int64("todoID", id))

	return 1, nil
}
