package postgres

import (
	"context"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/errors"
	"todo/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// todoRepository implements the repository.TodoRepository interface.
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository is the constructor for todoRepository.
func NewTodoRepository(db *gorm.DB) repository.TodoRepository {
	return &todoRepository{
		db: db,
	}
}

// Create inserts a todo and copies generated values back onto the entity.
func (repo *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	todoM := fromTodoDomain(todo)

	if err := repo.db.WithContext(ctx).Create(todoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "todo owner does not exist")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "todo row rejected by constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create todo")
	}

	todo.ID = todoM.ID
	todo.CreatedAt = todoM.CreatedAt
	todo.UpdatedAt = todoM.UpdatedAt

	return nil
}

// List returns one page of todos and the total number of rows matching the search.
func (repo *todoRepository) List(ctx context.Context, filter entity.TodoFilter) (*entity.TodoPage, error) {
	var count int64
	if err := searchTodos(repo.reader(ctx), filter.Search).Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count todos")
	}

	var todoModels []*model.TodoModel
	if err := pageTodos(repo.reader(ctx), filter).Find(&todoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}

	rows := make([]*entity.Todo, 0, len(todoModels))
	for _, todoM := range todoModels {
		rows = append(rows, toTodoDomain(todoM))
	}

	return &entity.TodoPage{Rows: rows, Count: count}, nil
}

// FindByID retrieves a todo by its primary key.
func (repo *todoRepository) FindByID(ctx context.Context, id int64) (*entity.Todo, error) {
	var todoM model.TodoModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&todoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTodoNotFound
		}

		return nil, errors.Wrap(err, "failed to find todo by ID")
	}

	return toTodoDomain(&todoM), nil
}

// Update writes only the fields present in patch. updatedAt is maintained by GORM.
func (repo *todoRepository) Update(ctx context.Context, id int64, patch entity.TodoPatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TodoModel{}).
		Where("id = ?", id).
		Updates(todoPatchColumns(patch))
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update todo")
	}

	return result.RowsAffected, nil
}

// Delete removes a todo by ID.
func (repo *todoRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TodoModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete todo")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

// reader routes listing queries to a replica when one is configured.
func (repo *todoRepository) reader(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

func searchTodos(tx *gorm.DB, search string) *gorm.DB {
	tx = tx.Model(&model.TodoModel{})
	if search == "" {
		return tx
	}

	pattern := "%" + search + "%"

	return tx.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
}

func pageTodos(tx *gorm.DB, filter entity.TodoFilter) *gorm.DB {
	tx = searchTodos(tx, filter.Search)

	if filter.SortField != "" {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: filter.SortField},
			Desc:   filter.SortOrder == entity.SortDesc,
		})
	}

	return tx.Limit(filter.Limit).Offset(filter.Offset)
}

func todoPatchColumns(patch entity.TodoPatch) map[string]any {
	updates := make(map[string]any, 2)
	if patch.Title != nil {
		updates[model.TodoColumnTitle] = *patch.Title
	}
	if patch.Description != nil {
		updates[model.TodoColumnDescription] = *patch.Description
	}

	return updates
}

// toTodoDomain converts a GORM TodoModel to a domain Todo entity.
func toTodoDomain(data *model.TodoModel) *entity.Todo {
	if data == nil {
		return nil
	}

	return &entity.Todo{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromTodoDomain converts a domain Todo entity to a GORM TodoModel for persistence.
func fromTodoDomain(data *entity.Todo) *model.TodoModel {
	if data == nil {
		return nil
	}

	return &model.TodoModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
