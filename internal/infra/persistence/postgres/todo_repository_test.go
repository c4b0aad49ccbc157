package postgres

import (
	"context"
	"testing"

	"todo/internal/domain/entity"
	"todo/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoRepository_List_SearchSortAndPaging(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewTodoRepository(db)

	page, err := repo.List(context.Background(), entity.TodoFilter{
		Limit:     5,
		Offset:    2,
		Search:    "test",
		SortField: "title",
		SortOrder: entity.SortDesc,
	})
	require.NoError(t, err)
	require.NotNil(t, page)

	statements := recorder.all()
	require.Len(t, statements, 2)

	countSQL := statements[0]
	assert.Contains(t, countSQL, `count(*)`)
	assert.Contains(t, countSQL, `FROM "todos"`)
	assert.Contains(t, countSQL, `title ILIKE '%test%' OR description ILIKE '%test%'`)
	assert.NotContains(t, countSQL, "LIMIT")

	listSQL := statements[1]
	assert.Contains(t, listSQL, `FROM "todos"`)
	assert.Contains(t, listSQL, `title ILIKE '%test%' OR description ILIKE '%test%'`)
	assert.Contains(t, listSQL, `ORDER BY "title" DESC`)
	assert.Contains(t, listSQL, "LIMIT 5")
	assert.Contains(t, listSQL, "OFFSET 2")
}

func TestTodoRepository_List_NoSearchNoSort(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewTodoRepository(db)

	_, err := repo.List(context.Background(), entity.TodoFilter{Limit: 10, SortOrder: entity.SortAsc})
	require.NoError(t, err)

	listSQL := recorder.last(t)
	assert.NotContains(t, listSQL, "WHERE")
	assert.NotContains(t, listSQL, "ORDER BY")
	assert.NotContains(t, listSQL, "OFFSET")
	assert.Contains(t, listSQL, "LIMIT 10")
}

func TestTodoRepository_List_SortFieldIsQuoted(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewTodoRepository(db)

	_, err := repo.List(context.Background(), entity.TodoFilter{Limit: 10, SortField: "userId", SortOrder: entity.SortAsc})
	require.NoError(t, err)

	assert.Contains(t, recorder.last(t), `ORDER BY "userId"`)
	assert.NotContains(t, recorder.last(t), "DESC")
}

func TestTodoRepository_Create(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewTodoRepository(db)

	todo := &entity.Todo{Title: "Test Todo", Description: "Test Description", UserID: 1}
	require.NoError(t, repo.Create(context.Background(), todo))

	insertSQL := recorder.last(t)
	assert.Contains(t, insertSQL, `INSERT INTO "todos"`)
	assert.Contains(t, insertSQL, `"userId"`)
	assert.Contains(t, insertSQL, `'Test Todo'`)
	assert.Contains(t, insertSQL, `'Test Description'`)
}

func TestTodoRepository_FindByID(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewTodoRepository(db)

	_, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)

	selectSQL := recorder.last(t)
	assert.Contains(t, selectSQL, `FROM "todos"`)
	assert.Contains(t, selectSQL, "id = 3")
	assert.Contains(t, selectSQL, "LIMIT 1")
}

func TestTodoRepository_Update_OnlyPatchedColumns(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewTodoRepository(db)

	title := "New title"
	_, err := repo.Update(context.Background(), 7, entity.TodoPatch{Title: &title})
	require.NoError(t, err)

	updateSQL := recorder.last(t)
	assert.Contains(t, updateSQL, `UPDATE "todos" SET`)
	assert.Contains(t, updateSQL, `"title"='New title'`)
	assert.Contains(t, updateSQL, `"updatedAt"=`)
	assert.NotContains(t, updateSQL, `"description"`)
	assert.Contains(t, updateSQL, "id = 7")
}

func TestTodoRepository_Update_EmptyPatchIsNoop(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewTodoRepository(db)

	affected, err := repo.Update(context.Background(), 7, entity.TodoPatch{})
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.Empty(t, recorder.all())
}

func TestTodoRepository_Delete(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewTodoRepository(db)

	// Dry runs affect no rows, which is exactly the missing-row path.
	err := repo.Delete(context.Background(), 9)
	require.ErrorIs(t, err, repository.ErrTodoNotFound)

	deleteSQL := recorder.last(t)
	assert.Contains(t, deleteSQL, `DELETE FROM "todos"`)
	assert.Contains(t, deleteSQL, "id = 9")
}

func TestTodoPatchColumns(t *testing.T) {
	title := "t"
	description := "d"

	assert.Empty(t, todoPatchColumns(entity.TodoPatch{}))
	assert.Equal(t, map[string]any{"title": "t"}, todoPatchColumns(entity.TodoPatch{Title: &title}))
	assert.Equal(t, map[string]any{"title": "t", "description": "d"},
		todoPatchColumns(entity.TodoPatch{Title: &title, Description: &description}))
}
