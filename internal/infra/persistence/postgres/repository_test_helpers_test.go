package postgres

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// sqlRecorder collects the SQL GORM renders in dry-run mode.
type sqlRecorder struct {
	mu         sync.Mutex
	statements []string
}

func (r *sqlRecorder) record(tx *gorm.DB) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.statements = append(r.statements, tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...))
}

func (r *sqlRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.statements...)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()

	statements := r.all()
	require.NotEmpty(t, statements)

	return statements[len(statements)-1]
}

// newDryRunDB opens a postgres-dialect GORM handle that renders SQL without connecting.
func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=todo password=todo dbname=todo_db sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	recorder := &sqlRecorder{}
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:record_create", recorder.record))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record_query", recorder.record))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:record_update", recorder.record))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:record_delete", recorder.record))

	return db, recorder
}
