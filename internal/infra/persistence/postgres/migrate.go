package postgres

import (
	"context"

	"todo/internal/errors"
	"todo/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// schemaModels lists the tables owned by this service, parents first.
func schemaModels() []any {
	return []any{
		&model.UserModel{},
		&model.TodoModel{},
	}
}

// Migrate creates or alters the users and todos tables to match the models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(schemaModels()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
