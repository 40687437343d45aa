package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	UpsertBy(ctx context.Context, column string, records any) error
	SeedTable(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entities any) error
	GetAll(ctx context.Context, entities any) error
	UpdateBy(ctx context.Context, model any, column string, value any, updates map[string]any) error
}
