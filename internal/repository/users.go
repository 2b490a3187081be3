package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

type UserRepository struct {
	db   Execer
	psql sq.StatementBuilderType
}

func NewUserRepository(db Execer) *UserRepository {
	return &UserRepository{
		db:   db,
		psql: newBuilder(),
	}
}

func (ur *UserRepository) CreateTable(ctx context.Context) error {
	return execDDL(ctx, ur.db, createUsersTable)
}

// Insert expects user.Password to already be hashed.
func (ur *UserRepository) Insert(ctx context.Context, user *User) (int64, error) {
	builder := ur.psql.Insert("users").
		Columns("id", "name", "email", "password").
		Values(user.ID, user.Name, user.Email, user.Password).
		Suffix("ON CONFLICT (id) DO NOTHING")

	return execInsert(ctx, ur.db, builder)
}
