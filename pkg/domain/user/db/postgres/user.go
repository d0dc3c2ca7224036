package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	kpool "github.com/pegasus-cloud/pegasus/pkg/conn/db/postgres/pool"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	kerrpg "github.com/pegasus-cloud/pegasus/pkg/domain/errors/dberrors/postgres"
	kdbuser "github.com/pegasus-cloud/pegasus/pkg/domain/user/db"
)

type pgUser struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdbuser.UserInterface {
	return &pgUser{pool: pool}
}

func (u *pgUser) New(ctx context.Context, spec domain.UserSpec) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(spec.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	conn, err := u.pool.Acquire(ctx)
	if err != nil {
		return domain.User{}, err
	}
	defer conn.Release()

	user := domain.User{}
	if err := scanUser(conn.QueryRow(
		ctx,
		`
		insert into "users" ("id", "email", "name", "password", "role", "belong_to")
		values ($1, $2, $3, $4, $5, $6)
		returning "id", "email", "name", "password", "role", "belong_to", "created_at", "updated_at"
		`,
		uuid.New(), spec.Email, spec.Name, string(hash), spec.Role.String(), spec.BelongTo,
	), &user); err != nil {
		if kerrpg.UniqueViolation(err) {
			return domain.User{}, kerrpg.Conflict{Table: "users", Identity: spec.Email}
		}
		return domain.User{}, err
	}
	return user, nil
}

func (u *pgUser) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return u.getBy(ctx, `"id" = $1`, id.String(), id)
}

func (u *pgUser) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return u.getBy(ctx, `"email" = $1`, email, email)
}

func (u *pgUser) getBy(ctx context.Context, cond string, identity string, arg interface{}) (domain.User, error) {
	conn, err := u.pool.Acquire(ctx)
	if err != nil {
		return domain.User{}, err
	}
	defer conn.Release()

	user := domain.User{}
	if err := scanUser(conn.QueryRow(
		ctx,
		`
		select "id", "email", "name", "password", "role", "belong_to", "created_at", "updated_at"
		from "users" where `+cond,
		arg,
	), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, kerrpg.Missing{Table: "users", Identity: identity}
		}
		return domain.User{}, err
	}
	return user, nil
}

func (u *pgUser) Exists(ctx context.Context, email string) (bool, error) {
	return u.exists(ctx, `"email" = $1`, email)
}

func (u *pgUser) ExistsId(ctx context.Context, id uuid.UUID) (bool, error) {
	return u.exists(ctx, `"id" = $1`, id)
}

func (u *pgUser) exists(ctx context.Context, cond string, arg interface{}) (bool, error) {
	conn, err := u.pool.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()

	found := false
	if err := conn.QueryRow(
		ctx, `select exists(select 1 from "users" where `+cond+`)`, arg,
	).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

func (u *pgUser) InDepartment(ctx context.Context, departmentId int) ([]domain.User, error) {
	return u.list(
		ctx,
		`
		select "id", "email", "name", "password", "role", "belong_to", "created_at", "updated_at"
		from "users" where "belong_to" = $1
		`,
		departmentId,
	)
}

func (u *pgUser) All(ctx context.Context) ([]domain.User, error) {
	return u.list(
		ctx,
		`
		select "id", "email", "name", "password", "role", "belong_to", "created_at", "updated_at"
		from "users"
		`,
	)
}

func (u *pgUser) list(ctx context.Context, query string, args ...interface{}) ([]domain.User, error) {
	conn, err := u.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user := domain.User{}
		if err := scanUser(rows, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (u *pgUser) Update(ctx context.Context, id uuid.UUID, spec domain.UserSpec) (domain.User, error) {
	conn, err := u.pool.Acquire(ctx)
	if err != nil {
		return domain.User{}, err
	}
	defer conn.Release()

	user := domain.User{}
	if err := scanUser(conn.QueryRow(
		ctx,
		`
		update "users"
		set "name" = $2, "role" = $3, "belong_to" = $4, "updated_at" = now()
		where "id" = $1
		returning "id", "email", "name", "password", "role", "belong_to", "created_at", "updated_at"
		`,
		id, spec.Name, spec.Role.String(), spec.BelongTo,
	), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, kerrpg.Missing{Table: "users", Identity: id.String()}
		}
		return domain.User{}, err
	}
	return user, nil
}

func (u *pgUser) Delete(ctx context.Context, id uuid.UUID) error {
	conn, err := u.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, `delete from "users" where "id" = $1`, id)
	return err
}

// row is satisfied by pgx.Row and pgx.Rows.
type row interface {
	Scan(dest ...interface{}) error
}

func scanUser(r row, dest *domain.User) error {
	role := ""
	if err := r.Scan(
		&dest.Id, &dest.Email, &dest.Name, &dest.PasswordHash,
		&role, &dest.BelongTo, &dest.CreatedAt, &dest.UpdatedAt,
	); err != nil {
		return err
	}
	parsed, err := domain.AsClusterRole(role)
	if err != nil {
		return err
	}
	dest.Role = parsed
	return nil
}
