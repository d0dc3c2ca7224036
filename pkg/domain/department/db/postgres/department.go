package department

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	kpool "github.com/pegasus-cloud/pegasus/pkg/conn/db/postgres/pool"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	kdbdep "github.com/pegasus-cloud/pegasus/pkg/domain/department/db"
	kerrpg "github.com/pegasus-cloud/pegasus/pkg/domain/errors/dberrors/postgres"
)

type pgDepartment struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdbdep.DepartmentInterface {
	return &pgDepartment{pool: pool}
}

func (d *pgDepartment) New(ctx context.Context, name string) (domain.Department, error) {
	conn, err := d.pool.Acquire(ctx)
	if err != nil {
		return domain.Department{}, err
	}
	defer conn.Release()

	dep := domain.Department{}
	if err := conn.QueryRow(
		ctx,
		`
		insert into "departments" ("name") values ($1)
		returning "id", "name", "admin"
		`,
		name,
	).Scan(&dep.Id, &dep.Name, &dep.Admin); err != nil {
		if kerrpg.UniqueViolation(err) {
			return domain.Department{}, kerrpg.Conflict{Table: "departments", Identity: name}
		}
		return domain.Department{}, err
	}
	return dep, nil
}

func (d *pgDepartment) Get(ctx context.Context, id int) (domain.Department, error) {
	conn, err := d.pool.Acquire(ctx)
	if err != nil {
		return domain.Department{}, err
	}
	defer conn.Release()

	dep := domain.Department{}
	if err := conn.QueryRow(
		ctx,
		`select "id", "name", "admin" from "departments" where "id" = $1`,
		id,
	).Scan(&dep.Id, &dep.Name, &dep.Admin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Department{}, kerrpg.Missing{Table: "departments", Identity: "(id)"}
		}
		return domain.Department{}, err
	}
	return dep, nil
}

func (d *pgDepartment) SetAdmin(ctx context.Context, id int, admin uuid.UUID) (domain.Department, error) {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return domain.Department{}, err
	}
	defer tx.Rollback(ctx)

	adminExists := false
	if err := tx.QueryRow(
		ctx, `select exists(select 1 from "users" where "id" = $1)`, admin,
	).Scan(&adminExists); err != nil {
		return domain.Department{}, err
	}
	if !adminExists {
		return domain.Department{}, kerrpg.Missing{Table: "users", Identity: admin.String()}
	}

	dep := domain.Department{}
	if err := tx.QueryRow(
		ctx,
		`
		update "departments" set "admin" = $2 where "id" = $1
		returning "id", "name", "admin"
		`,
		id, admin,
	).Scan(&dep.Id, &dep.Name, &dep.Admin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Department{}, kerrpg.Missing{Table: "departments", Identity: "(id)"}
		}
		return domain.Department{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Department{}, err
	}
	return dep, nil
}
