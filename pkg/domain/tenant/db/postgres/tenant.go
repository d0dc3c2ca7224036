package tenant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	kpool "github.com/pegasus-cloud/pegasus/pkg/conn/db/postgres/pool"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	kerrpg "github.com/pegasus-cloud/pegasus/pkg/domain/errors/dberrors/postgres"
	kdbtenant "github.com/pegasus-cloud/pegasus/pkg/domain/tenant/db"
)

type pgTenant struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdbtenant.TenantInterface {
	return &pgTenant{pool: pool}
}

func (t *pgTenant) State(ctx context.Context, name string) (domain.RecordState, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return domain.RecordNotFound, err
	}
	defer conn.Release()

	valid := false
	if err := conn.QueryRow(
		ctx, `select "valid" from "namespaces" where "namespace" = $1`, name,
	).Scan(&valid); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RecordNotFound, nil
		}
		return domain.RecordNotFound, err
	}
	return domain.StateOfRecord(true, valid), nil
}

func (t *pgTenant) Register(ctx context.Context, owner uuid.UUID, name string, noRecord bool) (domain.TenantNamespace, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return domain.TenantNamespace{}, err
	}
	defer conn.Release()

	ns := domain.TenantNamespace{}
	var row pgx.Row
	if noRecord {
		row = conn.QueryRow(
			ctx,
			`
			insert into "namespaces" ("uid", "namespace", "valid")
			values ($1, $2, true)
			returning "id", "uid", "namespace", "valid"
			`,
			owner, name,
		)
	} else {
		row = conn.QueryRow(
			ctx,
			`
			update "namespaces" set "valid" = true where "namespace" = $1
			returning "id", "uid", "namespace", "valid"
			`,
			name,
		)
	}
	if err := row.Scan(&ns.Id, &ns.Owner, &ns.Namespace, &ns.Valid); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TenantNamespace{}, kerrpg.Missing{Table: "namespaces", Identity: name}
		}
		return domain.TenantNamespace{}, err
	}
	return ns, nil
}

func (t *pgTenant) Invalidate(ctx context.Context, owner uuid.UUID, name string) (string, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	namespace := ""
	if err := conn.QueryRow(
		ctx,
		`
		update "namespaces" set "valid" = false
		where "uid" = $1 and "namespace" = $2
		returning "namespace"
		`,
		owner, name,
	).Scan(&namespace); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", kerrpg.Missing{Table: "namespaces", Identity: name}
		}
		return "", err
	}
	return namespace, nil
}

func (t *pgTenant) ListOwned(ctx context.Context, owner uuid.UUID) ([]string, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`select "namespace" from "namespaces" where "uid" = $1 and "valid"`,
		owner,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		name := ""
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
