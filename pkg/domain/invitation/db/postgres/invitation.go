package invitation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	kpool "github.com/pegasus-cloud/pegasus/pkg/conn/db/postgres/pool"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	kerrpg "github.com/pegasus-cloud/pegasus/pkg/domain/errors/dberrors/postgres"
	kdbinv "github.com/pegasus-cloud/pegasus/pkg/domain/invitation/db"
)

type pgInvitation struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdbinv.InvitationInterface {
	return &pgInvitation{pool: pool}
}

func (i *pgInvitation) New(ctx context.Context, spec domain.InvitationSpec) (domain.Invitation, error) {
	conn, err := i.pool.Acquire(ctx)
	if err != nil {
		return domain.Invitation{}, err
	}
	defer conn.Release()

	inv := domain.Invitation{}
	if err := conn.QueryRow(
		ctx,
		`
		insert into "invitations" ("id", "email", "department", "is_admin", "expires_at")
		values ($1, $2, $3, $4, now() + $5::interval)
		returning "id", "email", "department", "is_admin", "expires_at", "created_at"
		`,
		uuid.New(), spec.Email, spec.Department, spec.IsAdmin,
		domain.InvitationTTL.String(),
	).Scan(
		&inv.Id, &inv.Email, &inv.Department, &inv.IsAdmin, &inv.ExpiresAt, &inv.CreatedAt,
	); err != nil {
		return domain.Invitation{}, err
	}
	return inv, nil
}

func (i *pgInvitation) Get(ctx context.Context, id uuid.UUID) (domain.Invitation, error) {
	conn, err := i.pool.Acquire(ctx)
	if err != nil {
		return domain.Invitation{}, err
	}
	defer conn.Release()

	inv := domain.Invitation{}
	if err := conn.QueryRow(
		ctx,
		`
		select "id", "email", "department", "is_admin", "expires_at", "created_at"
		from "invitations" where "id" = $1
		`,
		id,
	).Scan(
		&inv.Id, &inv.Email, &inv.Department, &inv.IsAdmin, &inv.ExpiresAt, &inv.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Invitation{}, kerrpg.Missing{Table: "invitations", Identity: id.String()}
		}
		return domain.Invitation{}, err
	}
	return inv, nil
}

func (i *pgInvitation) CountSince(ctx context.Context, email string, since time.Time) (int, error) {
	conn, err := i.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	count := 0
	if err := conn.QueryRow(
		ctx,
		`select count(*) from "invitations" where "email" = $1 and "created_at" >= $2`,
		email, since,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (i *pgInvitation) Expire(ctx context.Context, email string) error {
	conn, err := i.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(
		ctx,
		`update "invitations" set "expires_at" = now() where "email" = $1 and "expires_at" > now()`,
		email,
	)
	return err
}
