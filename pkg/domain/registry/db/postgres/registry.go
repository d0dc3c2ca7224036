package registry

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	kpool "github.com/pegasus-cloud/pegasus/pkg/conn/db/postgres/pool"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	kerrpg "github.com/pegasus-cloud/pegasus/pkg/domain/errors/dberrors/postgres"
	kdbreg "github.com/pegasus-cloud/pegasus/pkg/domain/registry/db"
)

type pgRegistry struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdbreg.RegistryInterface {
	return &pgRegistry{pool: pool}
}

func (r *pgRegistry) RepositoryState(ctx context.Context, name string) (domain.RecordState, error) {
	return r.state(
		ctx,
		`select "is_valid" from "repositories" where "repo_name" = $1`,
		name,
	)
}

func (r *pgRegistry) TagState(ctx context.Context, repoName string, tagName string) (domain.RecordState, error) {
	return r.state(
		ctx,
		`select "is_valid" from "tags" where "repo_name" = $1 and "tag_name" = $2`,
		repoName, tagName,
	)
}

func (r *pgRegistry) state(ctx context.Context, query string, args ...interface{}) (domain.RecordState, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return domain.RecordNotFound, err
	}
	defer conn.Release()

	valid := false
	if err := conn.QueryRow(ctx, query, args...).Scan(&valid); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RecordNotFound, nil
		}
		return domain.RecordNotFound, err
	}
	return domain.StateOfRecord(true, valid), nil
}

func (r *pgRegistry) RegisterRepository(ctx context.Context, belongTo *uuid.UUID, name string, isPublic bool, noRecord bool) (domain.Repository, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return domain.Repository{}, err
	}
	defer conn.Release()

	repo := domain.Repository{}
	var row pgx.Row
	if noRecord {
		row = conn.QueryRow(
			ctx,
			`
			insert into "repositories" ("belong_to", "repo_name", "is_public", "is_valid")
			values ($1, $2, $3, true)
			returning "id", "belong_to", "repo_name", "is_public", "is_valid"
			`,
			belongTo, name, isPublic,
		)
	} else {
		row = conn.QueryRow(
			ctx,
			`
			update "repositories"
			set "belong_to" = $1, "is_public" = $3, "is_valid" = true
			where "repo_name" = $2
			returning "id", "belong_to", "repo_name", "is_public", "is_valid"
			`,
			belongTo, name, isPublic,
		)
	}
	if err := row.Scan(
		&repo.Id, &repo.BelongTo, &repo.RepoName, &repo.IsPublic, &repo.IsValid,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Repository{}, kerrpg.Missing{Table: "repositories", Identity: name}
		}
		return domain.Repository{}, err
	}
	return repo, nil
}

func (r *pgRegistry) InvalidateRepository(ctx context.Context, name string) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(
		ctx,
		`update "repositories" set "is_valid" = false where "repo_name" = $1`,
		name,
	)
	return err
}

func (r *pgRegistry) PublicRepositories(ctx context.Context) ([]string, error) {
	return r.names(
		ctx,
		`select "repo_name" from "repositories" where "is_public" and "is_valid"`,
	)
}

func (r *pgRegistry) OwnedRepositories(ctx context.Context, owner uuid.UUID) ([]string, error) {
	return r.names(
		ctx,
		`select "repo_name" from "repositories" where "belong_to" = $1`,
		owner,
	)
}

func (r *pgRegistry) names(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
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

func (r *pgRegistry) RegisterTag(ctx context.Context, repoName string, tagName string, noRecord bool) (domain.Tag, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return domain.Tag{}, err
	}
	defer conn.Release()

	tag := domain.Tag{}
	var row pgx.Row
	if noRecord {
		row = conn.QueryRow(
			ctx,
			`
			insert into "tags" ("repo_name", "tag_name", "is_valid")
			values ($1, $2, true)
			returning "id", "repo_name", "tag_name", "is_valid"
			`,
			repoName, tagName,
		)
	} else {
		row = conn.QueryRow(
			ctx,
			`
			update "tags" set "is_valid" = true
			where "repo_name" = $1 and "tag_name" = $2
			returning "id", "repo_name", "tag_name", "is_valid"
			`,
			repoName, tagName,
		)
	}
	if err := row.Scan(&tag.Id, &tag.RepoName, &tag.TagName, &tag.IsValid); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Tag{}, kerrpg.Missing{
				Table: "tags", Identity: repoName + ":" + tagName,
			}
		}
		return domain.Tag{}, err
	}
	return tag, nil
}

func (r *pgRegistry) InvalidateTag(ctx context.Context, repoName string, tagName string) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(
		ctx,
		`update "tags" set "is_valid" = false where "repo_name" = $1 and "tag_name" = $2`,
		repoName, tagName,
	)
	return err
}
