package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	kpool "github.com/pegasus-cloud/pegasus/pkg/conn/db/postgres/pool"
	kpgschemarepo "github.com/pegasus-cloud/pegasus/pkg/db/postgres/schema"
	kdbdep "github.com/pegasus-cloud/pegasus/pkg/domain/department/db"
	kpgdep "github.com/pegasus-cloud/pegasus/pkg/domain/department/db/postgres"
	kdbinv "github.com/pegasus-cloud/pegasus/pkg/domain/invitation/db"
	kpginv "github.com/pegasus-cloud/pegasus/pkg/domain/invitation/db/postgres"
	dbInterface "github.com/pegasus-cloud/pegasus/pkg/domain/pegasus/db"
	kdbreg "github.com/pegasus-cloud/pegasus/pkg/domain/registry/db"
	kpgreg "github.com/pegasus-cloud/pegasus/pkg/domain/registry/db/postgres"
	kdbschema "github.com/pegasus-cloud/pegasus/pkg/domain/schema/db"
	kdbtenant "github.com/pegasus-cloud/pegasus/pkg/domain/tenant/db"
	kpgtenant "github.com/pegasus-cloud/pegasus/pkg/domain/tenant/db/postgres"
	kdbuser "github.com/pegasus-cloud/pegasus/pkg/domain/user/db"
	kpguser "github.com/pegasus-cloud/pegasus/pkg/domain/user/db/postgres"
)

type pegasusDBPostgres struct {
	pool       *pgxpool.Pool
	user       kdbuser.UserInterface
	department kdbdep.DepartmentInterface
	invitation kdbinv.InvitationInterface
	tenant     kdbtenant.TenantInterface
	registry   kdbreg.RegistryInterface
	schema     kdbschema.SchemaInterface
}

type Config struct {
	SchemaRepository string
}

type Option func(*Config) *Config

func WithSchemaRepository(repository string) Option {
	return func(c *Config) *Config {
		c.SchemaRepository = repository
		return c
	}
}

func New(
	ctx context.Context,
	url string,
	options ...Option,
) (dbInterface.PegasusDatabase, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, err
	}

	c := Config{}
	for _, option := range options {
		c = *option(&c)
	}

	p := kpool.Wrap(pool)
	var schema kdbschema.SchemaInterface = kpgschemarepo.Null()
	if c.SchemaRepository != "" {
		schema = kpgschemarepo.New(p, c.SchemaRepository)
	}

	return &pegasusDBPostgres{
		pool:       pool,
		user:       kpguser.New(p),
		department: kpgdep.New(p),
		invitation: kpginv.New(p),
		tenant:     kpgtenant.New(p),
		registry:   kpgreg.New(p),
		schema:     schema,
	}, nil
}

func (p *pegasusDBPostgres) User() kdbuser.UserInterface {
	return p.user
}

func (p *pegasusDBPostgres) Department() kdbdep.DepartmentInterface {
	return p.department
}

func (p *pegasusDBPostgres) Invitation() kdbinv.InvitationInterface {
	return p.invitation
}

func (p *pegasusDBPostgres) Tenant() kdbtenant.TenantInterface {
	return p.tenant
}

func (p *pegasusDBPostgres) Registry() kdbreg.RegistryInterface {
	return p.registry
}

func (p *pegasusDBPostgres) Schema() kdbschema.SchemaInterface {
	return p.schema
}

func (p *pegasusDBPostgres) Close() error {
	p.pool.Close()
	return nil
}
