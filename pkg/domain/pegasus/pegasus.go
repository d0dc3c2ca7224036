package pegasus

import (
	"context"

	"github.com/pegasus-cloud/pegasus/pkg/auth"
	"github.com/pegasus-cloud/pegasus/pkg/buildengine"
	kconf "github.com/pegasus-cloud/pegasus/pkg/configs/server"
	"github.com/pegasus-cloud/pegasus/pkg/domain/cluster/k8s"
	"github.com/pegasus-cloud/pegasus/pkg/domain/pegasus/db"
	"github.com/pegasus-cloud/pegasus/pkg/domain/pegasus/db/postgres"
	"github.com/pegasus-cloud/pegasus/pkg/gitstore"
	"github.com/pegasus-cloud/pegasus/pkg/kubeutil"
	"github.com/pegasus-cloud/pegasus/pkg/mail"
	"k8s.io/client-go/kubernetes"
)

// Pegasus bundles every backend the API handlers need.
type Pegasus interface {
	Config() *kconf.ServerConfig

	Database() db.PegasusDatabase
	Cluster() k8s.Cluster
	Engine() buildengine.Engine
	GitStore() gitstore.GitStore
	Mail() mail.Sender
	Sessions() *auth.Issuer
}

type pegasus struct {
	config *kconf.ServerConfig

	database db.PegasusDatabase
	cluster  k8s.Cluster
	engine   buildengine.Engine
	gitstore gitstore.GitStore
	mail     mail.Sender
	sessions *auth.Issuer
}

type Option func(*_options)

type _options struct {
	pg []postgres.Option
}

func WithSchemaRepository(repository string) Option {
	return func(o *_options) {
		o.pg = append(o.pg, postgres.WithSchemaRepository(repository))
	}
}

// Default builds Pegasus against the cluster found from the ambient
// kubeconfig (or in-cluster config).
func Default(
	ctx context.Context,
	config *kconf.ServerConfig,
	options ...Option,
) (Pegasus, error) {
	clientset, err := kubeutil.ConnectToK8s()
	if err != nil {
		return nil, err
	}
	return New(ctx, config, clientset, options...)
}

func New(
	ctx context.Context,
	config *kconf.ServerConfig,
	clientset *kubernetes.Clientset,
	options ...Option,
) (Pegasus, error) {
	opt := &_options{}
	for _, o := range options {
		o(opt)
	}

	pg, err := postgres.New(ctx, config.Cluster().Database(), opt.pg...)
	if err != nil {
		return nil, err
	}

	cluster := k8s.AttachCluster(k8s.WrapK8sClient(clientset))

	engine := buildengine.NewClient(
		config.BuildEngine().APIRoot(), config.BuildEngine().Token(),
	)

	gits := gitstore.NewClient(
		config.GitStore().APIRoot(),
		config.GitStore().Token(),
		config.GitStore().Owner(),
		config.GitStore().Repo(),
		config.GitStore().Branch(),
	)

	sender := mail.New(
		config.Mail().Host(),
		config.Mail().Port(),
		config.Mail().From(),
		config.Mail().Username(),
		config.Mail().Password(),
		config.Mail().Organisation(),
		config.Mail().LinkDomain(),
	)

	sessions := auth.NewIssuer(config.Session().SignKey(), config.Session().TTL())

	return &pegasus{
		config:   config,
		database: pg,
		cluster:  cluster,
		engine:   engine,
		gitstore: gits,
		mail:     sender,
		sessions: sessions,
	}, nil
}

func (p *pegasus) Config() *kconf.ServerConfig {
	return p.config
}

func (p *pegasus) Database() db.PegasusDatabase {
	return p.database
}

func (p *pegasus) Cluster() k8s.Cluster {
	return p.cluster
}

func (p *pegasus) Engine() buildengine.Engine {
	return p.engine
}

func (p *pegasus) GitStore() gitstore.GitStore {
	return p.gitstore
}

func (p *pegasus) Mail() mail.Sender {
	return p.mail
}

func (p *pegasus) Sessions() *auth.Issuer {
	return p.sessions
}
