package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"path"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pegasus-cloud/pegasus/cmd/pegasusd/handlers"
	"github.com/pegasus-cloud/pegasus/pkg/auth"
	kconf "github.com/pegasus-cloud/pegasus/pkg/configs/server"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	"github.com/pegasus-cloud/pegasus/pkg/domain/pegasus"
	"github.com/pegasus-cloud/pegasus/pkg/utils/echoutil"
)

func main() {

	configPath := flag.String("config-path", "", "server config path")
	schemaRepo := flag.String("schema-repo", "", "path to the database schema repository")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	flag.Parse()

	e := echo.New()
	e.Pre(middleware.AddTrailingSlash())

	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	conf, err := kconf.LoadServerConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configuration: %s", err)
	}

	ctx := context.Background()

	options := []pegasus.Option{}
	if *schemaRepo != "" {
		options = append(options, pegasus.WithSchemaRepository(*schemaRepo))
	}
	peg, err := pegasus.Default(ctx, conf, options...)
	if err != nil {
		log.Fatalf("can not start pegasus: %s", err)
	}
	db := peg.Database()
	defer db.Close()

	if err := db.Schema().Upgrade(ctx); err != nil {
		log.Fatalf("can not upgrade database schema: %s", err)
	}
	if *schemaRepo != "" {
		sctx, cancel := db.Schema().Context(ctx)
		defer cancel()
		context.AfterFunc(sctx, func() {
			log.Println("schema repository is updated. quit to restart server.")
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Shutdown(graceful); err != nil {
				log.Printf("error on shutdown by schema update: %s", err)
			}
		})
	}

	sessions := peg.Sessions()
	authed := auth.Middleware(sessions)
	adminOnly := auth.RequireRole(domain.ClusterAdmin)
	inviterOnly := auth.RequireRole(domain.ClusterAdmin, domain.DepartmentAdmin)

	api := func(p string) string {
		return path.Join("/api", p) + "/"
	}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Pegasus server is healthy!")
	})
	e.GET(api(""), func(c echo.Context) error {
		return c.String(http.StatusOK, "Pegasus is healthy!\n")
	})

	{
		e.POST(api("invitations/post"),
			handlers.PostInvitationHandler(db.User(), db.Invitation(), peg.Mail()),
			authed, inviterOnly,
		)
		e.POST(api("invitations/expire"), handlers.InvitationExpiredHandler(db.Invitation()))
		e.POST(api("invitations/get"), handlers.GetInvitationHandler(db.Invitation()))
	}

	{
		e.POST(api("users/register"),
			handlers.RegisterHandler(db.User(), db.Department(), db.Invitation()),
		)
		e.POST(api("users/login"), handlers.LoginHandler(db.User(), sessions))
		e.POST(api("users/logout"), handlers.LogoutHandler(), authed)
		e.POST(api("users/whoami"), handlers.WhoAmIHandler(db.User()), authed)
		e.GET(api("users/list/:id"), handlers.DepartmentUsersHandler(db.User(), "id"), authed)
		e.GET(api("users/all"), handlers.AllUsersHandler(db.User()), authed, adminOnly)
	}

	{
		e.POST(api("departs/create"), handlers.CreateDepartmentHandler(db.Department()), authed, adminOnly)
		e.POST(api("departs/admin"), handlers.SetDepartmentAdminHandler(db.Department()), authed, adminOnly)
	}

	{
		e.POST(api("ns/create"), handlers.CreateNamespaceHandler(peg.Cluster(), db.Tenant()), authed)
		e.DELETE(api("ns/delete"), handlers.DeleteNamespaceHandler(peg.Cluster(), db.Tenant()), authed)
		e.GET(api("ns/belong"), handlers.NamespacesBelongHandler(db.Tenant()), authed)
		e.GET(api("ns/labels"), handlers.AppLabelsHandler(peg.Cluster(), db.Tenant()), authed)
	}

	{
		e.GET(api("tasks/infos"),
			handlers.InfosHandler(db.User(), db.Tenant(), peg.Cluster()), authed,
		)
		e.GET(api("tasks/deploy"), handlers.GetDeploymentHandler(peg.Cluster()), authed)
		e.POST(api("tasks/deploy"), handlers.CreateDeploymentHandler(peg.Cluster()), authed)
		e.DELETE(api("tasks/deploy"), handlers.DeleteDeploymentHandler(peg.Cluster()), authed)
		e.POST(api("tasks/replacedeploy"), handlers.ReplaceDeploymentHandler(peg.Cluster()), authed)
		e.GET(api("tasks/svc"), handlers.GetServiceHandler(peg.Cluster()), authed)
		e.POST(api("tasks/svc"), handlers.CreateServiceHandler(peg.Cluster()), authed)
		e.DELETE(api("tasks/svc"), handlers.DeleteServiceHandler(peg.Cluster()), authed)
		e.POST(api("tasks/replacesvc"), handlers.ReplaceServiceHandler(peg.Cluster()), authed)
		e.DELETE(api("tasks/pod"), handlers.DeletePodHandler(peg.Cluster()), authed)
	}

	{
		e.POST(api("ing/create"), handlers.CreateIngressHandler(peg.Cluster()), authed)
		e.DELETE(api("ing/delete"), handlers.DeleteIngressHandler(peg.Cluster()), authed)
		e.GET(api("ing/all"), handlers.ListIngressesHandler(peg.Cluster()), authed)
	}

	{
		e.POST(api("repos/create"),
			handlers.CreateRepositoryHandler(db.Registry(), peg.Engine(), peg.GitStore()), authed,
		)
		e.GET(api("repos/repo"), handlers.GetRepositoryHandler(peg.Engine()), authed)
		e.DELETE(api("repos/repo"),
			handlers.DeleteRepositoryHandler(db.Registry(), peg.Engine()), authed,
		)
		e.GET(api("repos/all"), handlers.ListRepositoriesHandler(db.Registry()), authed)
		e.DELETE(api("repos/image"), handlers.DeleteImageHandler(peg.Engine()), authed)
		e.POST(api("repos/rule"),
			handlers.CreateBuildRuleHandler(db.Registry(), peg.Engine(), peg.GitStore()), authed,
		)
		e.GET(api("repos/rules"), handlers.BuildRulesHandler(peg.Engine()), authed)
		e.POST(api("repos/startbuild"), handlers.StartBuildHandler(peg.Engine()), authed)
		e.GET(api("repos/tags"), handlers.TagsHandler(peg.Engine()), authed)
		e.DELETE(api("repos/buildrule"),
			handlers.DeleteBuildRuleHandler(db.Registry(), peg.Engine()), authed,
		)
	}

	{
		e.GET(api("clusteradmin/nodes"), handlers.NodesHandler(peg.Cluster()), authed, adminOnly)
		e.POST(api("clusteradmin/namespace"),
			handlers.AdminCreateNamespaceHandler(peg.Cluster()), authed, adminOnly,
		)

		e.GET(api("kubetest/nodes"), handlers.NodesHandler(peg.Cluster()), authed, adminOnly)
		e.POST(api("kubetest/createns"),
			handlers.AdminCreateNamespaceHandler(peg.Cluster()), authed, adminOnly,
		)
		e.POST(api("kubetest/deletens"),
			handlers.AdminDeleteNamespaceHandler(peg.Cluster()), authed, adminOnly,
		)
		e.GET(api("kubetest/deploy"), handlers.DeploymentsWithinHandler(peg.Cluster()), authed, adminOnly)
		e.GET(api("kubetest/svc"), handlers.ServicesWithinHandler(peg.Cluster()), authed, adminOnly)
		e.GET(api("kubetest/pod"), handlers.PodsWithinHandler(peg.Cluster()), authed, adminOnly)
		e.GET(api("kubetest/podsby"), handlers.PodsByDeploymentHandler(peg.Cluster()), authed, adminOnly)
	}

	log.Println("registered routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	port := fmt.Sprintf(":%d", conf.Port())
	cert, key := *pcert, *pkey
	if cert != "" && key != "" {
		e.Logger.Fatal(e.StartTLS(port, cert, key))
	} else {
		e.Logger.Fatal(e.Start(port))
	}
}
