package handlers_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	kubeapps "k8s.io/api/apps/v1"

	handlers "github.com/pegasus-cloud/pegasus/cmd/pegasusd/handlers"
	httptestutil "github.com/pegasus-cloud/pegasus/internal/testutils/http"
	apienvelope "github.com/pegasus-cloud/pegasus/pkg/api/types/envelope"
	apiworkloads "github.com/pegasus-cloud/pegasus/pkg/api/types/workloads"
	"github.com/pegasus-cloud/pegasus/pkg/domain/cluster/k8s"
	clustermocks "github.com/pegasus-cloud/pegasus/pkg/domain/cluster/k8s/mock"
	tenantmocks "github.com/pegasus-cloud/pegasus/pkg/domain/tenant/db/mock"
	usermocks "github.com/pegasus-cloud/pegasus/pkg/domain/user/db/mock"
	"github.com/pegasus-cloud/pegasus/pkg/utils/cmp"
)

func TestInfosHandler(t *testing.T) {
	t.Run("when the user is unknown, it should answer status=false", func(t *testing.T) {
		dbUser := usermocks.NewUserInterface()
		dbUser.Impl.ExistsId = func(context.Context, uuid.UUID) (bool, error) {
			return false, nil
		}
		dbTenant := tenantmocks.NewTenantInterface()
		cluster := clustermocks.NewCluster()

		e := echo.New()
		c, rec := httptestutil.Get(e, "/api/tasks/infos?id="+uuid.NewString())

		testee := handlers.InfosHandler(dbUser, dbTenant, cluster)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		var actual apienvelope.Carrying[string]
		if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not a JSON envelope: %s", err)
		}
		if actual.Status || actual.Msg != "The user does not exist" {
			t.Errorf("unexpected envelope: %+v", actual)
		}
		if len(dbTenant.Calls.ListOwned) != 0 {
			t.Error("ListOwned should not be called")
		}
	})

	t.Run("when the user owns namespaces, it should map states per namespace", func(t *testing.T) {
		dbUser := usermocks.NewUserInterface()
		dbUser.Impl.ExistsId = func(context.Context, uuid.UUID) (bool, error) {
			return true, nil
		}
		dbTenant := tenantmocks.NewTenantInterface()
		dbTenant.Impl.ListOwned = func(context.Context, uuid.UUID) ([]string, error) {
			return []string{"ns-a", "ns-b"}, nil
		}
		cluster := clustermocks.NewCluster()
		cluster.Impl.DeploymentsWithin = func(_ context.Context, namespace string) ([]k8s.WorkloadState, error) {
			if namespace == "ns-a" {
				return []k8s.WorkloadState{{Name: "web", Ready: true}}, nil
			}
			return []k8s.WorkloadState{}, nil
		}
		cluster.Impl.ServicesWithin = func(context.Context, string) ([]k8s.WorkloadState, error) {
			return []k8s.WorkloadState{}, nil
		}
		cluster.Impl.PodsWithin = func(_ context.Context, namespace string) ([]k8s.WorkloadState, error) {
			if namespace == "ns-a" {
				return []k8s.WorkloadState{
					{Name: "web-1", Ready: true}, {Name: "web-2", Ready: false},
				}, nil
			}
			return []k8s.WorkloadState{}, nil
		}

		e := echo.New()
		c, rec := httptestutil.Get(e, "/api/tasks/infos?id="+uuid.NewString())

		testee := handlers.InfosHandler(dbUser, dbTenant, cluster)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		var actual apienvelope.Carrying[apiworkloads.Infos]
		if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not a JSON envelope: %s", err)
		}
		if !actual.Status {
			t.Errorf("unexpected envelope: %+v", actual)
		}
		if !cmp.SliceEq(actual.Data.Namespace, []string{"ns-a", "ns-b"}) {
			t.Errorf("unexpected namespaces: %v", actual.Data.Namespace)
		}
		if len(actual.Data.Deploy["ns-a"]) != 1 || actual.Data.Deploy["ns-a"][0].Name != "web" {
			t.Errorf("unexpected deployments: %v", actual.Data.Deploy)
		}
		if len(actual.Data.Pod["ns-a"]) != 2 || len(actual.Data.Pod["ns-b"]) != 0 {
			t.Errorf("unexpected pods: %v", actual.Data.Pod)
		}
	})
}

func TestCreateDeploymentHandler(t *testing.T) {
	cluster := clustermocks.NewCluster()
	cluster.Impl.CreateDeployment = func(_ context.Context, spec k8s.DeploymentSpec) (*kubeapps.Deployment, error) {
		manifest := k8s.DeploymentManifest(spec)
		return manifest, nil
	}

	e := echo.New()
	c, rec := httptestutil.Post(
		e, "/api/tasks/deploy",
		strings.NewReader(`{
	"name": "web", "namespace": "ns-a", "app_label": "web",
	"replicas": 2, "reschedulable": true,
	"containers": [{"name": "web", "image": "repo.invalid/web:1.0"}]
}`),
		httptestutil.ContentType("application/json"),
	)

	testee := handlers.CreateDeploymentHandler(cluster)
	if err := testee(c); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	spec := cluster.Calls.CreateDeployment.Last()
	if spec.Name != "web" || spec.Namespace != "ns-a" || spec.Replicas != 2 || !spec.Reschedulable {
		t.Errorf("CreateDeployment is called with %+v", spec)
	}

	var actual apienvelope.Carrying[json.RawMessage]
	if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
		t.Fatalf("response is not a JSON envelope: %s", err)
	}
	if !actual.Status || actual.Msg != "Deployment create successfully" {
		t.Errorf("unexpected envelope: (status, msg) = (%v, %s)", actual.Status, actual.Msg)
	}
}

func TestReplaceDeploymentHandler(t *testing.T) {
	t.Run("when the manifest has no namespace, it should refuse", func(t *testing.T) {
		cluster := clustermocks.NewCluster()

		e := echo.New()
		c, rec := httptestutil.Post(
			e, "/api/tasks/replacedeploy",
			strings.NewReader(`{"metadata": {"name": "web"}}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.ReplaceDeploymentHandler(cluster)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		var actual apienvelope.Status
		if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not a JSON envelope: %s", err)
		}
		if actual.Status || actual.Msg != "Namespace must be provided!" {
			t.Errorf("unexpected envelope: %+v", actual)
		}
		if len(cluster.Calls.ReplaceDeployment) != 0 {
			t.Error("ReplaceDeployment should not be called")
		}
	})

	t.Run("when the manifest carries a namespace, it should replace", func(t *testing.T) {
		cluster := clustermocks.NewCluster()
		cluster.Impl.ReplaceDeployment = func(_ context.Context, _ string, depl *kubeapps.Deployment) (*kubeapps.Deployment, error) {
			return depl, nil
		}

		e := echo.New()
		c, rec := httptestutil.Post(
			e, "/api/tasks/replacedeploy",
			strings.NewReader(`{"metadata": {"name": "web", "namespace": "ns-a"}}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.ReplaceDeploymentHandler(cluster)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		args := cluster.Calls.ReplaceDeployment.Last()
		if args.Namespace != "ns-a" {
			t.Errorf("ReplaceDeployment is called with namespace %s", args.Namespace)
		}

		var actual apienvelope.Carrying[json.RawMessage]
		if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not a JSON envelope: %s", err)
		}
		if !actual.Status || actual.Msg != "Deployment edit successfully" {
			t.Errorf("unexpected envelope: (status, msg) = (%v, %s)", actual.Status, actual.Msg)
		}
	})
}

func TestDeletePodHandler(t *testing.T) {
	cluster := clustermocks.NewCluster()
	cluster.Impl.DeletePod = func(context.Context, string, string) (string, error) {
		return k8s.MsgDeleting, nil
	}

	e := echo.New()
	c, rec := httptestutil.Delete(
		e, "/api/tasks/pod",
		strings.NewReader(`{"name": "web-1", "namespace": "ns-a"}`),
		httptestutil.ContentType("application/json"),
	)

	testee := handlers.DeletePodHandler(cluster)
	if err := testee(c); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	deleted := cluster.Calls.DeletePod.Last()
	if deleted.Namespace != "ns-a" || deleted.Name != "web-1" {
		t.Errorf("DeletePod is called with %+v", deleted)
	}

	var actual apienvelope.Message
	if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
		t.Fatalf("response is not JSON: %s", err)
	}
	if actual.Msg != k8s.MsgDeleting {
		t.Errorf("unexpected msg: %s", actual.Msg)
	}
}
