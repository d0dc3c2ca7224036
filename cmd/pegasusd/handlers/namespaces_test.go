package handlers_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	handlers "github.com/pegasus-cloud/pegasus/cmd/pegasusd/handlers"
	httptestutil "github.com/pegasus-cloud/pegasus/internal/testutils/http"
	apienvelope "github.com/pegasus-cloud/pegasus/pkg/api/types/envelope"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	"github.com/pegasus-cloud/pegasus/pkg/domain/cluster/k8s"
	clustermocks "github.com/pegasus-cloud/pegasus/pkg/domain/cluster/k8s/mock"
	tenantmocks "github.com/pegasus-cloud/pegasus/pkg/domain/tenant/db/mock"
	"github.com/pegasus-cloud/pegasus/pkg/utils/cmp"
)

func TestCreateNamespaceHandler(t *testing.T) {
	type when struct {
		state domain.RecordState
	}
	type then struct {
		refused      bool
		clusterCalls int
		noRecord     bool
	}

	for name, testcase := range map[string]struct {
		when
		then
	}{
		"when the ledger has no row, it should create and insert a fresh row": {
			when{state: domain.RecordNotFound},
			then{clusterCalls: 1, noRecord: true},
		},
		"when the ledger row is invalid, it should create and revalidate the row": {
			when{state: domain.RecordDeleted},
			then{clusterCalls: 1, noRecord: false},
		},
		"when the ledger row is active, it should refuse before touching the cluster": {
			when{state: domain.RecordActive},
			then{refused: true},
		},
	} {
		t.Run(name, func(t *testing.T) {
			owner := uuid.New()

			cluster := clustermocks.NewCluster()
			cluster.Impl.CreateNamespace = func(_ context.Context, nsname string) (string, error) {
				return nsname, nil
			}
			dbTenant := tenantmocks.NewTenantInterface()
			dbTenant.Impl.State = func(context.Context, string) (domain.RecordState, error) {
				return testcase.when.state, nil
			}
			dbTenant.Impl.Register = func(_ context.Context, owner uuid.UUID, name string, noRecord bool) (domain.TenantNamespace, error) {
				return domain.TenantNamespace{
					Id: 1, Owner: owner, Namespace: name, Valid: true,
				}, nil
			}

			e := echo.New()
			c, rec := httptestutil.Post(
				e, "/api/ns/create",
				strings.NewReader(`{"uid": "`+owner.String()+`", "ns": "playground"}`),
				httptestutil.ContentType("application/json"),
			)

			testee := handlers.CreateNamespaceHandler(cluster, dbTenant)
			if err := testee(c); err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			if len(cluster.Calls.CreateNamespace) != testcase.then.clusterCalls {
				t.Errorf(
					"CreateNamespace is called %d times, want %d",
					len(cluster.Calls.CreateNamespace), testcase.then.clusterCalls,
				)
			}

			if testcase.then.refused {
				var actual apienvelope.Status
				if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
					t.Fatalf("response is not a JSON envelope: %s", err)
				}
				if actual.Status || actual.Msg != "The namespace exists already" {
					t.Errorf("unexpected envelope: %+v", actual)
				}
				if len(dbTenant.Calls.Register) != 0 {
					t.Error("Register should not be called")
				}
				return
			}

			args := dbTenant.Calls.Register.Last()
			if args.Owner != owner || args.Name != "playground" || args.NoRecord != testcase.then.noRecord {
				t.Errorf("Register is called with %+v", args)
			}
		})
	}
}

func TestDeleteNamespaceHandler(t *testing.T) {
	owner := uuid.New()

	cluster := clustermocks.NewCluster()
	cluster.Impl.DeleteNamespace = func(context.Context, string) (string, error) {
		return k8s.MsgDeleting, nil
	}
	dbTenant := tenantmocks.NewTenantInterface()
	dbTenant.Impl.Invalidate = func(_ context.Context, _ uuid.UUID, name string) (string, error) {
		return name, nil
	}

	e := echo.New()
	c, rec := httptestutil.Delete(
		e, "/api/ns/delete",
		strings.NewReader(`{"uid": "`+owner.String()+`", "namespace": "playground"}`),
		httptestutil.ContentType("application/json"),
	)

	testee := handlers.DeleteNamespaceHandler(cluster, dbTenant)
	if err := testee(c); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	var actual apienvelope.Message
	if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
		t.Fatalf("response is not JSON: %s", err)
	}
	if actual.Msg != k8s.MsgDeleting {
		t.Errorf("unexpected msg: %s", actual.Msg)
	}

	invalidated := dbTenant.Calls.Invalidate.Last()
	if invalidated.Owner != owner || invalidated.Name != "playground" {
		t.Errorf("Invalidate is called with %+v", invalidated)
	}
}

func TestNamespacesBelongHandler(t *testing.T) {
	owner := uuid.New()

	dbTenant := tenantmocks.NewTenantInterface()
	dbTenant.Impl.ListOwned = func(_ context.Context, got uuid.UUID) ([]string, error) {
		if got != owner {
			t.Errorf("unexpected owner: %s", got)
		}
		return []string{"ns-a", "ns-b"}, nil
	}

	e := echo.New()
	c, rec := httptestutil.Get(e, "/api/ns/belong?id="+owner.String())

	testee := handlers.NamespacesBelongHandler(dbTenant)
	if err := testee(c); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	actual := []string{}
	if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
		t.Fatalf("response is not JSON: %s", err)
	}
	if !cmp.SliceEq(actual, []string{"ns-a", "ns-b"}) {
		t.Errorf("unexpected namespaces: %v", actual)
	}
}

func TestAppLabelsHandler(t *testing.T) {
	owner := uuid.New()

	dbTenant := tenantmocks.NewTenantInterface()
	dbTenant.Impl.ListOwned = func(context.Context, uuid.UUID) ([]string, error) {
		return []string{"ns-a", "ns-b"}, nil
	}
	cluster := clustermocks.NewCluster()
	cluster.Impl.AppLabels = func(_ context.Context, namespace string) ([]string, error) {
		if namespace == "ns-a" {
			return []string{"web", "api"}, nil
		}
		return []string{}, nil
	}

	e := echo.New()
	c, rec := httptestutil.Get(e, "/api/ns/labels?id="+owner.String())

	testee := handlers.AppLabelsHandler(cluster, dbTenant)
	if err := testee(c); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	actual := map[string][]string{}
	if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
		t.Fatalf("response is not JSON: %s", err)
	}
	want := map[string][]string{"ns-a": {"web", "api"}, "ns-b": {}}
	if !cmp.MapEqWith(actual, want, cmp.SliceEq[string]) {
		t.Errorf("unexpected labels: %v", actual)
	}
}
