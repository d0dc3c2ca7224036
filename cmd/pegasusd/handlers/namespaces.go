package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apienvelope "github.com/pegasus-cloud/pegasus/pkg/api/types/envelope"
	apierr "github.com/pegasus-cloud/pegasus/pkg/api/types/errors"
	apitenancy "github.com/pegasus-cloud/pegasus/pkg/api/types/tenancy"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	"github.com/pegasus-cloud/pegasus/pkg/domain/cluster/k8s"
	kdbtenant "github.com/pegasus-cloud/pegasus/pkg/domain/tenant/db"
)

// CreateNamespaceHandler dispenses a cluster namespace to a user.
//
// The ledger is consulted first: an Active row refuses the request
// before any cluster call, and a Deleted row is revalidated instead of
// inserting a duplicate.
func CreateNamespaceHandler(
	cluster k8s.Cluster,
	dbTenant kdbtenant.TenantInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apitenancy.CreateRequest](c)
		if herr != nil {
			return herr
		}
		if req.Ns == "" {
			return apierr.BadRequest("ns should not be empty", nil)
		}

		state, err := dbTenant.State(ctx, req.Ns)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		if state == domain.RecordActive {
			return c.JSON(http.StatusOK, apienvelope.Refused("The namespace exists already"))
		}

		if _, err := cluster.CreateNamespace(ctx, req.Ns); err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("namespace could not be created in the cluster"))
		}

		registered, err := dbTenant.Register(ctx, req.Uid, req.Ns, state.NoRecord())
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apitenancy.ComposeDetail(registered))
	}
}

// DeleteNamespaceHandler deletes the cluster namespace and invalidates
// the ledger row. Both are issued; neither is rolled back when the
// other fails.
func DeleteNamespaceHandler(
	cluster k8s.Cluster,
	dbTenant kdbtenant.TenantInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apitenancy.DeleteRequest](c)
		if herr != nil {
			return herr
		}

		msg, err := cluster.DeleteNamespace(ctx, req.Namespace)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("namespace could not be deleted from the cluster"))
		}

		if _, err := dbTenant.Invalidate(ctx, req.Uid, req.Namespace); err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apienvelope.Message{Msg: msg})
	}
}

// NamespacesBelongHandler lists namespaces the user owns.
func NamespacesBelongHandler(dbTenant kdbtenant.TenantInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		owner, err := uuid.Parse(c.QueryParam("id"))
		if err != nil {
			return apierr.BadRequest("id should be a UUID", err)
		}

		owned, err := dbTenant.ListOwned(ctx, owner)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, owned)
	}
}

// AppLabelsHandler maps each owned namespace to the app labels of its
// deployments.
func AppLabelsHandler(
	cluster k8s.Cluster,
	dbTenant kdbtenant.TenantInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		owner, err := uuid.Parse(c.QueryParam("id"))
		if err != nil {
			return apierr.BadRequest("id should be a UUID", err)
		}

		owned, err := dbTenant.ListOwned(ctx, owner)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		labels := map[string][]string{}
		for _, ns := range owned {
			found, err := cluster.AppLabels(ctx, ns)
			if err != nil {
				return apierr.InternalServerError(err, apierr.WithAdvice("cluster could not be queried"))
			}
			labels[ns] = found
		}

		return c.JSON(http.StatusOK, labels)
	}
}
