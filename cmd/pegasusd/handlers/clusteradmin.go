package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apienvelope "github.com/pegasus-cloud/pegasus/pkg/api/types/envelope"
	apierr "github.com/pegasus-cloud/pegasus/pkg/api/types/errors"
	"github.com/pegasus-cloud/pegasus/pkg/domain/cluster/k8s"
)

// admin-scoped handlers operating on raw cluster state, without the
// tenant ledger. Routes using them are gated by the cluster_admin role.

// NodesHandler lists cluster nodes with their pegasus role label.
func NodesHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		nodes, err := cluster.Nodes(ctx)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("cluster could not be queried"))
		}

		return c.JSON(http.StatusOK, apienvelope.Data[[]string]{Data: nodes})
	}
}

type namespaceNameRequest struct {
	Name string `json:"name"`
}

// AdminCreateNamespaceHandler creates a namespace without writing the
// tenant ledger.
func AdminCreateNamespaceHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[namespaceNameRequest](c)
		if herr != nil {
			return herr
		}
		if req.Name == "" {
			return apierr.BadRequest("name should not be empty", nil)
		}

		created, err := cluster.CreateNamespace(ctx, req.Name)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("namespace could not be created"))
		}

		return c.JSON(http.StatusOK, apienvelope.Data[string]{Data: created})
	}
}

// AdminDeleteNamespaceHandler deletes a namespace without touching the
// tenant ledger.
func AdminDeleteNamespaceHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[namespaceNameRequest](c)
		if herr != nil {
			return herr
		}

		msg, err := cluster.DeleteNamespace(ctx, req.Name)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("namespace could not be deleted"))
		}

		return c.JSON(http.StatusOK, apienvelope.Message{Msg: msg})
	}
}

// DeploymentsWithinHandler lists deployment readiness in a namespace.
func DeploymentsWithinHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		states, err := cluster.DeploymentsWithin(ctx, c.QueryParam("name"))
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("cluster could not be queried"))
		}
		return c.JSON(http.StatusOK, states)
	}
}

// ServicesWithinHandler lists services in a namespace.
func ServicesWithinHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		states, err := cluster.ServicesWithin(ctx, c.QueryParam("name"))
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("cluster could not be queried"))
		}
		return c.JSON(http.StatusOK, states)
	}
}

// PodsWithinHandler lists pod readiness in a namespace.
func PodsWithinHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		states, err := cluster.PodsWithin(ctx, c.QueryParam("name"))
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("cluster could not be queried"))
		}
		return c.JSON(http.StatusOK, states)
	}
}

// PodsByDeploymentHandler groups pod names under their deployments.
func PodsByDeploymentHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		grouped, err := cluster.PodsByDeployment(ctx, c.QueryParam("name"))
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("cluster could not be queried"))
		}
		return c.JSON(http.StatusOK, grouped)
	}
}
