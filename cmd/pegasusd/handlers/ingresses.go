package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apienvelope "github.com/pegasus-cloud/pegasus/pkg/api/types/envelope"
	apierr "github.com/pegasus-cloud/pegasus/pkg/api/types/errors"
	apiworkloads "github.com/pegasus-cloud/pegasus/pkg/api/types/workloads"
	"github.com/pegasus-cloud/pegasus/pkg/domain/cluster/k8s"
)

// CreateIngressHandler exposes services of a namespace under a host.
func CreateIngressHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiworkloads.IngressRequest](c)
		if herr != nil {
			return herr
		}
		if req.Ns == "" {
			return c.JSON(http.StatusOK, apienvelope.Refused("Namespace must be provided!"))
		}

		created, err := cluster.CreateIngress(ctx, req.Spec())
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("ingress could not be created"))
		}

		return c.JSON(http.StatusOK, apienvelope.Carry("Ingress create successfully", created))
	}
}

// DeleteIngressHandler deletes an ingress and reports the cluster's
// outcome message.
func DeleteIngressHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiworkloads.DeleteRequest](c)
		if herr != nil {
			return herr
		}

		msg, err := cluster.DeleteIngress(ctx, req.Namespace, req.Name)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("ingress could not be deleted"))
		}

		return c.JSON(http.StatusOK, apienvelope.Message{Msg: msg})
	}
}

// ListIngressesHandler lists ingress names within a namespace.
func ListIngressesHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		namespace := c.QueryParam("namespace")
		if namespace == "" {
			return apierr.BadRequest("namespace should not be empty", nil)
		}

		found, err := cluster.IngressesWithin(ctx, namespace)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("cluster could not be queried"))
		}

		return c.JSON(http.StatusOK, found)
	}
}
