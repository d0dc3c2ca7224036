package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	kubeapps "k8s.io/api/apps/v1"
	kubecore "k8s.io/api/core/v1"

	apienvelope "github.com/pegasus-cloud/pegasus/pkg/api/types/envelope"
	apierr "github.com/pegasus-cloud/pegasus/pkg/api/types/errors"
	apiworkloads "github.com/pegasus-cloud/pegasus/pkg/api/types/workloads"
	"github.com/pegasus-cloud/pegasus/pkg/domain/cluster/k8s"
	kdbtenant "github.com/pegasus-cloud/pegasus/pkg/domain/tenant/db"
	kdbuser "github.com/pegasus-cloud/pegasus/pkg/domain/user/db"
)

// InfosHandler snapshots all resources of a user, namespace by
// namespace. An unknown user is reported in the envelope, not as an
// HTTP error, so the dashboard can render the message.
func InfosHandler(
	dbUser kdbuser.UserInterface,
	dbTenant kdbtenant.TenantInterface,
	cluster k8s.Cluster,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		uid, err := uuid.Parse(c.QueryParam("id"))
		if err != nil {
			return apierr.BadRequest("id should be a UUID", err)
		}

		known, err := dbUser.ExistsId(ctx, uid)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		if !known {
			return c.JSON(http.StatusOK, apienvelope.Carrying[string]{
				Status: false, Msg: "The user does not exist", Data: "",
			})
		}

		namespaces, err := dbTenant.ListOwned(ctx, uid)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		infos := apiworkloads.Infos{
			Namespace: namespaces,
			Deploy:    map[string][]k8s.WorkloadState{},
			Service:   map[string][]k8s.WorkloadState{},
			Pod:       map[string][]k8s.WorkloadState{},
		}
		for _, ns := range namespaces {
			deploys, err := cluster.DeploymentsWithin(ctx, ns)
			if err != nil {
				return apierr.InternalServerError(err, apierr.WithAdvice("cluster could not be queried"))
			}
			services, err := cluster.ServicesWithin(ctx, ns)
			if err != nil {
				return apierr.InternalServerError(err, apierr.WithAdvice("cluster could not be queried"))
			}
			pods, err := cluster.PodsWithin(ctx, ns)
			if err != nil {
				return apierr.InternalServerError(err, apierr.WithAdvice("cluster could not be queried"))
			}
			infos.Deploy[ns] = deploys
			infos.Service[ns] = services
			infos.Pod[ns] = pods
		}

		return c.JSON(http.StatusOK, apienvelope.Carry("", infos))
	}
}

// GetDeploymentHandler reports the readiness of one deployment.
func GetDeploymentHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		namespace := c.QueryParam("namespace")
		name := c.QueryParam("name")

		state, err := cluster.DeploymentState(ctx, namespace, name)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("cluster could not be queried"))
		}
		return c.JSON(http.StatusOK, state)
	}
}

// CreateDeploymentHandler submits a deployment manifest built from the
// simplified request.
func CreateDeploymentHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiworkloads.DeployRequest](c)
		if herr != nil {
			return herr
		}

		created, err := cluster.CreateDeployment(ctx, req.Spec())
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("deployment could not be created"))
		}

		return c.JSON(http.StatusOK, apienvelope.Carry("Deployment create successfully", created))
	}
}

// DeleteDeploymentHandler deletes a deployment and reports the
// cluster's outcome message.
func DeleteDeploymentHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiworkloads.DeleteRequest](c)
		if herr != nil {
			return herr
		}

		msg, err := cluster.DeleteDeployment(ctx, req.Namespace, req.Name)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("deployment could not be deleted"))
		}

		return c.JSON(http.StatusOK, apienvelope.Message{Msg: msg})
	}
}

// ReplaceDeploymentHandler replaces a deployment with the raw manifest
// in the body. The manifest must carry its namespace.
func ReplaceDeploymentHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		depl, herr := bind[kubeapps.Deployment](c)
		if herr != nil {
			return herr
		}
		if depl.Namespace == "" {
			return c.JSON(http.StatusOK, apienvelope.Refused("Namespace must be provided!"))
		}

		replaced, err := cluster.ReplaceDeployment(ctx, depl.Namespace, &depl)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("deployment could not be replaced"))
		}

		return c.JSON(http.StatusOK, apienvelope.Carry("Deployment edit successfully", replaced))
	}
}

// GetServiceHandler reports the state of one service.
func GetServiceHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		namespace := c.QueryParam("namespace")
		name := c.QueryParam("name")

		state, err := cluster.ServiceState(ctx, namespace, name)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("cluster could not be queried"))
		}
		return c.JSON(http.StatusOK, state)
	}
}

// CreateServiceHandler submits a service manifest built from the
// simplified request.
func CreateServiceHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiworkloads.ServiceRequest](c)
		if herr != nil {
			return herr
		}

		created, err := cluster.CreateService(ctx, req.Spec())
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("service could not be created"))
		}

		return c.JSON(http.StatusOK, apienvelope.Carry("Service create successfully", created))
	}
}

// DeleteServiceHandler deletes a service and reports the cluster's
// outcome message.
func DeleteServiceHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiworkloads.DeleteRequest](c)
		if herr != nil {
			return herr
		}

		msg, err := cluster.DeleteService(ctx, req.Namespace, req.Name)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("service could not be deleted"))
		}

		return c.JSON(http.StatusOK, apienvelope.Message{Msg: msg})
	}
}

// ReplaceServiceHandler replaces a service with the raw manifest in
// the body. The manifest must carry its namespace.
func ReplaceServiceHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		svc, herr := bind[kubecore.Service](c)
		if herr != nil {
			return herr
		}
		if svc.Namespace == "" {
			return c.JSON(http.StatusOK, apienvelope.Refused("Namespace must be provided!"))
		}

		replaced, err := cluster.ReplaceService(ctx, svc.Namespace, &svc)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("service could not be replaced"))
		}

		return c.JSON(http.StatusOK, apienvelope.Carry("Service edit successfully", replaced))
	}
}

// DeletePodHandler deletes a pod; its deployment reschedules a fresh
// one when replicas demand it.
func DeletePodHandler(cluster k8s.Cluster) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiworkloads.DeleteRequest](c)
		if herr != nil {
			return herr
		}

		msg, err := cluster.DeletePod(ctx, req.Namespace, req.Name)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("pod could not be deleted"))
		}

		return c.JSON(http.StatusOK, apienvelope.Message{Msg: msg})
	}
}
