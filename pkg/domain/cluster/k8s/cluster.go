package k8s

import (
	"context"
	"fmt"

	kubeapps "k8s.io/api/apps/v1"
	kubecore "k8s.io/api/core/v1"
	kubenet "k8s.io/api/networking/v1"
	kubeerr "k8s.io/apimachinery/pkg/api/errors"
)

// delete outcome messages reported to API clients.
//
// Deletes against the cluster are asynchronous; the object may linger with a
// deletion timestamp after the call returns.
const (
	MsgDeleted  = "deleted"
	MsgDeleting = "deleting"
)

// Cluster is the state adapter between resource intents and cluster objects.
//
// All methods issue cluster-API calls on every invocation.
// There is no cache and no watch.
type Cluster interface {
	CreateNamespace(ctx context.Context, nsname string) (string, error)
	DeleteNamespace(ctx context.Context, nsname string) (string, error)
	Nodes(ctx context.Context) ([]string, error)

	CreateDeployment(ctx context.Context, spec DeploymentSpec) (*kubeapps.Deployment, error)
	ReplaceDeployment(ctx context.Context, namespace string, depl *kubeapps.Deployment) (*kubeapps.Deployment, error)
	DeleteDeployment(ctx context.Context, namespace string, dname string) (string, error)
	DeploymentState(ctx context.Context, namespace string, dname string) (WorkloadState, error)
	DeploymentsWithin(ctx context.Context, namespace string) ([]WorkloadState, error)

	CreateService(ctx context.Context, spec ServiceSpec) (*kubecore.Service, error)
	ReplaceService(ctx context.Context, namespace string, svc *kubecore.Service) (*kubecore.Service, error)
	DeleteService(ctx context.Context, namespace string, sname string) (string, error)
	ServiceState(ctx context.Context, namespace string, sname string) (WorkloadState, error)
	ServicesWithin(ctx context.Context, namespace string) ([]WorkloadState, error)

	DeletePod(ctx context.Context, namespace string, pname string) (string, error)
	PodsWithin(ctx context.Context, namespace string) ([]WorkloadState, error)
	PodsByDeployment(ctx context.Context, namespace string) (map[string][]string, error)
	AppLabels(ctx context.Context, namespace string) ([]string, error)

	CreateIngress(ctx context.Context, spec IngressSpec) (*kubenet.Ingress, error)
	DeleteIngress(ctx context.Context, namespace string, iname string) (string, error)
	IngressesWithin(ctx context.Context, namespace string) ([]string, error)
}

type cluster struct {
	client K8sClient
}

var _ Cluster = &cluster{}

// AttachCluster builds a Cluster over the (wrapped) clientset.
func AttachCluster(client K8sClient) Cluster {
	return &cluster{client: client}
}

func (c *cluster) CreateNamespace(ctx context.Context, nsname string) (string, error) {
	created, err := c.client.CreateNamespace(ctx, NamespaceManifest(nsname))
	if err != nil {
		return "", err
	}
	return created.Name, nil
}

func (c *cluster) DeleteNamespace(ctx context.Context, nsname string) (string, error) {
	if err := c.client.DeleteNamespace(ctx, nsname); err != nil {
		return alreadyGone(err)
	}
	_, err := c.client.GetNamespace(ctx, nsname)
	return deleteMessage(err)
}

func (c *cluster) Nodes(ctx context.Context) ([]string, error) {
	nodes, err := c.client.ListNodes(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		names = append(names, fmt.Sprintf("%s: %s", n.Name, n.Labels[LabelNodeRole]))
	}
	return names, nil
}

func (c *cluster) CreateDeployment(ctx context.Context, spec DeploymentSpec) (*kubeapps.Deployment, error) {
	if err := spec.ValidateImages(); err != nil {
		return nil, err
	}
	return c.client.CreateDeployment(ctx, spec.Namespace, DeploymentManifest(spec))
}

func (c *cluster) ReplaceDeployment(ctx context.Context, namespace string, depl *kubeapps.Deployment) (*kubeapps.Deployment, error) {
	return c.client.ReplaceDeployment(ctx, namespace, depl)
}

func (c *cluster) DeleteDeployment(ctx context.Context, namespace string, dname string) (string, error) {
	if err := c.client.DeleteDeployment(ctx, namespace, dname); err != nil {
		return alreadyGone(err)
	}
	_, err := c.client.GetDeployment(ctx, namespace, dname)
	return deleteMessage(err)
}

func (c *cluster) DeploymentState(ctx context.Context, namespace string, dname string) (WorkloadState, error) {
	depl, err := c.client.GetDeployment(ctx, namespace, dname)
	if err != nil {
		return WorkloadState{}, err
	}
	return WorkloadState{Name: depl.Name, Ready: DeploymentReady(depl)}, nil
}

func (c *cluster) DeploymentsWithin(ctx context.Context, namespace string) ([]WorkloadState, error) {
	depls, err := c.client.ListDeployments(ctx, namespace)
	if err != nil {
		return nil, err
	}
	states := make([]WorkloadState, 0, len(depls))
	for i := range depls {
		states = append(states, WorkloadState{
			Name: depls[i].Name, Ready: DeploymentReady(&depls[i]),
		})
	}
	return states, nil
}

func (c *cluster) CreateService(ctx context.Context, spec ServiceSpec) (*kubecore.Service, error) {
	return c.client.CreateService(ctx, spec.Namespace, ServiceManifest(spec))
}

func (c *cluster) ReplaceService(ctx context.Context, namespace string, svc *kubecore.Service) (*kubecore.Service, error) {
	return c.client.ReplaceService(ctx, namespace, svc)
}

func (c *cluster) DeleteService(ctx context.Context, namespace string, sname string) (string, error) {
	if err := c.client.DeleteService(ctx, namespace, sname); err != nil {
		return alreadyGone(err)
	}
	_, err := c.client.GetService(ctx, namespace, sname)
	return deleteMessage(err)
}

func (c *cluster) ServiceState(ctx context.Context, namespace string, sname string) (WorkloadState, error) {
	svc, err := c.client.GetService(ctx, namespace, sname)
	if err != nil {
		return WorkloadState{}, err
	}
	// services have no native readiness signal; existing means ready.
	return WorkloadState{Name: svc.Name, Ready: true}, nil
}

func (c *cluster) ServicesWithin(ctx context.Context, namespace string) ([]WorkloadState, error) {
	svcs, err := c.client.ListServices(ctx, namespace)
	if err != nil {
		return nil, err
	}
	states := make([]WorkloadState, 0, len(svcs))
	for i := range svcs {
		states = append(states, WorkloadState{Name: svcs[i].Name, Ready: true})
	}
	return states, nil
}

func (c *cluster) DeletePod(ctx context.Context, namespace string, pname string) (string, error) {
	if err := c.client.DeletePod(ctx, namespace, pname); err != nil {
		return alreadyGone(err)
	}
	return MsgDeleting, nil
}

func (c *cluster) PodsWithin(ctx context.Context, namespace string) ([]WorkloadState, error) {
	pods, err := c.client.ListPods(ctx, namespace)
	if err != nil {
		return nil, err
	}
	states := make([]WorkloadState, 0, len(pods))
	for i := range pods {
		states = append(states, WorkloadState{Name: pods[i].Name, Ready: PodReady(&pods[i])})
	}
	return states, nil
}

func (c *cluster) PodsByDeployment(ctx context.Context, namespace string) (map[string][]string, error) {
	depls, err := c.client.ListDeployments(ctx, namespace)
	if err != nil {
		return nil, err
	}
	pods, err := c.client.ListPods(ctx, namespace)
	if err != nil {
		return nil, err
	}
	return GroupPods(depls, pods), nil
}

func (c *cluster) AppLabels(ctx context.Context, namespace string) ([]string, error) {
	depls, err := c.client.ListDeployments(ctx, namespace)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(depls))
	for _, d := range depls {
		labels = append(labels, d.Labels[LabelApp])
	}
	return labels, nil
}

func (c *cluster) CreateIngress(ctx context.Context, spec IngressSpec) (*kubenet.Ingress, error) {
	return c.client.CreateIngress(ctx, spec.Namespace, IngressManifest(spec))
}

func (c *cluster) DeleteIngress(ctx context.Context, namespace string, iname string) (string, error) {
	if err := c.client.DeleteIngress(ctx, namespace, iname); err != nil {
		return alreadyGone(err)
	}
	return MsgDeleting, nil
}

func (c *cluster) IngressesWithin(ctx context.Context, namespace string) ([]string, error) {
	ings, err := c.client.ListIngresses(ctx, namespace)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ings))
	for _, i := range ings {
		names = append(names, i.Name)
	}
	return names, nil
}

// alreadyGone forgives NotFound from a delete call. Deleting an object
// that no longer exists counts as a completed delete, not a failure.
func alreadyGone(err error) (string, error) {
	if kubeerr.IsNotFound(err) {
		return MsgDeleted, nil
	}
	return "", err
}

// deleteMessage interprets the get issued after a delete.
//
// NotFound means the delete completed; any live object means it is in progress.
func deleteMessage(err error) (string, error) {
	if err == nil {
		return MsgDeleting, nil
	}
	if kubeerr.IsNotFound(err) {
		return MsgDeleted, nil
	}
	return "", err
}
