package mocks

import (
	"context"
	"errors"

	"github.com/pegasus-cloud/pegasus/pkg/domain/cluster/k8s"
	kdbmock "github.com/pegasus-cloud/pegasus/pkg/internal/db/mock"
	kubeapps "k8s.io/api/apps/v1"
	kubecore "k8s.io/api/core/v1"
	kubenet "k8s.io/api/networking/v1"
)

type NamespacedName struct {
	Namespace string
	Name      string
}

type ReplaceDeploymentArgs struct {
	Namespace  string
	Deployment *kubeapps.Deployment
}

type ReplaceServiceArgs struct {
	Namespace string
	Service   *kubecore.Service
}

type Cluster struct {
	Impl struct {
		CreateNamespace func(context.Context, string) (string, error)
		DeleteNamespace func(context.Context, string) (string, error)
		Nodes           func(context.Context) ([]string, error)

		CreateDeployment  func(context.Context, k8s.DeploymentSpec) (*kubeapps.Deployment, error)
		ReplaceDeployment func(context.Context, string, *kubeapps.Deployment) (*kubeapps.Deployment, error)
		DeleteDeployment  func(context.Context, string, string) (string, error)
		DeploymentState   func(context.Context, string, string) (k8s.WorkloadState, error)
		DeploymentsWithin func(context.Context, string) ([]k8s.WorkloadState, error)

		CreateService  func(context.Context, k8s.ServiceSpec) (*kubecore.Service, error)
		ReplaceService func(context.Context, string, *kubecore.Service) (*kubecore.Service, error)
		DeleteService  func(context.Context, string, string) (string, error)
		ServiceState   func(context.Context, string, string) (k8s.WorkloadState, error)
		ServicesWithin func(context.Context, string) ([]k8s.WorkloadState, error)

		DeletePod        func(context.Context, string, string) (string, error)
		PodsWithin       func(context.Context, string) ([]k8s.WorkloadState, error)
		PodsByDeployment func(context.Context, string) (map[string][]string, error)
		AppLabels        func(context.Context, string) ([]string, error)

		CreateIngress   func(context.Context, k8s.IngressSpec) (*kubenet.Ingress, error)
		DeleteIngress   func(context.Context, string, string) (string, error)
		IngressesWithin func(context.Context, string) ([]string, error)
	}
	Calls struct {
		CreateNamespace kdbmock.CallLog[string]
		DeleteNamespace kdbmock.CallLog[string]
		Nodes           kdbmock.CallLog[struct{}]

		CreateDeployment  kdbmock.CallLog[k8s.DeploymentSpec]
		ReplaceDeployment kdbmock.CallLog[ReplaceDeploymentArgs]
		DeleteDeployment  kdbmock.CallLog[NamespacedName]
		DeploymentState   kdbmock.CallLog[NamespacedName]
		DeploymentsWithin kdbmock.CallLog[string]

		CreateService  kdbmock.CallLog[k8s.ServiceSpec]
		ReplaceService kdbmock.CallLog[ReplaceServiceArgs]
		DeleteService  kdbmock.CallLog[NamespacedName]
		ServiceState   kdbmock.CallLog[NamespacedName]
		ServicesWithin kdbmock.CallLog[string]

		DeletePod        kdbmock.CallLog[NamespacedName]
		PodsWithin       kdbmock.CallLog[string]
		PodsByDeployment kdbmock.CallLog[string]
		AppLabels        kdbmock.CallLog[string]

		CreateIngress   kdbmock.CallLog[k8s.IngressSpec]
		DeleteIngress   kdbmock.CallLog[NamespacedName]
		IngressesWithin kdbmock.CallLog[string]
	}
}

var _ k8s.Cluster = &Cluster{}

func NewCluster() *Cluster {
	return &Cluster{}
}

func (m *Cluster) CreateNamespace(ctx context.Context, nsname string) (string, error) {
	m.Calls.CreateNamespace = append(m.Calls.CreateNamespace, nsname)
	if m.Impl.CreateNamespace != nil {
		return m.Impl.CreateNamespace(ctx, nsname)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) DeleteNamespace(ctx context.Context, nsname string) (string, error) {
	m.Calls.DeleteNamespace = append(m.Calls.DeleteNamespace, nsname)
	if m.Impl.DeleteNamespace != nil {
		return m.Impl.DeleteNamespace(ctx, nsname)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) Nodes(ctx context.Context) ([]string, error) {
	m.Calls.Nodes = append(m.Calls.Nodes, struct{}{})
	if m.Impl.Nodes != nil {
		return m.Impl.Nodes(ctx)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) CreateDeployment(ctx context.Context, spec k8s.DeploymentSpec) (*kubeapps.Deployment, error) {
	m.Calls.CreateDeployment = append(m.Calls.CreateDeployment, spec)
	if m.Impl.CreateDeployment != nil {
		return m.Impl.CreateDeployment(ctx, spec)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) ReplaceDeployment(ctx context.Context, namespace string, depl *kubeapps.Deployment) (*kubeapps.Deployment, error) {
	m.Calls.ReplaceDeployment = append(m.Calls.ReplaceDeployment, ReplaceDeploymentArgs{
		Namespace: namespace, Deployment: depl,
	})
	if m.Impl.ReplaceDeployment != nil {
		return m.Impl.ReplaceDeployment(ctx, namespace, depl)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) DeleteDeployment(ctx context.Context, namespace string, dname string) (string, error) {
	m.Calls.DeleteDeployment = append(m.Calls.DeleteDeployment, NamespacedName{Namespace: namespace, Name: dname})
	if m.Impl.DeleteDeployment != nil {
		return m.Impl.DeleteDeployment(ctx, namespace, dname)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) DeploymentState(ctx context.Context, namespace string, dname string) (k8s.WorkloadState, error) {
	m.Calls.DeploymentState = append(m.Calls.DeploymentState, NamespacedName{Namespace: namespace, Name: dname})
	if m.Impl.DeploymentState != nil {
		return m.Impl.DeploymentState(ctx, namespace, dname)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) DeploymentsWithin(ctx context.Context, namespace string) ([]k8s.WorkloadState, error) {
	m.Calls.DeploymentsWithin = append(m.Calls.DeploymentsWithin, namespace)
	if m.Impl.DeploymentsWithin != nil {
		return m.Impl.DeploymentsWithin(ctx, namespace)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) CreateService(ctx context.Context, spec k8s.ServiceSpec) (*kubecore.Service, error) {
	m.Calls.CreateService = append(m.Calls.CreateService, spec)
	if m.Impl.CreateService != nil {
		return m.Impl.CreateService(ctx, spec)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) ReplaceService(ctx context.Context, namespace string, svc *kubecore.Service) (*kubecore.Service, error) {
	m.Calls.ReplaceService = append(m.Calls.ReplaceService, ReplaceServiceArgs{Namespace: namespace, Service: svc})
	if m.Impl.ReplaceService != nil {
		return m.Impl.ReplaceService(ctx, namespace, svc)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) DeleteService(ctx context.Context, namespace string, sname string) (string, error) {
	m.Calls.DeleteService = append(m.Calls.DeleteService, NamespacedName{Namespace: namespace, Name: sname})
	if m.Impl.DeleteService != nil {
		return m.Impl.DeleteService(ctx, namespace, sname)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) ServiceState(ctx context.Context, namespace string, sname string) (k8s.WorkloadState, error) {
	m.Calls.ServiceState = append(m.Calls.ServiceState, NamespacedName{Namespace: namespace, Name: sname})
	if m.Impl.ServiceState != nil {
		return m.Impl.ServiceState(ctx, namespace, sname)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) ServicesWithin(ctx context.Context, namespace string) ([]k8s.WorkloadState, error) {
	m.Calls.ServicesWithin = append(m.Calls.ServicesWithin, namespace)
	if m.Impl.ServicesWithin != nil {
		return m.Impl.ServicesWithin(ctx, namespace)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) DeletePod(ctx context.Context, namespace string, pname string) (string, error) {
	m.Calls.DeletePod = append(m.Calls.DeletePod, NamespacedName{Namespace: namespace, Name: pname})
	if m.Impl.DeletePod != nil {
		return m.Impl.DeletePod(ctx, namespace, pname)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) PodsWithin(ctx context.Context, namespace string) ([]k8s.WorkloadState, error) {
	m.Calls.PodsWithin = append(m.Calls.PodsWithin, namespace)
	if m.Impl.PodsWithin != nil {
		return m.Impl.PodsWithin(ctx, namespace)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) PodsByDeployment(ctx context.Context, namespace string) (map[string][]string, error) {
	m.Calls.PodsByDeployment = append(m.Calls.PodsByDeployment, namespace)
	if m.Impl.PodsByDeployment != nil {
		return m.Impl.PodsByDeployment(ctx, namespace)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) AppLabels(ctx context.Context, namespace string) ([]string, error) {
	m.Calls.AppLabels = append(m.Calls.AppLabels, namespace)
	if m.Impl.AppLabels != nil {
		return m.Impl.AppLabels(ctx, namespace)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) CreateIngress(ctx context.Context, spec k8s.IngressSpec) (*kubenet.Ingress, error) {
	m.Calls.CreateIngress = append(m.Calls.CreateIngress, spec)
	if m.Impl.CreateIngress != nil {
		return m.Impl.CreateIngress(ctx, spec)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) DeleteIngress(ctx context.Context, namespace string, iname string) (string, error) {
	m.Calls.DeleteIngress = append(m.Calls.DeleteIngress, NamespacedName{Namespace: namespace, Name: iname})
	if m.Impl.DeleteIngress != nil {
		return m.Impl.DeleteIngress(ctx, namespace, iname)
	}
	panic(errors.New("should not be called"))
}

func (m *Cluster) IngressesWithin(ctx context.Context, namespace string) ([]string, error) {
	m.Calls.IngressesWithin = append(m.Calls.IngressesWithin, namespace)
	if m.Impl.IngressesWithin != nil {
		return m.Impl.IngressesWithin(ctx, namespace)
	}
	panic(errors.New("should not be called"))
}
