package workloads

import (
	kubecore "k8s.io/api/core/v1"

	"github.com/pegasus-cloud/pegasus/pkg/domain/cluster/k8s"
)

type DeployRequest struct {
	Name          string               `json:"name"`
	Namespace     string               `json:"namespace"`
	Reschedulable bool                 `json:"reschedulable"`
	AppLabel      string               `json:"app_label"`
	Replicas      int32                `json:"replicas"`
	Containers    []kubecore.Container `json:"containers"`
}

func (r DeployRequest) Spec() k8s.DeploymentSpec {
	return k8s.DeploymentSpec{
		Name:          r.Name,
		Namespace:     r.Namespace,
		AppLabel:      r.AppLabel,
		Replicas:      r.Replicas,
		Reschedulable: r.Reschedulable,
		Containers:    r.Containers,
	}
}

type ServiceRequest struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
	AppLabel  string `json:"app_label"`
	Port      int32  `json:"port"`
}

func (r ServiceRequest) Spec() k8s.ServiceSpec {
	return k8s.ServiceSpec{
		Name:      r.Name,
		Namespace: r.Namespace,
		AppLabel:  r.AppLabel,
		Port:      r.Port,
	}
}

type DeleteRequest struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
}

type IngressRequest struct {
	Name  string        `json:"name"`
	Ns    string        `json:"ns"`
	Host  string        `json:"host"`
	Paths []IngressPath `json:"paths"`
}

type IngressPath struct {
	Path    string `json:"path"`
	SvcName string `json:"svc_name"`
	SvcPort int32  `json:"svc_port"`
}

func (r IngressRequest) Spec() k8s.IngressSpec {
	paths := make([]k8s.IngressPath, 0, len(r.Paths))
	for _, p := range r.Paths {
		paths = append(paths, k8s.IngressPath{
			Path:    p.Path,
			SvcName: p.SvcName,
			SvcPort: p.SvcPort,
		})
	}
	return k8s.IngressSpec{
		Name:      r.Name,
		Namespace: r.Ns,
		Host:      r.Host,
		Paths:     paths,
	}
}

// Infos is the per-user resource overview: each map is keyed by
// namespace name.
type Infos struct {
	Namespace []string                       `json:"namespace"`
	Deploy    map[string][]k8s.WorkloadState `json:"deploy"`
	Service   map[string][]k8s.WorkloadState `json:"service"`
	Pod       map[string][]k8s.WorkloadState `json:"pod"`
}
