package k8s

import (
	"fmt"

	"github.com/google/go-containerregistry/pkg/name"
	kubeapps "k8s.io/api/apps/v1"
	kubecore "k8s.io/api/core/v1"
	kubenet "k8s.io/api/networking/v1"
	kubeapimeta "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/pegasus-cloud/pegasus/pkg/utils/pointer"
)

// DeploymentSpec is the simplified deployment intent accepted from users.
type DeploymentSpec struct {
	Name          string
	Namespace     string
	AppLabel      string
	Replicas      int32
	Reschedulable bool
	Containers    []kubecore.Container
}

// ServiceSpec is the simplified service intent accepted from users.
type ServiceSpec struct {
	Name      string
	Namespace string
	AppLabel  string
	Port      int32
}

// IngressSpec is the simplified ingress intent accepted from users.
type IngressSpec struct {
	Name      string
	Namespace string
	Host      string
	Paths     []IngressPath
}

type IngressPath struct {
	Path    string
	SvcName string
	SvcPort int32
}

// ValidateImages checks that every container image is a well-formed
// image reference before the manifest is sent to the cluster.
func (s DeploymentSpec) ValidateImages() error {
	for _, c := range s.Containers {
		if _, err := name.ParseReference(c.Image); err != nil {
			return fmt.Errorf("container %s: bad image reference %q: %w", c.Name, c.Image, err)
		}
	}
	return nil
}

// NamespaceManifest builds the minimal namespace object, tagged as
// dispensed by pegasus.
func NamespaceManifest(nsname string) *kubecore.Namespace {
	return &kubecore.Namespace{
		ObjectMeta: kubeapimeta.ObjectMeta{
			Name: nsname,
			Labels: map[string]string{
				LabelDispense: LabelDispenseValue,
			},
		},
	}
}

func DeploymentManifest(spec DeploymentSpec) *kubeapps.Deployment {
	labels := map[string]string{
		LabelApp:      spec.AppLabel,
		LabelDispense: LabelDispenseValue,
	}
	return &kubeapps.Deployment{
		ObjectMeta: kubeapimeta.ObjectMeta{
			Name:      spec.Name,
			Namespace: spec.Namespace,
			Labels:    labels,
		},
		Spec: kubeapps.DeploymentSpec{
			Replicas: pointer.Ref(spec.Replicas),
			Selector: &kubeapimeta.LabelSelector{
				MatchLabels: map[string]string{LabelApp: spec.AppLabel},
			},
			Template: kubecore.PodTemplateSpec{
				ObjectMeta: kubeapimeta.ObjectMeta{Labels: labels},
				Spec: kubecore.PodSpec{
					Containers:    spec.Containers,
					RestartPolicy: kubecore.RestartPolicyAlways,
				},
			},
		},
	}
}

func ServiceManifest(spec ServiceSpec) *kubecore.Service {
	return &kubecore.Service{
		ObjectMeta: kubeapimeta.ObjectMeta{
			Name:      spec.Name,
			Namespace: spec.Namespace,
			Labels: map[string]string{
				LabelDispense: LabelDispenseValue,
			},
		},
		Spec: kubecore.ServiceSpec{
			Selector: map[string]string{LabelApp: spec.AppLabel},
			Ports: []kubecore.ServicePort{
				{
					Port:       spec.Port,
					TargetPort: intstr.FromInt32(spec.Port),
				},
			},
		},
	}
}

func IngressManifest(spec IngressSpec) *kubenet.Ingress {
	paths := make([]kubenet.HTTPIngressPath, 0, len(spec.Paths))
	for _, p := range spec.Paths {
		path := p.Path
		if path == "" {
			path = "/"
		}
		paths = append(paths, kubenet.HTTPIngressPath{
			Path:     path,
			PathType: pointer.Ref(kubenet.PathTypePrefix),
			Backend: kubenet.IngressBackend{
				Service: &kubenet.IngressServiceBackend{
					Name: p.SvcName,
					Port: kubenet.ServiceBackendPort{Number: p.SvcPort},
				},
			},
		})
	}
	return &kubenet.Ingress{
		ObjectMeta: kubeapimeta.ObjectMeta{
			Name:      spec.Name,
			Namespace: spec.Namespace,
			Labels: map[string]string{
				LabelDispense: LabelDispenseValue,
			},
		},
		Spec: kubenet.IngressSpec{
			Rules: []kubenet.IngressRule{
				{
					Host: spec.Host,
					IngressRuleValue: kubenet.IngressRuleValue{
						HTTP: &kubenet.HTTPIngressRuleValue{Paths: paths},
					},
				},
			},
		},
	}
}
