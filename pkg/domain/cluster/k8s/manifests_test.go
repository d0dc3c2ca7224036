package k8s_test

import (
	"testing"

	"github.com/pegasus-cloud/pegasus/pkg/domain/cluster/k8s"
	"github.com/pegasus-cloud/pegasus/pkg/utils/cmp"
	kubecore "k8s.io/api/core/v1"
	kubenet "k8s.io/api/networking/v1"
)

func TestDeploymentSpec_ValidateImages(t *testing.T) {
	type When struct {
		images []string
	}
	type Then struct {
		wantErr bool
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			containers := make([]kubecore.Container, 0, len(when.images))
			for _, img := range when.images {
				containers = append(containers, kubecore.Container{Name: "c", Image: img})
			}
			spec := k8s.DeploymentSpec{Name: "d", Namespace: "ns", Containers: containers}

			err := spec.ValidateImages()
			if (err != nil) != then.wantErr {
				t.Errorf("err: got %v, wantErr %v", err, then.wantErr)
			}
		}
	}

	t.Run("well-formed references pass", theory(
		When{images: []string{
			"nginx",
			"nginx:1.27",
			"ghcr.io/example/app:v1.2.3",
			"registry.example.com:5000/team/app@sha256:0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
		}},
		Then{wantErr: false},
	))
	t.Run("a malformed reference is rejected", theory(
		When{images: []string{"nginx", "UPPERCASE/not allowed:tag"}},
		Then{wantErr: true},
	))
	t.Run("no containers pass vacuously", theory(
		When{images: nil},
		Then{wantErr: false},
	))
}

func TestNamespaceManifest(t *testing.T) {
	ns := k8s.NamespaceManifest("ns-1")
	if ns.Name != "ns-1" {
		t.Errorf("name: got %q, want %q", ns.Name, "ns-1")
	}
	if !cmp.MapEq(ns.Labels, map[string]string{k8s.LabelDispense: k8s.LabelDispenseValue}) {
		t.Errorf("labels: got %v", ns.Labels)
	}
}

func TestDeploymentManifest(t *testing.T) {
	spec := k8s.DeploymentSpec{
		Name:      "web",
		Namespace: "ns-1",
		AppLabel:  "web",
		Replicas:  3,
		Containers: []kubecore.Container{
			{Name: "web", Image: "nginx:1.27"},
		},
	}
	depl := k8s.DeploymentManifest(spec)

	if depl.Name != "web" || depl.Namespace != "ns-1" {
		t.Errorf("metadata: got %s/%s", depl.Namespace, depl.Name)
	}
	if depl.Spec.Replicas == nil || *depl.Spec.Replicas != 3 {
		t.Errorf("replicas: got %v, want 3", depl.Spec.Replicas)
	}
	wantSelector := map[string]string{k8s.LabelApp: "web"}
	if !cmp.MapEq(depl.Spec.Selector.MatchLabels, wantSelector) {
		t.Errorf("selector: got %v, want %v", depl.Spec.Selector.MatchLabels, wantSelector)
	}
	// the pod template labels must satisfy the selector
	if !k8s.SelectorMatches(depl.Spec.Selector.MatchLabels, depl.Spec.Template.Labels) {
		t.Errorf("template labels %v do not satisfy selector %v",
			depl.Spec.Template.Labels, depl.Spec.Selector.MatchLabels)
	}
	if depl.Labels[k8s.LabelDispense] != k8s.LabelDispenseValue {
		t.Errorf("dispense label: got %v", depl.Labels)
	}
	if depl.Spec.Template.Spec.RestartPolicy != kubecore.RestartPolicyAlways {
		t.Errorf("restart policy: got %s", depl.Spec.Template.Spec.RestartPolicy)
	}
}

func TestServiceManifest(t *testing.T) {
	svc := k8s.ServiceManifest(k8s.ServiceSpec{
		Name: "web-svc", Namespace: "ns-1", AppLabel: "web", Port: 8080,
	})

	if !cmp.MapEq(svc.Spec.Selector, map[string]string{k8s.LabelApp: "web"}) {
		t.Errorf("selector: got %v", svc.Spec.Selector)
	}
	if len(svc.Spec.Ports) != 1 {
		t.Fatalf("ports: got %d, want 1", len(svc.Spec.Ports))
	}
	port := svc.Spec.Ports[0]
	if port.Port != 8080 || port.TargetPort.IntValue() != 8080 {
		t.Errorf("port: got %d -> %s", port.Port, port.TargetPort.String())
	}
}

func TestIngressManifest(t *testing.T) {
	ing := k8s.IngressManifest(k8s.IngressSpec{
		Name:      "web-ing",
		Namespace: "ns-1",
		Host:      "web.example.com",
		Paths: []k8s.IngressPath{
			{Path: "", SvcName: "web-svc", SvcPort: 8080},
			{Path: "/api", SvcName: "api-svc", SvcPort: 9090},
		},
	})

	if len(ing.Spec.Rules) != 1 {
		t.Fatalf("rules: got %d, want 1", len(ing.Spec.Rules))
	}
	rule := ing.Spec.Rules[0]
	if rule.Host != "web.example.com" {
		t.Errorf("host: got %q", rule.Host)
	}
	paths := rule.HTTP.Paths
	if len(paths) != 2 {
		t.Fatalf("paths: got %d, want 2", len(paths))
	}
	if paths[0].Path != "/" {
		t.Errorf("empty path should default to /: got %q", paths[0].Path)
	}
	if paths[1].Path != "/api" || paths[1].Backend.Service.Name != "api-svc" {
		t.Errorf("path[1]: got %+v", paths[1])
	}
	for _, p := range paths {
		if p.PathType == nil || *p.PathType != kubenet.PathTypePrefix {
			t.Errorf("path type: got %v", p.PathType)
		}
	}
}
