package k8s_test

import (
	"testing"

	"github.com/pegasus-cloud/pegasus/pkg/domain/cluster/k8s"
	"github.com/pegasus-cloud/pegasus/pkg/utils/cmp"
	kubeapps "k8s.io/api/apps/v1"
	kubecore "k8s.io/api/core/v1"
	kubeapimeta "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestDeploymentReady(t *testing.T) {
	type When struct {
		conditions []kubeapps.DeploymentCondition
	}
	type Then struct {
		ready bool
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			depl := &kubeapps.Deployment{
				Status: kubeapps.DeploymentStatus{Conditions: when.conditions},
			}
			if actual := k8s.DeploymentReady(depl); actual != then.ready {
				t.Errorf("ready: got %v, want %v", actual, then.ready)
			}
		}
	}

	t.Run("when the first condition is Available=True, it is ready", theory(
		When{conditions: []kubeapps.DeploymentCondition{
			{Type: kubeapps.DeploymentAvailable, Status: kubecore.ConditionTrue},
			{Type: kubeapps.DeploymentProgressing, Status: kubecore.ConditionFalse},
		}},
		Then{ready: true},
	))
	t.Run("when the first condition is Available=False, it is not ready", theory(
		When{conditions: []kubeapps.DeploymentCondition{
			{Type: kubeapps.DeploymentAvailable, Status: kubecore.ConditionFalse},
		}},
		Then{ready: false},
	))
	t.Run("when the first condition is not Available, it is not ready", theory(
		When{conditions: []kubeapps.DeploymentCondition{
			{Type: kubeapps.DeploymentProgressing, Status: kubecore.ConditionTrue},
			{Type: kubeapps.DeploymentAvailable, Status: kubecore.ConditionTrue},
		}},
		Then{ready: false},
	))
	t.Run("when there are no conditions, it is not ready", theory(
		When{conditions: nil},
		Then{ready: false},
	))
}

func TestPodReady(t *testing.T) {
	for phase, want := range map[kubecore.PodPhase]bool{
		kubecore.PodRunning:   true,
		kubecore.PodPending:   false,
		kubecore.PodSucceeded: false,
		kubecore.PodFailed:    false,
	} {
		pod := &kubecore.Pod{Status: kubecore.PodStatus{Phase: phase}}
		if actual := k8s.PodReady(pod); actual != want {
			t.Errorf("phase %s: got %v, want %v", phase, actual, want)
		}
	}
}

func TestNamespaceReady(t *testing.T) {
	for phase, want := range map[kubecore.NamespacePhase]bool{
		kubecore.NamespaceActive:      true,
		kubecore.NamespaceTerminating: false,
	} {
		ns := &kubecore.Namespace{Status: kubecore.NamespaceStatus{Phase: phase}}
		if actual := k8s.NamespaceReady(ns); actual != want {
			t.Errorf("phase %s: got %v, want %v", phase, actual, want)
		}
	}
}

func TestSelectorMatches(t *testing.T) {
	type When struct {
		selector map[string]string
		labels   map[string]string
	}
	type Then struct {
		matches bool
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			if actual := k8s.SelectorMatches(when.selector, when.labels); actual != then.matches {
				t.Errorf("matches: got %v, want %v", actual, then.matches)
			}
		}
	}

	t.Run("when every selector entry is carried by the labels, it matches", theory(
		When{
			selector: map[string]string{"pegasus.name/app": "web"},
			labels:   map[string]string{"pegasus.name/app": "web", "extra": "yes"},
		},
		Then{matches: true},
	))
	t.Run("when a selector value differs, it does not match", theory(
		When{
			selector: map[string]string{"pegasus.name/app": "web"},
			labels:   map[string]string{"pegasus.name/app": "api"},
		},
		Then{matches: false},
	))
	t.Run("when a selector key is absent, it does not match", theory(
		When{
			selector: map[string]string{"pegasus.name/app": "web"},
			labels:   map[string]string{"extra": "yes"},
		},
		Then{matches: false},
	))
	t.Run("when the selector is empty, it matches nothing", theory(
		When{
			selector: map[string]string{},
			labels:   map[string]string{"pegasus.name/app": "web"},
		},
		Then{matches: false},
	))
}

func TestGroupPods(t *testing.T) {
	deployment := func(name string, selector map[string]string) kubeapps.Deployment {
		return kubeapps.Deployment{
			ObjectMeta: kubeapimeta.ObjectMeta{Name: name},
			Spec: kubeapps.DeploymentSpec{
				Selector: &kubeapimeta.LabelSelector{MatchLabels: selector},
			},
		}
	}
	pod := func(name string, labels map[string]string) kubecore.Pod {
		return kubecore.Pod{
			ObjectMeta: kubeapimeta.ObjectMeta{Name: name, Labels: labels},
		}
	}

	deployments := []kubeapps.Deployment{
		deployment("web", map[string]string{k8s.LabelApp: "web"}),
		deployment("api", map[string]string{k8s.LabelApp: "api"}),
		deployment("selectorless", nil),
	}
	pods := []kubecore.Pod{
		pod("web-1", map[string]string{k8s.LabelApp: "web", "pod-template-hash": "aaa"}),
		pod("web-2", map[string]string{k8s.LabelApp: "web", "pod-template-hash": "bbb"}),
		pod("api-1", map[string]string{k8s.LabelApp: "api"}),
		pod("orphan", map[string]string{"unrelated": "true"}),
	}

	grouped := k8s.GroupPods(deployments, pods)

	want := map[string][]string{
		"web":          {"web-1", "web-2"},
		"api":          {"api-1"},
		"selectorless": {},
	}
	if !cmp.MapEqWith(grouped, want, cmp.SliceContentEq[string]) {
		t.Errorf("grouped pods:\ngot  %+v\nwant %+v", grouped, want)
	}
}
