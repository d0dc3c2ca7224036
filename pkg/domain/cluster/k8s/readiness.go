package k8s

import (
	kubeapps "k8s.io/api/apps/v1"
	kubecore "k8s.io/api/core/v1"
)

// readiness projection: cluster object status fields reduced to one boolean.

// DeploymentReady reports whether the first status condition of d is
// {type: Available, status: "True"}. Absence of conditions means not ready.
func DeploymentReady(d *kubeapps.Deployment) bool {
	if d == nil || len(d.Status.Conditions) == 0 {
		return false
	}
	head := d.Status.Conditions[0]
	return head.Type == kubeapps.DeploymentAvailable &&
		head.Status == kubecore.ConditionTrue
}

// PodReady reports whether the pod phase is Running.
func PodReady(p *kubecore.Pod) bool {
	return p != nil && p.Status.Phase == kubecore.PodRunning
}

// NamespaceReady reports whether the namespace phase is Active.
func NamespaceReady(ns *kubecore.Namespace) bool {
	return ns != nil && ns.Status.Phase == kubecore.NamespaceActive
}

// WorkloadState is the projection of one cluster object.
type WorkloadState struct {
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// GroupPods assigns pods to deployments by selector-superset match.
//
// Every deployment name is present in the result, with the names of pods
// whose labels contain all of the deployment's selector matchLabels.
// No caching; callers recompute per request.
func GroupPods(deployments []kubeapps.Deployment, pods []kubecore.Pod) map[string][]string {
	grouped := map[string][]string{}
	for _, d := range deployments {
		members := []string{}
		if d.Spec.Selector != nil {
			for _, p := range pods {
				if SelectorMatches(d.Spec.Selector.MatchLabels, p.Labels) {
					members = append(members, p.Name)
				}
			}
		}
		grouped[d.Name] = members
	}
	return grouped
}
