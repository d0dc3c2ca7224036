package kubeutil

import (
	"os"
	"path/filepath"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// ConnectToK8s builds a *kubernetes.Clientset from the first kubeconfig found.
//
// Search order, least to most preferred:
//
// - `~/.kube/config`
//
// - environment variable `KUBECONFIG`
//
// - the first existing file in kubeconfigSearchPath
//
// When no file is found it falls back to in-cluster config.
func ConnectToK8s(kubeconfigSearchPath ...string) (*kubernetes.Clientset, error) {
	kubeconfig := ""

	if home := homedir.HomeDir(); home != "" {
		candidate := filepath.Join(home, ".kube", "config")
		if s, err := os.Stat(candidate); err == nil && !s.IsDir() {
			kubeconfig = candidate
		}
	}

	if k := os.Getenv("KUBECONFIG"); k != "" {
		if s, err := os.Stat(k); err == nil && !s.IsDir() {
			kubeconfig = k
		}
	}

	for _, sp := range kubeconfigSearchPath {
		if s, err := os.Stat(sp); err == nil && !s.IsDir() {
			kubeconfig = sp
			break
		}
	}

	var config *rest.Config
	var err error
	if kubeconfig == "" {
		config, err = rest.InClusterConfig()
	} else {
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	}
	if err != nil {
		return nil, err
	}

	return kubernetes.NewForConfig(config)
}
