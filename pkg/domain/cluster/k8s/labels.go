package k8s

// ownership/tagging convention for objects dispensed by pegasus.
const (
	// LabelApp tags workload objects with the user-chosen app name.
	LabelApp = "pegasus.name/app"

	// LabelDispense marks objects as dispensed by pegasus.
	LabelDispense = "pegasus.state/dispense"

	// LabelDispenseValue is the only value ever set for LabelDispense.
	LabelDispenseValue = "pegasus"

	// LabelNodeRole is the node label surfaced on the cluster-admin API.
	LabelNodeRole = "pegasus-role"
)

// SelectorMatches reports whether labels is a superset of selector:
// every key of selector must be present in labels with an equal value.
func SelectorMatches(selector map[string]string, labels map[string]string) bool {
	if len(selector) == 0 {
		return false
	}
	for k, v := range selector {
		if labels[k] != v {
			return false
		}
	}
	return true
}
