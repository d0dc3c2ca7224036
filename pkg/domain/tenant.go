package domain

import "github.com/google/uuid"

// TenantNamespace is the ledger row tracking a Kubernetes namespace
// dispensed to a user. Soft-deleted via Valid.
type TenantNamespace struct {
	Id        int
	Owner     uuid.UUID
	Namespace string
	Valid     bool
}

func (n TenantNamespace) State() RecordState {
	return StateOfRecord(true, n.Valid)
}
