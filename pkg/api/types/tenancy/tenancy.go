package tenancy

import (
	"github.com/google/uuid"

	"github.com/pegasus-cloud/pegasus/pkg/domain"
)

type CreateRequest struct {
	Uid uuid.UUID `json:"uid"`
	Ns  string    `json:"ns"`
}

type DeleteRequest struct {
	Uid       uuid.UUID `json:"uid"`
	Namespace string    `json:"namespace"`
}

type Detail struct {
	Id        int       `json:"id"`
	Uid       uuid.UUID `json:"uid"`
	Namespace string    `json:"namespace"`
	Valid     bool      `json:"valid"`
}

func ComposeDetail(n domain.TenantNamespace) Detail {
	return Detail{Id: n.Id, Uid: n.Owner, Namespace: n.Namespace, Valid: n.Valid}
}
