package departments

import (
	"github.com/google/uuid"

	"github.com/pegasus-cloud/pegasus/pkg/domain"
)

type CreateRequest struct {
	Name string `json:"name"`
}

// AdminRequest points the department admin at a user.
// Admin stays a pointer so a missing field is distinguishable from
// the zero uuid.
type AdminRequest struct {
	Id    int        `json:"id"`
	Admin *uuid.UUID `json:"admin"`
}

type Detail struct {
	Id    int        `json:"id"`
	Name  string     `json:"name"`
	Admin *uuid.UUID `json:"admin"`
}

func ComposeDetail(d domain.Department) Detail {
	return Detail{Id: d.Id, Name: d.Name, Admin: d.Admin}
}
