package db

import (
	kdbdep "github.com/pegasus-cloud/pegasus/pkg/domain/department/db"
	kdbinv "github.com/pegasus-cloud/pegasus/pkg/domain/invitation/db"
	kdbreg "github.com/pegasus-cloud/pegasus/pkg/domain/registry/db"
	kdbschema "github.com/pegasus-cloud/pegasus/pkg/domain/schema/db"
	kdbtenant "github.com/pegasus-cloud/pegasus/pkg/domain/tenant/db"
	kdbuser "github.com/pegasus-cloud/pegasus/pkg/domain/user/db"
)

// PegasusDatabase bundles every persistence area behind one handle.
type PegasusDatabase interface {
	User() kdbuser.UserInterface
	Department() kdbdep.DepartmentInterface
	Invitation() kdbinv.InvitationInterface
	Tenant() kdbtenant.TenantInterface
	Registry() kdbreg.RegistryInterface
	Schema() kdbschema.SchemaInterface

	Close() error
}
