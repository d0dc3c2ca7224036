package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apidepartments "github.com/pegasus-cloud/pegasus/pkg/api/types/departments"
	apierr "github.com/pegasus-cloud/pegasus/pkg/api/types/errors"
	kdbdep "github.com/pegasus-cloud/pegasus/pkg/domain/department/db"
	kerr "github.com/pegasus-cloud/pegasus/pkg/domain/errors"
)

// CreateDepartmentHandler registers a department without an admin.
func CreateDepartmentHandler(dbDepartment kdbdep.DepartmentInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apidepartments.CreateRequest](c)
		if herr != nil {
			return herr
		}
		if req.Name == "" {
			return apierr.BadRequest("name should not be empty", nil)
		}

		department, err := dbDepartment.New(ctx, req.Name)
		if err != nil {
			if errors.Is(err, kerr.ErrConflict) {
				return apierr.Conflict("department already exists", apierr.WithError(err))
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apidepartments.ComposeDetail(department))
	}
}

// SetDepartmentAdminHandler points the department admin at a user.
func SetDepartmentAdminHandler(dbDepartment kdbdep.DepartmentInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apidepartments.AdminRequest](c)
		if herr != nil {
			return herr
		}
		if req.Admin == nil {
			return apierr.BadRequest("admin field must be specified", nil)
		}

		department, err := dbDepartment.SetAdmin(ctx, req.Id, *req.Admin)
		if errors.Is(err, kerr.ErrMissing) {
			return apierr.NotFound()
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apidepartments.ComposeDetail(department))
	}
}
