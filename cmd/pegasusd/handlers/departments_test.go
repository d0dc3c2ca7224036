package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	handlers "github.com/pegasus-cloud/pegasus/cmd/pegasusd/handlers"
	httptestutil "github.com/pegasus-cloud/pegasus/internal/testutils/http"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	depmocks "github.com/pegasus-cloud/pegasus/pkg/domain/department/db/mock"
	kerrpg "github.com/pegasus-cloud/pegasus/pkg/domain/errors/dberrors/postgres"
)

func TestCreateDepartmentHandler(t *testing.T) {
	t.Run("when the name is free, it should answer the new department", func(t *testing.T) {
		dbDepartment := depmocks.NewDepartmentInterface()
		dbDepartment.Impl.New = func(_ context.Context, name string) (domain.Department, error) {
			return domain.Department{Id: 3, Name: name}, nil
		}

		e := echo.New()
		c, rec := httptestutil.Post(
			e, "/api/departs/create",
			strings.NewReader(`{"name": "platform"}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.CreateDepartmentHandler(dbDepartment)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		actual := map[string]any{}
		if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not JSON: %s", err)
		}
		if actual["name"] != "platform" || actual["admin"] != nil {
			t.Errorf("unexpected department: %v", actual)
		}
	})

	t.Run("when the name is taken, it should answer 409", func(t *testing.T) {
		dbDepartment := depmocks.NewDepartmentInterface()
		dbDepartment.Impl.New = func(_ context.Context, name string) (domain.Department, error) {
			return domain.Department{}, kerrpg.Conflict{Table: "departments", Identity: name}
		}

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/departs/create",
			strings.NewReader(`{"name": "platform"}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.CreateDepartmentHandler(dbDepartment)
		err := testee(c)
		herr, ok := err.(*echo.HTTPError)
		if !ok || herr.Code != http.StatusConflict {
			t.Errorf("unexpected error: %s", err)
		}
	})
}

func TestSetDepartmentAdminHandler(t *testing.T) {
	t.Run("when the admin field is missing, it should answer 400", func(t *testing.T) {
		dbDepartment := depmocks.NewDepartmentInterface()

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/departs/admin",
			strings.NewReader(`{"id": 3}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.SetDepartmentAdminHandler(dbDepartment)
		err := testee(c)
		herr, ok := err.(*echo.HTTPError)
		if !ok || herr.Code != http.StatusBadRequest {
			t.Errorf("unexpected error: %s", err)
		}
		if len(dbDepartment.Calls.SetAdmin) != 0 {
			t.Error("SetAdmin should not be called")
		}
	})

	t.Run("when the admin is given, it should update the department", func(t *testing.T) {
		admin := uuid.New()
		dbDepartment := depmocks.NewDepartmentInterface()
		dbDepartment.Impl.SetAdmin = func(_ context.Context, id int, admin uuid.UUID) (domain.Department, error) {
			return domain.Department{Id: id, Name: "platform", Admin: &admin}, nil
		}

		e := echo.New()
		c, rec := httptestutil.Post(
			e, "/api/departs/admin",
			strings.NewReader(`{"id": 3, "admin": "`+admin.String()+`"}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.SetDepartmentAdminHandler(dbDepartment)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		args := dbDepartment.Calls.SetAdmin.Last()
		if args.Id != 3 || args.Admin != admin {
			t.Errorf("SetAdmin is called with %+v", args)
		}

		actual := map[string]any{}
		if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not JSON: %s", err)
		}
		if actual["admin"] != admin.String() {
			t.Errorf("unexpected admin: %v", actual["admin"])
		}
	})
}
