package handlers

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	apierr "github.com/pegasus-cloud/pegasus/pkg/api/types/errors"
)

// bind decodes the JSON request body into T.
func bind[T any](c echo.Context) (T, *echo.HTTPError) {
	var payload T
	if err := json.NewDecoder(c.Request().Body).Decode(&payload); err != nil {
		return payload, apierr.BadRequest("request body should be a JSON object", err)
	}
	return payload, nil
}
