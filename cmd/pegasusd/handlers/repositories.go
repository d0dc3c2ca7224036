package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apienvelope "github.com/pegasus-cloud/pegasus/pkg/api/types/envelope"
	apierr "github.com/pegasus-cloud/pegasus/pkg/api/types/errors"
	apiregistries "github.com/pegasus-cloud/pegasus/pkg/api/types/registries"
	"github.com/pegasus-cloud/pegasus/pkg/buildengine"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	kdbreg "github.com/pegasus-cloud/pegasus/pkg/domain/registry/db"
	"github.com/pegasus-cloud/pegasus/pkg/gitstore"
)

// CreateRepositoryHandler creates a repository in the build engine,
// initializes its source-control directory and writes the ledger row.
//
// The ledger gates the whole flow: an Active row refuses the request
// before any external call; a Deleted row skips the directory
// initialization since it may survive from the previous cycle.
func CreateRepositoryHandler(
	dbRegistry kdbreg.RegistryInterface,
	engine buildengine.Engine,
	store gitstore.GitStore,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiregistries.RepoCreateRequest](c)
		if herr != nil {
			return herr
		}
		if req.Name == "" {
			return apierr.BadRequest("name should not be empty", nil)
		}

		state, err := dbRegistry.RepositoryState(ctx, req.Name)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		if state == domain.RecordActive {
			return c.JSON(http.StatusOK, apienvelope.Refused("The repository exists already"))
		}
		noRecord := state.NoRecord()

		if err := engine.CreateRepo(ctx, req.EngineInfo()); err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("build engine refused to create the repository"))
		}
		if err := store.CreateDirectory(ctx, req.Name, noRecord); err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("source control directory could not be initialized"))
		}

		registered, err := dbRegistry.RegisterRepository(
			ctx, req.BelongTo, req.Name, req.IsPublic, noRecord,
		)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apienvelope.Carry(
			"Repository created successfully!", apiregistries.ComposeRepoDetail(registered),
		))
	}
}

// GetRepositoryHandler proxies the repository detail of the build engine.
func GetRepositoryHandler(engine buildengine.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		name := c.QueryParam("repoName")
		if name == "" {
			return apierr.BadRequest("repoName should not be empty", nil)
		}

		repo, err := engine.GetRepo(ctx, name)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("build engine could not be queried"))
		}

		return c.JSON(http.StatusOK, repo)
	}
}

// DeleteRepositoryHandler deletes the repository from the build engine
// and soft-deletes the ledger row. Neither step is rolled back when
// the other fails.
func DeleteRepositoryHandler(
	dbRegistry kdbreg.RegistryInterface,
	engine buildengine.Engine,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiregistries.RepoRequest](c)
		if herr != nil {
			return herr
		}

		if err := engine.DeleteRepo(ctx, req.RepoName); err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("build engine refused to delete the repository"))
		}
		if err := dbRegistry.InvalidateRepository(ctx, req.RepoName); err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apienvelope.OK(
			fmt.Sprintf("Repository %s deleted", req.RepoName),
		))
	}
}

// ListRepositoriesHandler lists repository names: the public ones, or
// those of the user named by the id query parameter.
func ListRepositoriesHandler(dbRegistry kdbreg.RegistryInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if rawId := c.QueryParam("id"); rawId != "" {
			owner, err := uuid.Parse(rawId)
			if err != nil {
				return apierr.BadRequest("id should be a UUID", err)
			}
			owned, err := dbRegistry.OwnedRepositories(ctx, owner)
			if err != nil {
				return apierr.InternalServerError(err)
			}
			return c.JSON(http.StatusOK, owned)
		}

		public, err := dbRegistry.PublicRepositories(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, public)
	}
}

// DeleteImageHandler removes one tagged image from the build engine.
func DeleteImageHandler(engine buildengine.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiregistries.ImageRequest](c)
		if herr != nil {
			return herr
		}

		if err := engine.DeleteImage(ctx, req.RepoName, req.Tag); err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("build engine refused to delete the image"))
		}

		return c.JSON(http.StatusOK, apienvelope.OK(
			fmt.Sprintf("Image %s:%s deleted successfully", req.RepoName, req.Tag),
		))
	}
}

// CreateBuildRuleHandler stores the Dockerfile, registers the build
// rule with the engine and writes the tag ledger row, in that order.
func CreateBuildRuleHandler(
	dbRegistry kdbreg.RegistryInterface,
	engine buildengine.Engine,
	store gitstore.GitStore,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiregistries.RuleRequest](c)
		if herr != nil {
			return herr
		}

		state, err := dbRegistry.TagState(ctx, req.RepoName, req.Tag)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		if state == domain.RecordActive {
			return c.JSON(http.StatusOK, apienvelope.Refused("Build rule exists already"))
		}
		noRecord := state.NoRecord()

		if err := store.CreateFile(ctx, req.RepoName, req.Tag, req.Dockerfile, noRecord); err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("Dockerfile could not be stored"))
		}
		if err := engine.CreateBuildRule(ctx, buildengine.BuildRule{
			RepoName:   req.RepoName,
			Tag:        req.Tag,
			Dockerfile: req.Dockerfile,
		}); err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("build engine refused to create the rule"))
		}
		if _, err := dbRegistry.RegisterTag(ctx, req.RepoName, req.Tag, noRecord); err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apienvelope.OK("Build rule create successfully"))
	}
}

// BuildRulesHandler lists the build rules of a repository.
func BuildRulesHandler(engine buildengine.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		name := c.QueryParam("repoName")
		if name == "" {
			return apierr.BadRequest("repoName should not be empty", nil)
		}

		rules, err := engine.GetBuildRules(ctx, name)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("build engine could not be queried"))
		}

		return c.JSON(http.StatusOK, rules)
	}
}

// StartBuildHandler triggers one build rule.
func StartBuildHandler(engine buildengine.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiregistries.RuleStartRequest](c)
		if herr != nil {
			return herr
		}

		if err := engine.StartBuild(ctx, req.RepoName, req.BuildRuleId); err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("build engine refused to start the build"))
		}

		return c.JSON(http.StatusOK, apienvelope.OK("Start build rule successfully"))
	}
}

// TagsHandler pages through the tags of a repository.
func TagsHandler(engine buildengine.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		name := c.QueryParam("name")
		if name == "" {
			return apierr.BadRequest("name should not be empty", nil)
		}
		page, err := strconv.Atoi(c.QueryParam("page"))
		if err != nil {
			return apierr.BadRequest("page should be an integer", err)
		}

		tags, err := engine.GetTags(ctx, name, page)
		if err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("build engine could not be queried"))
		}

		return c.JSON(http.StatusOK, tags)
	}
}

// DeleteBuildRuleHandler deletes a build rule from the engine and
// soft-deletes the tag ledger row.
func DeleteBuildRuleHandler(
	dbRegistry kdbreg.RegistryInterface,
	engine buildengine.Engine,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiregistries.RuleDeleteRequest](c)
		if herr != nil {
			return herr
		}

		if err := engine.DeleteBuildRule(ctx, req.RepoName, req.Tag, req.BuildRuleId); err != nil {
			return apierr.InternalServerError(err, apierr.WithAdvice("build engine refused to delete the rule"))
		}
		if err := dbRegistry.InvalidateTag(ctx, req.RepoName, req.Tag); err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apienvelope.OK("Build rule deleted successfully"))
	}
}
