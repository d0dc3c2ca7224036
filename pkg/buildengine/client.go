package buildengine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const userAgent = "Pegasus pegasusd client"

// Engine is the remote image registry / build engine behind pegasusd.
//
// Every call is a synchronous HTTP round trip; the engine itself tracks
// build progress.
type Engine interface {
	// GetRepo fetches registry-side metadata of a repository.
	GetRepo(ctx context.Context, name string) (Repo, error)

	// CreateRepo registers a repository on the engine.
	CreateRepo(ctx context.Context, info RepoCreateInfo) error

	// DeleteRepo removes a repository and all of its images.
	DeleteRepo(ctx context.Context, name string) error

	// DeleteImage removes one tagged image from a repository.
	DeleteImage(ctx context.Context, repoName string, tag string) error

	// CreateBuildRule registers a build rule producing repoName:tag.
	CreateBuildRule(ctx context.Context, rule BuildRule) error

	// GetBuildRules lists build rules of a repository.
	GetBuildRules(ctx context.Context, repoName string) ([]BuildRuleDetail, error)

	// DeleteBuildRule removes a build rule.
	DeleteBuildRule(ctx context.Context, repoName string, tag string, ruleId int64) error

	// StartBuild triggers a build rule.
	StartBuild(ctx context.Context, repoName string, ruleId int64) error

	// GetTags lists tags of a repository, one page at a time.
	GetTags(ctx context.Context, repoName string, page int) (TagPage, error)
}

type client struct {
	httpclient *http.Client
	api        string
	token      string
}

var _ Engine = &client{}

// NewClient builds an Engine client for the API rooted at apiRoot.
func NewClient(apiRoot string, token string) Engine {
	return &client{
		httpclient: new(http.Client),
		api:        strings.TrimSuffix(apiRoot, "/"),
		token:      token,
	}
}

func (c *client) apipath(path ...string) string {
	for i, p := range path {
		path[i] = strings.TrimPrefix(strings.TrimSuffix(p, "/"), "/")
	}
	return strings.Join(append([]string{c.api}, path...), "/")
}

// post sends payload as JSON and decodes the response into v (when v is non-nil).
func (c *client) post(ctx context.Context, path string, payload any, v any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.apipath("repo", path), bytes.NewBuffer(b),
	)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpclient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if 400 <= resp.StatusCode {
		body, _ := io.ReadAll(resp.Body)
		if cr := new(commandResponse); json.Unmarshal(body, cr) == nil && cr.Msg != "" {
			return fmt.Errorf("engine error (status code = %d): %s", resp.StatusCode, cr.Msg)
		}
		return fmt.Errorf("engine error (status code = %d)", resp.StatusCode)
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("unexpected engine response: %w", err)
	}
	return nil
}

func (c *client) GetRepo(ctx context.Context, name string) (Repo, error) {
	var resp RepoResponse
	if err := c.post(ctx, "getRepo", map[string]string{"name": name}, &resp); err != nil {
		return Repo{}, err
	}
	return resp.Data, nil
}

func (c *client) CreateRepo(ctx context.Context, info RepoCreateInfo) error {
	return c.post(ctx, "createRepo", info, nil)
}

func (c *client) DeleteRepo(ctx context.Context, name string) error {
	return c.post(ctx, "deleteRepo", map[string]string{"name": name}, nil)
}

func (c *client) DeleteImage(ctx context.Context, repoName string, tag string) error {
	return c.post(ctx, "deleteImage", map[string]string{
		"repoName": repoName, "tag": tag,
	}, nil)
}

func (c *client) CreateBuildRule(ctx context.Context, rule BuildRule) error {
	return c.post(ctx, "createRepoRule", rule, nil)
}

func (c *client) GetBuildRules(ctx context.Context, repoName string) ([]BuildRuleDetail, error) {
	var resp BuildRulesResponse
	if err := c.post(ctx, "getRepoBuildRule", map[string]string{"repoName": repoName}, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *client) DeleteBuildRule(ctx context.Context, repoName string, tag string, ruleId int64) error {
	return c.post(ctx, "deleteRepoBuildRule", map[string]any{
		"repoName": repoName, "tag": tag, "ruleId": ruleId,
	}, nil)
}

func (c *client) StartBuild(ctx context.Context, repoName string, ruleId int64) error {
	return c.post(ctx, "startRepoBuild", map[string]any{
		"repoName": repoName, "ruleId": ruleId,
	}, nil)
}

func (c *client) GetTags(ctx context.Context, repoName string, page int) (TagPage, error) {
	var resp TagPage
	if err := c.post(ctx, "getRepoTags", map[string]any{
		"name": repoName, "page": page,
	}, &resp); err != nil {
		return TagPage{}, err
	}
	return resp, nil
}
