package gitstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// contentInit is "init\n", base64-encoded: the placeholder file making
// an otherwise-empty repository directory exist in git.
const contentInit = "aW5pdAo="

// lookup calls walk the whole tree and can be slow on large stores.
const lookupTimeout = 15 * time.Second

// GitStore keeps build contexts (Dockerfiles) in a git repository,
// one directory per image repository, one subdirectory per tag.
type GitStore interface {
	// CreateDirectory makes the directory for a brand-new repository.
	// It is a no-op unless noRecord: re-validated repositories already
	// have their directory.
	CreateDirectory(ctx context.Context, dirname string, noRecord bool) error

	// CreateFile writes the Dockerfile of repoName:tagName.
	// contentsBase64 is the base64-encoded file body. When the tag was
	// seen before (not noRecord), the current blob sha is looked up so
	// the write replaces instead of conflicts.
	CreateFile(ctx context.Context, repoName string, tagName string, contentsBase64 string, noRecord bool) error

	// ImageSha resolves the blob sha of the current Dockerfile of
	// repoName:tagName. Empty string when nothing is stored yet.
	ImageSha(ctx context.Context, repoName string, tagName string) (string, error)
}

type client struct {
	httpclient *http.Client
	api        string
	token      string
	owner      string
	repo       string
	branch     string
}

var _ GitStore = &client{}

func NewClient(apiRoot string, token string, owner string, repo string, branch string) GitStore {
	return &client{
		httpclient: new(http.Client),
		api:        strings.TrimSuffix(apiRoot, "/"),
		token:      token,
		owner:      owner,
		repo:       repo,
		branch:     branch,
	}
}

func (c *client) contentspath(path ...string) string {
	parts := append([]string{c.api, "repos", c.owner, c.repo, "contents"}, path...)
	return strings.Join(parts, "/")
}

func (c *client) gitpath(path ...string) string {
	parts := append([]string{c.api, "repos", c.owner, c.repo, "git"}, path...)
	return strings.Join(parts, "/")
}

func (c *client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.owner)
	req.Header.Set("Authorization", "token "+c.token)

	resp, err := c.httpclient.Do(req)
	if err != nil {
		return nil, err
	}
	if 400 <= resp.StatusCode {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf(
			"git store error (status code = %d): %s", resp.StatusCode, string(body),
		)
	}
	return resp, nil
}

func (c *client) put(ctx context.Context, url string, payload map[string]string) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *client) get(ctx context.Context, url string, v any) error {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(v)
}

func (c *client) CreateDirectory(ctx context.Context, dirname string, noRecord bool) error {
	if !noRecord {
		return nil
	}
	return c.put(ctx, c.contentspath(dirname, "init.txt"), map[string]string{
		"message": fmt.Sprintf("Add new image repo %s", dirname),
		"content": contentInit,
	})
}

func (c *client) CreateFile(ctx context.Context, repoName string, tagName string, contentsBase64 string, noRecord bool) error {
	payload := map[string]string{
		"message": fmt.Sprintf("Add new image tag %s dockerfile", tagName),
		"content": contentsBase64,
	}
	if !noRecord {
		sha, err := c.ImageSha(ctx, repoName, tagName)
		if err != nil {
			return err
		}
		payload["sha"] = sha
	}
	return c.put(ctx, c.contentspath(repoName, tagName, "Dockerfile"), payload)
}

// repoSha resolves the tree sha of the repository's directory at the
// branch head. Empty string when the directory does not exist.
func (c *client) repoSha(ctx context.Context, repoName string) (string, error) {
	var ref RefResponse
	if err := c.get(ctx, c.gitpath("ref", "heads", c.branch), &ref); err != nil {
		return "", err
	}

	var root TreeResponse
	if err := c.get(ctx, c.gitpath("trees", ref.Object.Sha), &root); err != nil {
		return "", err
	}

	return soleTreeSha(root.Tree, repoName), nil
}

func (c *client) ImageSha(ctx context.Context, repoName string, tagName string) (string, error) {
	repoSha, err := c.repoSha(ctx, repoName)
	if err != nil {
		return "", err
	}

	var repoTree TreeResponse
	if err := c.get(ctx, c.gitpath("trees", repoSha), &repoTree); err != nil {
		return "", err
	}
	tagSha := soleTreeSha(repoTree.Tree, tagName)
	if tagSha == "" {
		return "", nil
	}

	var tagTree TreeResponse
	if err := c.get(ctx, c.gitpath("trees", tagSha), &tagTree); err != nil {
		return "", err
	}
	if len(tagTree.Tree) == 0 {
		return "", nil
	}
	return tagTree.Tree[0].Sha, nil
}

// soleTreeSha picks the sha of the unique subtree named path.
// Ambiguous or missing entries yield the empty string.
func soleTreeSha(entries []TreeEntry, path string) string {
	found := ""
	for _, e := range entries {
		if e.Type != "tree" || e.Path != path {
			continue
		}
		if found != "" {
			return ""
		}
		found = e.Sha
	}
	return found
}
