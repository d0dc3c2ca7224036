package registries

import (
	"github.com/google/uuid"

	"github.com/pegasus-cloud/pegasus/pkg/buildengine"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
)

// RepoCreateRequest carries both the engine-facing repository settings
// and the ledger-facing ownership fields.
type RepoCreateRequest struct {
	Name         string     `json:"name"`
	Summary      string     `json:"summary"`
	IsOverSea    bool       `json:"isOverSea"`
	DisableCache bool       `json:"disableCache"`
	IsPublic     bool       `json:"is_public"`
	BelongTo     *uuid.UUID `json:"belong_to"`
}

func (r RepoCreateRequest) EngineInfo() buildengine.RepoCreateInfo {
	return buildengine.RepoCreateInfo{
		Name:         r.Name,
		Summary:      r.Summary,
		IsOverSea:    r.IsOverSea,
		DisableCache: r.DisableCache,
	}
}

type RepoRequest struct {
	RepoName string `json:"repoName"`
}

type ImageRequest struct {
	RepoName string `json:"repoName"`
	Tag      string `json:"tag"`
}

type RuleRequest struct {
	RepoName   string `json:"repoName"`
	Tag        string `json:"tag"`
	Dockerfile string `json:"dockerfile"`
}

type RuleStartRequest struct {
	RepoName    string `json:"repoName"`
	BuildRuleId int64  `json:"buildRuleId"`
}

type RuleDeleteRequest struct {
	RepoName    string `json:"repoName"`
	Tag         string `json:"tag"`
	BuildRuleId int64  `json:"buildRuleId"`
}

type RepoDetail struct {
	Id       int        `json:"id"`
	BelongTo *uuid.UUID `json:"belong_to"`
	RepoName string     `json:"repo_name"`
	IsPublic bool       `json:"is_public"`
	IsValid  bool       `json:"is_valid"`
}

func ComposeRepoDetail(r domain.Repository) RepoDetail {
	return RepoDetail{
		Id:       r.Id,
		BelongTo: r.BelongTo,
		RepoName: r.RepoName,
		IsPublic: r.IsPublic,
		IsValid:  r.IsValid,
	}
}
