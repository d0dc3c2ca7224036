package mocks

import (
	"context"
	"errors"

	"github.com/pegasus-cloud/pegasus/pkg/buildengine"
	kdbmock "github.com/pegasus-cloud/pegasus/pkg/internal/db/mock"
)

type ImageArgs struct {
	RepoName string
	Tag      string
}

type RuleArgs struct {
	RepoName string
	Tag      string
	RuleId   int64
}

type StartBuildArgs struct {
	RepoName string
	RuleId   int64
}

type GetTagsArgs struct {
	RepoName string
	Page     int
}

type Engine struct {
	Impl struct {
		GetRepo         func(context.Context, string) (buildengine.Repo, error)
		CreateRepo      func(context.Context, buildengine.RepoCreateInfo) error
		DeleteRepo      func(context.Context, string) error
		DeleteImage     func(context.Context, string, string) error
		CreateBuildRule func(context.Context, buildengine.BuildRule) error
		GetBuildRules   func(context.Context, string) ([]buildengine.BuildRuleDetail, error)
		DeleteBuildRule func(context.Context, string, string, int64) error
		StartBuild      func(context.Context, string, int64) error
		GetTags         func(context.Context, string, int) (buildengine.TagPage, error)
	}
	Calls struct {
		GetRepo         kdbmock.CallLog[string]
		CreateRepo      kdbmock.CallLog[buildengine.RepoCreateInfo]
		DeleteRepo      kdbmock.CallLog[string]
		DeleteImage     kdbmock.CallLog[ImageArgs]
		CreateBuildRule kdbmock.CallLog[buildengine.BuildRule]
		GetBuildRules   kdbmock.CallLog[string]
		DeleteBuildRule kdbmock.CallLog[RuleArgs]
		StartBuild      kdbmock.CallLog[StartBuildArgs]
		GetTags         kdbmock.CallLog[GetTagsArgs]
	}
}

var _ buildengine.Engine = &Engine{}

func NewEngine() *Engine {
	return &Engine{}
}

func (m *Engine) GetRepo(ctx context.Context, name string) (buildengine.Repo, error) {
	m.Calls.GetRepo = append(m.Calls.GetRepo, name)
	if m.Impl.GetRepo != nil {
		return m.Impl.GetRepo(ctx, name)
	}
	panic(errors.New("should not be called"))
}

func (m *Engine) CreateRepo(ctx context.Context, info buildengine.RepoCreateInfo) error {
	m.Calls.CreateRepo = append(m.Calls.CreateRepo, info)
	if m.Impl.CreateRepo != nil {
		return m.Impl.CreateRepo(ctx, info)
	}
	panic(errors.New("should not be called"))
}

func (m *Engine) DeleteRepo(ctx context.Context, name string) error {
	m.Calls.DeleteRepo = append(m.Calls.DeleteRepo, name)
	if m.Impl.DeleteRepo != nil {
		return m.Impl.DeleteRepo(ctx, name)
	}
	panic(errors.New("should not be called"))
}

func (m *Engine) DeleteImage(ctx context.Context, repoName string, tag string) error {
	m.Calls.DeleteImage = append(m.Calls.DeleteImage, ImageArgs{RepoName: repoName, Tag: tag})
	if m.Impl.DeleteImage != nil {
		return m.Impl.DeleteImage(ctx, repoName, tag)
	}
	panic(errors.New("should not be called"))
}

func (m *Engine) CreateBuildRule(ctx context.Context, rule buildengine.BuildRule) error {
	m.Calls.CreateBuildRule = append(m.Calls.CreateBuildRule, rule)
	if m.Impl.CreateBuildRule != nil {
		return m.Impl.CreateBuildRule(ctx, rule)
	}
	panic(errors.New("should not be called"))
}

func (m *Engine) GetBuildRules(ctx context.Context, repoName string) ([]buildengine.BuildRuleDetail, error) {
	m.Calls.GetBuildRules = append(m.Calls.GetBuildRules, repoName)
	if m.Impl.GetBuildRules != nil {
		return m.Impl.GetBuildRules(ctx, repoName)
	}
	panic(errors.New("should not be called"))
}

func (m *Engine) DeleteBuildRule(ctx context.Context, repoName string, tag string, ruleId int64) error {
	m.Calls.DeleteBuildRule = append(m.Calls.DeleteBuildRule, RuleArgs{
		RepoName: repoName, Tag: tag, RuleId: ruleId,
	})
	if m.Impl.DeleteBuildRule != nil {
		return m.Impl.DeleteBuildRule(ctx, repoName, tag, ruleId)
	}
	panic(errors.New("should not be called"))
}

func (m *Engine) StartBuild(ctx context.Context, repoName string, ruleId int64) error {
	m.Calls.StartBuild = append(m.Calls.StartBuild, StartBuildArgs{RepoName: repoName, RuleId: ruleId})
	if m.Impl.StartBuild != nil {
		return m.Impl.StartBuild(ctx, repoName, ruleId)
	}
	panic(errors.New("should not be called"))
}

func (m *Engine) GetTags(ctx context.Context, repoName string, page int) (buildengine.TagPage, error) {
	m.Calls.GetTags = append(m.Calls.GetTags, GetTagsArgs{RepoName: repoName, Page: page})
	if m.Impl.GetTags != nil {
		return m.Impl.GetTags(ctx, repoName, page)
	}
	panic(errors.New("should not be called"))
}
