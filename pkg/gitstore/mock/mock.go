package mocks

import (
	"context"
	"errors"

	kdbmock "github.com/pegasus-cloud/pegasus/pkg/internal/db/mock"
	"github.com/pegasus-cloud/pegasus/pkg/gitstore"
)

type CreateDirectoryArgs struct {
	Dirname  string
	NoRecord bool
}

type CreateFileArgs struct {
	RepoName       string
	TagName        string
	ContentsBase64 string
	NoRecord       bool
}

type ImageShaArgs struct {
	RepoName string
	TagName  string
}

type GitStore struct {
	Impl struct {
		CreateDirectory func(context.Context, string, bool) error
		CreateFile      func(context.Context, string, string, string, bool) error
		ImageSha        func(context.Context, string, string) (string, error)
	}
	Calls struct {
		CreateDirectory kdbmock.CallLog[CreateDirectoryArgs]
		CreateFile      kdbmock.CallLog[CreateFileArgs]
		ImageSha        kdbmock.CallLog[ImageShaArgs]
	}
}

var _ gitstore.GitStore = &GitStore{}

func NewGitStore() *GitStore {
	return &GitStore{}
}

func (m *GitStore) CreateDirectory(ctx context.Context, dirname string, noRecord bool) error {
	m.Calls.CreateDirectory = append(m.Calls.CreateDirectory, CreateDirectoryArgs{
		Dirname: dirname, NoRecord: noRecord,
	})
	if m.Impl.CreateDirectory != nil {
		return m.Impl.CreateDirectory(ctx, dirname, noRecord)
	}
	panic(errors.New("should not be called"))
}

func (m *GitStore) CreateFile(ctx context.Context, repoName string, tagName string, contentsBase64 string, noRecord bool) error {
	m.Calls.CreateFile = append(m.Calls.CreateFile, CreateFileArgs{
		RepoName: repoName, TagName: tagName, ContentsBase64: contentsBase64, NoRecord: noRecord,
	})
	if m.Impl.CreateFile != nil {
		return m.Impl.CreateFile(ctx, repoName, tagName, contentsBase64, noRecord)
	}
	panic(errors.New("should not be called"))
}

func (m *GitStore) ImageSha(ctx context.Context, repoName string, tagName string) (string, error) {
	m.Calls.ImageSha = append(m.Calls.ImageSha, ImageShaArgs{RepoName: repoName, TagName: tagName})
	if m.Impl.ImageSha != nil {
		return m.Impl.ImageSha(ctx, repoName, tagName)
	}
	panic(errors.New("should not be called"))
}
