package domain

import "github.com/google/uuid"

// Repository is the ledger row tracking a remote registry repository.
// Soft-deleted via IsValid.
type Repository struct {
	Id       int
	BelongTo *uuid.UUID
	RepoName string
	IsPublic bool
	IsValid  bool
}

// Tag is the ledger row tracking a build rule (Dockerfile) of a repository.
//
// Tags are tied to a Repository by name, not by foreign key.
type Tag struct {
	Id       int
	RepoName string
	TagName  string
	IsValid  bool
}
