package server

import (
	"fmt"
	"time"
)

type Marshalled[S any] interface {
	trySeal(string) S
}

// seal marshalled object.
//
// this function CAN CAUSE PANIC if misconfiguration is found.
//
// All types named `pkg/configs/server.XxxMarshall` are `Marshalled[*Xxx]`.
func TrySeal[S any](conf Marshalled[S]) S {
	return conf.trySeal("(root)")
}

type ServerConfigMarshall struct {
	Port        int32                     `yaml:"port"`
	Cluster     *ClusterConfigMarshall    `yaml:"cluster"`
	BuildEngine *BuildEngineConfigMarshal `yaml:"buildEngine"`
	GitStore    *GitStoreConfigMarshall   `yaml:"gitStore"`
	Mail        *MailConfigMarshall       `yaml:"mail"`
	Session     *SessionConfigMarshall    `yaml:"session"`
}

var _ Marshalled[*ServerConfig] = &ServerConfigMarshall{}

func (m *ServerConfigMarshall) trySeal(path string) *ServerConfig {
	return &ServerConfig{
		port:        required(m.Port, path+".port"),
		cluster:     nonnil(m.Cluster, path+".cluster").trySeal(path + ".cluster"),
		buildEngine: nonnil(m.BuildEngine, path+".buildEngine").trySeal(path + ".buildEngine"),
		gitStore:    nonnil(m.GitStore, path+".gitStore").trySeal(path + ".gitStore"),
		mail:        nonnil(m.Mail, path+".mail").trySeal(path + ".mail"),
		session:     nonnil(m.Session, path+".session").trySeal(path + ".session"),
	}
}

type ClusterConfigMarshall struct {
	Database      string `yaml:"database"`
	IngressDomain string `yaml:"ingressDomain"`
}

func (m *ClusterConfigMarshall) trySeal(path string) *ClusterConfig {
	return &ClusterConfig{
		database:      required(m.Database, path+".database"),
		ingressDomain: required(m.IngressDomain, path+".ingressDomain"),
	}
}

type BuildEngineConfigMarshal struct {
	APIRoot string `yaml:"apiRoot"`
	Token   string `yaml:"token"`
}

func (m *BuildEngineConfigMarshal) trySeal(path string) *BuildEngineConfig {
	return &BuildEngineConfig{
		apiRoot: required(m.APIRoot, path+".apiRoot"),
		token:   required(m.Token, path+".token"),
	}
}

type GitStoreConfigMarshall struct {
	APIRoot string `yaml:"apiRoot"`
	Token   string `yaml:"token"`
	Owner   string `yaml:"owner"`
	Repo    string `yaml:"repo"`
	Branch  string `yaml:"branch,omitempty"`
}

func (m *GitStoreConfigMarshall) trySeal(path string) *GitStoreConfig {
	branch := m.Branch
	if branch == "" {
		branch = "master"
	}
	return &GitStoreConfig{
		apiRoot: required(m.APIRoot, path+".apiRoot"),
		token:   required(m.Token, path+".token"),
		owner:   required(m.Owner, path+".owner"),
		repo:    required(m.Repo, path+".repo"),
		branch:  branch,
	}
}

type MailConfigMarshall struct {
	Host         string `yaml:"host"`
	Port         int32  `yaml:"port"`
	From         string `yaml:"from"`
	Username     string `yaml:"username,omitempty"`
	Password     string `yaml:"password,omitempty"`
	Organisation string `yaml:"organisation"`
	LinkDomain   string `yaml:"linkDomain"`
}

func (m *MailConfigMarshall) trySeal(path string) *MailConfig {
	// username/password stay empty for unauthenticated relays
	return &MailConfig{
		host:         required(m.Host, path+".host"),
		port:         required(m.Port, path+".port"),
		from:         required(m.From, path+".from"),
		username:     m.Username,
		password:     m.Password,
		organisation: required(m.Organisation, path+".organisation"),
		linkDomain:   required(m.LinkDomain, path+".linkDomain"),
	}
}

type SessionConfigMarshall struct {
	SignKey string `yaml:"signKey"`
	TTL     string `yaml:"ttl,omitempty"`
}

func (m *SessionConfigMarshall) trySeal(path string) *SessionConfig {
	ttl := 24 * time.Hour
	if m.TTL != "" {
		var err error
		ttl, err = time.ParseDuration(m.TTL)
		if err != nil {
			panic(fmt.Errorf("%s.ttl can not be parsed: %w", path, err))
		}
	}
	return &SessionConfig{
		signKey: required(m.SignKey, path+".signKey"),
		ttl:     ttl,
	}
}

func nonnil[T any](v *T, path string) *T {
	if v == nil {
		panic(path + " is required")
	}
	return v
}

func required[T comparable](v T, path string) T {
	if v == *new(T) {
		panic(path + " is required")
	}
	return v
}
