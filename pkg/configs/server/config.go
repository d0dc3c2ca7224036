package server

import "time"

// ServerConfig is the sealed, immutable configuration of pegasusd.
//
// To get an instance, use `ServerConfigMarshall.TrySeal()`.
type ServerConfig struct {
	port        int32
	cluster     *ClusterConfig
	buildEngine *BuildEngineConfig
	gitStore    *GitStoreConfig
	mail        *MailConfig
	session     *SessionConfig
}

func (c *ServerConfig) Port() int32 {
	return c.port
}

func (c *ServerConfig) Cluster() *ClusterConfig {
	return c.cluster
}

func (c *ServerConfig) BuildEngine() *BuildEngineConfig {
	return c.buildEngine
}

func (c *ServerConfig) GitStore() *GitStoreConfig {
	return c.gitStore
}

func (c *ServerConfig) Mail() *MailConfig {
	return c.mail
}

func (c *ServerConfig) Session() *SessionConfig {
	return c.session
}

type ClusterConfig struct {
	database      string
	ingressDomain string
}

// Connection string for the database.
func (c *ClusterConfig) Database() string {
	return c.database
}

// DNS suffix under which dispensed ingress hosts are published.
func (c *ClusterConfig) IngressDomain() string {
	return c.ingressDomain
}

// Remote image registry / build engine HTTP API.
type BuildEngineConfig struct {
	apiRoot string
	token   string
}

func (c *BuildEngineConfig) APIRoot() string {
	return c.apiRoot
}

func (c *BuildEngineConfig) Token() string {
	return c.token
}

// Git contents API holding per-repository Dockerfiles.
type GitStoreConfig struct {
	apiRoot string
	token   string
	owner   string
	repo    string
	branch  string
}

func (c *GitStoreConfig) APIRoot() string {
	return c.apiRoot
}

func (c *GitStoreConfig) Token() string {
	return c.token
}

func (c *GitStoreConfig) Owner() string {
	return c.owner
}

func (c *GitStoreConfig) Repo() string {
	return c.repo
}

// Branch holding the build contexts. default = "master"
func (c *GitStoreConfig) Branch() string {
	return c.branch
}

type MailConfig struct {
	host         string
	port         int32
	from         string
	username     string
	password     string
	organisation string
	linkDomain   string
}

func (c *MailConfig) Host() string {
	return c.host
}

func (c *MailConfig) Port() int32 {
	return c.port
}

func (c *MailConfig) From() string {
	return c.from
}

func (c *MailConfig) Username() string {
	return c.username
}

func (c *MailConfig) Password() string {
	return c.password
}

// Organisation name shown in invitation mails.
func (c *MailConfig) Organisation() string {
	return c.organisation
}

// Domain of invitation links in mails.
func (c *MailConfig) LinkDomain() string {
	return c.linkDomain
}

type SessionConfig struct {
	signKey string
	ttl     time.Duration
}

// HS256 key signing session tokens.
func (c *SessionConfig) SignKey() string {
	return c.signKey
}

// How long a session stays valid. default = 24h
func (c *SessionConfig) TTL() time.Duration {
	return c.ttl
}
