package buildengine

// payload and response shapes of the pegasus-engine HTTP API.

type Repo struct {
	Id        int64  `json:"id"`
	Name      string `json:"name"`
	Summary   string `json:"summary"`
	Status    string `json:"status"`
	Downloads int32  `json:"downloads"`
	Url       string `json:"url"`
}

type RepoResponse struct {
	Status string `json:"status"`
	Data   Repo   `json:"data"`
}

type RepoCreateInfo struct {
	Name      string `json:"name"`
	Summary   string `json:"summary"`
	IsOverSea bool   `json:"isOverSea"`

	// the engine API spells this field "disabelCache"; keep its typo on the wire
	DisableCache bool `json:"disabelCache"`
}

type BuildRule struct {
	RepoName   string `json:"repoName"`
	Tag        string `json:"tag"`
	Dockerfile string `json:"dockerfile,omitempty"`
}

type BuildRuleDetail struct {
	Id       int64  `json:"id"`
	RepoName string `json:"repoName"`
	Tag      string `json:"tag"`
	Status   string `json:"status"`
}

type BuildRulesResponse struct {
	Status string            `json:"status"`
	Data   []BuildRuleDetail `json:"data"`
}

type RepoTag struct {
	Name   string `json:"name"`
	Size   int64  `json:"size"`
	Pushed string `json:"pushed"`
}

type TagPage struct {
	Status string    `json:"status"`
	Total  int       `json:"total"`
	Data   []RepoTag `json:"data"`
}

type commandResponse struct {
	Status string `json:"status"`
	Msg    string `json:"msg"`
}
