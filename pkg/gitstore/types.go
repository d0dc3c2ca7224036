package gitstore

// response shapes of the git contents API.

type RefObject struct {
	Sha  string `json:"sha"`
	Type string `json:"type"`
	Url  string `json:"url"`
}

type RefResponse struct {
	Ref    string    `json:"ref"`
	NodeId string    `json:"node_id"`
	Url    string    `json:"url"`
	Object RefObject `json:"object"`
}

type TreeEntry struct {
	Path string `json:"path"`
	Mode string `json:"mode"`
	Type string `json:"type"`
	Sha  string `json:"sha"`
	Size *int   `json:"size,omitempty"`
	Url  string `json:"url"`
}

type TreeResponse struct {
	Sha  string      `json:"sha"`
	Url  string      `json:"url"`
	Tree []TreeEntry `json:"tree"`
}
