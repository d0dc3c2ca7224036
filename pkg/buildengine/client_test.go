package buildengine_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pegasus-cloud/pegasus/pkg/buildengine"
	"github.com/pegasus-cloud/pegasus/pkg/utils/try"
)

func TestClient_GetRepo(t *testing.T) {
	var gotPath string
	var gotPayload map[string]string
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("payload is not json: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(buildengine.RepoResponse{
			Status: "success",
			Data: buildengine.Repo{
				Id: 42, Name: "team/app", Summary: "an app",
				Status: "normal", Downloads: 7, Url: "https://registry.example.com/team/app",
			},
		})
	}))
	defer server.Close()

	testee := buildengine.NewClient(server.URL, "fake-token")

	repo := try.To(testee.GetRepo(context.Background(), "team/app")).OrFatal(t)

	if gotPath != "/repo/getRepo" {
		t.Errorf("path: got %q, want %q", gotPath, "/repo/getRepo")
	}
	if gotAuth != "Bearer fake-token" {
		t.Errorf("authorization: got %q", gotAuth)
	}
	if gotPayload["name"] != "team/app" {
		t.Errorf("payload: got %v", gotPayload)
	}
	if repo.Id != 42 || repo.Name != "team/app" || repo.Downloads != 7 {
		t.Errorf("repo: got %+v", repo)
	}
}

func TestClient_CreateRepo(t *testing.T) {
	t.Run("it posts the create payload with the engine's field names", func(t *testing.T) {
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/repo/createRepo" {
				t.Errorf("path: got %q", r.URL.Path)
			}
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status": "success", "msg": ""}`))
		}))
		defer server.Close()

		testee := buildengine.NewClient(server.URL, "fake-token")

		err := testee.CreateRepo(context.Background(), buildengine.RepoCreateInfo{
			Name: "team/app", Summary: "an app", IsOverSea: true, DisableCache: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotBody["name"] != "team/app" || gotBody["isOverSea"] != true {
			t.Errorf("payload: got %v", gotBody)
		}
		if _, ok := gotBody["disabelCache"]; !ok {
			t.Errorf("payload should keep the engine's field spelling: got %v", gotBody)
		}
	})

	t.Run("when the engine answers with an error, its message is surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"status": "error", "msg": "quota exceeded"}`))
		}))
		defer server.Close()

		testee := buildengine.NewClient(server.URL, "fake-token")

		err := testee.CreateRepo(context.Background(), buildengine.RepoCreateInfo{Name: "team/app"})
		if err == nil {
			t.Fatal("error expected")
		}
		if !strings.Contains(err.Error(), "quota exceeded") {
			t.Errorf("error should carry the engine message: %v", err)
		}
	})
}

func TestClient_GetTags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repo/getRepoTags" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["name"] != "team/app" || payload["page"] != float64(2) {
			t.Errorf("payload: got %v", payload)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(buildengine.TagPage{
			Status: "success",
			Total:  12,
			Data: []buildengine.RepoTag{
				{Name: "v1.0.0", Size: 1024, Pushed: "2026-08-01T00:00:00Z"},
			},
		})
	}))
	defer server.Close()

	testee := buildengine.NewClient(server.URL, "fake-token")

	page := try.To(testee.GetTags(context.Background(), "team/app", 2)).OrFatal(t)
	if page.Total != 12 || len(page.Data) != 1 || page.Data[0].Name != "v1.0.0" {
		t.Errorf("page: got %+v", page)
	}
}

func TestClient_StartBuild(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repo/startRepoBuild" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status": "success", "msg": ""}`))
	}))
	defer server.Close()

	testee := buildengine.NewClient(server.URL, "fake-token")

	if err := testee.StartBuild(context.Background(), "team/app", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody["repoName"] != "team/app" || gotBody["ruleId"] != float64(7) {
		t.Errorf("payload: got %v", gotBody)
	}
}
