package openapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JaimeStill/movies-api/pkg/openapi"
)

func sampleSpec() *openapi.Spec {
	spec := openapi.NewSpec("Test API", "1.0.0")
	spec.SetDescription("test document")
	spec.SetContact("Developer")
	spec.AddServer("http://localhost:3001")

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"Item": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":   {Type: "integer", Example: 1},
				"name": {Type: "string", Nullable: true, Example: "widget"},
			},
		},
	})

	spec.AddOperation("/api/items/{id}", http.MethodGet, &openapi.Operation{
		Summary:    "Get item",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "integer", "Item ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Item found", "Item"),
			404: openapi.ResponseRef("NotFound"),
		},
	})

	spec.AddOperation("/api/items", http.MethodPost, &openapi.Operation{
		Summary:     "Create item",
		RequestBody: openapi.RequestBodyJSON("Item", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Item created", "Item"),
			400: openapi.ResponseRef("BadRequest"),
		},
	})

	return spec
}

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	if spec.OpenAPI != openapi.Version {
		t.Errorf("OpenAPI = %q, want %q", spec.OpenAPI, openapi.Version)
	}
	if spec.Paths == nil {
		t.Fatal("Paths is nil")
	}
	for _, name := range []string{"BadRequest", "NotFound"} {
		if spec.Components.Responses[name] == nil {
			t.Errorf("missing shared response %s", name)
		}
	}
}

func TestSpec_AddServer_IgnoresEmpty(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")
	spec.AddServer("")
	spec.SetContact("")

	if len(spec.Servers) != 0 {
		t.Errorf("Servers = %d, want 0", len(spec.Servers))
	}
	if spec.Info.Contact != nil {
		t.Error("Contact set for empty name")
	}
}

func TestSpec_AddOperation_Methods(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	methods := []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}
	for _, m := range methods {
		spec.AddOperation("/r", m, &openapi.Operation{Summary: m})
	}
	spec.AddOperation("/r", http.MethodHead, &openapi.Operation{Summary: "HEAD"})

	item := spec.Paths["/r"]
	got := []*openapi.Operation{item.Get, item.Post, item.Put, item.Patch, item.Delete}
	for i, op := range got {
		if op == nil || op.Summary != methods[i] {
			t.Errorf("%s operation not attached", methods[i])
		}
	}
}

func TestComponents_Add(t *testing.T) {
	c := openapi.NewComponents()

	c.AddSchemas(map[string]*openapi.Schema{"Thing": {Type: "object"}})
	c.AddResponses(map[string]*openapi.Response{"Gone": {Description: "gone"}})

	if c.Schemas["Thing"] == nil {
		t.Error("schema not added")
	}
	if c.Schemas["Error"] == nil {
		t.Error("existing Error schema dropped")
	}
	if c.Responses["Gone"] == nil || c.Responses["NotFound"] == nil {
		t.Error("responses not merged")
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := openapi.MarshalJSON(sampleSpec())
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	info := doc["info"].(map[string]any)
	if info["title"] != "Test API" {
		t.Errorf("info.title = %v", info["title"])
	}

	paths := doc["paths"].(map[string]any)
	get := paths["/api/items/{id}"].(map[string]any)["get"].(map[string]any)
	responses := get["responses"].(map[string]any)
	if _, ok := responses["404"]; !ok {
		t.Error("404 response key missing")
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.json")

	if err := openapi.WriteJSON(sampleSpec(), path); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written spec: %v", err)
	}
	if !json.Valid(data) {
		t.Error("written spec is not valid JSON")
	}

	if err := openapi.WriteJSON(sampleSpec(), "/nonexistent/dir/openapi.json"); err == nil {
		t.Error("WriteJSON() error = nil for invalid path")
	}
}

func TestMarshalYAML(t *testing.T) {
	data, err := openapi.MarshalYAML(sampleSpec())
	if err != nil {
		t.Fatalf("MarshalYAML() error = %v", err)
	}

	out := string(data)
	for _, want := range []string{
		"openapi: 3.0.3",
		"title: Test API",
		"/api/items/{id}:",
		`"404":`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml missing %q\n%s", want, out)
		}
	}

	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Error("yaml rendered in flow style")
	}
}

func TestServeSpec(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		contentType string
	}{
		{"json", openapi.ServeSpec([]byte(`{"openapi":"3.0.3"}`)), "application/json; charset=utf-8"},
		{"yaml", openapi.ServeYAML([]byte("openapi: 3.0.3\n")), "application/yaml; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(http.MethodGet, "/openapi", nil))

			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", rec.Code)
			}
			if got := rec.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			if !strings.Contains(rec.Body.String(), "3.0.3") {
				t.Errorf("body = %q", rec.Body.String())
			}
		})
	}
}

func TestValidate(t *testing.T) {
	data, err := openapi.MarshalJSON(sampleSpec())
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	if err := openapi.Validate(context.Background(), data); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{"},
		{"missing info", `{"openapi":"3.0.3","paths":{}}`},
		{"dangling ref", `{"openapi":"3.0.3","info":{"title":"t","version":"1"},"paths":{"/a":{"get":{"responses":{"200":{"$ref":"#/components/responses/Missing"}}}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := openapi.Validate(context.Background(), []byte(tt.data)); err == nil {
				t.Error("Validate() error = nil")
			}
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_OPENAPI_TITLE", "Films")

	cfg := &openapi.Config{}
	if err := cfg.Finalize(&openapi.ConfigEnv{Title: "TEST_OPENAPI_TITLE"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Title != "Films" {
		t.Errorf("Title = %q, want Films", cfg.Title)
	}
	if cfg.Description != "Movie API with CRUD operations" {
		t.Errorf("Description = %q", cfg.Description)
	}
	if cfg.Contact != "Developer" {
		t.Errorf("Contact = %q", cfg.Contact)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := &openapi.Config{Title: "A", Description: "B", Contact: "C"}
	cfg.Merge(&openapi.Config{Description: "D"})

	if cfg.Title != "A" || cfg.Description != "D" || cfg.Contact != "C" {
		t.Errorf("Merge() = %+v", cfg)
	}
}
