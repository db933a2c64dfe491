package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/movies-api/pkg/openapi"
	"github.com/JaimeStill/movies-api/pkg/routes"
)

func write(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestGroup_AddToSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/films",
		Tags:   []string{"Films"},
		Schemas: map[string]*openapi.Schema{
			"Film": {Type: "object"},
		},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: write(""), OpenAPI: &openapi.Operation{Summary: "List films"}},
			{Method: "GET", Pattern: "/{id}", Handler: write(""), OpenAPI: &openapi.Operation{Summary: "Get film", Tags: []string{"Admin"}}},
			{Method: "DELETE", Pattern: "/{id}", Handler: write(""), OpenAPI: nil},
		},
	}
	listOp := group.Routes[0].OpenAPI

	group.AddToSpec("/api", spec)

	list := spec.Paths["/api/films"]
	if list == nil || list.Get == nil {
		t.Fatal("list operation not added")
	}
	if len(list.Get.Tags) != 1 || list.Get.Tags[0] != "Films" {
		t.Errorf("inherited tags = %v, want [Films]", list.Get.Tags)
	}

	find := spec.Paths["/api/films/{id}"]
	if find == nil || find.Get == nil {
		t.Fatal("find operation not added")
	}
	if find.Get.Tags[0] != "Admin" {
		t.Errorf("explicit tags = %v, want [Admin]", find.Get.Tags)
	}
	if find.Delete != nil {
		t.Error("route without OpenAPI was documented")
	}

	if len(listOp.Tags) != 0 {
		t.Errorf("route operation tags = %v, want untouched", listOp.Tags)
	}
	if list.Get == listOp {
		t.Error("documented operation shares the route's Operation")
	}
	if spec.Components.Schemas["Film"] == nil {
		t.Error("group schema not added")
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Test API", "1.0.0")

	films := routes.Group{
		Prefix: "/films",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: write("list"), OpenAPI: &openapi.Operation{Summary: "List"}},
			{Method: "GET", Pattern: "/{id}", Handler: write("find"), OpenAPI: &openapi.Operation{Summary: "Find"}},
			{Method: "POST", Pattern: "", Handler: write("create"), OpenAPI: &openapi.Operation{Summary: "Create"}},
		},
	}
	people := routes.Group{
		Prefix: "/people",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: write("people"), OpenAPI: &openapi.Operation{Summary: "People"}},
		},
	}

	routes.Register(mux, "/api", spec, films, people)

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/films", "list"},
		{http.MethodGet, "/films/7", "find"},
		{http.MethodPost, "/films", "create"},
		{http.MethodGet, "/people", "people"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			body, _ := io.ReadAll(rec.Result().Body)
			if string(body) != tt.want {
				t.Errorf("body = %q, want %q", body, tt.want)
			}
		})
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/films", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("PUT /films status = %d, want 405", rec.Code)
	}

	for _, p := range []string{"/api/films", "/api/films/{id}", "/api/people"} {
		if spec.Paths[p] == nil {
			t.Errorf("spec path %s not added", p)
		}
	}
}

func TestTable(t *testing.T) {
	group := routes.Group{
		Prefix: "/films",
		Routes: []routes.Route{
			{Method: "DELETE", Pattern: "/{id}", Handler: write("")},
			{Method: "POST", Pattern: "", Handler: write(""), OpenAPI: &openapi.Operation{Summary: "Create"}},
			{Method: "GET", Pattern: "/{id}", Handler: write("")},
			{Method: "GET", Pattern: "", Handler: write(""), OpenAPI: &openapi.Operation{Summary: "List"}},
		},
	}

	entries := routes.Table("/api", group)

	want := []routes.Entry{
		{Method: "GET", Path: "/api/films", Summary: "List"},
		{Method: "POST", Path: "/api/films", Summary: "Create"},
		{Method: "GET", Path: "/api/films/{id}"},
		{Method: "DELETE", Path: "/api/films/{id}"},
	}

	if len(entries) != len(want) {
		t.Fatalf("entries = %d, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}
