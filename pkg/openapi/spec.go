package openapi

import "net/http"

// NewSpec creates an empty document with initialized paths and components.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI: Version,
		Info: &Info{
			Title:   title,
			Version: version,
		},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
}

// SetDescription sets the info description.
func (s *Spec) SetDescription(desc string) {
	s.Info.Description = desc
}

// SetContact sets the info contact name.
func (s *Spec) SetContact(name string) {
	if name == "" {
		return
	}
	s.Info.Contact = &Contact{Name: name}
}

// AddServer appends a server URL. Empty URLs are ignored.
func (s *Spec) AddServer(url string) {
	if url == "" {
		return
	}
	s.Servers = append(s.Servers, &Server{URL: url})
}

// AddOperation attaches op to path under the given HTTP method.
// Unsupported methods are ignored.
func (s *Spec) AddOperation(path, method string, op *Operation) {
	if op == nil {
		return
	}
	if s.Paths[path] == nil {
		s.Paths[path] = &PathItem{}
	}

	switch method {
	case http.MethodGet:
		s.Paths[path].Get = op
	case http.MethodPost:
		s.Paths[path].Post = op
	case http.MethodPut:
		s.Paths[path].Put = op
	case http.MethodPatch:
		s.Paths[path].Patch = op
	case http.MethodDelete:
		s.Paths[path].Delete = op
	}
}
