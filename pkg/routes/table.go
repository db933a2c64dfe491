package routes

import "sort"

// Entry is a flattened route used for listings.
type Entry struct {
	Method  string
	Path    string
	Summary string
}

// Table flattens groups into entries with full paths, sorted by path then method.
func Table(basePath string, groups ...Group) []Entry {
	var entries []Entry
	for _, g := range groups {
		entries = g.collect(basePath, entries)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Path != entries[j].Path {
			return entries[i].Path < entries[j].Path
		}
		return methodRank(entries[i].Method) < methodRank(entries[j].Method)
	})

	return entries
}

func (g *Group) collect(basePath string, entries []Entry) []Entry {
	prefix := basePath + g.Prefix

	for _, route := range g.Routes {
		e := Entry{Method: route.Method, Path: prefix + route.Pattern}
		if route.OpenAPI != nil {
			e.Summary = route.OpenAPI.Summary
		}
		entries = append(entries, e)
	}

	return entries
}

var methodOrder = map[string]int{
	"GET":    0,
	"POST":   1,
	"PUT":    2,
	"PATCH":  3,
	"DELETE": 4,
}

func methodRank(m string) int {
	if r, ok := methodOrder[m]; ok {
		return r
	}
	return len(methodOrder)
}
