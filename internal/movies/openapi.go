package movies

import "github.com/JaimeStill/movies-api/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

var idParam = openapi.PathParam("id", "integer", "Movie ID")

// Spec contains OpenAPI operation definitions for all movie endpoints.
var Spec = spec{
	List: &openapi.Operation{
		OperationID: "listMovies",
		Summary:     "Get all movies",
		Description: "Returns every movie in insertion order",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("List of movies", "MovieList"),
		},
	},
	Find: &openapi.Operation{
		OperationID: "getMovie",
		Summary:     "Get a movie by ID",
		Parameters:  []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Movie found", "Movie"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		OperationID: "createMovie",
		Summary:     "Create a new movie",
		Description: "Absent fields are stored as null",
		RequestBody: openapi.RequestBodyJSON("MovieInput", false),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Movie created", "Movie"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Update: &openapi.Operation{
		OperationID: "updateMovie",
		Summary:     "Update a movie",
		Description: "Overwrites title, director and year; absent fields become null",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("MovieInput", false),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Movie updated", "Movie"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		OperationID: "deleteMovie",
		Summary:     "Delete a movie",
		Description: "Returns the removed movie wrapped in a one-element array",
		Parameters:  []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Movie deleted", "DeletedMovie"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the movie domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Movie": {
			Type:     "object",
			Required: []string{"id"},
			Properties: map[string]*openapi.Schema{
				"id":       {Type: "integer", Description: "Unique, never reused", Example: 1},
				"title":    {Type: "string", Nullable: true, Example: "Inception"},
				"director": {Type: "string", Nullable: true, Example: "Christopher Nolan"},
				"year":     {Type: "integer", Nullable: true, Example: 2010},
			},
		},
		"MovieInput": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"title":    {Type: "string", Nullable: true, Example: "Dunkirk"},
				"director": {Type: "string", Nullable: true, Example: "Christopher Nolan"},
				"year":     {Type: "integer", Nullable: true, Example: 2017},
			},
		},
		"MovieList": {
			Type:  "array",
			Items: openapi.SchemaRef("Movie"),
		},
		"DeletedMovie": {
			Type:        "array",
			Description: "Single-element array holding the removed movie",
			Items:       openapi.SchemaRef("Movie"),
		},
	}
}
