package movies

import "github.com/JaimeStill/movies-api/pkg/query"

var projection = query.NewProjectionMap("main", "movies", "m").
	Project("id", "Id").
	Project("title", "Title").
	Project("director", "Director").
	Project("year", "Year")
