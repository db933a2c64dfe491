package movies

// Movie is a stored movie record. Fields the client omitted are null.
type Movie struct {
	ID       int     `json:"id"`
	Title    *string `json:"title"`
	Director *string `json:"director"`
	Year     *int    `json:"year"`
}

// Input carries the client-supplied fields for create and update.
// Every field is optional; absent fields are stored as null.
type Input struct {
	Title    *string `json:"title"`
	Director *string `json:"director"`
	Year     *int    `json:"year"`
}

func (m Movie) clone() Movie {
	return Movie{
		ID:       m.ID,
		Title:    cloneRef(m.Title),
		Director: cloneRef(m.Director),
		Year:     cloneRef(m.Year),
	}
}

func (in Input) movie(id int) Movie {
	return Movie{
		ID:       id,
		Title:    cloneRef(in.Title),
		Director: cloneRef(in.Director),
		Year:     cloneRef(in.Year),
	}
}

func cloneRef[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func ref[T any](v T) *T {
	return &v
}

// Seed returns the records every store starts with, in insertion order.
func Seed() []Input {
	return []Input{
		{Title: ref("Inception"), Director: ref("Christopher Nolan"), Year: ref(2010)},
		{Title: ref("The Matrix"), Director: ref("Lana and Lilly Wachowski"), Year: ref(1999)},
		{Title: ref("Interstellar"), Director: ref("Christopher Nolan"), Year: ref(2014)},
	}
}
