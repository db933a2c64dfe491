package openapi

// Components holds reusable schema and response definitions.
type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// NewComponents creates Components pre-populated with the shared error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type: "object",
				Properties: map[string]*Schema{
					"error": {Type: "string", Description: "Error message"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest": {
				Description: "Request body could not be decoded",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("Error")},
				},
			},
			"NotFound": ResponseText("Resource not found", "Not found"),
		},
	}
}

// AddSchemas merges schemas into the component set, replacing same-named entries.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// AddResponses merges responses into the component set, replacing same-named entries.
func (c *Components) AddResponses(responses map[string]*Response) {
	for name, resp := range responses {
		c.Responses[name] = resp
	}
}
