package postman

// SchemaV21 is the collection schema URL written into every generated collection.
const SchemaV21 = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

// Collection represents the structure of a Postman collection.
type Collection struct {
	Info Info   `json:"info"`
	Item []Item `json:"item"`
}

// Info is the collection metadata block.
type Info struct {
	PostmanID string `json:"_postman_id"`
	Name      string `json:"name"`
	Schema    string `json:"schema"`
}

// Item is either a folder (Item set) or a request (Request set).
type Item struct {
	Name    string   `json:"name"`
	Item    []Item   `json:"item,omitempty"`
	Request *Request `json:"request,omitempty"`
	Event   []Event  `json:"event,omitempty"`
}

// Request is one HTTP request definition.
type Request struct {
	Method string   `json:"method"`
	Header []Header `json:"header,omitempty"`
	Body   *Body    `json:"body,omitempty"`
	URL    URL      `json:"url"`
}

// Header is one request header.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Body is a raw request body.
type Body struct {
	Mode string `json:"mode"`
	Raw  string `json:"raw,omitempty"`
}

// URL is the request URL with its parsed query parameters.
type URL struct {
	Raw   string       `json:"raw"`
	Query []QueryParam `json:"query,omitempty"`
}

// QueryParam is one query parameter.
type QueryParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event attaches a script to one request lifecycle hook.
type Event struct {
	Listen string `json:"listen"`
	Script Script `json:"script"`
}

// Script is the executable payload of an event.
type Script struct {
	Type string   `json:"type"`
	Exec []string `json:"exec"`
}

// Environment is a Postman environment export.
type Environment struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Values []EnvValue `json:"values"`
	Scope  string     `json:"_postman_variable_scope"`
}

// EnvValue is one environment variable.
type EnvValue struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Enabled bool   `json:"enabled"`
}
