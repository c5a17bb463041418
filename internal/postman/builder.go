package postman

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"soapui2postman/internal/compose"
	"soapui2postman/internal/issue"
	"soapui2postman/internal/model"
	"soapui2postman/internal/parse"
)

// BuildCollection converts a parsed project into a collection: one folder per
// test suite, one request item per test case, carrying the two generated
// script events.
func BuildCollection(p *parse.Project, name string, comp compose.Composer, log *issue.Log) *Collection {
	if name == "" {
		name = p.Name
	}

	col := &Collection{
		Info: Info{
			PostmanID: uuid.NewString(),
			Name:      name,
			Schema:    SchemaV21,
		},
	}

	for _, suite := range p.Suites {
		folder := Item{Name: suite.Name}
		for _, tc := range suite.Cases {
			folder.Item = append(folder.Item, buildItem(tc, comp, log))
		}
		col.Item = append(col.Item, folder)
	}

	return col
}

// buildItem runs the composer for one test case and attaches its output.
func buildItem(tc model.TestCase, comp compose.Composer, log *issue.Log) Item {
	result := comp.Compose(tc, log)

	item := Item{
		Name:    tc.Name,
		Request: buildRequest(result.Request),
	}

	for _, ev := range result.Events() {
		item.Event = append(item.Event, Event{
			Listen: ev.Role.String(),
			Script: Script{Type: "text/javascript", Exec: []string(ev.Body)},
		})
	}

	return item
}

func buildRequest(spec *model.RestRequestSpec) *Request {
	req := &Request{
		Method: spec.Method,
		URL:    buildURL(spec),
	}

	for _, k := range sortedKeys(spec.Headers) {
		req.Header = append(req.Header, Header{Key: k, Value: spec.Headers[k], Type: "text"})
	}

	if spec.Body != "" {
		req.Body = &Body{Mode: "raw", Raw: spec.Body}
	}

	return req
}

func buildURL(spec *model.RestRequestSpec) URL {
	raw := strings.TrimSuffix(spec.Endpoint, "/")
	if spec.Path != "" {
		raw += "/" + strings.TrimPrefix(spec.Path, "/")
	}

	u := URL{Raw: raw}
	for _, k := range sortedKeys(spec.Params) {
		u.Query = append(u.Query, QueryParam{Key: k, Value: spec.Params[k]})
	}

	return u
}

// BuildEnvironment seeds an environment export from project-level properties.
func BuildEnvironment(p *parse.Project, name string) *Environment {
	if name == "" {
		name = p.Name + " environment"
	}

	env := &Environment{
		ID:    uuid.NewString(),
		Name:  name,
		Scope: "environment",
	}

	for _, k := range sortedKeys(p.Properties) {
		env.Values = append(env.Values, EnvValue{Key: k, Value: p.Properties[k], Enabled: true})
	}

	return env
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
