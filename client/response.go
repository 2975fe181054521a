package client

import (
	"errors"
	"fmt"
	"strings"

	"encoding/json/jsontext"
	json "encoding/json/v2"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

type response struct {
	Data   jsontext.Value `json:"data"`
	Errors gqlerror.List  `json:"errors"`
}

// GraphQLErrors aggregates the `errors` array of an otherwise successful
// response into a single fatal error.
type GraphQLErrors struct {
	Messages []string
	hints    []string
}

func (e *GraphQLErrors) Error() string {
	return "GraphQL errors: " + strings.Join(e.Messages, "; ")
}

func (e *GraphQLErrors) Hints() []string { return e.hints }

// messageHints appends remediation hints keyed by well-known substrings of
// GraphQL error messages.
var messageHints = []struct {
	substrings []string
	hint       string
}{
	{
		substrings: []string{"introspection"},
		hint:       "Introspection appears to be disabled on this endpoint; contact the API administrator to enable it",
	},
	{
		substrings: []string{"permission", "authorized"},
		hint:       "The supplied credentials lack permission for introspection; check the token or API key",
	},
	{
		substrings: []string{"timeout"},
		hint:       "The server timed out executing the query; try again later",
	},
}

// ParseResponse decodes a 2xx response body and returns the raw `data`
// value, or a fatal error when the body is not JSON or carries GraphQL
// errors.
func ParseResponse(body []byte) (jsontext.Value, error) {
	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("response body is not valid JSON (is this a GraphQL endpoint?): %w", err)
	}

	if len(resp.Errors) > 0 {
		return nil, interpretErrors(resp.Errors)
	}

	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return nil, errors.New("response contains neither data nor errors")
	}

	return resp.Data, nil
}

func interpretErrors(list gqlerror.List) *GraphQLErrors {
	result := &GraphQLErrors{}
	seen := make(map[string]bool)
	for _, gqlErr := range list {
		result.Messages = append(result.Messages, gqlErr.Message)
		lower := strings.ToLower(gqlErr.Message)
		for _, entry := range messageHints {
			for _, substring := range entry.substrings {
				if strings.Contains(lower, substring) && !seen[entry.hint] {
					seen[entry.hint] = true
					result.hints = append(result.hints, entry.hint)
				}
			}
		}
	}

	return result
}
