package core_test

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	_ "github.com/DanCG7040/RealTaker-cup-backend/docs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var ginParam = regexp.MustCompile(`:(\w+)`)

func TestRoutesAreDocumented(t *testing.T) {
	a := newAPI(t)

	raw, err := swag.ReadDoc()
	require.NoError(t, err)
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	routes := a.router.Routes()
	require.NotEmpty(t, routes)
	for _, r := range routes {
		path := ginParam.ReplaceAllString(r.Path, "{$1}")
		ops, ok := doc.Paths[path]
		if !assert.True(t, ok, "path %s is not documented", path) {
			continue
		}
		_, ok = ops[strings.ToLower(r.Method)]
		assert.True(t, ok, "%s %s is not documented", r.Method, path)
	}
}
