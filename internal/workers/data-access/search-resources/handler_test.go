package searchresources

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"career-workers/internal/common/logger"
	"career-workers/internal/workers/data-access/search-resources/queries"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func createMockClient(t *testing.T, responseBody string) *elasticsearch.Client {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{"http://localhost:9200"},
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Header: http.Header{
					"Content-Type":      []string{"application/json"},
					"X-Elastic-Product": []string{"Elasticsearch"},
				},
				Body: io.NopCloser(strings.NewReader(responseBody)),
			}, nil
		}),
	})
	require.NoError(t, err)
	return client
}

func createTestHandler(t *testing.T, responseBody string) *Handler {
	log := logger.NewZapAdapter(zaptest.NewLogger(t))
	return NewHandler(&Config{
		Index:      "learning-resources",
		MaxResults: 5,
		Timeout:    5 * time.Second,
	}, createMockClient(t, responseBody), log)
}

const searchResponse = `{
	"took": 3,
	"hits": {
		"total": {"value": 2},
		"max_score": 1.7,
		"hits": [
			{"_source": {"skill": "python", "level": "beginner", "title": "Python for Everybody", "type": "course", "hours": 40}},
			{"_source": {"skill": "python", "level": "beginner", "title": "Official Python Tutorial", "type": "documentation", "hours": 10}}
		]
	}
}`

func TestHandler_Execute_RankedHits(t *testing.T) {
	h := createTestHandler(t, searchResponse)

	output, err := h.Execute(context.Background(), &Input{
		Skill: "python",
		Level: "beginner",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), output.TotalHits)
	assert.InDelta(t, 1.7, output.MaxScore, 1e-9)
	require.Len(t, output.Resources, 2)
	assert.Equal(t, "Python for Everybody", output.Resources[0]["title"])
}

func TestHandler_Execute_MissingSkill(t *testing.T) {
	h := createTestHandler(t, searchResponse)

	output, err := h.Execute(context.Background(), &Input{Skill: ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingSkill)
	assert.Nil(t, output)
}

func TestHandler_Execute_EmptyHits(t *testing.T) {
	h := createTestHandler(t, `{"took": 1, "hits": {"total": {"value": 0}, "hits": []}}`)

	output, err := h.Execute(context.Background(), &Input{Skill: "cobol"})
	require.NoError(t, err)
	assert.Zero(t, output.TotalHits)
	assert.Empty(t, output.Resources)
}

func TestBuildQuery_LevelFilterAndSizeClamp(t *testing.T) {
	req, err := queries.BuildQuery(queries.ResourceQuery{
		Index:      "learning-resources",
		Skill:      "kubernetes",
		Level:      "intermediate",
		MaxResults: 500,
	})
	require.NoError(t, err)
	require.NotNil(t, req.Size)
	assert.Equal(t, 50, *req.Size)

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &parsed))

	boolQuery := parsed["query"].(map[string]interface{})["bool"].(map[string]interface{})
	filters := boolQuery["filter"].([]interface{})
	require.Len(t, filters, 1)
	term := filters[0].(map[string]interface{})["term"].(map[string]interface{})
	assert.Equal(t, "intermediate", term["level"])
}

func TestBuildQuery_MissingFields(t *testing.T) {
	_, err := queries.BuildQuery(queries.ResourceQuery{Skill: "go"})
	assert.ErrorIs(t, err, queries.ErrMissingIndex)

	_, err = queries.BuildQuery(queries.ResourceQuery{Index: "learning-resources"})
	assert.ErrorIs(t, err, queries.ErrMissingSkill)
}
