// internal/workers/data-access/search-resources/queries/search.go
package queries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

var (
	ErrMissingIndex = errors.New("index name is required")
	ErrMissingSkill = errors.New("skill is required")
)

type ResourceQuery struct {
	Index      string
	Skill      string
	Level      string
	MaxResults int
}

type QueryResult struct {
	Data      []map[string]interface{}
	TotalHits int64
	MaxScore  float64
	Took      int64
}

// BuildQuery assembles a full-text search over the learning-resources index:
// skill keywords ranked across title and skill fields, with an optional
// level filter.
func BuildQuery(rq ResourceQuery) (*esapi.SearchRequest, error) {
	if rq.Index == "" {
		return nil, ErrMissingIndex
	}
	if rq.Skill == "" {
		return nil, ErrMissingSkill
	}

	size := rq.MaxResults
	if size < 1 {
		size = 5
	}
	if size > 50 {
		size = 50
	}

	mustClauses := []interface{}{
		map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  rq.Skill,
				"fields": []string{"skill^3", "title^2", "description"},
				"type":   "best_fields",
			},
		},
	}

	filterClauses := []interface{}{}
	if rq.Level != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"level": rq.Level},
		})
	}

	queryBody := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must":   mustClauses,
				"filter": filterClauses,
			},
		},
		"sort": []interface{}{
			"_score",
			map[string]interface{}{"hours": map[string]interface{}{"order": "asc", "unmapped_type": "integer"}},
		},
	}

	body, _ := json.Marshal(queryBody)

	from := 0
	req := esapi.SearchRequest{
		Index: []string{rq.Index},
		Body:  strings.NewReader(string(body)),
		From:  &from,
		Size:  &size,
	}

	return &req, nil
}

func Execute(ctx context.Context, esClient *elasticsearch.Client, rq ResourceQuery) (*QueryResult, error) {
	req, err := BuildQuery(rq)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := req.Do(ctx, esClient)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search query failed: %s", res.String())
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, err
	}

	hits, ok := r["hits"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("malformed search response")
	}

	total := 0.0
	if t, ok := hits["total"].(map[string]interface{}); ok {
		total, _ = t["value"].(float64)
	}
	maxScore := 0.0
	if ms, ok := hits["max_score"].(float64); ok {
		maxScore = ms
	}

	var data []map[string]interface{}
	if hitList, ok := hits["hits"].([]interface{}); ok {
		for _, hit := range hitList {
			if source, ok := hit.(map[string]interface{})["_source"].(map[string]interface{}); ok {
				data = append(data, source)
			}
		}
	}

	return &QueryResult{
		Data:      data,
		TotalHits: int64(total),
		MaxScore:  maxScore,
		Took:      time.Since(start).Milliseconds(),
	}, nil
}
