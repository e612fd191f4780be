// internal/workers/data-access/query-catalog/models.go
package querycatalog

type Input struct {
	QueryType string `json:"queryType"`
	RoleID    string `json:"roleId,omitempty"`
	Level     string `json:"level,omitempty"`
}

type Output struct {
	Data               interface{} `json:"data"`
	RowCount           int         `json:"rowCount"`
	Cached             bool        `json:"cached"`
	QueryExecutionTime int64       `json:"queryExecutionTime"` // milliseconds
}
