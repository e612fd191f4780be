// internal/workers/data-access/query-catalog/queries/registry.go
package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrMissingParam     = errors.New("missing required parameter")
	ErrUnknownQueryType = errors.New("unknown query type")
)

const (
	QueryTypeGetRoleProfile   = "get_role_profile"
	QueryTypeListRoleProfiles = "list_role_profiles"
	QueryTypeGetSalaryBand    = "get_salary_band"
)

// QueryFunc returns: data, rowCount, executionTime (ms), error
type QueryFunc func(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error)

var Registry = map[string]QueryFunc{
	QueryTypeGetRoleProfile:   GetRoleProfile,
	QueryTypeListRoleProfiles: ListRoleProfiles,
	QueryTypeGetSalaryBand:    GetSalaryBand,
}

func Execute(ctx context.Context, db *sql.DB, queryType string, params map[string]interface{}) (interface{}, int, int64, error) {
	fn, exists := Registry[queryType]
	if !exists {
		return nil, 0, 0, fmt.Errorf("%w: %s", ErrUnknownQueryType, queryType)
	}
	return fn(ctx, db, params)
}
