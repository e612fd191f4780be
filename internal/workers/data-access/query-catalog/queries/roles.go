// internal/workers/data-access/query-catalog/queries/roles.go
package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

func GetRoleProfile(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	roleID, ok := params["roleId"].(string)
	if !ok || roleID == "" {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	var id string
	var baseSalary int
	var highDemand bool
	var keywordsJSON, skillsJSON, verbsJSON, levelsJSON []byte

	err := db.QueryRowContext(ctx, `
		SELECT id, title_keywords, required_skills, responsibility_verbs, levels, base_salary, high_demand
		FROM role_profiles
		WHERE id = $1`, roleID).Scan(
		&id, &keywordsJSON, &skillsJSON, &verbsJSON, &levelsJSON,
		&baseSalary, &highDemand,
	)
	if err != nil {
		return nil, 0, 0, err
	}

	result := map[string]interface{}{
		"id":         id,
		"baseSalary": baseSalary,
		"highDemand": highDemand,
	}
	for key, raw := range map[string][]byte{
		"titleKeywords":       keywordsJSON,
		"requiredSkills":      skillsJSON,
		"responsibilityVerbs": verbsJSON,
		"levels":              levelsJSON,
	} {
		if len(raw) == 0 {
			continue
		}
		var decoded interface{}
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, 0, 0, fmt.Errorf("decode %s for %s: %w", key, id, err)
		}
		result[key] = decoded
	}

	execTime := time.Since(start).Milliseconds()
	return result, 1, execTime, nil
}

func ListRoleProfiles(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	start := time.Now()

	rows, err := db.QueryContext(ctx, `
		SELECT id, base_salary, high_demand
		FROM role_profiles
		ORDER BY position, id`)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	var results []map[string]interface{}
	for rows.Next() {
		var id string
		var baseSalary int
		var highDemand bool
		if err := rows.Scan(&id, &baseSalary, &highDemand); err != nil {
			return nil, 0, 0, err
		}
		results = append(results, map[string]interface{}{
			"id":         id,
			"baseSalary": baseSalary,
			"highDemand": highDemand,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	execTime := time.Since(start).Milliseconds()
	return results, len(results), execTime, nil
}

func GetSalaryBand(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	roleID, ok := params["roleId"].(string)
	if !ok || roleID == "" {
		return nil, 0, 0, ErrMissingParam
	}
	level, ok := params["level"].(string)
	if !ok || level == "" {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	var levelsJSON []byte
	var baseSalary int
	err := db.QueryRowContext(ctx, `
		SELECT levels, base_salary
		FROM role_profiles
		WHERE id = $1`, roleID).Scan(&levelsJSON, &baseSalary)
	if err != nil {
		return nil, 0, 0, err
	}

	var levels map[string]struct {
		SalaryRange *struct {
			Min    int `json:"min"`
			Max    int `json:"max"`
			Median int `json:"median"`
		} `json:"salaryRange"`
	}
	if len(levelsJSON) > 0 {
		if err := json.Unmarshal(levelsJSON, &levels); err != nil {
			return nil, 0, 0, fmt.Errorf("decode levels for %s: %w", roleID, err)
		}
	}

	result := map[string]interface{}{
		"roleId":     roleID,
		"level":      level,
		"baseSalary": baseSalary,
	}
	if lvl, exists := levels[level]; exists && lvl.SalaryRange != nil {
		result["salaryRange"] = map[string]interface{}{
			"min":    lvl.SalaryRange.Min,
			"max":    lvl.SalaryRange.Max,
			"median": lvl.SalaryRange.Median,
		}
	}

	execTime := time.Since(start).Milliseconds()
	return result, 1, execTime, nil
}
