// internal/catalog/store.go
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Store reads catalog overrides from Postgres. Rows extend or replace the
// built-in defaults, so deployments can tune role profiles and resources
// without a release.
type Store struct {
	db *sql.DB
}

// NewStore creates a catalog store backed by an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadSkills returns custom skill definitions from the skill_definitions
// table.
func (s *Store) LoadSkills(ctx context.Context) ([]SkillDefinition, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, category, aliases FROM skill_definitions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query skill definitions: %w", err)
	}
	defer rows.Close()

	var skills []SkillDefinition
	for rows.Next() {
		var def SkillDefinition
		var aliasesJSON []byte
		if err := rows.Scan(&def.Name, &def.Category, &aliasesJSON); err != nil {
			return nil, fmt.Errorf("scan skill definition: %w", err)
		}
		if len(aliasesJSON) > 0 {
			if err := json.Unmarshal(aliasesJSON, &def.Aliases); err != nil {
				return nil, fmt.Errorf("decode aliases for %s: %w", def.Name, err)
			}
		}
		skills = append(skills, def)
	}
	return skills, rows.Err()
}

// LoadRoles returns custom role profiles from the role_profiles table.
// Rows are ordered by position so tie-break precedence is stable.
func (s *Store) LoadRoles(ctx context.Context) ([]RoleProfile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title_keywords, required_skills, responsibility_verbs, levels, base_salary, high_demand
		 FROM role_profiles ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query role profiles: %w", err)
	}
	defer rows.Close()

	var roles []RoleProfile
	for rows.Next() {
		var role RoleProfile
		var keywordsJSON, skillsJSON, verbsJSON, levelsJSON []byte
		if err := rows.Scan(&role.ID, &keywordsJSON, &skillsJSON, &verbsJSON,
			&levelsJSON, &role.BaseSalary, &role.HighDemand); err != nil {
			return nil, fmt.Errorf("scan role profile: %w", err)
		}
		if err := json.Unmarshal(keywordsJSON, &role.TitleKeywords); err != nil {
			return nil, fmt.Errorf("decode title keywords for %s: %w", role.ID, err)
		}
		if err := json.Unmarshal(skillsJSON, &role.RequiredSkills); err != nil {
			return nil, fmt.Errorf("decode required skills for %s: %w", role.ID, err)
		}
		if err := json.Unmarshal(verbsJSON, &role.ResponsibilityVerbs); err != nil {
			return nil, fmt.Errorf("decode responsibility verbs for %s: %w", role.ID, err)
		}
		if len(levelsJSON) > 0 {
			if err := json.Unmarshal(levelsJSON, &role.Levels); err != nil {
				return nil, fmt.Errorf("decode levels for %s: %w", role.ID, err)
			}
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// LoadResources returns curated learning resources from the
// learning_resources table.
func (s *Store) LoadResources(ctx context.Context) ([]ResourceSet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT skill, level, resources FROM learning_resources ORDER BY skill, level`)
	if err != nil {
		return nil, fmt.Errorf("query learning resources: %w", err)
	}
	defer rows.Close()

	var sets []ResourceSet
	for rows.Next() {
		var set ResourceSet
		var resourcesJSON []byte
		if err := rows.Scan(&set.Skill, &set.Level, &resourcesJSON); err != nil {
			return nil, fmt.Errorf("scan learning resources: %w", err)
		}
		if err := json.Unmarshal(resourcesJSON, &set.Resources); err != nil {
			return nil, fmt.Errorf("decode resources for %s: %w", set.Skill, err)
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

// Load builds a catalog from the defaults overlaid with any database
// overrides. Custom entries with the same name or id replace built-ins;
// new entries are appended after them.
func (s *Store) Load(ctx context.Context) (*Catalog, error) {
	cat := Default()

	skills, err := s.LoadSkills(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.LoadRoles(ctx)
	if err != nil {
		return nil, err
	}
	resources, err := s.LoadResources(ctx)
	if err != nil {
		return nil, err
	}

	merged := &Catalog{
		Skills:           mergeSkills(cat.Skills, skills),
		Roles:            mergeRoles(cat.Roles, roles),
		ProficiencyRules: cat.ProficiencyRules,
		HourMultipliers:  cat.HourMultipliers,
		BaseHours:        cat.BaseHours,
		HighDemandSkills: cat.HighDemandSkills,
		Resources:        mergeResources(cat.Resources, resources),
	}
	return merged, nil
}

func mergeSkills(base, custom []SkillDefinition) []SkillDefinition {
	out := make([]SkillDefinition, len(base))
	copy(out, base)
	for _, c := range custom {
		replaced := false
		for i := range out {
			if out[i].Name == c.Name {
				out[i] = c
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, c)
		}
	}
	return out
}

func mergeRoles(base, custom []RoleProfile) []RoleProfile {
	out := make([]RoleProfile, len(base))
	copy(out, base)
	for _, c := range custom {
		replaced := false
		for i := range out {
			if out[i].ID == c.ID {
				out[i] = c
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, c)
		}
	}
	return out
}

func mergeResources(base, custom []ResourceSet) []ResourceSet {
	out := make([]ResourceSet, len(base))
	copy(out, base)
	for _, c := range custom {
		replaced := false
		for i := range out {
			if out[i].Skill == c.Skill && out[i].Level == c.Level {
				out[i] = c
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, c)
		}
	}
	return out
}
