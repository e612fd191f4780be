// internal/catalog/catalog_test.go
package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-workers/internal/models"
)

func TestDefault_Lookups(t *testing.T) {
	cat := Default()

	t.Run("find role case-insensitive", func(t *testing.T) {
		role, ok := cat.FindRole("Software-Engineer")
		require.True(t, ok)
		assert.Equal(t, "software-engineer", role.ID)
		assert.Contains(t, role.RequiredSkills, "data structures")
	})

	t.Run("unknown role", func(t *testing.T) {
		_, ok := cat.FindRole("astronaut")
		assert.False(t, ok)
	})

	t.Run("find skill by canonical name", func(t *testing.T) {
		def, ok := cat.FindSkill("Machine Learning")
		require.True(t, ok)
		assert.Equal(t, models.CategoryTechnical, def.Category)
		assert.Contains(t, def.Aliases, "scikit-learn")
	})

	t.Run("category defaults to technical for unknown skill", func(t *testing.T) {
		assert.Equal(t, models.CategoryTechnical, cat.CategoryOf("underwater basket weaving"))
	})

	t.Run("high demand skill list", func(t *testing.T) {
		assert.True(t, cat.IsHighDemandSkill("Kubernetes"))
		assert.False(t, cat.IsHighDemandSkill("jira"))
	})
}

func TestDefault_RoleOrderIsStable(t *testing.T) {
	// Classification ties break to the earliest declared role, so the
	// declaration order is part of the contract.
	cat := Default()
	require.NotEmpty(t, cat.Roles)
	assert.Equal(t, "software-engineer", cat.Roles[0].ID)
}

func TestHoursFor(t *testing.T) {
	cat := Default()

	tests := []struct {
		name     string
		skill    string
		level    models.ModuleLevel
		expected int
	}{
		{name: "beginner base", skill: "react", level: models.ModuleBeginner, expected: 40},
		{name: "intermediate base", skill: "react", level: models.ModuleIntermediate, expected: 60},
		{name: "advanced base", skill: "react", level: models.ModuleAdvanced, expected: 100},
		{name: "machine learning doubles", skill: "machine learning", level: models.ModuleBeginner, expected: 80},
		{name: "programming scales 1.5x", skill: "programming", level: models.ModuleIntermediate, expected: 90},
		{name: "communication discounts", skill: "communication", level: models.ModuleBeginner, expected: 32},
		{name: "unknown level falls back to intermediate", skill: "react", level: models.ModuleLevel("phd"), expected: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cat.HoursFor(tt.skill, tt.level))
		})
	}
}

func TestProficiencyFromContext(t *testing.T) {
	cat := Default()

	tests := []struct {
		name     string
		context  string
		expected int
	}{
		{name: "expert indicator", context: "expert in distributed systems", expected: 5},
		{name: "proficient indicator", context: "proficient with react and redux", expected: 4},
		{name: "beginner indicator", context: "basic familiarity with sql", expected: 2},
		{name: "expert outranks beginner in same window", context: "expert who enjoys learning", expected: 5},
		{name: "no indicator", context: "worked with kafka daily", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cat.ProficiencyFromContext(tt.context))
		})
	}
}

func TestSuggestNextLevel(t *testing.T) {
	assert.Equal(t, "mid", SuggestNextLevel(models.LevelEntry))
	assert.Equal(t, "senior", SuggestNextLevel(models.LevelMid))
	assert.Equal(t, "lead", SuggestNextLevel(models.LevelSenior))
	assert.Equal(t, "executive", SuggestNextLevel(models.LevelLead))
	assert.Equal(t, "executive", SuggestNextLevel(models.LevelExecutive))
}

func TestFindResources(t *testing.T) {
	cat := Default()

	resources, ok := cat.FindResources("python", models.ModuleIntermediate)
	require.True(t, ok)
	require.NotEmpty(t, resources)
	assert.Equal(t, "Intermediate Python", resources[0].Title)

	_, ok = cat.FindResources("python", models.ModuleAdvanced)
	assert.False(t, ok)
}

func TestStore_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name, category, aliases FROM skill_definitions").
		WillReturnRows(sqlmock.NewRows([]string{"name", "category", "aliases"}).
			AddRow("rust", "technical", `["rust","rustlang"]`).
			AddRow("python", "technical", `["python","py"]`))

	mock.ExpectQuery("SELECT id, title_keywords, required_skills, responsibility_verbs, levels, base_salary, high_demand").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title_keywords", "required_skills", "responsibility_verbs", "levels", "base_salary", "high_demand",
		}).AddRow("security-engineer", `["security engineer"]`, `["security","linux"]`, `["secured","audited"]`, `{}`, 115000, true))

	mock.ExpectQuery("SELECT skill, level, resources FROM learning_resources").
		WillReturnRows(sqlmock.NewRows([]string{"skill", "level", "resources"}).
			AddRow("rust", "beginner", `[{"type":"book","title":"The Rust Programming Language","provider":"No Starch Press","url":"https://doc.rust-lang.org/book/","hours":25}]`))

	store := NewStore(db)
	cat, err := store.Load(context.Background())
	require.NoError(t, err)

	// new skill appended, existing skill replaced in place
	rust, ok := cat.FindSkill("rust")
	require.True(t, ok)
	assert.Contains(t, rust.Aliases, "rustlang")
	python, ok := cat.FindSkill("python")
	require.True(t, ok)
	assert.Equal(t, []string{"python", "py"}, python.Aliases)

	role, ok := cat.FindRole("security-engineer")
	require.True(t, ok)
	assert.Equal(t, 115000, role.BaseSalary)
	assert.True(t, role.HighDemand)

	resources, ok := cat.FindResources("rust", models.ModuleBeginner)
	require.True(t, ok)
	assert.Equal(t, "The Rust Programming Language", resources[0].Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_LoadQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name, category, aliases FROM skill_definitions").
		WillReturnError(assert.AnError)

	store := NewStore(db)
	_, err = store.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query skill definitions")
}
