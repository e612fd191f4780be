package extractskills

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"career-workers/internal/catalog"
	"career-workers/internal/common/logger"
)

func createTestHandler(t *testing.T) *Handler {
	log := logger.NewZapAdapter(zaptest.NewLogger(t))
	return NewHandler(&Config{Timeout: 5 * time.Second}, catalog.Default(), log)
}

func TestHandler_Execute_DetectsSkills(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		ResumeText: "Senior engineer with expert Python and basic Docker experience.",
	})
	require.NoError(t, err)

	names := make(map[string]int)
	for _, s := range output.Skills {
		names[s.Name] = s.Proficiency
	}
	assert.Equal(t, len(output.Skills), output.SkillCount)
	assert.Contains(t, names, "python")
	assert.Contains(t, names, "docker")
	assert.Equal(t, 2, names["docker"])
}

func TestHandler_Execute_EmptyTextDegrades(t *testing.T) {
	h := createTestHandler(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		output, err := h.Execute(context.Background(), &Input{ResumeText: text})
		require.NoError(t, err)
		assert.Empty(t, output.Skills)
		assert.Zero(t, output.SkillCount)
	}
}

func TestHandler_Execute_UnrecognizableText(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		ResumeText: "lorem ipsum dolor sit amet",
	})
	require.NoError(t, err)
	assert.Empty(t, output.Skills)
}
