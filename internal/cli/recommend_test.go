package cli

import (
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihara/courseflow/internal/model"
	"github.com/mihara/courseflow/internal/services/recommend"
)

// runCommand executes the root command with the given args and returns
// everything written to stdout
func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	execErr := cmd.Execute()

	require.NoError(t, w.Close())
	os.Stdout = old

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, execErr, "output: %s", out)
	return string(out)
}

func TestRecommendCommand(t *testing.T) {
	out := runCommand(t, "recommend", "--technical", "1", "--business", "1", "--duration", "1")

	assert.Contains(t, out, "Course: "+model.CourseBandai)
	assert.Contains(t, out, recommend.RecommendationText(model.CourseBandai))
}

func TestRecommendCommandFallback(t *testing.T) {
	out := runCommand(t, "recommend", "--technical", "9", "--business", "1", "--duration", "1")

	assert.Contains(t, out, recommend.FallbackMessage)
	assert.NotContains(t, out, "Course:")
}

func TestRecommendCommandMissingAnswers(t *testing.T) {
	out := runCommand(t, "recommend")

	assert.Contains(t, out, recommend.FallbackMessage)
}

func TestRecommendCommandJSON(t *testing.T) {
	out := runCommand(t, "recommend", "-o", "json",
		"--technical", "3", "--business", "2", "--duration", "2")

	var result recommend.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Matched)
	assert.Equal(t, model.CourseIide, result.Course)
	assert.Equal(t, recommend.RecommendationText(model.CourseIide), result.Text)
}
