package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/fitsizer/internal/config"
	"github.com/rgehrsitz/fitsizer/internal/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// step applies msg and then feeds application messages produced by the
// returned commands back in, the way the bubbletea runtime would. Anything
// else (batches, cursor blinks) ends the chain.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	model := next.(Model)
	for cmd != nil {
		out := cmd()
		if !isAppMsg(out) {
			return model
		}
		next, cmd = model.Update(out)
		model = next.(Model)
	}
	return model
}

func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case NavigateMsg, ConfigLoadedMsg, ErrorMsg, ScenarioSelectedMsg, InputsChangedMsg,
		EvaluationCompleteMsg, ComparisonStartedMsg, ComparisonCompleteMsg,
		TargetStartedMsg, TargetCompleteMsg:
		return true
	}
	return false
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")

	m := NewModel("")
	msg := m.Init()()
	loaded, ok := msg.(ConfigLoadedMsg)
	require.True(t, ok, "expected ConfigLoadedMsg, got %T", msg)
	return step(t, m, loaded)
}

func TestModel_LoadEvaluatesDefaultInputs(t *testing.T) {
	m := loadedModel(t)

	assert.False(t, m.loading)
	assert.Equal(t, domain.ScenarioMedium, m.inputs.Scenario)

	result := m.resultsModel.Result()
	require.NotNil(t, result)
	assert.Equal(t, 336, result.TotalClients)
	assert.Equal(t, "56100", result.TotalRevenue.String())

	assert.Contains(t, m.View(), "Facility")
}

func TestModel_Navigation(t *testing.T) {
	m := loadedModel(t)

	m = step(t, m, runes("c"))
	assert.Equal(t, SceneCompare, m.currentScene)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, SceneHome, m.currentScene)

	m = step(t, m, runes("?"))
	assert.Equal(t, SceneHelp, m.currentScene)
	assert.Contains(t, m.View(), "Keyboard shortcuts")
}

func TestModel_CompareAllScenarios(t *testing.T) {
	m := loadedModel(t)
	m = step(t, m, runes("c"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	assert.Contains(t, view, "OCCUPANCY SCENARIO COMPARISON")
	assert.Contains(t, view, "Revenue by scenario")
}

func TestModel_SelectScenarioShowsResults(t *testing.T) {
	m := loadedModel(t)
	m = step(t, m, runes("s"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyUp})

	// Selection evaluates and navigates in one batch; run both halves.
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)
	m = step(t, m, cmd())
	require.Equal(t, domain.ScenarioReduced, m.inputs.Scenario)

	m = step(t, m, evaluateCmd(m.engine, m.inputs)())
	m = step(t, m, NavigateMsg{Scene: SceneResults})
	assert.Equal(t, 202, m.resultsModel.Result().TotalClients)
	assert.Contains(t, m.View(), "Reduced occupancy")
}

func TestModel_TargetSolver(t *testing.T) {
	m := loadedModel(t)
	m = step(t, m, runes("t"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.targetModel.Editing())

	// Global shortcuts are suspended while typing.
	next, _ := m.Update(runes("q"))
	m = next.(Model)
	assert.Equal(t, SceneTarget, m.currentScene)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(Model)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Occupancy needed")
}

func TestModel_ErrorIsDismissedByAnyKey(t *testing.T) {
	m := loadedModel(t)
	m = step(t, m, ErrorMsg{Err: errors.New("boom")})
	assert.Contains(t, m.View(), "boom")

	m = step(t, m, runes("x"))
	assert.Nil(t, m.err)
	assert.NotContains(t, m.View(), "boom")
}

func TestModel_InvalidConfigFileReportsError(t *testing.T) {
	msg := loadConfigCmd("/does/not/exist.yaml")()
	errMsg, ok := msg.(ErrorMsg)
	require.True(t, ok)
	assert.ErrorIs(t, errMsg.Err, config.ErrLoadConfig)
}

func TestScene_String(t *testing.T) {
	assert.Equal(t, "Target", SceneTarget.String())
	assert.Equal(t, "Unknown", Scene(99).String())
}
