package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

var sceneKeys = map[string]Scene{
	"h": SceneHome,
	"s": SceneScenarios,
	"p": SceneParameters,
	"r": SceneResults,
	"c": SceneCompare,
	"t": SceneTarget,
	"?": SceneHelp,
}

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeScenes()
		return m, nil

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ConfigLoadedMsg:
		m.loading = false
		m.settings = msg.Settings
		m.engine = msg.Engine
		m.inputs = msg.Inputs
		m.homeModel.SetSettings(msg.Settings, m.configPath)
		m.scenariosModel.SetScenarios(msg.Engine.ListScenarios(), msg.Inputs.Scenario)
		m.parametersModel.SetInputs(msg.Inputs, msg.Engine.Config.Catalog.Kinds())
		m.targetModel.SetDefaultTarget(msg.Engine.Config.RevenueTarget)
		m.resizeScenes()
		return m, evaluateCmd(m.engine, m.inputs)

	case ScenarioSelectedMsg:
		if m.engine == nil {
			return m, nil
		}
		m.inputs.Scenario = msg.Kind
		m.parametersModel.SetInputs(m.inputs, m.engine.Config.Catalog.Kinds())
		return m, tea.Batch(evaluateCmd(m.engine, m.inputs), navigate(SceneResults))

	case InputsChangedMsg:
		if m.engine == nil {
			return m, nil
		}
		m.inputs = msg.Inputs
		m.scenariosModel.ClearResults()
		m.compareModel.Reset()
		return m, evaluateCmd(m.engine, m.inputs)

	case EvaluationCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.resultsModel.SetResult(msg.Result)
		m.scenariosModel.SetResult(msg.Result)
		return m, nil

	case ComparisonStartedMsg:
		if m.engine == nil {
			return m, nil
		}
		return m, compareCmd(m.engine, m.inputs, m.configPath)

	case ComparisonCompleteMsg:
		if msg.Err != nil {
			m.compareModel.Reset()
			m.err = msg.Err
			return m, nil
		}
		m.compareModel.SetResults(msg.Results, msg.Set)
		for i := range msg.Results {
			m.scenariosModel.SetResult(&msg.Results[i])
		}
		return m, nil

	case TargetStartedMsg:
		if m.engine == nil {
			return m, nil
		}
		return m, targetCmd(m.engine, m.inputs, msg.Target)

	case TargetCompleteMsg:
		if msg.Err != nil {
			m.targetModel.Fail()
			m.err = msg.Err
			return m, nil
		}
		m.targetModel.SetResult(msg.Result)
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key dismisses an error.
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	// The target input owns the keyboard while it has focus.
	if m.currentScene == SceneTarget && m.targetModel.Editing() {
		return m.updateCurrentScene(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.currentScene != SceneHome {
			back := SceneHome
			if m.previousScene != m.currentScene {
				back = m.previousScene
			}
			return m, navigate(back)
		}
		return m, nil
	}

	if scene, ok := sceneKeys[msg.String()]; ok {
		if scene != m.currentScene {
			return m, navigate(scene)
		}
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneScenarios:
		m.scenariosModel, cmd = m.scenariosModel.Update(msg)
	case SceneParameters:
		m.parametersModel, cmd = m.parametersModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	case SceneCompare:
		m.compareModel, cmd = m.compareModel.Update(msg)
	case SceneTarget:
		m.targetModel, cmd = m.targetModel.Update(msg)
	}
	return m, cmd
}

func (m *Model) resizeScenes() {
	m.homeModel.SetSize(m.width, m.height)
	m.scenariosModel.SetSize(m.width, m.height)
	m.parametersModel.SetSize(m.width, m.height)
	m.resultsModel.SetSize(m.width, m.height)
	m.compareModel.SetSize(m.width, m.height)
	m.targetModel.SetSize(m.width, m.height)
}

func navigate(scene Scene) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Scene: scene} }
}
