// Package tui is the interactive terminal front end for the sizing engine.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fitsizer/internal/calculation"
	"github.com/rgehrsitz/fitsizer/internal/compare"
	"github.com/rgehrsitz/fitsizer/internal/config"
	"github.com/rgehrsitz/fitsizer/internal/tui/scenes"
	"github.com/rgehrsitz/fitsizer/internal/tui/tuimsg"
)

// Model represents the entire application state
type Model struct {
	currentScene  Scene
	previousScene Scene

	width  int
	height int

	configPath string
	settings   *config.Settings
	engine     *calculation.Engine
	inputs     tuimsg.Inputs

	homeModel       *scenes.HomeModel
	scenariosModel  *scenes.ScenariosModel
	parametersModel *scenes.ParametersModel
	resultsModel    *scenes.ResultsModel
	compareModel    *scenes.CompareModel
	targetModel     *scenes.TargetModel

	err            error
	loading        bool
	loadingMessage string
}

// NewModel creates the application model. An empty configPath falls back to
// FITSIZER_CONFIG and then to the built-in defaults.
func NewModel(configPath string) Model {
	return Model{
		currentScene:    SceneHome,
		configPath:      configPath,
		homeModel:       scenes.NewHomeModel(),
		scenariosModel:  scenes.NewScenariosModel(),
		parametersModel: scenes.NewParametersModel(),
		resultsModel:    scenes.NewResultsModel(),
		compareModel:    scenes.NewCompareModel(),
		targetModel:     scenes.NewTargetModel(),
		loading:         true,
		loadingMessage:  "Loading configuration...",
		width:           100,
		height:          30,
	}
}

// Init loads the configuration
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		settings, err := config.Load(context.Background(), path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		engineCfg, err := settings.EngineConfig()
		if err != nil {
			return ErrorMsg{Err: err}
		}
		engine, err := calculation.NewEngine(engineCfg)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		kind, dist, demo, camp, err := settings.DefaultInputs()
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{
			Settings: settings,
			Engine:   engine,
			Inputs:   tuimsg.Inputs{Scenario: kind, Distribution: dist, Demographics: demo, Campaign: camp},
		}
	}
}

func evaluateCmd(engine *calculation.Engine, in tuimsg.Inputs) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.EvaluateScenario(in.Scenario, in.Distribution, in.Demographics, in.Campaign)
		return EvaluationCompleteMsg{Result: result, Err: err}
	}
}

func compareCmd(engine *calculation.Engine, in tuimsg.Inputs, configPath string) tea.Cmd {
	return func() tea.Msg {
		results, err := engine.CompareAllScenarios(context.Background(), in.Distribution, in.Demographics, in.Campaign)
		if err != nil {
			return ComparisonCompleteMsg{Err: err}
		}
		set := compare.NewCompareEngine(engine).Build(results, configPath)
		return ComparisonCompleteMsg{Results: results, Set: set}
	}
}

func targetCmd(engine *calculation.Engine, in tuimsg.Inputs, target decimal.Decimal) tea.Cmd {
	return func() tea.Msg {
		res, err := calculation.NewTargetSolver(engine).
			SolveTargetOccupancy(context.Background(), in.Distribution, in.Demographics, in.Campaign, target)
		return TargetCompleteMsg{Result: res, Err: err}
	}
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneScenarios:
		return "Scenarios"
	case SceneParameters:
		return "Parameters"
	case SceneResults:
		return "Results"
	case SceneCompare:
		return "Compare"
	case SceneTarget:
		return "Target"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
