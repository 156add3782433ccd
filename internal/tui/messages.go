package tui

import (
	"github.com/rgehrsitz/fitsizer/internal/calculation"
	"github.com/rgehrsitz/fitsizer/internal/config"
	"github.com/rgehrsitz/fitsizer/internal/tui/tuimsg"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneScenarios
	SceneParameters
	SceneResults
	SceneCompare
	SceneTarget
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ConfigLoadedMsg carries the loaded settings and the engine built from them
type ConfigLoadedMsg struct {
	Settings *config.Settings
	Engine   *calculation.Engine
	Inputs   tuimsg.Inputs
}

// Messages emitted by scenes
type (
	ErrorMsg              = tuimsg.ErrorMsg
	ScenarioSelectedMsg   = tuimsg.ScenarioSelectedMsg
	InputsChangedMsg      = tuimsg.InputsChangedMsg
	EvaluationCompleteMsg = tuimsg.EvaluationCompleteMsg
	ComparisonStartedMsg  = tuimsg.ComparisonStartedMsg
	ComparisonCompleteMsg = tuimsg.ComparisonCompleteMsg
	TargetStartedMsg      = tuimsg.TargetStartedMsg
	TargetCompleteMsg     = tuimsg.TargetCompleteMsg
)
