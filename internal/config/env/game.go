package env

import (
	"flying_horse_backend/internal/config"
	"flying_horse_backend/internal/model"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

type gameYAML struct {
	Game struct {
		BetList         []float64 `yaml:"bet_list"`
		MulSteps        []float64 `yaml:"mul_steps"`
		TargetRTP       float64   `yaml:"target_rtp"`
		StartingBalance float64   `yaml:"starting_balance"`
	} `yaml:"game"`
}

type gameConfig struct {
	betList         []float64
	mulSteps        []float64
	targetRTP       float64
	startingBalance float64
}

// NewGameConfigFromYAML читает секцию game из yaml файла
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return parseGameConfig(data)
}

func parseGameConfig(data []byte) (config.GameConfig, error) {
	var raw gameYAML
	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	g := raw.Game

	if err := model.ValidateBetList(g.BetList); err != nil {
		return nil, err
	}
	if err := model.ValidateRTP(g.TargetRTP); err != nil {
		return nil, err
	}
	if len(g.MulSteps) == 0 {
		return nil, fmt.Errorf("mul_steps is empty")
	}
	if !sort.Float64sAreSorted(g.MulSteps) || g.MulSteps[0] < 1 {
		return nil, fmt.Errorf("mul_steps must be ascending and >= 1")
	}
	if g.StartingBalance < 0 {
		return nil, fmt.Errorf("starting_balance must be >= 0")
	}

	return &gameConfig{
		betList:         model.SortedCopy(g.BetList),
		mulSteps:        g.MulSteps,
		targetRTP:       g.TargetRTP,
		startingBalance: g.StartingBalance,
	}, nil
}

func (c *gameConfig) BetList() []float64 {
	return c.betList
}

func (c *gameConfig) MulSteps() []float64 {
	return c.mulSteps
}

func (c *gameConfig) TargetRTP() float64 {
	return c.targetRTP
}

func (c *gameConfig) StartingBalance() float64 {
	return c.startingBalance
}
