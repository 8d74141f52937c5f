package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/apperror"
)

const (
	AutoPlayerTwo  = "two"
	AutoPlayerNone = "none"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	Width            int    `yaml:"width" env:"GAME_WIDTH" env-default:"3" validate:"min=1"`
	Height           int    `yaml:"height" env:"GAME_HEIGHT" env-default:"3" validate:"min=1"`
	WinCount         int    `yaml:"win-count" env:"GAME_WIN_COUNT" env-default:"3" validate:"min=1"`
	AutoPlayer       string `yaml:"auto-player" env:"GAME_AUTO_PLAYER" env-default:"two" validate:"oneof=two none"`
	StrangeGameAfter int    `yaml:"strange-game-after" env:"GAME_STRANGE_GAME_AFTER" env-default:"3" validate:"min=1"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the config file, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// a line longer than both sides can never be completed
	if that.Game.WinCount > that.Game.Width && that.Game.WinCount > that.Game.Height {
		return fmt.Errorf("%w: win count %d exceeds %dx%d board",
			apperror.ErrInvalidDimensions, that.Game.WinCount, that.Game.Width, that.Game.Height)
	}

	return nil
}

func (that *Game) HasAutoPlayer() bool {
	return that.AutoPlayer == AutoPlayerTwo
}
