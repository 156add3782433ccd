package config

import (
	"errors"

	"github.com/rgehrsitz/fitsizer/internal/domain"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidConfig = domain.ErrInvalidConfig
	ErrLoadConfig    = errors.New("load config failed")
)
