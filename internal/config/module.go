package config

import "go.uber.org/fx"

// Module provides the process configuration
var Module = fx.Provide(Load)
