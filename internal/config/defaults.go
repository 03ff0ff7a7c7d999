package config

import (
	_ "embed"
)

//go:embed defaults/rgballs.yaml
var defaultYAML []byte
