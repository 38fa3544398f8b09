package main

import (
	"os"
	"pokerhands/internal/config"

	"gopkg.in/yaml.v2"
)

// prints the default configuration as a starting config.yaml
func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
