package main

import (
	"os"

	"holdem-round/internal/config"

	"gopkg.in/yaml.v2"
)

// prints a config.yaml with the default values, ready to be edited
func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.Defaults()); err != nil {
		panic(err)
	}
}
