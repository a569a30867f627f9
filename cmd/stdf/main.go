package main

import (
	"github.com/ssargent/gostdf/cmd/stdf/cmd"
	"github.com/ssargent/gostdf/pkg/di"
)

func main() {
	// Initialize dependency injection container
	container := di.NewContainer()

	// Inject dependencies into cmd package
	cmd.SetContainer(container)

	cmd.Execute()
}
