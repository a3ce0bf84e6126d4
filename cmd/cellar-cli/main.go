package main

import (
	cmd "github.com/cellar-dev/cellar-node/cmd/cellar-cli/modules"
)

func main() {
	cmd.Execute()
}
