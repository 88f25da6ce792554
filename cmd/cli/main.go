package main

import (
	"fmt"
	"os"

	"github.com/sign2voice/sign2voice/cmd/cli/root"

	_ "github.com/sign2voice/sign2voice/cmd/cli/admins"
	_ "github.com/sign2voice/sign2voice/cmd/cli/users"
)

func main() {
	// Execute the root Cobra command
	if err := root.GetRoot().Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
