package main

import (
	"os"

	"github.com/laceandcraft/storefront/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
