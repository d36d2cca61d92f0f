package main

import (
	"github.com/venafi/release-signing-connector/cmd/release-signing-connector/app"
)

func main() {
	app.New().Run()
}
