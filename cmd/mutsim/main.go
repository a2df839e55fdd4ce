// cmd/mutsim/main.go
package main

import (
	"mutsim/internal/app"
	"mutsim/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
