package main

import "github.com/Mura0908/finsight-app-New/internal/cli"

//go:generate swag init --parseDependency --output ./api

// @title			FinSight
// @version		0.0.0
// @description	The backend for FinSight, a personal finance tracker.
// @BasePath		/api
func main() {
	cli.Execute()
}
