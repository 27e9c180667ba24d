package main

import (
	"os"

	"github.com/Flyrell/habitplant/internal/cli"
	_ "github.com/joho/godotenv/autoload"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
