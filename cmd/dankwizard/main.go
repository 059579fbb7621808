package main

import (
	"github.com/AvengeMedia/dankwizard/internal/log"
)

var Version = "dev"

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
