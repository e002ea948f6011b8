package main

import (
	"embed"
	"os"

	"github.com/fluidity-money/contact/cmd"
)

var (
	version = "dev"
)

//go:embed templates/*.html
var templatesFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

func main() {
	if err := cmd.Execute(cmd.Build{
		Version:   version,
		Templates: templatesFiles,
		Static:    staticFiles,
	}); err != nil {
		os.Exit(1)
	}
}
