//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput                 = "gen"
	sqlitePlayersFileLocation = "scoreboard.sqlite"
	serverBin                 = "./bin/server"
	cliBin                    = "./bin/scoreboardctl"
	certgenBin                = "./bin/certgen"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
	jetTool      = toolsBinDir + "jet"
)

const (
	serverConfigPath = "configs/server.toml"
	botConfigPath    = "configs/bot.toml"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server, cli and certgen binaries
func Build() error {
	mg.Deps(goModDownload)
	if err := sh.RunWith(map[string]string{"CGO_ENABLED": "1"}, "go", "build", "-o", serverBin, "./cmd"); err != nil {
		return err
	}
	if err := sh.Run("go", "build", "-o", cliBin, "./cmd/scoreboardctl"); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", certgenBin, "./cmd/certgen")
}

// Run starts server, migrations are applied on startup
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin, "-server-config", serverConfigPath, "-bot-config", botConfigPath)
}

// Cert generates a self-signed certificate pair for TLS
func Cert() error {
	mg.Deps(Build)
	return sh.Run(certgenBin, "-out", ".")
}

// GenJet regenerates jet models from a migrated sqlite file
func GenJet() error {
	mg.Deps(buildJetTool)
	return sh.Run(jetTool, "-source", "sqlite", "-dsn", sqlitePlayersFileLocation, "-path", jetOutput)
}

func buildJetTool() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-modfile", toolsModfile, "-o", jetTool, "github.com/go-jet/jet/v2/cmd/jet")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}

// Test runs unit tests with race detector
func Test() error {
	return sh.RunWith(map[string]string{"CGO_ENABLED": "1"}, "go", "test", "-race", "./...")
}
