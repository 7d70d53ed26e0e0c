// objtool is a CLI utility for inspecting Wavefront OBJ models and MTL
// material libraries.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/wavefront/internal/config"
	"github.com/Faultbox/wavefront/internal/logger"
)

type command func(cfg *config.Config, args []string, w io.Writer) error

var commands = map[string]command{
	"info":      cmdInfo,
	"meshes":    cmdMeshes,
	"materials": cmdMaterials,
	"mtl":       cmdMaterials,
	"dump":      cmdDump,
	"config":    cmdConfig,
}

func main() {
	flag.Usage = printUsage

	// Parse CLI flags first
	config.ParseFlags()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	name := flag.Arg(0)
	args := flag.Args()[1:]

	switch name {
	case "help", "-h", "--help":
		printUsage()
		return
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", name)
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := cmd(cfg, args, os.Stdout); err != nil {
		logger.Error("command failed", zap.String("command", name), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `objtool - Wavefront OBJ/MTL utility

Usage:
  objtool [flags] <command> [options]

Commands:
  info <file.obj>...            Show model summaries (files parsed in parallel)
  meshes <file.obj>             List meshes with material and face counts
  materials <file.mtl>          List materials and their attributes
  dump <file.obj>               Dump the model as YAML
  config [path]                 Write the effective config to path or the config dir

Flags:
  -config <path>    Config file (default: ./objtool.yaml or the user config dir)
  -debug            Enable debug logging
  -strict           Reject vertex normals with a stray component
  -encoding <name>  Source charset, e.g. windows-1252
  -format <fmt>     Output format: text or yaml
  -workers <n>      Files parsed concurrently by info

Examples:
  objtool info scenes/*.obj
  objtool -format yaml meshes car.obj
  objtool materials car.mtl
  objtool dump -mesh "Car:body" car.obj`)
}
