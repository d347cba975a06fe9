// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordcost server and CLI.

wordcost prices the cheapest chain of edits between two dictionary words.
Insert, delete, substitute and anagram jumps each have a configurable cost,
and every word along the way must be a dictionary word longer than three
letters.

# Usage

Answer a single instruction file:

	wordcost -dict words.txt -i query.txt

An instruction file holds three lines, the costs (insert delete substitute
anagram), the origin and the target:

	1 3 1 5
	listen
	silent

Run the interactive loop, which asks for instruction files until "exit":

	wordcost -c

Without -i or -c, wordcost serves MessagePack requests over stdin/stdout
(see package server).

# Dictionaries

-dict accepts a newline separated text file, a single dict_NNNN.bin chunk
or a directory of chunks. Relative paths are looked up in the working
directory, next to the executable and in the config directory.

# Configuration

Defaults come from config.toml in ~/.config/wordcost, created on first run:

	[dict]
	path = "words.txt"

	[search]
	min_length = 3
	max_expansions = 0

	[costs]
	insert = 1
	delete = 1
	substitute = 1
	anagram = 1

	[server]
	max_word_length = 64

# Command Line Flags

	-version
	    Show current version
	-dict string
	    Dictionary file or chunk directory (default from config)
	-config string
	    Path to a custom config file
	-i string
	    Instruction file to answer once
	-c  Run the interactive loop
	-d  Enable debug logging
	-max-expansions int
	    Stop a query after this many expansions (0 for no limit)
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordcost/internal/cli"
	"github.com/bastiangx/wordcost/internal/logger"
	"github.com/bastiangx/wordcost/internal/utils"
	"github.com/bastiangx/wordcost/pkg/config"
	"github.com/bastiangx/wordcost/pkg/dictionary"
	"github.com/bastiangx/wordcost/pkg/search"
	"github.com/bastiangx/wordcost/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordcost"
	gh      = "https://github.com/bastiangx/wordcost"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary and engine options, then hands off to one
// of the three modes.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Dictionary file or chunk directory (default from config)")
	configPath := flag.String("config", "", "Path to a custom config file")
	instructionPath := flag.String("i", "", "Instruction file to answer once")
	cliMode := flag.Bool("c", false, "Run the interactive loop")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	maxExpansions := flag.Int("max-expansions", -1, "Stop a query after this many expansions (0 for no limit, default from config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	log.SetOutput(os.Stderr)

	appConfig, activeConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfig))

	if *dictPath != "" {
		appConfig.Dict.Path = *dictPath
	}
	if *maxExpansions >= 0 {
		appConfig.Search.MaxExpansions = *maxExpansions
	}

	configDir, err := config.GetConfigDir()
	if err != nil {
		log.Warnf("No config directory available: %v", err)
	}
	resolver := utils.NewPathResolver(configDir)

	resolvedDict := resolver.Resolve(appConfig.Dict.Path)
	index, err := dictionary.LoadPath(resolvedDict)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	log.Debug("Dictionary loaded", "path", resolvedDict, "stats", index.Stats())

	opts := []search.Option{
		search.WithMinLength(appConfig.Search.MinLength),
		search.WithMaxExpansions(appConfig.Search.MaxExpansions),
	}

	switch {
	case *instructionPath != "":
		inst, err := config.LoadInstruction(resolver.Resolve(*instructionPath))
		if err != nil {
			log.Fatalf("Failed to read instruction: %v", err)
		}
		c := search.New(inst.Costs, index, opts...).FindMinimumCost(inst.Origin, inst.Target)
		fmt.Println(cli.FormatResult(inst, c))

	case *cliMode:
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(index, resolver, opts...)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}

	default:
		log.Debug("spawning IPC", "pid", os.Getpid())
		srv := server.NewServer(index, appConfig)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}
}

// printVersion shows the version banner on stderr.
func printVersion() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ " + AppName + " ] cheapest edit chains between words")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}
