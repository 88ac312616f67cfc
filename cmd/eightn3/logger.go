package main

import (
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

// newLogger builds a console-formatted zerolog.Logger writing to stderr, in
// the shape cloudflared's logger package wires one up: a colorable writer
// so Windows terminals render ANSI color correctly, RFC3339 timestamps, and
// a level parsed from a flag rather than hardcoded.
func newLogger(levelName string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        colorable.NewColorable(os.Stderr),
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
