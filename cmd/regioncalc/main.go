// Package main provides a command-line utility to evaluate region algebra.
// It reads boxes from a YAML document and prints set operations and
// linearizations for debugging.
package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.SetFlags(0)
		log.Printf("regioncalc: %v", err)
		os.Exit(1)
	}
}
