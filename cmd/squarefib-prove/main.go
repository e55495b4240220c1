// Command squarefib-prove generates a proof for a random square-Fibonacci
// witness and writes its transcript to a file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/orbital-stark/squarefib/internal/squarefib/core"
	squarefibstark "github.com/orbital-stark/squarefib/pkg/squarefib-stark"
)

func main() {
	defaults := squarefibstark.DefaultConfig()
	steps := flag.Int("steps", 1022, "number of trace transitions (must be < trace domain size)")
	out := flag.String("out", "proof.txt", "path to write the proof transcript to")
	friQueries := flag.Int("fri-queries", defaults.FRIQueries, "number of FRI decommitment queries")
	flag.Parse()

	cfg := defaults.Clone()
	cfg.FRIQueries = *friQueries
	if err := cfg.Validate(); err != nil {
		fatal(fmt.Sprintf("invalid configuration: %v", err))
	}

	logStderr(fmt.Sprintf("sampling a random witness for %d steps...", *steps))
	witness, err := core.DefaultField.RandomElement()
	if err != nil {
		fatal(fmt.Sprintf("failed to sample witness: %v", err))
	}

	stmt, err := squarefibstark.NewFibonacciStatement(witness, *steps, cfg)
	if err != nil {
		fatal(fmt.Sprintf("failed to build statement: %v", err))
	}

	logStderr("proving...")
	proof, err := squarefibstark.Prove(stmt, cfg)
	if err != nil {
		fatal(fmt.Sprintf("failed to generate proof: %v", err))
	}
	logStderr(fmt.Sprintf("public output: %s", proof.PublicOutput.String()))

	contents := strings.Join(proof.Log, "\n")
	if err := os.WriteFile(*out, []byte(contents), 0o644); err != nil {
		fatal(fmt.Sprintf("failed to write proof to %s: %v", *out, err))
	}

	digest := blake2b.Sum256([]byte(contents))
	logStderr(fmt.Sprintf("wrote %s (%d log entries, blake2b-256 %x)", *out, len(proof.Log), digest))
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "squarefib-prove:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
