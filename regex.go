// Package linegrep compiles a reduced regular-expression grammar (literals,
// grouping, alternation, and the unary quantifiers ?, +, *) into a
// deterministic finite automaton and uses it to decide which lines of a text
// contain a match.
//
// The compilation pipeline runs, leaves first: postfix conversion
// (package postfix), Thompson NFA construction (package nfa), subset
// construction into a DFA (package dfa), required-literal extraction
// (package literal) feeding an optional Aho-Corasick prefilter (package
// prefilter), and finally per-line scanning (package scan). Compile runs
// every stage once and returns a Pipeline that can scan any number of lines.
//
// Basic usage:
//
//	p, err := linegrep.Compile(`err(or)?`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if p.MatchLine("connection error: timed out") {
//	    fmt.Println("matched")
//	}
//
// Or, for a one-shot search over a whole text:
//
//	lines, err := linegrep.Search(`err(or)?`, contents, false)
package linegrep

import (
	"fmt"
	"strings"

	"github.com/coregx/linegrep/config"
	"github.com/coregx/linegrep/dfa"
	"github.com/coregx/linegrep/literal"
	"github.com/coregx/linegrep/nfa"
	"github.com/coregx/linegrep/postfix"
	"github.com/coregx/linegrep/prefilter"
	"github.com/coregx/linegrep/scan"
)

// Pipeline is a compiled pattern: the DFA and prefilter produced by running
// every compilation stage once, ready to scan any number of lines.
//
// A Pipeline is safe for concurrent use by multiple goroutines: MatchLine and
// FindAllLines only read the compiled automaton, never mutate it.
type Pipeline struct {
	pattern string
	dfa     *dfa.DFA
	scanner *scan.Scanner
}

// CompileError wraps a failure from any pipeline stage with the source
// pattern that produced it, mirroring the teacher's CompileError{Pattern,
// Err} wrapping convention (SPEC_FULL.md §2A).
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("linegrep: compile %q: %s", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// DefaultConfig returns the default pipeline configuration. Callers may
// customize the returned value and pass it to CompileWithConfig.
func DefaultConfig() config.Config {
	return config.DefaultConfig()
}

// Compile compiles pattern with the default configuration and
// case-sensitive matching.
func Compile(pattern string) (*Pipeline, error) {
	return CompileWithConfig(pattern, false, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails. Intended for patterns
// known to be valid at init time.
func MustCompile(pattern string) *Pipeline {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// CompileWithConfig runs the full compilation pipeline — postfix
// conversion, Thompson construction, subset construction, literal
// extraction, and prefilter construction — and returns a Pipeline ready to
// scan lines with the given case-sensitivity.
//
// Every error returned by an inner stage (postfix.Error, nfa.ErrTooComplex,
// dfa.ErrTooComplex, ...) is wrapped in a *CompileError carrying pattern, so
// callers can still unwrap to the original sentinel with errors.Is/As.
func CompileWithConfig(pattern string, ignoreCase bool, cfg config.Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	if len(pattern) > cfg.MaxPatternLength {
		return nil, &CompileError{Pattern: pattern, Err: fmt.Errorf("pattern length %d exceeds MaxPatternLength %d", len(pattern), cfg.MaxPatternLength)}
	}

	pf, err := postfix.Compile(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	n, err := nfa.Build(pf, cfg)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	d, err := dfa.Build(n, cfg)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	var pre *prefilter.Prefilter
	if cfg.EnablePrefilter {
		runs := literal.Extract(pf)
		pre, err = prefilter.Build(runs)
		if err != nil {
			return nil, &CompileError{Pattern: pattern, Err: err}
		}
	}

	return &Pipeline{
		pattern: pattern,
		dfa:     d,
		scanner: scan.New(d, pre, ignoreCase, cfg),
	}, nil
}

// MatchLine reports whether line contains a match of the compiled pattern
// anywhere in it.
func (p *Pipeline) MatchLine(line string) bool {
	return p.scanner.MatchLine(line)
}

// FindAllLines returns every line of contents that contains a match, in
// input order. Lines are split the same way bufio.Scanner's default
// ScanLines splitter does: on "\n", with a trailing "\r" trimmed.
func (p *Pipeline) FindAllLines(contents string) []string {
	var matches []string
	for _, line := range splitLines(contents) {
		if p.MatchLine(line) {
			matches = append(matches, line)
		}
	}
	return matches
}

// String returns the source pattern used to compile p.
func (p *Pipeline) String() string {
	return p.pattern
}

// Search compiles pattern and returns every line of contents containing a
// match, in input order. It is the package's single-shot convenience
// entry point for callers that don't need to reuse the compiled pipeline.
func Search(pattern, contents string, ignoreCase bool) ([]string, error) {
	p, err := CompileWithConfig(pattern, ignoreCase, DefaultConfig())
	if err != nil {
		return nil, err
	}
	return p.FindAllLines(contents), nil
}

// splitLines splits contents on "\n", trimming a trailing "\r" from each
// line, matching bufio.Scanner's ScanLines convention so Search behaves
// identically to the CLI's line-by-line bufio.Scanner iteration (package
// cmd/linegrep) for in-memory callers.
func splitLines(contents string) []string {
	lines := strings.Split(contents, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
