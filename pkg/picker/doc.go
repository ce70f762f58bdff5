// Package picker drives an external fuzzy finder (fzf) as a subprocess. A
// Driver receives picker Options plus an optional corpus of candidate lines,
// feeds the corpus on stdin and reports the raw stdout together with a
// normalised ExitStatus. Parsing the output is left to the caller.
//
// Two drivers ship with the package: FZF, which execs the fzf binary, and
// Survey, an in-process fallback that emulates the same contract with survey
// prompts for environments where fzf is not installed.
package picker
