// Package decision holds the cross-validation rule tables.
//
// Every table is a pure function over a fact record. Tables return a
// business outcome as data; a block is not an error. Errors are reserved
// for malformed input (CodeValidation) and for facts the upstream registry
// failed to supply (CodeMissingUpstreamFact), which callers must never
// treat as an approval.
package decision

import (
	dErrors "dsa-onboarding/pkg/domain-errors"
)

// Decision is the verdict of a rule table.
type Decision string

const (
	Approve Decision = "approve"
	Flag    Decision = "flag"
	Block   Decision = "block"
)

// Blocks reports whether the decision forbids advancing the workflow.
func (d Decision) Blocks() bool { return d == Block }

// Outcome is what a rule table produced. Warnings explain a flag or block;
// Notes carry non-blocking concerns that do not send the record to review.
type Outcome struct {
	Decision Decision `json:"decision"`
	Warnings []string `json:"warnings"`
	Notes    []string `json:"notes,omitempty"`
	// Score is set only by score-based tables.
	Score *int `json:"score,omitempty"`
}

func approve() Outcome {
	return Outcome{Decision: Approve, Warnings: []string{}}
}

func block(reason string) Outcome {
	return Outcome{Decision: Block, Warnings: []string{reason}}
}

// flag promotes an approve to flag and records why; a block stays a block.
func (o *Outcome) flag(warning string) {
	if o.Decision == Approve {
		o.Decision = Flag
	}
	o.Warnings = append(o.Warnings, warning)
}

func (o *Outcome) note(n string) {
	o.Notes = append(o.Notes, n)
}

func missing(fact string) error {
	return dErrors.New(dErrors.CodeMissingUpstreamFact, "verification fact missing: "+fact)
}
