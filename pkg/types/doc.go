// Package types defines the core types and interfaces used throughout sortie.
// This includes the FS interface used by the mover and the walker, the Rule
// and KeywordMap inputs of the two classifiers, and the Outcome and Summary
// values produced by an organize run.
package types
