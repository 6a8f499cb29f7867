// Package report delivers organize outcomes to the user.
//
// Reporters receive each outcome as the run produces it. LogReporter writes
// them to the structured log, Collector keeps them in memory and Multi fans
// out to several reporters. Once the run is over, Render prints the summary
// as a table, plain text or JSON.
package report
