// Package paths provides centralized path handling for sortie.
// It resolves the XDG config and state directories (with SORTIE_*
// overrides), the default locations of the rules file, the app config and
// the daily log files, and expands "~" in user supplied paths.
package paths
