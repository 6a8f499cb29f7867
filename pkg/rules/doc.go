// Package rules implements extension based file classification for sortie.
//
// A rule maps one or more file extensions to a destination directory:
//
//	[
//	    {"extensions": [".pdf", ".doc"], "dest": "/home/me/Documents"},
//	    {"extensions": [".png", ".jpg"], "dest": "/home/me/Pictures"}
//	]
//
// # Normalization
//
// Extensions are normalized once, when a rule is built: surrounding space is
// trimmed, a leading "*" is dropped, the value is lower-cased and prefixed
// with a dot. "PDF", ".pdf" and "*.PDF" all become ".pdf". Normalizing an
// already normalized extension returns it unchanged. Classification is then
// a plain set membership test.
//
// # Rule Priority
//
// Rules are evaluated in the order they are declared. The first rule whose
// extension set contains the file's extension wins. A file matching no rule
// is unmatched; the caller decides whether it goes to a default destination.
//
// # Persistence
//
// Store reads and writes the rule list as a JSON array. Writes take an
// exclusive lock on a sibling ".lock" file and replace the rules file
// atomically.
package rules
