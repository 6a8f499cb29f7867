package sortie

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Move files into folders chosen by extension or keyword"
	MsgExtensionShort   = "Organize files by extension rules"
	MsgKeywordShort     = "Organize files by keywords in their names"
	MsgRulesShort       = "Manage extension rules"
	MsgRulesListShort   = "List extension rules in evaluation order"
	MsgRulesAddShort    = "Append a rule for comma separated extensions"
	MsgRulesRemoveShort = "Remove rules by their number in 'rules list'"
	MsgConfigShort      = "Inspect or create the configuration file"
	MsgConfigShowShort  = "Print the effective configuration as TOML"
	MsgConfigInitShort  = "Write a commented configuration file"
	MsgTopicsShort      = "Display available documentation topics"
	MsgTopicsLong       = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort  = "Generate shell completion script"
	MsgVersionShort     = "Print version information"

	// Status messages
	MsgNoRules          = "No extension rules defined. Add one with 'sortie rules add'."
	MsgRuleAdded        = "Added rule %d: %s -> %s\n"
	MsgRuleRemoved      = "Removed rule: %s -> %s\n"
	MsgConfigWritten    = "Wrote configuration to %s\n"
	MsgConfigSource     = "# loaded from %s\n"
	MsgConfigNoSource   = "# built-in defaults, no config file found\n"
	MsgVersionFormat    = "sortie %s (commit %s, built %s)\n"
	MsgStrictFailures   = "%d file(s) failed"
	MsgInterruptedError = "run interrupted"

	// Error messages
	MsgErrInitPaths  = "failed to initialize paths: %w"
	MsgErrNoSources  = "no source directories: pass them as arguments or set organize.sources"
	MsgErrNoKeywords = "no keyword file: use --keywords or set keywords.file"
	MsgErrRuleIndex  = "invalid rule number %q"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun      = "Preview moves without touching the filesystem"
	MsgFlagConfig      = "Configuration file (default is $XDG_CONFIG_HOME/sortie/config.toml)"
	MsgFlagFormat      = "Output format: auto, term, text or json"
	MsgFlagStrict      = "Exit with an error when any file fails to move"
	MsgFlagDefaultDest = "Destination for files matching no rule"
	MsgFlagRulesFile   = "Extension rules file (default is rules.file)"
	MsgFlagKeywords    = "Keyword file, JSON or YAML (default is keywords.file)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/extension-long.txt
	msgExtensionLongRaw string
	MsgExtensionLong    = strings.TrimSpace(msgExtensionLongRaw)

	//go:embed msgs/extension-example.txt
	msgExtensionExampleRaw string
	MsgExtensionExample    = strings.TrimRight(msgExtensionExampleRaw, "\n")

	//go:embed msgs/keyword-long.txt
	msgKeywordLongRaw string
	MsgKeywordLong    = strings.TrimSpace(msgKeywordLongRaw)

	//go:embed msgs/keyword-example.txt
	msgKeywordExampleRaw string
	MsgKeywordExample    = strings.TrimRight(msgKeywordExampleRaw, "\n")

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/rules-example.txt
	msgRulesExampleRaw string
	MsgRulesExample    = strings.TrimRight(msgRulesExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	MsgUsageTemplate string
)
