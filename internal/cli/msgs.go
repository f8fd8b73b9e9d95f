package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Interpret and build application deep links"
	MsgParseShort      = "Validate and classify deep links"
	MsgBuildShort      = "Build a deep link from a host and parameters"
	MsgRouteShort      = "Route deep links to application navigation"
	MsgActionsShort    = "List the recognised deep link actions"
	MsgPlistShort      = "Print the Info.plist entry registering the scheme"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgConfigShort     = "Print the default configuration file"
	MsgConfigLong      = "Print the built-in defaults as TOML. Save the output as config.toml under\n$XDG_CONFIG_HOME/deeplink/ and edit it to override them."

	// Version output
	MsgVersionFormat = "deeplink version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Plist check output
	MsgPlistRegisters    = "%s registers %s"
	MsgPlistNotRegisters = "%s does not register %s (found: %s)"

	// Error messages
	MsgErrNoLinks      = "no links given, pass them as arguments or with --file"
	MsgErrLinksFailed  = "%d of %d links failed"
	MsgErrNoCommand    = "no command specified"
	MsgErrNotRegisters = "%s does not register scheme %s"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Config file (default is $XDG_CONFIG_HOME/deeplink/config.toml)"
	MsgFlagFormat     = "Output format: auto, term, text, json, yaml or toml"
	MsgFlagScheme     = "Reserved URL scheme (default rsyncuiapp)"
	MsgFlagProfile    = "Known profile name, repeatable"
	MsgFlagFile       = "Read links from a file, one per line (- for stdin)"
	MsgFlagStrict     = "Treat links without an action as errors"
	MsgFlagHold       = "Keep the first routed action pending"
	MsgFlagIdentifier = "CFBundleURLName for the URL type"
	MsgFlagCheck      = "Check whether an existing Info.plist registers the scheme"
	MsgFlagManDir     = "Write one page per command into this directory instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/parse-long.txt
	msgParseLongRaw string
	MsgParseLong    = strings.TrimSpace(msgParseLongRaw)

	//go:embed msgs/parse-example.txt
	msgParseExampleRaw string
	MsgParseExample    = strings.TrimRight(msgParseExampleRaw, "\n")

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/build-example.txt
	msgBuildExampleRaw string
	MsgBuildExample    = strings.TrimRight(msgBuildExampleRaw, "\n")

	//go:embed msgs/route-long.txt
	msgRouteLongRaw string
	MsgRouteLong    = strings.TrimSpace(msgRouteLongRaw)

	//go:embed msgs/route-example.txt
	msgRouteExampleRaw string
	MsgRouteExample    = strings.TrimRight(msgRouteExampleRaw, "\n")

	//go:embed msgs/plist-long.txt
	msgPlistLongRaw string
	MsgPlistLong    = strings.TrimSpace(msgPlistLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
