package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort  = "An ASCII figure saying a message"
	MsgThinkShort = "An ASCII figure thinking a message"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagCow         = "Figure name, or path to a .cow file"
	MsgFlagWidth       = "Bubble width in columns"
	MsgFlagNoWrap      = "Do not wrap the message"
	MsgFlagEyes        = "Custom eyes (first two characters are typical)"
	MsgFlagTongue      = "Custom tongue"
	MsgFlagList        = "List the available figures"
	MsgFlagRandom      = "Pick a random figure"
	MsgFlagThink       = "Think instead of say"
	MsgFlagAll         = "Render the message with every figure"
	MsgFlagFormat      = "Output format: auto, term, text or json"
	MsgFlagPrintConfig = "Print the effective configuration and exit"
	MsgFlagTopic       = "Show a help topic ('topics' lists them)"
	MsgFlagPreset      = "Use %s eyes (%s)"

	// Version output
	MsgVersionTemplate = "{{.Name}} version {{.Version}}\n"
	MsgVersionCommit   = "  commit: %s\n"
	MsgVersionBuilt    = "  built:  %s\n"

	// Error messages
	MsgErrWidth     = "width must be a whole number"
	MsgErrFlags     = "invalid command line"
	MsgErrTopics    = "failed to load help topics"
	MsgErrWriteFail = "failed to write output"
)

var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
