package status

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgShort      = "Show tracked files and their compiled directives"
	MsgFlagOutput = "Output format (text, json, yaml)"
	MsgErrOutput  = "unknown output format %q (want text, json or yaml)"
)

// Embedded message files
var (
	//go:embed status-long.txt
	msgLongRaw string
	MsgLong    = strings.TrimSpace(msgLongRaw)

	//go:embed status-example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimSpace(msgExampleRaw)
)
