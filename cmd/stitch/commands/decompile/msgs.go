package decompile

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgShort = "Collapse compiled blocks back to directives"
	MsgDone  = "Restored %d directive(s), wrote %d file(s)"
)

// Embedded message files
var (
	//go:embed decompile-long.txt
	msgLongRaw string
	MsgLong    = strings.TrimSpace(msgLongRaw)

	//go:embed decompile-example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimSpace(msgExampleRaw)
)
