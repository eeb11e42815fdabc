package compile

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgShort = "Expand directives in client files"
	MsgDone  = "Compiled %d directive(s), wrote %d file(s)"
)

// Embedded message files
var (
	//go:embed compile-long.txt
	msgLongRaw string
	MsgLong    = strings.TrimSpace(msgLongRaw)

	//go:embed compile-example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimSpace(msgExampleRaw)
)
