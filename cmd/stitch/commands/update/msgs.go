package update

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgShort = "Re-expand every tracked file from current server content"
	MsgDone  = "Updated %d directive(s), wrote %d file(s)"
)

// Embedded message files
var (
	//go:embed update-long.txt
	msgLongRaw string
	MsgLong    = strings.TrimSpace(msgLongRaw)

	//go:embed update-example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimSpace(msgExampleRaw)
)
