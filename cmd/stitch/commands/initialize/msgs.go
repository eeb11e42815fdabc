package initialize

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgShort = "Create a stitch project in the current directory"
	MsgDone  = "Initialized project, state at %s"
)

// Embedded message files
var (
	//go:embed init-long.txt
	msgLongRaw string
	MsgLong    = strings.TrimSpace(msgLongRaw)

	//go:embed init-example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimSpace(msgExampleRaw)
)
