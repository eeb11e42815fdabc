package main

// Message constants
const (
	MsgRootShort = "Expand reusable text fragments into your files"

	MsgRootLong = `stitch keeps named text fragments (symbols) in server directories and
expands single-line directives in your files into their content. The
expansion is reversible: compiled blocks collapse back to the directive
line, and tracked files can be refreshed when server content changes.

Run "stitch topics" for long-form documentation.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(stitch completion bash)

Zsh:
  $ stitch completion zsh > "${fpath[1]}/_stitch"

Fish:
  $ stitch completion fish | source

PowerShell:
  PS> stitch completion powershell | Out-String | Invoke-Expression`
)
