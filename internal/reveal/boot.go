package reveal

import (
	"strings"

	"github.com/Shekhar0165/shekhar-portfolio/internal/command"
)

// bootText is the static startup banner.
var bootText = []string{
	"BIOS v2.0.4 ... OK",
	"Loading kernel modules ... OK",
	"Mounting filesystems ... OK",
	"Starting network services ... OK",
	"Initializing portfolio daemon ... OK",
	"",
	"██████╗ ███████╗██╗   ██╗",
	"██╔══██╗██╔════╝██║   ██║",
	"██║  ██║█████╗  ██║   ██║",
	"██║  ██║██╔══╝  ╚██╗ ██╔╝",
	"██████╔╝███████╗ ╚████╔╝ ",
	"╚═════╝ ╚══════╝  ╚═══╝  ",
	"",
	"Portfolio OS v1.0.0",
	"Type 'help' to see available commands.",
	"------------------------------------------",
}

// BootColor infers the color of a banner line from its text.
func BootColor(line string) command.Color {
	switch {
	case line == "":
		return command.White
	case strings.Contains(line, "OK"):
		return command.Green
	case strings.ContainsAny(line, "█╗╚║╔"):
		return command.Amber
	case strings.HasPrefix(line, "Portfolio OS"),
		strings.HasPrefix(line, "Type"),
		strings.HasPrefix(line, "--"):
		return command.Dim
	default:
		return command.White
	}
}

// BootLines returns the banner as colored entries.
func BootLines() []command.OutputEntry {
	out := make([]command.OutputEntry, len(bootText))
	for i, l := range bootText {
		out[i] = command.OutputEntry{Text: l, Color: BootColor(l)}
	}
	return out
}

// Welcome is the block seeded into the transcript once boot settles.
func Welcome() []command.OutputEntry {
	return []command.OutputEntry{
		{Text: ""},
		{Text: "  ┌───────────────────────────────────────────┐", Color: command.Dim},
		{Text: "  │  👋 Welcome to my terminal portfolio!     │", Color: command.Amber},
		{Text: "  │                                           │", Color: command.Dim},
		{Text: "  │  Try these commands to explore:           │", Color: command.White},
		{Text: "  │                                           │", Color: command.Dim},
		{Text: "  │  $ help       — see all commands          │", Color: command.Green},
		{Text: "  │  $ whoami     — learn about me            │", Color: command.Green},
		{Text: "  │  $ projects   — view my work              │", Color: command.Green},
		{Text: "  │  $ contact    — send me a message         │", Color: command.Green},
		{Text: "  │  $ all        — see everything at once    │", Color: command.Green},
		{Text: "  │                                           │", Color: command.Dim},
		{Text: "  │  ↑↓ history | ←→ cursor | Tab complete   │", Color: command.Dim},
		{Text: "  └───────────────────────────────────────────┘", Color: command.Dim},
		{Text: ""},
	}
}
