package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

// logoLetters stores each letter of REVUI as 6-row block art.
var logoLetters = [5][6]string{
	// R
	{
		"██████╗ ",
		"██╔══██╗",
		"██████╔╝",
		"██╔══██╗",
		"██║  ██║",
		"╚═╝  ╚═╝",
	},
	// E
	{
		"███████╗",
		"██╔════╝",
		"█████╗  ",
		"██╔══╝  ",
		"███████╗",
		"╚══════╝",
	},
	// V
	{
		"██╗   ██╗",
		"██║   ██║",
		"██║   ██║",
		"╚██╗ ██╔╝",
		" ╚████╔╝ ",
		"  ╚═══╝  ",
	},
	// U
	{
		"██╗   ██╗",
		"██║   ██║",
		"██║   ██║",
		"██║   ██║",
		"╚██████╔╝",
		" ╚═════╝ ",
	},
	// I
	{
		"██╗",
		"██║",
		"██║",
		"██║",
		"██║",
		"╚═╝",
	},
}

const logoRows = 6

// tips is the pool of hints shown under the banner.
var tips = []string{
	"Run 'revui init landing' to start from the landing page template",
	"Ids can be shortened to any unique prefix, e.g. 'revui delete 3fa2'",
	"Use 'revui export --watch --out App.tsx' to regenerate on every edit",
	"Run 'revui check --fix' to repair typos and misplaced components",
	"Every edit can be undone with 'revui undo', even after a restart",
	"Use 'revui export --format factory' for a component-factory config",
	"Run 'revui-mcp' to let an AI agent edit the canvas over MCP",
	"Set theme: dark in .revui/config.yaml to change the colors",
	"Use 'revui drop button 200 40' to place a component by coordinates",
}

// BannerInfo holds the data for the info block under the logo.
type BannerInfo struct {
	Canvas     string // e.g. "main"
	Components int
	Database   string // e.g. ".revui/canvas.db"; empty before init
}

// PrintBanner renders the REVUI logo and info block. The logo is skipped
// when w is not a terminal.
func PrintBanner(w io.Writer, version string, info *BannerInfo) {
	if isTTY(w) {
		printLogo(w)
		fmt.Fprintln(w)
	}
	printInfoBlock(w, version, info)
}

// buildLogoLines composes the full logo, one string per row.
func buildLogoLines() [logoRows]string {
	var lines [logoRows]string
	for row := 0; row < logoRows; row++ {
		parts := make([]string, len(logoLetters))
		for i := range logoLetters {
			parts[i] = logoLetters[i][row]
		}
		lines[row] = strings.Join(parts, " ")
	}
	return lines
}

func printLogo(w io.Writer) {
	for _, line := range buildLogoLines() {
		fmt.Fprintf(w, "  %s\n", Accent(line))
	}
}

func printInfoBlock(w io.Writer, version string, info *BannerInfo) {
	if info == nil {
		info = &BannerInfo{}
	}

	fmt.Fprintf(w, "  %s  v%s\n", Muted("Version:"), version)

	if info.Database != "" {
		fmt.Fprintf(w, "  %s   %s %s\n", Muted("Canvas:"), info.Canvas,
			Muted(fmt.Sprintf("(%d component%s, %s)", info.Components, pluralS(info.Components), info.Database)))
	} else {
		fmt.Fprintf(w, "  %s   %s\n", Muted("Canvas:"), Muted("None yet. Run 'revui init'"))
	}

	fmt.Fprintf(w, "  %s      %s\n", Muted("Tip:"), RandomTip())
	fmt.Fprintln(w)
}

func pluralS(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// isTTY returns true if w is a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// RandomTip returns a random tip.
func RandomTip() string {
	return tips[rand.Intn(len(tips))]
}
