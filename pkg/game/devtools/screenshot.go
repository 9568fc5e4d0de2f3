package devtools

import (
	"fmt"
	"html"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quadrogue/pkg/game/state"
	"quadrogue/pkg/game/tile"
)

// ScreenshotHTML renders the header and display buffers as an HTML page,
// one span per run of equally coloured cells
func ScreenshotHTML(g *state.Game) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>quadrogue - Screenshot</title>
    <style>
        body {
            background-color: #000;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .screen {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
    </style>
</head>
<body>
    <div class="screen">
`)

	for _, row := range g.Header.Data {
		writeHTMLRow(&b, row)
	}
	for _, row := range g.Display.Data {
		writeHTMLRow(&b, row)
	}

	b.WriteString("    </div>\n</body>\n</html>\n")
	return b.String()
}

func writeHTMLRow(b *strings.Builder, row []tile.Tile) {
	for start := 0; start < len(row); {
		fore, back := row[start].Fore, row[start].Back
		var run strings.Builder
		end := start
		for end < len(row) && row[end].Fore == fore && row[end].Back == back {
			run.WriteRune(rune(row[end].Char))
			end++
		}
		fmt.Fprintf(b, `<span style="color:%s;background-color:%s">%s</span>`,
			hexColor(tile.Xterm(fore)), hexColor(tile.Xterm(back)), html.EscapeString(run.String()))
		start = end
	}
	b.WriteString("\n")
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SaveScreenshotHTML writes ScreenshotHTML into dir under a timestamped name
// and returns the path
func SaveScreenshotHTML(g *state.Game, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	if err := os.WriteFile(path, []byte(ScreenshotHTML(g)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
