package devtools

import (
	"fmt"
	"os"
	"strings"
	"time"

	"somnium/pkg/engine/world"
	"somnium/pkg/game/state"
)

// SaveSnapshotHTML saves the current level as an HTML file: the full
// grid with player and entity overlay, the feature tags and the message
// log. Useful for sharing a generated layout in a bug report.
func SaveSnapshotHTML(g *state.Game) string {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("snapshot-%s.html", timestamp)

	var html strings.Builder

	html.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Somnium - Level Snapshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .features {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .entity { color: #ff44cc; font-weight: bold; }
        .wall { color: #666; }
        .wall-moss { color: #44aa44; }
        .wall-rune { color: #bb86fc; }
        .floor { color: #333; }
        .mark { color: #00ffff; font-weight: bold; }
        .spawn { color: #888; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	html.WriteString(fmt.Sprintf(`    <div class="header">Depth %d (seed %d)</div>`+"\n", g.Level, g.Seed))
	html.WriteString(fmt.Sprintf(`    <div class="features">Features: %s</div>`+"\n",
		strings.Join(g.Grid.Features(), ", ")))

	html.WriteString(`    <div class="map-container">` + "\n")

	px, py := int(g.Player.X), int(g.Player.Y)
	ex, ey := -1, -1
	if g.Entity != nil {
		ex, ey = int(g.Entity.X), int(g.Entity.Y)
	}

	for y := 0; y < g.Grid.Height(); y++ {
		html.WriteString(`        <div class="map-row">`)
		for x := 0; x < g.Grid.Width(); x++ {
			var icon, class string
			switch {
			case x == px && y == py:
				icon, class = "@", "player"
			case x == ex && y == ey:
				icon, class = "E", "entity"
			default:
				icon, class = cellHTMLInfo(g.Grid.KindAt(x, y))
			}
			html.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, icon))
		}
		html.WriteString("</div>\n")
	}

	html.WriteString(`    </div>` + "\n")

	if len(g.Messages) > 0 {
		html.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range g.Messages {
			html.WriteString(fmt.Sprintf(`        <div class="message">%s</div>`+"\n", stripANSI(msg)))
		}
		html.WriteString(`    </div>` + "\n")
	}

	html.WriteString(`</body>
</html>
`)

	os.WriteFile(filename, []byte(html.String()), 0644)
	return filename
}

// cellHTMLInfo returns the icon and CSS class for a cell kind.
func cellHTMLInfo(kind world.CellKind) (string, string) {
	switch kind {
	case world.Wall:
		return "#", "wall"
	case world.WallMoss:
		return "M", "wall-moss"
	case world.WallRune:
		return "R", "wall-rune"
	case world.DreamMark:
		return "*", "mark"
	case world.SpawnPoint, world.EntitySpawn:
		return ".", "spawn"
	default:
		return "·", "floor"
	}
}

// stripANSI removes ANSI escape codes from a string.
func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
