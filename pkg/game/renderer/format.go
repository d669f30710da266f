package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

// Shared terminal color styles. The graphical backend carries its own
// palette; these exist for the TUI and for message formatting.
var (
	ColorWall    color.Style
	ColorMark    color.Style
	ColorEntity  color.Style
	ColorAction  color.Style
	ColorSubtle  color.Style
	ColorDanger  color.Style
	ColorPlayer  color.Style
	ColorStory   color.Style
	ColorMoss    color.Style
	ColorRune    color.Style

	regexpStringFunctions *regexp.Regexp
)

// InitColors initializes the color styles.
func InitColors() {
	ColorWall = color.Style{color.FgGray}
	ColorMark = color.Style{color.FgCyan, color.OpBold}
	ColorEntity = color.Style{color.FgMagenta, color.OpBold}
	ColorAction = color.Style{color.FgMagenta}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorDanger = color.Style{color.FgRed, color.OpBold}
	ColorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	ColorStory = color.Style{color.FgBlue}
	ColorMoss = color.Style{color.FgGreen}
	ColorRune = color.Style{color.FgLightMagenta}

	regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,.:'?-]+)}`)
}

// dynamicGet looks up translation keys taken from markup at runtime.
var dynamicGet = gotext.Get

// FormatString formats a string with special markup: GT{key} runs the
// key through gettext, MARK{...}, ENTITY{...} and STORY{...} apply
// their styles, ACTION{move} bolds the key letter of an action.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "MARK":
			val = ColorMark.Sprint(operand)
		case "ENTITY":
			val = ColorEntity.Sprint(operand)
		case "STORY":
			val = ColorStory.Sprint(operand)
		case "ACTION":
			val = ColorMark.Sprint(operand[0:1]) + ColorAction.Sprint(operand[1:])
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}
