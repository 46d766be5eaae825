package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/scene"
)

// ansiCodes maps palette entries to 256-color terminal codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBlack:         "0",
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

var (
	statusKeyStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	statusTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusPauseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// StatusInfo is what the status bar shows below the playfield.
type StatusInfo struct {
	Title   string
	Buttons []string
	Labels  []string
	State   core.GameState
	FPS     float64
}

// statusFrom collects the bar contents from an App after its frame.
func statusFrom(app *scene.App, fps float64) StatusInfo {
	info := StatusInfo{
		Buttons: app.UI().Buttons(),
		Labels:  app.UI().Labels(),
		State:   app.State(),
		FPS:     fps,
	}
	if cur := app.Active(); cur != nil {
		info.Title = cur.Title()
	}
	return info
}

// RenderStatus formats the status bar: digit-bound buttons, labels, score and
// frame rate. The result is cut to width cells.
func RenderStatus(info StatusInfo, width int) string {
	var parts []string
	for i, label := range info.Buttons {
		if i >= 9 {
			break
		}
		parts = append(parts, statusKeyStyle.Render(fmt.Sprintf("%d", i+1))+statusTextStyle.Render(":"+label))
	}
	for _, label := range info.Labels {
		parts = append(parts, statusMutedStyle.Render(label))
	}
	if info.State.Score > 0 {
		parts = append(parts, statusTextStyle.Render(fmt.Sprintf("Score %d", info.State.Score)))
	}
	if info.State.Paused {
		parts = append(parts, statusPauseStyle.Render("PAUSED"))
	}
	parts = append(parts, statusMutedStyle.Render(fmt.Sprintf("%.0f fps  p:pause esc:menu q:quit", info.FPS)))

	line := statusTextStyle.Render(info.Title) + "  " + strings.Join(parts, "  ")
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
