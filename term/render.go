// Package term renders modal trees for terminals using lipgloss.
package term

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aydenstechdungeon/modalkit/component/modal"
)

// Widths per size modifier. Unknown sizes use the medium width, matching
// how the stylesheet leaves unknown modifiers unstyled.
var Widths = map[modal.Size]int{
	modal.SizeSmall:  40,
	modal.SizeMedium: 60,
	modal.SizeLarge:  80,
}

// CloseGlyph is drawn for the header close control.
const CloseGlyph = "✕"

var (
	Primary      = lipgloss.Color("212")
	BorderNormal = lipgloss.Color("240")

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true)

	closeStyle = lipgloss.NewStyle().Foreground(Primary)

	bodyStyle = lipgloss.NewStyle().PaddingTop(1).PaddingBottom(1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(Primary).
			Bold(true).
			Padding(0, 2)
)

// Render draws the tree. A nil tree (closed modal) renders as the empty
// string. A width of zero or less picks the width from the size modifier.
func Render(root *modal.Node, width int) string {
	if root == nil {
		return ""
	}
	if width <= 0 {
		width = sizeWidth(root)
	}
	inner := width - frameStyle.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	rows := []string{header(root, inner)}
	if main := root.Find(modal.ClassMainText); main != nil {
		rows = append(rows, bodyStyle.Width(inner).Render(main.Text))
	}
	if button := root.Find(modal.ClassFooterButton); button != nil {
		rows = append(rows, lipgloss.PlaceHorizontal(inner, lipgloss.Right, buttonStyle.Render(button.Text)))
	}

	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Modal builds and draws cfg.
func Modal(cfg modal.Config, width int) string {
	return Render(modal.Build(cfg), width)
}

func header(root *modal.Node, inner int) string {
	title := ""
	if text := root.Find(modal.ClassHeaderText); text != nil {
		title = text.Text
	}
	if root.Find(modal.ClassHeaderButton) == nil {
		return titleStyle.Width(inner).Render(title)
	}
	closeMark := closeStyle.Render(CloseGlyph)
	titleWidth := inner - lipgloss.Width(closeMark)
	if titleWidth < 1 {
		titleWidth = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Width(titleWidth).Render(title), closeMark)
}

func sizeWidth(root *modal.Node) int {
	content := root.Find(modal.ClassContent)
	if content != nil {
		for _, class := range content.Classes {
			if w, ok := Widths[modal.Size(class)]; ok {
				return w
			}
		}
	}
	return Widths[modal.DefaultSize]
}
