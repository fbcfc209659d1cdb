package tui

type confirmModel struct {
	id    string
	title string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.title + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
