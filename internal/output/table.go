package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var bookmarkHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan)

// BookmarkTable lists configured bookmarks as NAME, REPOSITORY and
// DESCRIPTION columns.
type BookmarkTable struct {
	rows [][]string
}

// Add appends a bookmark. A non-empty folder is shown after the repository.
func (t *BookmarkTable) Add(name, repository, folder, description string) {
	if folder != "" {
		repository += " " + StyleDim.Render("("+folder+")")
	}
	t.rows = append(t.rows, []string{StyleNoun.Render(name), repository, description})
}

// Len returns the number of bookmarks added.
func (t *BookmarkTable) Len() int {
	return len(t.rows)
}

// String renders the table.
func (t *BookmarkTable) String() string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDimGray)).
		Headers("NAME", "REPOSITORY", "DESCRIPTION").
		Rows(t.rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return bookmarkHeaderStyle
			}
			return lipgloss.NewStyle().PaddingRight(1)
		}).
		String()
}
