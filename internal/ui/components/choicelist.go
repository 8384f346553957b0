package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/roadprep/roadprep/internal/catalog"
	"github.com/roadprep/roadprep/internal/ui/theme"
)

// ChoiceList renders a question's answer choices and tracks the cursor.
// It is a pure display/navigation component: the screen owning it decides
// when a selection is committed and whether feedback is revealed.
type ChoiceList struct {
	Choices []catalog.Choice
	Cursor  int

	// AnsweredID is the choice the user has recorded for this question
	// ("" when unanswered). When Revealed is also set, correct/incorrect
	// colors are shown.
	AnsweredID string
	Revealed   bool
}

// NewChoiceList creates a choice list with the cursor on the recorded
// answer when there is one, otherwise on the first choice.
func NewChoiceList(choices []catalog.Choice, answeredID string, revealed bool) ChoiceList {
	cursor := 0
	for i, c := range choices {
		if c.ID == answeredID {
			cursor = i
			break
		}
	}
	return ChoiceList{
		Choices:    choices,
		Cursor:     cursor,
		AnsweredID: answeredID,
		Revealed:   revealed,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement. Once feedback is revealed the list is
// frozen.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Revealed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Choices)-1 {
			c.Cursor++
		}
	}

	return c, nil
}

// CursorChoiceID returns the ID of the choice under the cursor.
func (c ChoiceList) CursorChoiceID() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Choices) {
		return ""
	}
	return c.Choices[c.Cursor].ID
}

// View renders the choices with letter labels.
func (c ChoiceList) View() string {
	var s string
	for i, choice := range c.Choices {
		prefix := "  "
		if i == c.Cursor && !c.Revealed {
			prefix = "▸ "
		}

		marker := " "
		if choice.ID == c.AnsweredID {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, choice.ID, choice.Text)

		switch {
		case c.Revealed && choice.IsCorrect:
			s += theme.Correct.Render(line) + "\n"
		case c.Revealed && choice.ID == c.AnsweredID:
			s += theme.Incorrect.Render(line) + "\n"
		case c.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Cursor:
			s += theme.Selected.Render(line) + "\n"
		case choice.ID == c.AnsweredID:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
