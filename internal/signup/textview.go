package signup

import (
	"fmt"
	"io"
	"strings"

	"activities-signup/internal/page"
)

// TextView печатает инструкции отрисовки в терминал.
type TextView struct {
	w       io.Writer
	options []page.Option
}

// NewTextView создаёт терминальный адаптер поверх w.
func NewTextView(w io.Writer) *TextView {
	return &TextView{w: w}
}

// Options возвращает пункты выбора, добавленные при загрузке.
func (v *TextView) Options() []page.Option {
	return v.options
}

func (v *TextView) ClearList() {
	v.options = v.options[:0]
}

func (v *TextView) ShowListFailure(text string) {
	fmt.Fprintln(v.w, text)
}

func (v *TextView) AppendCard(card page.Card) {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===", card.Name)
	b.WriteString(card.Art)
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", card.Description)
	fmt.Fprintf(&b, "Schedule: %s\n", card.Schedule)
	fmt.Fprintf(&b, "Availability: %s\n", card.Availability())
	b.WriteString("Participants:\n")
	if card.HasParticipants() {
		for _, email := range card.Participants {
			fmt.Fprintf(&b, "  - %s\n", email)
		}
	} else {
		fmt.Fprintf(&b, "  %s\n", page.NoParticipantsText)
	}
	b.WriteString("\n")
	_, _ = io.WriteString(v.w, b.String())
}

func (v *TextView) AppendOption(opt page.Option) {
	v.options = append(v.options, opt)
}

func (v *TextView) ShowMessage(msg page.Message) {
	fmt.Fprintf(v.w, "[%s] %s\n", msg.Style, msg.Text)
}

// HideMessage ничего не печатает: строка уже выведена.
func (v *TextView) HideMessage() {}

// ResetForm ничего не делает: у терминала нет полей формы.
func (v *TextView) ResetForm() {}
