package page

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
)

// DefaultHideAfter — сколько сообщение о результате остаётся на экране.
const DefaultHideAfter = 5000 * time.Millisecond

// PageData — состояние страницы записи для HTML-адаптера.
type PageData struct {
	Listing    Listing
	LoadFailed bool
	Message    *Message
	HideAfter  time.Duration
	// Значения формы, которые остаются заполненными после отказа.
	Email    string
	Activity string
}

// htmlWriter копит первую ошибку записи, чтобы не проверять каждый вызов.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// CardComponent отрисовывает карточку кружка.
func CardComponent(card Card) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="activity-card"><pre class="ascii-art">`)
		h.text(card.Art)
		h.raw(`</pre><h4>`)
		h.text(card.Name)
		h.raw(`</h4><p>`)
		h.text(card.Description)
		h.raw(`</p><p><strong>Schedule:</strong> `)
		h.text(card.Schedule)
		h.raw(`</p><p><strong>Availability:</strong> `)
		h.text(card.Availability())
		h.raw(`</p><div class="participants-section"><p><strong>Participants:</strong></p>`)
		if card.HasParticipants() {
			h.raw(`<ul class="participants-list">`)
			for _, email := range card.Participants {
				h.raw(`<li>`)
				h.text(email)
				h.raw(`</li>`)
			}
			h.raw(`</ul>`)
		} else {
			h.raw(`<p class="no-participants">`)
			h.text(NoParticipantsText)
			h.raw(`</p>`)
		}
		h.raw(`</div></div>`)
		return h.err
	})
}

// OptionComponent отрисовывает пункт выпадающего списка.
func OptionComponent(opt Option, selected bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<option value="`)
		h.text(opt.Value)
		h.raw(`"`)
		if selected {
			h.raw(` selected`)
		}
		h.raw(`>`)
		h.text(opt.Label)
		h.raw(`</option>`)
		return h.err
	})
}

// MessageComponent отрисовывает область сообщения. Без сообщения область скрыта.
func MessageComponent(msg *Message, hideAfter time.Duration) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		if msg == nil {
			h.raw(`<div id="message" class="hidden"></div>`)
			return h.err
		}
		h.raw(`<div id="message" class="`)
		h.text(string(msg.Style))
		h.raw(fmt.Sprintf(`" data-hide-after-ms="%d">`, hideAfter.Milliseconds()))
		h.text(msg.Text)
		h.raw(`</div>`)
		return h.err
	})
}

// StyleComponent отрисовывает стили страницы. Показанное сообщение скрывается
// CSS-анимацией через hideAfter и остаётся скрытым (forwards).
func StyleComponent(hideAfter time.Duration) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if hideAfter <= 0 {
			hideAfter = DefaultHideAfter
		}
		h := &htmlWriter{w: w}
		h.raw(`<style>.hidden{display:none}`)
		h.raw(`#message.success,#message.error{animation:hide-message 0s linear `)
		h.raw(fmt.Sprintf(`%dms forwards}`, hideAfter.Milliseconds()))
		h.raw(`@keyframes hide-message{to{visibility:hidden;height:0;margin:0;padding:0;border:0}}</style>`)
		return h.err
	})
}

// ListComponent отрисовывает область списка кружков.
func ListComponent(listing Listing, loadFailed bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div id="activities-list">`)
		if loadFailed {
			h.raw(`<p>`)
			h.text(ListFailureText)
			h.raw(`</p>`)
		} else {
			for _, card := range listing.Cards {
				h.component(ctx, CardComponent(card))
			}
		}
		h.raw(`</div>`)
		return h.err
	})
}

// PageComponent отрисовывает всю страницу записи.
func PageComponent(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
		h.raw(`<title>Mergington High School Activities</title>`)
		h.component(ctx, StyleComponent(data.HideAfter))
		h.raw(`</head><body>`)
		h.raw(`<header><h1>Mergington High School</h1><h2>Extracurricular Activities</h2></header><main>`)

		h.raw(`<section id="activities-container"><h3>Available Activities</h3>`)
		h.component(ctx, ListComponent(data.Listing, data.LoadFailed))
		h.raw(`</section>`)

		h.raw(`<section id="signup-container"><h3>Sign Up for an Activity</h3>`)
		h.raw(`<form id="signup-form" method="post" action="/static/signup">`)
		h.raw(`<div class="form-group"><label for="email">Student Email:</label>`)
		h.raw(`<input type="email" id="email" name="email" required placeholder="your-email@mergington.edu" value="`)
		h.text(data.Email)
		h.raw(`"></div>`)
		h.raw(`<div class="form-group"><label for="activity">Select Activity:</label>`)
		h.raw(`<select id="activity" name="activity" required><option value="">-- Select an activity --</option>`)
		if !data.LoadFailed {
			for _, opt := range data.Listing.Options {
				h.component(ctx, OptionComponent(opt, opt.Value == data.Activity))
			}
		}
		h.raw(`</select></div><button type="submit">Sign Up</button></form>`)
		h.component(ctx, MessageComponent(data.Message, data.HideAfter))
		h.raw(`</section></main></body></html>`)
		return h.err
	})
}
