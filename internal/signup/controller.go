// Package signup реализует контроллер страницы записи на кружки: загрузку каталога,
// отправку заявки и показ результата с автоматическим скрытием.
//
// Контроллер не знает, чем отрисовывается страница: он отдаёт инструкции из пакета page
// адаптеру View (HTML, терминал, тестовая запись).
package signup

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"activities-signup/internal/model"
	"activities-signup/internal/page"
)

// DefaultHideAfter — сколько сообщение о результате остаётся на экране.
const DefaultHideAfter = page.DefaultHideAfter

// API — то, что контроллеру нужно от сервера.
type API interface {
	Activities(ctx context.Context) (model.Catalog, error)
	Signup(ctx context.Context, activity, email string) (model.SignupResult, bool, error)
}

// View применяет инструкции отрисовки к конкретному интерфейсу.
type View interface {
	ClearList()
	ShowListFailure(text string)
	AppendCard(card page.Card)
	AppendOption(opt page.Option)
	ShowMessage(msg page.Message)
	HideMessage()
	ResetForm()
}

// Timer — отменяемый отложенный вызов.
type Timer interface {
	Stop() bool
}

// Clock планирует отложенные вызовы. По умолчанию используется time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option настраивает Controller.
type Option func(*Controller)

// WithClock подменяет источник таймеров.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithHideAfter задаёт время жизни сообщения.
func WithHideAfter(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.hideAfter = d
		}
	}
}

// Controller связывает API, отрисовку и таймер скрытия сообщения.
// Методы безопасны для одновременного вызова: обновления View сериализуются.
type Controller struct {
	api       API
	view      View
	log       *slog.Logger
	clock     Clock
	hideAfter time.Duration

	mu         sync.Mutex
	hideTimer  Timer
	generation uint64
	closed     bool
}

// New создаёт контроллер.
func New(api API, view View, log *slog.Logger, opts ...Option) *Controller {
	c := &Controller{
		api:       api,
		view:      view,
		log:       log,
		clock:     realClock{},
		hideAfter: DefaultHideAfter,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load загружает каталог и отрисовывает карточки и пункты выбора в порядке сервера.
// При ошибке список заменяется сообщением о сбое, пункты не добавляются; повторов нет.
func (c *Controller) Load(ctx context.Context) error {
	catalog, err := c.api.Activities(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.view.ShowListFailure(page.ListFailureText)
		c.log.Error("error fetching activities", slog.Any("err", err))
		return err
	}

	listing := page.Render(catalog)
	c.view.ClearList()
	for i, card := range listing.Cards {
		c.view.AppendCard(card)
		c.view.AppendOption(listing.Options[i])
	}

	c.log.Debug("activities loaded", slog.Int("count", len(listing.Cards)))
	return nil
}

// Submit отправляет заявку и показывает результат. При успехе форма очищается,
// при отказе остаётся заполненной. Сообщение скрывается через hideAfter;
// новый результат отменяет ожидающее скрытие предыдущего.
// Возвращает показанное сообщение и ошибку транспорта, если она была.
func (c *Controller) Submit(ctx context.Context, activity, email string) (page.Message, error) {
	result, ok, err := c.api.Signup(ctx, activity, email)

	var msg page.Message
	if err != nil {
		msg = page.TransportFailureMessage()
		c.log.Error("error signing up",
			slog.String("activity", activity),
			slog.Any("err", err),
		)
	} else {
		msg = page.SignupMessage(ok, result)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.view.ShowMessage(msg)
	if err == nil && ok {
		c.view.ResetForm()
	}
	c.scheduleHideLocked()

	return msg, err
}

// Close отменяет ожидающее скрытие сообщения.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.hideTimer != nil {
		c.hideTimer.Stop()
		c.hideTimer = nil
	}
}

func (c *Controller) scheduleHideLocked() {
	if c.closed {
		return
	}
	if c.hideTimer != nil {
		c.hideTimer.Stop()
	}

	c.generation++
	gen := c.generation
	c.hideTimer = c.clock.AfterFunc(c.hideAfter, func() {
		c.hide(gen)
	})
}

// hide скрывает сообщение, только если с момента планирования не появилось нового.
// Таймер, который успел сработать до Stop, отбрасывается по номеру поколения.
func (c *Controller) hide(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.generation {
		return
	}
	c.view.HideMessage()
	c.hideTimer = nil
}
