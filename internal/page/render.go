// Package page превращает каталог кружков и ответы API в инструкции отрисовки
// (карточки, пункты выбора, сообщения). Функции пакета чистые: адаптеры конкретного
// интерфейса (HTML, терминал) только применяют готовые инструкции.
package page

import (
	"fmt"

	"activities-signup/internal/model"
)

// Тексты, которые видит пользователь.
const (
	NoParticipantsText = "No participants yet"
	ListFailureText    = "Failed to load activities. Please try again later."
)

// Card — инструкция отрисовки карточки кружка.
type Card struct {
	Name         string
	Art          string
	Description  string
	Schedule     string
	SpotsLeft    int
	Participants []string
}

// Availability возвращает строку доступности, например "7 spots left".
func (c Card) Availability() string {
	return fmt.Sprintf("%d spots left", c.SpotsLeft)
}

// HasParticipants сообщает, рисовать ли список участников вместо заглушки.
func (c Card) HasParticipants() bool {
	return len(c.Participants) > 0
}

// Option — пункт выпадающего списка кружков.
type Option struct {
	Value string
	Label string
}

// Listing — всё, что нужно отрисовать после загрузки каталога.
// Cards и Options идут в порядке каталога и совпадают по длине.
type Listing struct {
	Cards   []Card
	Options []Option
}

// Render строит карточки и пункты выбора из каталога.
func Render(catalog model.Catalog) Listing {
	listing := Listing{
		Cards:   make([]Card, 0, len(catalog)),
		Options: make([]Option, 0, len(catalog)),
	}
	for _, a := range catalog {
		listing.Cards = append(listing.Cards, RenderCard(a))
		listing.Options = append(listing.Options, Option{Value: a.Name, Label: a.Name})
	}
	return listing
}

// RenderCard строит карточку одного кружка. Свободные места не ограничиваются нулём.
func RenderCard(a model.NamedActivity) Card {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)

	return Card{
		Name:         a.Name,
		Art:          ArtFor(a.Name),
		Description:  a.Description,
		Schedule:     a.Schedule,
		SpotsLeft:    a.SpotsLeft(),
		Participants: participants,
	}
}
