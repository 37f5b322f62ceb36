// Package model содержит доменные структуры каталога кружков и результатов записи.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Activity описывает кружок: описание, расписание, лимит мест и участников (email) в порядке записи.
type Activity struct {
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

// SpotsLeft возвращает число свободных мест. Значение не ограничивается нулём:
// отрицательное число означает, что записей больше, чем мест.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// HasParticipant сообщает, записан ли email на кружок.
func (a Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// NamedActivity — кружок вместе с его именем (ключом каталога).
type NamedActivity struct {
	Name     string `json:"name" yaml:"name"`
	Activity `yaml:",inline"`
}

// Catalog — упорядоченный каталог кружков. В JSON это объект «имя → кружок»,
// порядок ключей совпадает с порядком элементов.
type Catalog []NamedActivity

// Lookup ищет кружок по имени.
func (c Catalog) Lookup(name string) (NamedActivity, bool) {
	for _, a := range c {
		if a.Name == name {
			return a, true
		}
	}
	return NamedActivity{}, false
}

// Names возвращает имена кружков в порядке каталога.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, a := range c {
		names = append(names, a.Name)
	}
	return names
}

// MarshalJSON кодирует каталог в объект, сохраняя порядок элементов.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Name)
		if err != nil {
			return nil, fmt.Errorf("marshal activity name: %w", err)
		}
		activity := a.Activity
		if activity.Participants == nil {
			activity.Participants = []string{}
		}
		val, err := json.Marshal(activity)
		if err != nil {
			return nil, fmt.Errorf("marshal activity %q: %w", a.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON разбирает объект «имя → кружок» в порядке ключей.
// Повторный ключ заменяет значение, но сохраняет позицию первого вхождения.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("catalog must be a JSON object, got %v", tok)
	}

	out := make(Catalog, 0)
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read activity name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("activity name must be a string, got %v", tok)
		}

		var a Activity
		if err := dec.Decode(&a); err != nil {
			return fmt.Errorf("decode activity %q: %w", name, err)
		}
		if a.Participants == nil {
			a.Participants = []string{}
		}

		if i, dup := index[name]; dup {
			out[i].Activity = a
			continue
		}
		index[name] = len(out)
		out = append(out, NamedActivity{Name: name, Activity: a})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read catalog end: %w", err)
	}

	*c = out
	return nil
}
