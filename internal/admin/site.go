// Package admin holds the declarative change-list configuration of the news models.
//
// A Site is a static table that maps a model name to its ModelAdmin. It is built
// once at process start and only read afterwards.
package admin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daniilsolovey/newsroom/internal/slug"
)

var (
	ErrNotRegistered     = errors.New("model is not registered")
	ErrAlreadyRegistered = errors.New("model is already registered")
	ErrUnknownField      = errors.New("unknown field")
	ErrNotFilter         = errors.New("field is not a list filter")
)

// Row is a record shown in a change list.
type Row interface {
	// Field returns the display value of a plain model field.
	Field(name string) (string, bool)
}

// ArticleCounter is implemented by rows that know how many articles reference them.
type ArticleCounter interface {
	ArticleTotal() int
}

// Account is implemented by rows linked to a user.
type Account interface {
	Account() User
}

// Imaged is implemented by rows carrying an optional image path.
type Imaged interface {
	ImagePath() string
}

// Column is a computed change-list column.
type Column struct {
	ShortDescription string
	Value            func(Row) string
}

// Inline edits related rows on the parent's change form.
type Inline struct {
	Name    string `json:"name"`
	Model   string `json:"model"`
	Through string `json:"through"`
	Tabular bool   `json:"tabular"`
	Extra   int    `json:"extra"`
}

type Fieldset struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// ModelAdmin is the admin configuration of a single model.
type ModelAdmin struct {
	Model              string
	VerboseName        string
	ListDisplay        []string
	ListFilter         []string
	SearchFields       []string
	PrepopulatedFields map[string][]string
	DateHierarchy      string
	Inlines            []Inline
	Fieldsets          []Fieldset
	Columns            map[string]Column

	// Choices are the static options of list filters. Filters over
	// foreign keys get their options from the data layer.
	Choices map[string][]Choice
}

// Choice is a single option of a list filter.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Header is a change-list column heading.
type Header struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Computed bool   `json:"computed"`
}

// Headers returns one heading per ListDisplay entry.
func (m ModelAdmin) Headers() []Header {
	headers := make([]Header, len(m.ListDisplay))
	for i, name := range m.ListDisplay {
		h := Header{Name: name, Label: label(name)}
		if c, ok := m.Columns[name]; ok {
			h.Computed = true
			if c.ShortDescription != "" {
				h.Label = c.ShortDescription
			}
		}
		headers[i] = h
	}

	return headers
}

// Render returns the cells of row in ListDisplay order.
func (m ModelAdmin) Render(row Row) ([]string, error) {
	cells := make([]string, len(m.ListDisplay))
	for i, name := range m.ListDisplay {
		if c, ok := m.Columns[name]; ok {
			cells[i] = c.Value(row)
			continue
		}

		v, ok := row.Field(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, m.Model, name)
		}
		cells[i] = v
	}

	return cells, nil
}

// HasFilter reports whether field is one of the list filters.
func (m ModelAdmin) HasFilter(field string) bool {
	for _, f := range m.ListFilter {
		if f == field {
			return true
		}
	}
	return false
}

// Prepopulate fills empty prepopulated fields with a slug of their source fields.
func (m ModelAdmin) Prepopulate(values map[string]string) {
	for field, sources := range m.PrepopulatedFields {
		if strings.TrimSpace(values[field]) != "" {
			continue
		}

		parts := make([]string, 0, len(sources))
		for _, src := range sources {
			if v := strings.TrimSpace(values[src]); v != "" {
				parts = append(parts, v)
			}
		}
		values[field] = slug.Make(strings.Join(parts, " "))
	}
}

// Site is the registry of model admins.
type Site struct {
	models map[string]ModelAdmin
	order  []string
}

func NewSite() *Site {
	return &Site{models: make(map[string]ModelAdmin)}
}

// Register adds m to the site. A model can be registered only once.
func (s *Site) Register(m ModelAdmin) error {
	if m.Model == "" {
		return fmt.Errorf("register: empty model name")
	}
	if _, ok := s.models[m.Model]; ok {
		return fmt.Errorf("register %s: %w", m.Model, ErrAlreadyRegistered)
	}

	for name, c := range m.Columns {
		if c.Value == nil {
			return fmt.Errorf("register %s: column %s has no value func", m.Model, name)
		}
	}

	s.models[m.Model] = m
	s.order = append(s.order, m.Model)

	return nil
}

// MustRegister is like Register but panics on error.
func (s *Site) MustRegister(m ModelAdmin) {
	if err := s.Register(m); err != nil {
		panic(err)
	}
}

func (s *Site) Get(model string) (ModelAdmin, error) {
	m, ok := s.models[model]
	if !ok {
		return ModelAdmin{}, fmt.Errorf("%w: %s", ErrNotRegistered, model)
	}
	return m, nil
}

// Models returns the registered admins in registration order.
func (s *Site) Models() []ModelAdmin {
	list := make([]ModelAdmin, len(s.order))
	for i, name := range s.order {
		list[i] = s.models[name]
	}
	return list
}

func (s *Site) Headers(model string) ([]Header, error) {
	m, err := s.Get(model)
	if err != nil {
		return nil, err
	}
	return m.Headers(), nil
}

func (s *Site) Render(model string, row Row) ([]string, error) {
	m, err := s.Get(model)
	if err != nil {
		return nil, err
	}
	return m.Render(row)
}

func (s *Site) Prepopulate(model string, values map[string]string) error {
	m, err := s.Get(model)
	if err != nil {
		return err
	}
	m.Prepopulate(values)
	return nil
}

// Lookups returns the static choices of a list filter. The result is empty
// for filters whose options come from related rows.
func (s *Site) Lookups(model, field string) ([]Choice, error) {
	m, err := s.Get(model)
	if err != nil {
		return nil, err
	}
	if !m.HasFilter(field) {
		return nil, fmt.Errorf("%w: %s.%s", ErrNotFilter, model, field)
	}
	return m.Choices[field], nil
}

func label(field string) string {
	field = strings.ReplaceAll(field, "__", " ")
	field = strings.ReplaceAll(field, "_", " ")
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
