package rest

import "time"

type Header struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Computed bool   `json:"computed"`
}

type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Fieldset struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

type Inline struct {
	Name    string `json:"name"`
	Model   string `json:"model"`
	Through string `json:"through"`
	Tabular bool   `json:"tabular"`
	Extra   int    `json:"extra"`
}

type Model struct {
	Model              string              `json:"model"`
	VerboseName        string              `json:"verboseName"`
	ListDisplay        []string            `json:"listDisplay"`
	ListFilter         []string            `json:"listFilter"`
	SearchFields       []string            `json:"searchFields"`
	PrepopulatedFields map[string][]string `json:"prepopulatedFields,omitempty"`
	DateHierarchy      string              `json:"dateHierarchy,omitempty"`
	Headers            []Header            `json:"headers"`
	Inlines            []Inline            `json:"inlines"`
	Fieldsets          []Fieldset          `json:"fieldsets"`
}

type Row struct {
	ID    int      `json:"id"`
	Cells []string `json:"cells"`
}

type Filter struct {
	Field   string   `json:"field"`
	Choices []Choice `json:"choices"`
}

type ChangeList struct {
	Model    string   `json:"model"`
	Headers  []Header `json:"headers"`
	Rows     []Row    `json:"rows"`
	Filters  []Filter `json:"filters"`
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
}

type FieldValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type FieldsetValues struct {
	Name   string       `json:"name"`
	Fields []FieldValue `json:"fields"`
}

type InlineValues struct {
	Inline
	Rows      []Tag `json:"rows"`
	Available []Tag `json:"available"`
}

type ArticleForm struct {
	ID        int              `json:"id"`
	Fieldsets []FieldsetValues `json:"fieldsets"`
	Inlines   []InlineValues   `json:"inlines"`
}

type Category struct {
	CategoryID  int    `json:"categoryId"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type Tag struct {
	TagID int    `json:"tagId"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
}

type Article struct {
	ArticleID     int        `json:"articleId"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Summary       string     `json:"summary"`
	Image         string     `json:"image"`
	Status        string     `json:"status"`
	PublishedDate *time.Time `json:"publishedDate"`
	CategoryID    int        `json:"categoryId"`
	ReporterID    int        `json:"reporterId"`
}

// ChangeListRequest holds the fixed query parameters of a change list.
// List filters are read by name from the query string.
type ChangeListRequest struct {
	Q        string `urlstruct:"q"`
	Page     int    `urlstruct:"page"`
	PageSize int    `urlstruct:"pageSize"`
	Year     int    `urlstruct:"year"`
	Month    int    `urlstruct:"month"`
	Day      int    `urlstruct:"day"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type TagRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ArticleRequest struct {
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Summary       string     `json:"summary"`
	Image         string     `json:"image"`
	Status        string     `json:"status"`
	PublishedDate *time.Time `json:"publishedDate"`
	CategoryID    int        `json:"categoryId"`
	ReporterID    int        `json:"reporterId"`
}
