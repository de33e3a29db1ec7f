package newsportal

import (
	"time"

	"github.com/daniilsolovey/newsroom/internal/admin"
	"github.com/daniilsolovey/newsroom/internal/db"
)

const dateLayout = "2006-01-02 15:04"

type CategoryRow struct {
	db.Category
	Articles int
}

func (r CategoryRow) Field(name string) (string, bool) {
	switch name {
	case "name":
		return r.Name, true
	case "slug":
		return r.Slug, true
	case "description":
		return r.Description, true
	}
	return "", false
}

func (r CategoryRow) ArticleTotal() int { return r.Articles }

type ReporterRow struct {
	db.Reporter
	Articles int
}

func (r ReporterRow) Field(name string) (string, bool) {
	switch name {
	case "bio":
		return r.Bio, true
	case "user":
		return r.Account().Username, true
	}
	return "", false
}

func (r ReporterRow) ArticleTotal() int { return r.Articles }

func (r ReporterRow) Account() admin.User {
	return newAccount(r.User)
}

type ArticleRow struct {
	db.Article
}

func (r ArticleRow) Field(name string) (string, bool) {
	switch name {
	case "title":
		return r.Title, true
	case "slug":
		return r.Slug, true
	case "content":
		return r.Content, true
	case "summary":
		return r.Summary, true
	case "image":
		return r.Image, true
	case "status":
		return r.Status, true
	case "published_date":
		return formatDate(r.PublishedDate), true
	case "category":
		if r.Category == nil {
			return admin.EmptyValue, true
		}
		return r.Category.Name, true
	case "reporter":
		if r.Reporter == nil {
			return admin.EmptyValue, true
		}
		return admin.DisplayName(newAccount(r.Reporter.User)), true
	}
	return "", false
}

func (r ArticleRow) ImagePath() string { return r.Image }

type TagRow struct {
	db.Tag
	Articles int
}

func (r TagRow) Field(name string) (string, bool) {
	switch name {
	case "name":
		return r.Name, true
	case "slug":
		return r.Slug, true
	}
	return "", false
}

func (r TagRow) ArticleTotal() int { return r.Articles }

// ListQuery narrows a change list.
type ListQuery struct {
	Search  string
	Filters map[string]string

	// Date hierarchy drill-down, zero means not set.
	Year, Month, Day int

	Page, PageSize int
}

type ChangeList struct {
	Model    string
	Headers  []admin.Header
	Rows     []ChangeListRow
	Filters  []Filter
	Total    int
	Page     int
	PageSize int
}

type ChangeListRow struct {
	ID    int
	Cells []string
}

// Filter is a list filter with its options.
type Filter struct {
	Field   string
	Choices []admin.Choice
}

type Model struct {
	admin.ModelAdmin
	Headers []admin.Header
}

type FieldValue struct {
	Name  string
	Value string
}

type FieldsetValues struct {
	Name   string
	Fields []FieldValue
}

// InlineValues are the related rows of a change form plus the number of blank slots.
type InlineValues struct {
	admin.Inline
	Rows      []TagRow
	Available []TagRow
}

type ArticleForm struct {
	ID        int
	Fieldsets []FieldsetValues
	Inlines   []InlineValues
}

type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"required,max=100,slug"`
	Description string `json:"description"`
}

type TagInput struct {
	Name string `json:"name" validate:"required,max=50"`
	Slug string `json:"slug" validate:"required,max=50,slug"`
}

type ArticleInput struct {
	Title         string     `json:"title" validate:"required,max=200"`
	Slug          string     `json:"slug" validate:"required,max=200,slug"`
	Content       string     `json:"content" validate:"required"`
	Summary       string     `json:"summary"`
	Image         string     `json:"image" validate:"max=255"`
	Status        string     `json:"status" validate:"required,oneof=draft published"`
	PublishedDate *time.Time `json:"publishedDate"`
	CategoryID    int        `json:"categoryId" validate:"required,gt=0"`
	ReporterID    int        `json:"reporterId" validate:"required,gt=0"`
}
