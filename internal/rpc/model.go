package rpc

import "github.com/daniilsolovey/newsroom/internal/newsportal"

type Header struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Computed bool   `json:"computed"`
}

type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Model struct {
	Model         string   `json:"model"`
	VerboseName   string   `json:"verboseName"`
	Headers       []Header `json:"headers"`
	ListFilter    []string `json:"listFilter"`
	SearchFields  []string `json:"searchFields"`
	DateHierarchy string   `json:"dateHierarchy,omitempty"`
}

type ChangeListFilter struct {
	//q search terms
	Q string `json:"q,omitempty"`
	//filters list filter values keyed by field
	Filters map[string]string `json:"filters,omitempty"`
	//year date hierarchy year
	Year *int `json:"year,omitempty"`
	//month date hierarchy month
	Month *int `json:"month,omitempty"`
	//day date hierarchy day
	Day *int `json:"day,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=20 items per page
	PageSize *int `json:"pageSize,omitempty"`
}

func (f ChangeListFilter) ToQuery() newsportal.ListQuery {
	return newsportal.ListQuery{
		Search:   f.Q,
		Filters:  f.Filters,
		Year:     value(f.Year),
		Month:    value(f.Month),
		Day:      value(f.Day),
		Page:     value(f.Page),
		PageSize: value(f.PageSize),
	}
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

type Tag struct {
	TagID int    `json:"tagId"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
}

type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Fieldset struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

type TagInline struct {
	Name      string `json:"name"`
	Extra     int    `json:"extra"`
	Tags      []Tag  `json:"tags"`
	Available []Tag  `json:"available"`
}

type ArticleForm struct {
	ArticleID int         `json:"articleId"`
	Fieldsets []Fieldset  `json:"fieldsets"`
	Inlines   []TagInline `json:"inlines"`
}

type ArticleTagRequest struct {
	//articleId article numeric ID
	ArticleID int `json:"articleId"`
	//tagId tag numeric ID
	TagID int `json:"tagId"`
}
