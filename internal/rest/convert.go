package rest

import (
	"github.com/daniilsolovey/newsroom/internal/admin"
	"github.com/daniilsolovey/newsroom/internal/newsportal"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewHeader(h admin.Header) Header {
	return Header{Name: h.Name, Label: h.Label, Computed: h.Computed}
}

func NewChoice(c admin.Choice) Choice {
	return Choice{Value: c.Value, Label: c.Label}
}

func NewFieldset(f admin.Fieldset) Fieldset {
	return Fieldset{Name: f.Name, Fields: f.Fields}
}

func NewInline(i admin.Inline) Inline {
	return Inline{Name: i.Name, Model: i.Model, Through: i.Through, Tabular: i.Tabular, Extra: i.Extra}
}

func NewModel(m newsportal.Model) Model {
	return Model{
		Model:              m.Model,
		VerboseName:        m.VerboseName,
		ListDisplay:        m.ListDisplay,
		ListFilter:         m.ListFilter,
		SearchFields:       m.SearchFields,
		PrepopulatedFields: m.PrepopulatedFields,
		DateHierarchy:      m.DateHierarchy,
		Headers:            Map(m.Headers, NewHeader),
		Inlines:            Map(m.Inlines, NewInline),
		Fieldsets:          Map(m.Fieldsets, NewFieldset),
	}
}

func NewChangeList(cl newsportal.ChangeList) ChangeList {
	return ChangeList{
		Model:   cl.Model,
		Headers: Map(cl.Headers, NewHeader),
		Rows: Map(cl.Rows, func(r newsportal.ChangeListRow) Row {
			return Row{ID: r.ID, Cells: r.Cells}
		}),
		Filters: Map(cl.Filters, func(f newsportal.Filter) Filter {
			return Filter{Field: f.Field, Choices: Map(f.Choices, NewChoice)}
		}),
		Total:    cl.Total,
		Page:     cl.Page,
		PageSize: cl.PageSize,
	}
}

func NewArticleForm(f newsportal.ArticleForm) ArticleForm {
	return ArticleForm{
		ID: f.ID,
		Fieldsets: Map(f.Fieldsets, func(fs newsportal.FieldsetValues) FieldsetValues {
			return FieldsetValues{
				Name: fs.Name,
				Fields: Map(fs.Fields, func(v newsportal.FieldValue) FieldValue {
					return FieldValue{Name: v.Name, Value: v.Value}
				}),
			}
		}),
		Inlines: Map(f.Inlines, func(iv newsportal.InlineValues) InlineValues {
			return InlineValues{
				Inline:    NewInline(iv.Inline),
				Rows:      Map(iv.Rows, NewTag),
				Available: Map(iv.Available, NewTag),
			}
		}),
	}
}

func NewCategory(c newsportal.CategoryRow) Category {
	return Category{
		CategoryID:  c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

func NewTag(t newsportal.TagRow) Tag {
	return Tag{
		TagID: t.ID,
		Name:  t.Name,
		Slug:  t.Slug,
	}
}

func NewArticle(a newsportal.ArticleRow) Article {
	return Article{
		ArticleID:     a.ID,
		Title:         a.Title,
		Slug:          a.Slug,
		Summary:       a.Summary,
		Image:         a.Image,
		Status:        a.Status,
		PublishedDate: a.PublishedDate,
		CategoryID:    a.CategoryID,
		ReporterID:    a.ReporterID,
	}
}

func (r ArticleRequest) ToInput() newsportal.ArticleInput {
	return newsportal.ArticleInput{
		Title:         r.Title,
		Slug:          r.Slug,
		Content:       r.Content,
		Summary:       r.Summary,
		Image:         r.Image,
		Status:        r.Status,
		PublishedDate: r.PublishedDate,
		CategoryID:    r.CategoryID,
		ReporterID:    r.ReporterID,
	}
}
