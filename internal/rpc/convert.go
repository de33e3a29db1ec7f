package rpc

import (
	"github.com/daniilsolovey/newsroom/internal/admin"
	"github.com/daniilsolovey/newsroom/internal/newsportal"
)

func mapList[From, To any](list []From, converter func(From) To) []To {
	out := make([]To, len(list))
	for i := range list {
		out[i] = converter(list[i])
	}
	return out
}

func value(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func NewHeader(h admin.Header) Header {
	return Header{Name: h.Name, Label: h.Label, Computed: h.Computed}
}

func NewChoice(c admin.Choice) Choice {
	return Choice{Value: c.Value, Label: c.Label}
}

func NewModel(m newsportal.Model) Model {
	return Model{
		Model:         m.Model,
		VerboseName:   m.VerboseName,
		Headers:       mapList(m.Headers, NewHeader),
		ListFilter:    m.ListFilter,
		SearchFields:  m.SearchFields,
		DateHierarchy: m.DateHierarchy,
	}
}

func NewChangeList(cl newsportal.ChangeList) ChangeList {
	return ChangeList{
		Model:   cl.Model,
		Headers: mapList(cl.Headers, NewHeader),
		Rows: mapList(cl.Rows, func(r newsportal.ChangeListRow) Row {
			return Row{ID: r.ID, Cells: r.Cells}
		}),
		Filters: mapList(cl.Filters, func(f newsportal.Filter) Filter {
			return Filter{Field: f.Field, Choices: mapList(f.Choices, NewChoice)}
		}),
		Total:    cl.Total,
		Page:     cl.Page,
		PageSize: cl.PageSize,
	}
}

func NewTag(t newsportal.TagRow) Tag {
	return Tag{TagID: t.ID, Name: t.Name, Slug: t.Slug}
}

func NewArticleForm(f newsportal.ArticleForm) ArticleForm {
	return ArticleForm{
		ArticleID: f.ID,
		Fieldsets: mapList(f.Fieldsets, func(fs newsportal.FieldsetValues) Fieldset {
			return Fieldset{
				Name: fs.Name,
				Fields: mapList(fs.Fields, func(v newsportal.FieldValue) Field {
					return Field{Name: v.Name, Value: v.Value}
				}),
			}
		}),
		Inlines: mapList(f.Inlines, func(iv newsportal.InlineValues) TagInline {
			return TagInline{
				Name:      iv.Name,
				Extra:     iv.Extra,
				Tags:      mapList(iv.Rows, NewTag),
				Available: mapList(iv.Available, NewTag),
			}
		}),
	}
}
