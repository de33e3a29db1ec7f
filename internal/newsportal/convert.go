package newsportal

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/daniilsolovey/newsroom/internal/admin"
	"github.com/daniilsolovey/newsroom/internal/db"
	"github.com/microcosm-cc/bluemonday"
)

const summaryLength = 200

var (
	spaceRe      = regexp.MustCompile(`\s+`)
	strictPolicy = bluemonday.StrictPolicy()
)

func newAccount(u *db.User) admin.User {
	if u == nil {
		return admin.User{}
	}

	return admin.User{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return admin.EmptyValue
	}
	return t.Format(dateLayout)
}

// Summarize returns the first summaryLength characters of content without markup.
func Summarize(content string) string {
	text := html.UnescapeString(strictPolicy.Sanitize(content))
	text = strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))

	if utf8.RuneCountInString(text) <= summaryLength {
		return text
	}

	return strings.TrimSpace(string([]rune(text)[:summaryLength]))
}

func NewCategoryRows(list []db.Category, counts map[int]int) []CategoryRow {
	rows := make([]CategoryRow, len(list))
	for i := range list {
		rows[i] = CategoryRow{Category: list[i], Articles: counts[list[i].ID]}
	}
	return rows
}

func NewReporterRows(list []db.Reporter, counts map[int]int) []ReporterRow {
	rows := make([]ReporterRow, len(list))
	for i := range list {
		rows[i] = ReporterRow{Reporter: list[i], Articles: counts[list[i].ID]}
	}
	return rows
}

func NewArticleRows(list []db.Article) []ArticleRow {
	rows := make([]ArticleRow, len(list))
	for i := range list {
		rows[i] = ArticleRow{Article: list[i]}
	}
	return rows
}

func NewTagRows(list []db.Tag, counts map[int]int) []TagRow {
	rows := make([]TagRow, len(list))
	for i := range list {
		rows[i] = TagRow{Tag: list[i], Articles: counts[list[i].ID]}
	}
	return rows
}

func categoryIDs(list []db.Category) []int {
	ids := make([]int, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}
	return ids
}

func reporterIDs(list []db.Reporter) []int {
	ids := make([]int, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}
	return ids
}

func tagIDs(list []db.Tag) []int {
	ids := make([]int, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}
	return ids
}

func categoryChoices(list []db.Category) []admin.Choice {
	choices := make([]admin.Choice, len(list))
	for i := range list {
		choices[i] = admin.Choice{Value: strconv.Itoa(list[i].ID), Label: list[i].Name}
	}
	return choices
}

func reporterChoices(list []db.Reporter) []admin.Choice {
	choices := make([]admin.Choice, len(list))
	for i := range list {
		choices[i] = admin.Choice{
			Value: strconv.Itoa(list[i].ID),
			Label: admin.DisplayName(newAccount(list[i].User)),
		}
	}
	return choices
}

// newArticleForm fills the fieldsets of m with the values of a.
func newArticleForm(m admin.ModelAdmin, a ArticleRow) ArticleForm {
	form := ArticleForm{
		ID:        a.ID,
		Fieldsets: make([]FieldsetValues, len(m.Fieldsets)),
	}

	for i, fs := range m.Fieldsets {
		values := FieldsetValues{Name: fs.Name, Fields: make([]FieldValue, len(fs.Fields))}
		for j, name := range fs.Fields {
			v, _ := a.Field(name)
			values.Fields[j] = FieldValue{Name: name, Value: v}
		}
		form.Fieldsets[i] = values
	}

	return form
}

// newTagInline splits all tags into the ones attached to an article and the ones still available.
func newTagInline(inline admin.Inline, attached, all []db.Tag) InlineValues {
	used := make(map[int]struct{}, len(attached))
	for _, t := range attached {
		used[t.ID] = struct{}{}
	}

	iv := InlineValues{
		Inline:    inline,
		Rows:      NewTagRows(attached, nil),
		Available: []TagRow{},
	}
	for _, t := range all {
		if _, ok := used[t.ID]; !ok {
			iv.Available = append(iv.Available, TagRow{Tag: t})
		}
	}

	return iv
}
