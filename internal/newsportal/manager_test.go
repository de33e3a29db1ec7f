package newsportal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/daniilsolovey/newsroom/internal/admin"
	"github.com/daniilsolovey/newsroom/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 15, 17, 30, 0, 0, time.UTC)

// newOfflineManager returns a manager for code paths that never reach the database.
func newOfflineManager() *Manager {
	m := NewManager(db.New(nil), admin.NewsSite("/media/"))
	m.now = func() time.Time { return testNow }
	return m
}

func TestSummarize(t *testing.T) {
	t.Run("strips markup", func(t *testing.T) {
		got := Summarize("<p>Hello <b>world</b> &amp; friends</p>\n\n<script>alert(1)</script>")
		assert.Equal(t, "Hello world & friends", got)
	})

	t.Run("short text is kept", func(t *testing.T) {
		assert.Equal(t, "Short", Summarize("Short"))
	})

	t.Run("long text is cut", func(t *testing.T) {
		got := Summarize(strings.Repeat("ж", 250))
		assert.Equal(t, 200, len([]rune(got)))
	})
}

func TestRows(t *testing.T) {
	published := time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)
	article := ArticleRow{Article: db.Article{
		Title:         "AI",
		Status:        db.StatusPublished,
		Image:         "articles/ai.png",
		PublishedDate: &published,
		Category:      &db.Category{Name: "Technology"},
		Reporter:      &db.Reporter{User: &db.User{Username: "jdoe", FirstName: "John", LastName: "Doe"}},
	}}

	site := admin.NewsSite("/media/")
	cells, err := site.Render(admin.ModelArticle, article)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"AI", "John Doe", "Technology", "published", "2024-01-14 12:00",
		`<img src="/media/articles/ai.png" width="50" height="50" style="object-fit: cover;" />`,
	}, cells)

	draft := ArticleRow{Article: db.Article{Title: "Draft", Status: db.StatusDraft}}
	cells, err = site.Render(admin.ModelArticle, draft)
	require.NoError(t, err)
	assert.Equal(t, []string{"Draft", "-", "-", "draft", "-", "No image"}, cells)

	reporter := ReporterRow{Reporter: db.Reporter{User: &db.User{Username: "asmith"}}}
	cells, err = site.Render(admin.ModelReporter, reporter)
	require.NoError(t, err)
	assert.Equal(t, []string{"asmith", "-"}, cells)

	tag := TagRow{Tag: db.Tag{Name: "Go", Slug: "go"}, Articles: 7}
	cells, err = site.Render(admin.ModelTag, tag)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "go", "7"}, cells)
}

func TestManager_listParams(t *testing.T) {
	m := newOfflineManager()
	articleAdmin, err := m.site.Get(admin.ModelArticle)
	require.NoError(t, err)
	tagAdmin, err := m.site.Get(admin.ModelTag)
	require.NoError(t, err)

	t.Run("defaults", func(t *testing.T) {
		p, err := m.listParams(tagAdmin, ListQuery{Search: "  go  "})
		require.NoError(t, err)
		assert.Equal(t, DefaultPage, p.Page)
		assert.Equal(t, DefaultPageSize, p.PageSize)
		assert.Equal(t, "go", p.Search)
		assert.Equal(t, []string{"name"}, p.SearchFields)
	})

	t.Run("filters and date range", func(t *testing.T) {
		p, err := m.listParams(articleAdmin, ListQuery{
			Filters: map[string]string{
				"status":         "published",
				"category":       "1",
				"reporter":       "",
				"published_date": admin.DatePast7Days,
			},
			Page:     2,
			PageSize: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"status": "published", "category": "1"}, p.Filters)
		assert.Equal(t, "published_date", p.DateField)
		require.NotNil(t, p.DateFrom)
		assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), *p.DateFrom)
	})

	t.Run("date hierarchy", func(t *testing.T) {
		p, err := m.listParams(articleAdmin, ListQuery{Year: 2024, Month: 1})
		require.NoError(t, err)
		assert.Equal(t, "published_date", p.DateField)
		assert.Equal(t, 2024, p.Year)
		assert.Equal(t, 1, p.Month)
	})

	t.Run("invalid", func(t *testing.T) {
		tests := []struct {
			name string
			ma   admin.ModelAdmin
			q    ListQuery
		}{
			{name: "negative page", ma: tagAdmin, q: ListQuery{Page: -1}},
			{name: "page size too large", ma: tagAdmin, q: ListQuery{PageSize: MaxPageSize + 1}},
			{name: "not a filter", ma: articleAdmin, q: ListQuery{Filters: map[string]string{"title": "AI"}}},
			{name: "unknown date range", ma: articleAdmin, q: ListQuery{Filters: map[string]string{"published_date": "yesterday"}}},
			{name: "category is not an id", ma: articleAdmin, q: ListQuery{Filters: map[string]string{"category": "abc"}}},
			{name: "reporter is not positive", ma: articleAdmin, q: ListQuery{Filters: map[string]string{"reporter": "0"}}},
			{name: "unknown status", ma: articleAdmin, q: ListQuery{Filters: map[string]string{"status": "archived"}}},
			{name: "no date hierarchy", ma: tagAdmin, q: ListQuery{Year: 2024}},
			{name: "bad month", ma: articleAdmin, q: ListQuery{Year: 2024, Month: 13}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := m.listParams(tt.ma, tt.q)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestManager_Models(t *testing.T) {
	m := newOfflineManager()

	models := m.Models()
	require.Len(t, models, 4)
	assert.Equal(t, admin.ModelCategory, models[0].Model)
	assert.Len(t, models[2].Headers, len(models[2].ListDisplay))
}

func TestManager_ChangeList_UnknownModel(t *testing.T) {
	_, err := newOfflineManager().ChangeList(context.Background(), "comment", ListQuery{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_Create_Invalid(t *testing.T) {
	m := newOfflineManager()
	ctx := context.Background()

	_, err := m.CreateCategory(ctx, CategoryInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = m.CreateTag(ctx, TagInput{Name: "Go", Slug: "Not A Slug"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = m.CreateArticle(ctx, ArticleInput{Title: "AI", Content: "text", Status: "archived", CategoryID: 1, ReporterID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = m.CreateArticle(ctx, ArticleInput{Title: "AI", Content: "text"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "categoryId: is required")
}

func TestManager_AttachTag_InvalidArticle(t *testing.T) {
	err := newOfflineManager().AttachTag(context.Background(), 0, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewTagInline(t *testing.T) {
	inline := admin.Inline{Name: "TagInline", Model: admin.ModelTag, Extra: 1}
	all := []db.Tag{{ID: 1, Name: "Analytics"}, {ID: 2, Name: "Hot"}, {ID: 3, Name: "Interview"}}

	iv := newTagInline(inline, all[1:2], all)
	assert.Equal(t, 1, iv.Extra)
	require.Len(t, iv.Rows, 1)
	assert.Equal(t, "Hot", iv.Rows[0].Name)
	require.Len(t, iv.Available, 2)
	assert.Equal(t, 1, iv.Available[0].ID)
	assert.Equal(t, 3, iv.Available[1].ID)
}

func TestNewArticleForm(t *testing.T) {
	ma, err := admin.NewsSite("").Get(admin.ModelArticle)
	require.NoError(t, err)

	form := newArticleForm(ma, ArticleRow{Article: db.Article{
		ID:       5,
		Title:    "AI",
		Slug:     "ai",
		Status:   db.StatusDraft,
		Category: &db.Category{Name: "Technology"},
	}})

	assert.Equal(t, 5, form.ID)
	require.Len(t, form.Fieldsets, 2)
	assert.Equal(t, "Content", form.Fieldsets[0].Name)
	assert.Equal(t, FieldValue{Name: "slug", Value: "ai"}, form.Fieldsets[0].Fields[1])
	assert.Equal(t, FieldValue{Name: "category", Value: "Technology"}, form.Fieldsets[1].Fields[1])
	assert.Equal(t, FieldValue{Name: "reporter", Value: "-"}, form.Fieldsets[1].Fields[2])
}
