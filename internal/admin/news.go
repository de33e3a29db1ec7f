package admin

import (
	"time"
)

// Model names of the news site.
const (
	ModelCategory = "category"
	ModelReporter = "reporter"
	ModelArticle  = "article"
	ModelTag      = "tag"
)

// Presets of the published_date list filter.
const (
	DateAnyTime   = ""
	DateToday     = "today"
	DatePast7Days = "past_7_days"
	DateThisMonth = "this_month"
	DateThisYear  = "this_year"
)

var datePresets = []Choice{
	{Value: DateAnyTime, Label: "Any date"},
	{Value: DateToday, Label: "Today"},
	{Value: DatePast7Days, Label: "Past 7 days"},
	{Value: DateThisMonth, Label: "This month"},
	{Value: DateThisYear, Label: "This year"},
}

// DateFrom returns the lower bound of a published_date preset relative to now.
func DateFrom(preset string, now time.Time) (time.Time, bool) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch preset {
	case DateToday:
		return day, true
	case DatePast7Days:
		return day.AddDate(0, 0, -7), true
	case DateThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case DateThisYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true
	}

	return time.Time{}, false
}

func articleCountColumn() Column {
	return Column{
		ShortDescription: "Articles",
		Value: func(r Row) string {
			if c, ok := r.(ArticleCounter); ok {
				return ArticleCount(c.ArticleTotal())
			}
			return EmptyValue
		},
	}
}

// NewsSite returns the admin site of the news models. mediaURL prefixes stored image paths.
func NewsSite(mediaURL string) *Site {
	s := NewSite()

	s.MustRegister(ModelAdmin{
		Model:              ModelCategory,
		VerboseName:        "Categories",
		ListDisplay:        []string{"name", "slug", "article_count"},
		SearchFields:       []string{"name", "description"},
		PrepopulatedFields: map[string][]string{"slug": {"name"}},
		Columns: map[string]Column{
			"article_count": articleCountColumn(),
		},
	})

	s.MustRegister(ModelAdmin{
		Model:        ModelReporter,
		VerboseName:  "Reporters",
		ListDisplay:  []string{"display_name", "article_count"},
		SearchFields: []string{"user__username", "user__first_name", "user__last_name", "bio"},
		Columns: map[string]Column{
			"display_name": {
				ShortDescription: "Name",
				Value: func(r Row) string {
					if a, ok := r.(Account); ok {
						return DisplayName(a.Account())
					}
					return EmptyValue
				},
			},
			"article_count": articleCountColumn(),
		},
	})

	s.MustRegister(ModelAdmin{
		Model:              ModelArticle,
		VerboseName:        "Articles",
		ListDisplay:        []string{"title", "reporter", "category", "status", "published_date", "display_image"},
		ListFilter:         []string{"status", "category", "published_date", "reporter"},
		SearchFields:       []string{"title", "content", "reporter__user__username"},
		PrepopulatedFields: map[string][]string{"slug": {"title"}},
		DateHierarchy:      "published_date",
		Inlines: []Inline{
			{Name: "TagInline", Model: ModelTag, Through: "articleTags", Tabular: true, Extra: 1},
		},
		Fieldsets: []Fieldset{
			{Name: "Content", Fields: []string{"title", "slug", "content", "summary", "image"}},
			{Name: "Publication", Fields: []string{"status", "category", "reporter"}},
		},
		Columns: map[string]Column{
			"display_image": {
				ShortDescription: "Image",
				Value: func(r Row) string {
					if i, ok := r.(Imaged); ok {
						return string(DisplayImage(mediaURL, i.ImagePath()))
					}
					return NoImage
				},
			},
		},
		Choices: map[string][]Choice{
			"status": {
				{Value: "draft", Label: "Draft"},
				{Value: "published", Label: "Published"},
			},
			"published_date": datePresets,
		},
	})

	s.MustRegister(ModelAdmin{
		Model:              ModelTag,
		VerboseName:        "Tags",
		ListDisplay:        []string{"name", "slug", "article_count"},
		SearchFields:       []string{"name"},
		PrepopulatedFields: map[string][]string{"slug": {"name"}},
		Columns: map[string]Column{
			"article_count": articleCountColumn(),
		},
	})

	return s
}
