package newsportal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/daniilsolovey/newsroom/internal/admin"
	"github.com/daniilsolovey/newsroom/internal/db"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Manager struct {
	db       *db.Repository
	site     *admin.Site
	validate *Validator
	now      func() time.Time
}

func NewManager(repo *db.Repository, site *admin.Site) *Manager {
	return &Manager{
		db:       repo,
		site:     site,
		validate: NewValidator(),
		now:      time.Now,
	}
}

// Ping checks the database connection.
func (m *Manager) Ping(ctx context.Context) error {
	return m.db.Ping(ctx)
}

// Models returns the registered model admins with their column headings.
func (m *Manager) Models() []Model {
	list := m.site.Models()
	models := make([]Model, len(list))
	for i, ma := range list {
		models[i] = Model{ModelAdmin: ma, Headers: ma.Headers()}
	}
	return models
}

func (m *Manager) modelAdmin(model string) (admin.ModelAdmin, error) {
	ma, err := m.site.Get(model)
	if errors.Is(err, admin.ErrNotRegistered) {
		return admin.ModelAdmin{}, fmt.Errorf("model %q: %w", model, ErrNotFound)
	}
	return ma, err
}

// listParams resolves q against the options of ma.
func (m *Manager) listParams(ma admin.ModelAdmin, q ListQuery) (db.ListParams, error) {
	p := db.ListParams{
		Search:       strings.TrimSpace(q.Search),
		SearchFields: ma.SearchFields,
		Filters:      make(map[string]string, len(q.Filters)),
		Page:         q.Page,
		PageSize:     q.PageSize,
	}

	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	if p.Page < 0 || p.PageSize < 0 || p.PageSize > MaxPageSize {
		return p, fmt.Errorf("%w: page=%d, pageSize=%d", ErrInvalidInput, q.Page, q.PageSize)
	}

	for field, value := range q.Filters {
		if value == "" {
			continue
		}
		if !ma.HasFilter(field) {
			return p, fmt.Errorf("%w: %s is not a filter of %s", ErrInvalidInput, field, ma.Model)
		}

		if field == ma.DateHierarchy {
			from, ok := admin.DateFrom(value, m.now())
			if !ok {
				return p, fmt.Errorf("%w: unknown date range %q", ErrInvalidInput, value)
			}
			p.DateField, p.DateFrom = field, &from
			continue
		}

		if choices, ok := ma.Choices[field]; ok {
			if !hasChoice(choices, value) {
				return p, fmt.Errorf("%w: unknown %s %q", ErrInvalidInput, field, value)
			}
		} else if id, err := strconv.Atoi(value); err != nil || id <= 0 {
			return p, fmt.Errorf("%w: %s must be a positive id, got %q", ErrInvalidInput, field, value)
		}

		p.Filters[field] = value
	}

	if q.Year != 0 || q.Month != 0 || q.Day != 0 {
		if ma.DateHierarchy == "" {
			return p, fmt.Errorf("%w: %s has no date hierarchy", ErrInvalidInput, ma.Model)
		}
		if q.Year < 0 || q.Month < 0 || q.Month > 12 || q.Day < 0 || q.Day > 31 {
			return p, fmt.Errorf("%w: date %d-%d-%d", ErrInvalidInput, q.Year, q.Month, q.Day)
		}
		p.DateField, p.Year, p.Month, p.Day = ma.DateHierarchy, q.Year, q.Month, q.Day
	}

	return p, nil
}

func hasChoice(choices []admin.Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

// ChangeList returns one page of model rows rendered with its list display.
func (m *Manager) ChangeList(ctx context.Context, model string, q ListQuery) (*ChangeList, error) {
	ma, err := m.modelAdmin(model)
	if err != nil {
		return nil, err
	}

	p, err := m.listParams(ma, q)
	if err != nil {
		return nil, err
	}

	var (
		rows  []admin.Row
		ids   []int
		total int
	)

	switch model {
	case admin.ModelCategory:
		list, count, err := m.db.CategoriesPage(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("db get categories: %w", err)
		}
		counts, err := m.db.ArticleCountsByCategory(ctx, categoryIDs(list))
		if err != nil {
			return nil, fmt.Errorf("db count category articles: %w", err)
		}
		for _, r := range NewCategoryRows(list, counts) {
			rows, ids = append(rows, r), append(ids, r.ID)
		}
		total = count
	case admin.ModelReporter:
		list, count, err := m.db.ReportersPage(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("db get reporters: %w", err)
		}
		counts, err := m.db.ArticleCountsByReporter(ctx, reporterIDs(list))
		if err != nil {
			return nil, fmt.Errorf("db count reporter articles: %w", err)
		}
		for _, r := range NewReporterRows(list, counts) {
			rows, ids = append(rows, r), append(ids, r.ID)
		}
		total = count
	case admin.ModelArticle:
		list, count, err := m.db.ArticlesPage(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("db get articles: %w", err)
		}
		for _, r := range NewArticleRows(list) {
			rows, ids = append(rows, r), append(ids, r.ID)
		}
		total = count
	case admin.ModelTag:
		list, count, err := m.db.TagsPage(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("db get tags: %w", err)
		}
		counts, err := m.db.ArticleCountsByTag(ctx, tagIDs(list))
		if err != nil {
			return nil, fmt.Errorf("db count tag articles: %w", err)
		}
		for _, r := range NewTagRows(list, counts) {
			rows, ids = append(rows, r), append(ids, r.ID)
		}
		total = count
	default:
		return nil, fmt.Errorf("model %q has no change list: %w", model, ErrNotFound)
	}

	cl := &ChangeList{
		Model:    model,
		Headers:  ma.Headers(),
		Rows:     make([]ChangeListRow, len(rows)),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	for i, row := range rows {
		cells, err := ma.Render(row)
		if err != nil {
			return nil, fmt.Errorf("render %s row: %w", model, err)
		}
		cl.Rows[i] = ChangeListRow{ID: ids[i], Cells: cells}
	}

	if cl.Filters, err = m.filters(ctx, ma); err != nil {
		return nil, err
	}

	return cl, nil
}

// filters returns the list filters of ma with their options.
func (m *Manager) filters(ctx context.Context, ma admin.ModelAdmin) ([]Filter, error) {
	filters := make([]Filter, 0, len(ma.ListFilter))
	for _, field := range ma.ListFilter {
		choices, err := m.site.Lookups(ma.Model, field)
		if err != nil {
			return nil, err
		}

		switch field {
		case "category":
			list, err := m.db.AllCategories(ctx)
			if err != nil {
				return nil, fmt.Errorf("db get categories: %w", err)
			}
			choices = categoryChoices(list)
		case "reporter":
			list, err := m.db.AllReporters(ctx)
			if err != nil {
				return nil, fmt.Errorf("db get reporters: %w", err)
			}
			choices = reporterChoices(list)
		}

		filters = append(filters, Filter{Field: field, Choices: choices})
	}

	return filters, nil
}

// Article returns the change form of an article with its tag inline.
func (m *Manager) Article(ctx context.Context, articleID int) (*ArticleForm, error) {
	ma, err := m.modelAdmin(admin.ModelArticle)
	if err != nil {
		return nil, err
	}

	article, err := m.db.ArticleByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db get article by id: %w", err)
	} else if article == nil {
		return nil, fmt.Errorf("article %d: %w", articleID, ErrNotFound)
	}

	form := newArticleForm(ma, ArticleRow{Article: *article})

	if len(ma.Inlines) > 0 {
		attached, err := m.db.TagsByArticle(ctx, articleID)
		if err != nil {
			return nil, fmt.Errorf("db get article tags: %w", err)
		}
		all, err := m.db.AllTags(ctx)
		if err != nil {
			return nil, fmt.Errorf("db get tags: %w", err)
		}

		for _, inline := range ma.Inlines {
			form.Inlines = append(form.Inlines, newTagInline(inline, attached, all))
		}
	}

	return &form, nil
}

func (m *Manager) prepopulate(model string, values map[string]string) error {
	if err := m.site.Prepopulate(model, values); err != nil {
		return fmt.Errorf("prepopulate %s: %w", model, err)
	}
	return nil
}

func (m *Manager) CreateCategory(ctx context.Context, in CategoryInput) (*CategoryRow, error) {
	values := map[string]string{"name": in.Name, "slug": in.Slug}
	if err := m.prepopulate(admin.ModelCategory, values); err != nil {
		return nil, err
	}
	in.Name, in.Slug = strings.TrimSpace(in.Name), values["slug"]

	if err := m.validate.Validate(in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	category := &db.Category{Name: in.Name, Slug: in.Slug, Description: in.Description}
	if err := m.db.CreateCategory(ctx, category); err != nil {
		return nil, createError(err)
	}

	return &CategoryRow{Category: *category}, nil
}

func (m *Manager) CreateTag(ctx context.Context, in TagInput) (*TagRow, error) {
	values := map[string]string{"name": in.Name, "slug": in.Slug}
	if err := m.prepopulate(admin.ModelTag, values); err != nil {
		return nil, err
	}
	in.Name, in.Slug = strings.TrimSpace(in.Name), values["slug"]

	if err := m.validate.Validate(in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	tag := &db.Tag{Name: in.Name, Slug: in.Slug}
	if err := m.db.CreateTag(ctx, tag); err != nil {
		return nil, createError(err)
	}

	return &TagRow{Tag: *tag}, nil
}

// CreateArticle stores a new article. A published article without a date is published now,
// an empty summary is taken from the content.
func (m *Manager) CreateArticle(ctx context.Context, in ArticleInput) (*ArticleRow, error) {
	values := map[string]string{"title": in.Title, "slug": in.Slug}
	if err := m.prepopulate(admin.ModelArticle, values); err != nil {
		return nil, err
	}
	in.Title, in.Slug = strings.TrimSpace(in.Title), values["slug"]

	if in.Status == "" {
		in.Status = db.StatusDraft
	}

	if err := m.validate.Validate(in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if in.Summary == "" {
		in.Summary = Summarize(in.Content)
	}
	if in.Status == db.StatusPublished && in.PublishedDate == nil {
		now := m.now()
		in.PublishedDate = &now
	}

	article := &db.Article{
		Title:         in.Title,
		Slug:          in.Slug,
		Content:       in.Content,
		Summary:       in.Summary,
		Image:         in.Image,
		Status:        in.Status,
		PublishedDate: in.PublishedDate,
		CategoryID:    in.CategoryID,
		ReporterID:    in.ReporterID,
	}
	if err := m.db.CreateArticle(ctx, article); err != nil {
		return nil, createError(err)
	}

	return &ArticleRow{Article: *article}, nil
}

func createError(err error) error {
	if errors.Is(err, db.ErrDuplicate) || errors.Is(err, db.ErrMissingRelation) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return fmt.Errorf("db create: %w", err)
}

// AttachTag adds a tag to the article inline. Attaching an attached tag is a no-op.
func (m *Manager) AttachTag(ctx context.Context, articleID, tagID int) error {
	if err := m.checkArticle(ctx, articleID); err != nil {
		return err
	}

	err := m.db.AddArticleTag(ctx, articleID, tagID)
	if errors.Is(err, db.ErrMissingRelation) {
		return fmt.Errorf("tag %d: %w", tagID, ErrNotFound)
	} else if err != nil {
		return fmt.Errorf("db add article tag: %w", err)
	}

	return nil
}

// DetachTag removes a tag from the article inline.
func (m *Manager) DetachTag(ctx context.Context, articleID, tagID int) error {
	if err := m.checkArticle(ctx, articleID); err != nil {
		return err
	}

	if err := m.db.RemoveArticleTag(ctx, articleID, tagID); err != nil {
		return fmt.Errorf("db remove article tag: %w", err)
	}

	return nil
}

func (m *Manager) checkArticle(ctx context.Context, articleID int) error {
	if articleID <= 0 {
		return fmt.Errorf("%w: article id %d", ErrInvalidInput, articleID)
	}

	article, err := m.db.ArticleByID(ctx, articleID)
	if err != nil {
		return fmt.Errorf("db get article by id: %w", err)
	} else if article == nil {
		return fmt.Errorf("article %d: %w", articleID, ErrNotFound)
	}

	return nil
}
