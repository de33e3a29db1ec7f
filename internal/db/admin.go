package db

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

var ErrUnknownLookup = errors.New("unknown lookup")

// ListParams narrows an admin change list. Field names use the admin
// lookup syntax ("reporter__user__username"), columns are resolved per table.
type ListParams struct {
	Search       string
	SearchFields []string
	Filters      map[string]string

	DateField        string
	DateFrom         *time.Time
	Year, Month, Day int

	Page, PageSize int
}

// lookups maps admin field names to SQL expressions for each table.
var lookups = map[string]map[string]string{
	Tables.Category.Name: {
		"name":        col("t", Columns.Category.Name),
		"slug":        col("t", Columns.Category.Slug),
		"description": col("t", Columns.Category.Description),
	},
	Tables.Reporter.Name: {
		"bio":              col("t", Columns.Reporter.Bio),
		"user__username":   col("user", Columns.User.Username),
		"user__first_name": col("user", Columns.User.FirstName),
		"user__last_name":  col("user", Columns.User.LastName),
	},
	Tables.Article.Name: {
		"title":                    col("t", Columns.Article.Title),
		"content":                  col("t", Columns.Article.Content),
		"status":                   col("t", Columns.Article.Status),
		"category":                 col("t", Columns.Article.CategoryID),
		"reporter":                 col("t", Columns.Article.ReporterID),
		"published_date":           col("t", Columns.Article.PublishedDate),
		"reporter__user__username": col("reporter__user", Columns.User.Username),
	},
	Tables.Tag.Name: {
		"name": col("t", Columns.Tag.Name),
		"slug": col("t", Columns.Tag.Slug),
	},
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// likePattern matches term anywhere, with LIKE wildcards in term taken literally.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func col(alias, column string) string {
	return fmt.Sprintf(`"%s"."%s"`, alias, column)
}

// Lookup resolves an admin field name of the given table to its SQL expression.
func Lookup(table, field string) (string, error) {
	if c, ok := lookups[table][field]; ok {
		return c, nil
	}

	return "", fmt.Errorf("%w: %s.%s", ErrUnknownLookup, table, field)
}

func applyListParams(q *orm.Query, table string, p ListParams) (*orm.Query, error) {
	if p.Page < 1 || p.PageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			p.Page, p.PageSize,
		)
	}

	if terms := strings.Fields(p.Search); len(terms) > 0 && len(p.SearchFields) > 0 {
		columns := make([]string, len(p.SearchFields))
		for i, f := range p.SearchFields {
			c, err := Lookup(table, f)
			if err != nil {
				return nil, err
			}
			columns[i] = c
		}

		// every term has to match at least one search field
		for _, term := range terms {
			pattern := likePattern(term)
			q = q.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
				for _, c := range columns {
					q = q.WhereOr(c+" ILIKE ?", pattern)
				}
				return q, nil
			})
		}
	}

	keys := make([]string, 0, len(p.Filters))
	for k := range p.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		c, err := Lookup(table, k)
		if err != nil {
			return nil, err
		}
		q = q.Where(c+" = ?", p.Filters[k])
	}

	if p.DateField != "" {
		c, err := Lookup(table, p.DateField)
		if err != nil {
			return nil, err
		}

		if p.DateFrom != nil {
			q = q.Where(c+" >= ?", *p.DateFrom)
		}
		if p.Year > 0 {
			q = q.Where("EXTRACT(YEAR FROM "+c+") = ?", p.Year)
		}
		if p.Month > 0 {
			q = q.Where("EXTRACT(MONTH FROM "+c+") = ?", p.Month)
		}
		if p.Day > 0 {
			q = q.Where("EXTRACT(DAY FROM "+c+") = ?", p.Day)
		}
	}

	return q.Limit(p.PageSize).Offset((p.Page - 1) * p.PageSize), nil
}

func (r *Repository) CategoriesPage(ctx context.Context, p ListParams) ([]Category, int, error) {
	var categories []Category
	q, err := applyListParams(r.db.ModelContext(ctx, &categories), Tables.Category.Name, p)
	if err != nil {
		return nil, 0, err
	}

	count, err := q.OrderExpr(`"t"."name" ASC`).SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, count, nil
}

func (r *Repository) ReportersPage(ctx context.Context, p ListParams) ([]Reporter, int, error) {
	var reporters []Reporter
	q, err := applyListParams(r.db.ModelContext(ctx, &reporters).Relation("User"), Tables.Reporter.Name, p)
	if err != nil {
		return nil, 0, err
	}

	count, err := q.OrderExpr(`"t"."reporterId" ASC`).SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query reporters: %w", err)
	}

	return reporters, count, nil
}

func (r *Repository) ArticlesPage(ctx context.Context, p ListParams) ([]Article, int, error) {
	var articles []Article
	q := r.db.ModelContext(ctx, &articles).
		Relation("Category").
		Relation("Reporter").
		Relation("Reporter.User")

	q, err := applyListParams(q, Tables.Article.Name, p)
	if err != nil {
		return nil, 0, err
	}

	count, err := q.
		OrderExpr(`"t"."publishedDate" DESC NULLS LAST`).
		OrderExpr(`"t"."articleId" DESC`).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, count, nil
}

func (r *Repository) TagsPage(ctx context.Context, p ListParams) ([]Tag, int, error) {
	var tags []Tag
	q, err := applyListParams(r.db.ModelContext(ctx, &tags), Tables.Tag.Name, p)
	if err != nil {
		return nil, 0, err
	}

	count, err := q.OrderExpr(`"t"."name" ASC`).SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, count, nil
}

// ArticleByID retrieves a single article with category and reporter. Tags are loaded separately.
func (r *Repository) ArticleByID(ctx context.Context, articleID int) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation("Category").
		Relation("Reporter").
		Relation("Reporter.User").
		Where(`"t"."articleId" = ?`, articleID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

func (r *Repository) TagsByArticle(ctx context.Context, articleID int) ([]Tag, error) {
	tags := []Tag{}
	err := r.db.ModelContext(ctx, &tags).
		Join(`JOIN "articleTags" AS "at" ON "at"."tagId" = "t"."tagId"`).
		Where(`"at"."articleId" = ?`, articleID).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query article tags: %w", err)
	}

	return tags, nil
}

func (r *Repository) AllTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

func (r *Repository) AllCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) AllReporters(ctx context.Context) ([]Reporter, error) {
	var reporters []Reporter
	err := r.db.ModelContext(ctx, &reporters).
		Relation("User").
		OrderExpr(`"t"."reporterId" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query reporters: %w", err)
	}

	return reporters, nil
}

type countRow struct {
	ID    int `pg:"id"`
	Count int `pg:"count"`
}

func (r *Repository) articleCounts(ctx context.Context, query string, ids []int) (map[int]int, error) {
	counts := make(map[int]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []countRow
	if _, err := r.db.QueryContext(ctx, &rows, query, pg.In(ids)); err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	for _, row := range rows {
		counts[row.ID] = row.Count
	}

	return counts, nil
}

func (r *Repository) ArticleCountsByCategory(ctx context.Context, categoryIDs []int) (map[int]int, error) {
	return r.articleCounts(ctx, `
		SELECT "categoryId" AS "id", count(*) AS "count"
		FROM "articles"
		WHERE "categoryId" IN (?)
		GROUP BY "categoryId"`, categoryIDs)
}

func (r *Repository) ArticleCountsByReporter(ctx context.Context, reporterIDs []int) (map[int]int, error) {
	return r.articleCounts(ctx, `
		SELECT "reporterId" AS "id", count(*) AS "count"
		FROM "articles"
		WHERE "reporterId" IN (?)
		GROUP BY "reporterId"`, reporterIDs)
}

func (r *Repository) ArticleCountsByTag(ctx context.Context, tagIDs []int) (map[int]int, error) {
	return r.articleCounts(ctx, `
		SELECT "tagId" AS "id", count(*) AS "count"
		FROM "articleTags"
		WHERE "tagId" IN (?)
		GROUP BY "tagId"`, tagIDs)
}

func (r *Repository) CreateCategory(ctx context.Context, c *Category) error {
	if _, err := r.db.ModelContext(ctx, c).Insert(); err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("create category %q: %w", c.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *Repository) CreateTag(ctx context.Context, t *Tag) error {
	if _, err := r.db.ModelContext(ctx, t).Insert(); err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("create tag %q: %w", t.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}

	return nil
}

func (r *Repository) CreateArticle(ctx context.Context, a *Article) error {
	if _, err := r.db.ModelContext(ctx, a).Insert(); err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("create article %q: %w", a.Title, ErrDuplicate)
		} else if isMissingRelation(err) {
			return fmt.Errorf("create article %q: %w", a.Title, ErrMissingRelation)
		}
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

// AddArticleTag attaches a tag to an article. Attaching twice is a no-op.
func (r *Repository) AddArticleTag(ctx context.Context, articleID, tagID int) error {
	_, err := r.db.ModelContext(ctx, &ArticleTag{ArticleID: articleID, TagID: tagID}).
		OnConflict("DO NOTHING").
		Insert()
	if isMissingRelation(err) {
		return fmt.Errorf("add tag %d to article %d: %w", tagID, articleID, ErrMissingRelation)
	} else if err != nil {
		return fmt.Errorf("failed to add article tag: %w", err)
	}

	return nil
}

func (r *Repository) RemoveArticleTag(ctx context.Context, articleID, tagID int) error {
	_, err := r.db.ModelContext(ctx, (*ArticleTag)(nil)).
		Where(`"t"."articleId" = ?`, articleID).
		Where(`"t"."tagId" = ?`, tagID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to remove article tag: %w", err)
	}

	return nil
}
