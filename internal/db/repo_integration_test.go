//go:build integration

package db

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	var err error
	testDB, err = SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func TestGetOrCreate_Integration(t *testing.T) {
	t.Run("CategoryCreatedOnce", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		first := &Category{Name: "DevOps", Slug: "devops", Description: "Ops"}
		created, err := repo.CategoryByNameOrCreate(ctx, first)
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotZero(t, first.ID)

		second := &Category{Name: "DevOps", Slug: "devops", Description: "changed"}
		created, err = repo.CategoryByNameOrCreate(ctx, second)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Ops", second.Description)
	})

	t.Run("ExistingTagIsReturned", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		tag := &Tag{Name: "Hot", Slug: "hot"}
		created, err := repo.TagByNameOrCreate(ctx, tag)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, 2, tag.ID)
	})

	t.Run("PostTagsAndComments", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		user, err := repo.UserByUsername(ctx, "jdoe")
		require.NoError(t, err)
		require.NotNil(t, user)

		publishedAt := BaseTime
		post := &Post{
			Title: "Seeded", Slug: "seeded", Content: "body", Status: StatusPublished,
			AuthorID: user.ID, CategoryID: 1, PublishedAt: &publishedAt,
		}
		created, err := repo.PostByTitleOrCreate(ctx, post)
		require.NoError(t, err)
		require.True(t, created)

		require.NoError(t, repo.AddPostTags(ctx, post.ID, []int{1, 2}))
		require.NoError(t, repo.AddPostTags(ctx, post.ID, []int{2}))
		ids, err := repo.PostTagIDs(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, ids)

		for i := 0; i < 2; i++ {
			c := &Comment{PostID: post.ID, AuthorID: user.ID, Content: "Nice!", IsApproved: true}
			created, err := repo.CommentOrCreate(ctx, c)
			require.NoError(t, err)
			assert.Equal(t, i == 0, created)
		}

		count, err := repo.CommentCount(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		posts, err := repo.PostsByStatus(ctx, StatusPublished)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Seeded", posts[0].Title)
	})

	t.Run("LookupMissing", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		c, err := repo.CategoryByName(ctx, "Missing")
		require.NoError(t, err)
		assert.Nil(t, c)

		u, err := repo.UserByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, u)
	})
}

func TestCounts_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	totals, err := repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, Totals{Users: 2, Categories: 3, Tags: 4}, totals)
}

func TestCategoriesPage_Integration(t *testing.T) {
	t.Run("SearchByDescription", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		list, total, err := repo.CategoriesPage(ctx, page(ListParams{
			Search:       "festivals",
			SearchFields: []string{"name", "description"},
		}))
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, "Culture", list[0].Name)
	})

	t.Run("Pagination", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		list, total, err := repo.CategoriesPage(ctx, ListParams{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, list, 1)
		assert.Equal(t, "Technology", list[0].Name)
	})

	t.Run("InvalidPagination", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		_, _, err := repo.CategoriesPage(ctx, ListParams{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be greater than 0")
	})

	t.Run("UnknownSearchField", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		_, _, err := repo.CategoriesPage(ctx, page(ListParams{Search: "x", SearchFields: []string{"bogus"}}))
		assert.True(t, errors.Is(err, ErrUnknownLookup))
	})

	t.Run("WildcardsAreLiteral", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		for _, term := range []string{"%", "_"} {
			list, total, err := repo.CategoriesPage(ctx, page(ListParams{
				Search:       term,
				SearchFields: []string{"name", "description"},
			}))
			require.NoError(t, err)
			assert.Zero(t, total, term)
			assert.Empty(t, list, term)
		}
	})
}

func TestReportersPage_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	list, total, err := repo.ReportersPage(ctx, page(ListParams{
		Search:       "doe",
		SearchFields: []string{"user__username", "user__first_name", "user__last_name", "bio"},
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].User)
	assert.Equal(t, "jdoe", list[0].User.Username)
}

func TestArticlesPage_Integration(t *testing.T) {
	t.Run("FilterByStatus", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		list, total, err := repo.ArticlesPage(ctx, page(ListParams{Filters: map[string]string{"status": StatusDraft}}))
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, "Draft Interview", list[0].Title)
		assert.Nil(t, list[0].PublishedDate)
	})

	t.Run("SearchByReporterUsername", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		list, _, err := repo.ArticlesPage(ctx, page(ListParams{
			Search:       "asmith",
			SearchFields: []string{"title", "content", "reporter__user__username"},
		}))
		require.NoError(t, err)
		require.Len(t, list, 2)
		for _, a := range list {
			require.NotNil(t, a.Reporter)
			require.NotNil(t, a.Reporter.User)
			assert.Equal(t, "asmith", a.Reporter.User.Username)
		}
	})

	t.Run("DateHierarchy", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		list, _, err := repo.ArticlesPage(ctx, page(ListParams{
			DateField: "published_date",
			Year:      BaseTime.Year(),
			Month:     int(BaseTime.Month()),
		}))
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "AI Breakthrough in Machine Learning", list[0].Title)
	})

	t.Run("DateFrom", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		from := BaseTime.Add(-60 * 24 * time.Hour)
		list, _, err := repo.ArticlesPage(ctx, page(ListParams{DateField: "published_date", DateFrom: &from}))
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}

func TestArticleCounts_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	byCategory, err := repo.ArticleCountsByCategory(ctx, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 2, 2: 2}, byCategory)

	byReporter, err := repo.ArticleCountsByReporter(ctx, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 2, 2: 2}, byReporter)

	byTag, err := repo.ArticleCountsByTag(ctx, []int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 2, 2: 1, 3: 1}, byTag)

	empty, err := repo.ArticleCountsByTag(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestArticleByID_Integration(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		article, err := repo.ArticleByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, article)
		require.NotNil(t, article.Category)
		assert.Equal(t, "Technology", article.Category.Name)

		tags, err := repo.TagsByArticle(ctx, 1)
		require.NoError(t, err)
		require.Len(t, tags, 2)
		assert.Equal(t, "Analytics", tags[0].Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		article, err := repo.ArticleByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, article)
	})
}

func TestArticleTags_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	require.NoError(t, repo.AddArticleTag(ctx, 3, 4))
	require.NoError(t, repo.AddArticleTag(ctx, 3, 4))

	tags, err := repo.TagsByArticle(ctx, 3)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Unused", tags[0].Name)

	require.NoError(t, repo.RemoveArticleTag(ctx, 3, 4))
	tags, err = repo.TagsByArticle(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestCreateCategory_Duplicate_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	err := repo.CreateCategory(ctx, &Category{Name: "Sports", Slug: "sports-2"})
	assert.True(t, errors.Is(err, ErrDuplicate))
}
