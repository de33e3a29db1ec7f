package seed

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/daniilsolovey/newsroom/internal/db"
	"github.com/daniilsolovey/newsroom/internal/slug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)

type postTag struct{ postID, tagID int }

// memStore is an in-memory Store keyed by the same natural keys as the database.
type memStore struct {
	users      []db.User
	categories []db.Category
	tags       []db.Tag
	posts      []db.Post
	postTags   map[postTag]struct{}
	comments   []db.Comment

	// failOn makes the named method return errFail.
	failOn string
	// commentLimit makes CommentOrCreate fail once this many comments exist, 0 disables it.
	commentLimit int
}

var errFail = errors.New("store failure")

func newMemStore() *memStore {
	return &memStore{postTags: make(map[postTag]struct{})}
}

func (m *memStore) fail(method string) error {
	if m.failOn == method {
		return errFail
	}
	return nil
}

func (m *memStore) UserByUsername(_ context.Context, username string) (*db.User, error) {
	if err := m.fail("UserByUsername"); err != nil {
		return nil, err
	}
	for i := range m.users {
		if m.users[i].Username == username {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memStore) UserByUsernameOrCreate(_ context.Context, u *db.User) (bool, error) {
	for i := range m.users {
		if m.users[i].Username == u.Username {
			*u = m.users[i]
			return false, nil
		}
	}
	u.ID = len(m.users) + 1
	m.users = append(m.users, *u)
	return true, nil
}

func (m *memStore) CategoryByNameOrCreate(_ context.Context, c *db.Category) (bool, error) {
	if err := m.fail("CategoryByNameOrCreate"); err != nil {
		return false, err
	}
	for i := range m.categories {
		if m.categories[i].Name == c.Name {
			*c = m.categories[i]
			return false, nil
		}
	}
	c.ID = len(m.categories) + 1
	m.categories = append(m.categories, *c)
	return true, nil
}

func (m *memStore) CategoryByName(_ context.Context, name string) (*db.Category, error) {
	if m.failOn == "CategoryByName" {
		return nil, nil
	}
	for i := range m.categories {
		if m.categories[i].Name == name {
			c := m.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memStore) TagByNameOrCreate(_ context.Context, t *db.Tag) (bool, error) {
	for i := range m.tags {
		if m.tags[i].Name == t.Name {
			*t = m.tags[i]
			return false, nil
		}
	}
	t.ID = len(m.tags) + 1
	m.tags = append(m.tags, *t)
	return true, nil
}

func (m *memStore) PostByTitleOrCreate(_ context.Context, p *db.Post) (bool, error) {
	for i := range m.posts {
		if m.posts[i].Title == p.Title {
			*p = m.posts[i]
			return false, nil
		}
	}
	p.ID = len(m.posts) + 1
	m.posts = append(m.posts, *p)
	return true, nil
}

func (m *memStore) AddPostTags(_ context.Context, postID int, tagIDs []int) error {
	if err := m.fail("AddPostTags"); err != nil {
		return err
	}
	for _, id := range tagIDs {
		m.postTags[postTag{postID, id}] = struct{}{}
	}
	return nil
}

func (m *memStore) PostsByStatus(_ context.Context, status string) ([]db.Post, error) {
	var posts []db.Post
	for _, p := range m.posts {
		if p.Status == status {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (m *memStore) CommentsByPost(_ context.Context, postID int) ([]db.Comment, error) {
	var list []db.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			list = append(list, c)
		}
	}
	return list, nil
}

func (m *memStore) CommentOrCreate(_ context.Context, c *db.Comment) (bool, error) {
	if err := m.fail("CommentOrCreate"); err != nil {
		return false, err
	}
	if m.commentLimit > 0 && len(m.comments) >= m.commentLimit {
		return false, errFail
	}
	for i := range m.comments {
		e := m.comments[i]
		if e.PostID == c.PostID && e.AuthorID == c.AuthorID && e.Content == c.Content {
			*c = e
			return false, nil
		}
	}
	c.ID = len(m.comments) + 1
	m.comments = append(m.comments, *c)
	return true, nil
}

func (m *memStore) totals() db.Totals {
	return db.Totals{
		Users:      len(m.users),
		Categories: len(m.categories),
		Tags:       len(m.tags),
		Posts:      len(m.posts),
		Comments:   len(m.comments),
	}
}

func newTestSeeder(store Store, seed uint64, out io.Writer) *Seeder {
	s := New(
		store,
		rand.New(rand.NewPCG(seed, seed)),
		func() time.Time { return testNow },
		out,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	s.hashCost = bcrypt.MinCost
	return s
}

func TestSeeder_Run(t *testing.T) {
	store := newMemStore()
	var out bytes.Buffer

	stats, err := newTestSeeder(store, 1, &out).Run(context.Background())
	require.NoError(t, err)

	totals := store.totals()
	assert.Equal(t, 2, totals.Users)
	assert.Equal(t, 5, totals.Categories)
	assert.Equal(t, 15, totals.Tags)
	assert.Equal(t, 2, totals.Posts)
	assert.Equal(t, totals.Comments, stats.Comments)
	assert.Equal(t, Stats{Users: 2, Categories: 5, Tags: 15, Posts: 2, Comments: totals.Comments}, stats)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"Creating superuser...",
		"Creating regular user...",
		"Creating categories...",
		"Creating tags...",
		"Creating posts...",
		"  Created post: Getting Started with Django ORM",
		"  Created post: Understanding Django Model Relationships",
		"Creating comments...",
		SuccessMessage,
	}, lines)
}

func TestSeeder_Run_Idempotent(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		store := newMemStore()

		_, err := newTestSeeder(store, seed, io.Discard).Run(context.Background())
		require.NoError(t, err)
		first := store.totals()

		var out bytes.Buffer
		stats, err := newTestSeeder(store, seed+100, &out).Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, first, store.totals(), "seed %d", seed)
		assert.Equal(t, Stats{}, stats)
		assert.Contains(t, out.String(), "  Post already exists: Getting Started with Django ORM")
		assert.NotContains(t, out.String(), "Creating superuser...")
	}
}

func TestSeeder_Run_Users(t *testing.T) {
	store := newMemStore()
	_, err := newTestSeeder(store, 1, io.Discard).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, store.users, 2)

	admin := store.users[0]
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, "admin@example.com", admin.Email)
	assert.True(t, admin.IsSuperuser)
	assert.True(t, admin.IsStaff)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))

	user := store.users[1]
	assert.Equal(t, "user", user.Username)
	assert.False(t, user.IsSuperuser)
	assert.False(t, user.IsStaff)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("user123")))
}

func TestSeeder_Run_Slugs(t *testing.T) {
	store := newMemStore()
	_, err := newTestSeeder(store, 1, io.Discard).Run(context.Background())
	require.NoError(t, err)

	for _, c := range store.categories {
		assert.Equal(t, slug.Make(c.Name), c.Slug)
	}
	assert.Equal(t, "data-science", store.categories[1].Slug)
	assert.Equal(t, "web-development", store.categories[2].Slug)

	for _, tag := range store.tags {
		assert.True(t, slug.Valid(tag.Slug), tag.Slug)
	}
	assert.Equal(t, "getting-started-with-django-orm", store.posts[0].Slug)
}

func TestSeeder_Run_Posts(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		store := newMemStore()
		_, err := newTestSeeder(store, seed, io.Discard).Run(context.Background())
		require.NoError(t, err)

		for _, p := range store.posts {
			require.NotNil(t, p.PublishedAt)
			assert.True(t, p.PublishedAt.Before(testNow))
			assert.False(t, p.PublishedAt.Before(testNow.AddDate(0, 0, -maxAgeDays)))
			assert.Equal(t, 1, p.CategoryID)
			assert.Equal(t, store.users[0].ID, p.AuthorID)
		}

		// Python, Django, Database on both posts
		assert.Len(t, store.postTags, 6)
		assert.Contains(t, store.postTags, postTag{1, 1})
		assert.Contains(t, store.postTags, postTag{2, 7})
	}
}

func TestSeeder_Run_Comments(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		store := newMemStore()
		_, err := newTestSeeder(store, seed, io.Discard).Run(context.Background())
		require.NoError(t, err)

		assertComments(t, store)
	}
}

// assertComments checks that every post has minComments..maxComments distinct
// pool comments with alternating authors.
func assertComments(t *testing.T, store *memStore) {
	t.Helper()

	for _, p := range store.posts {
		postComments, err := store.CommentsByPost(context.Background(), p.ID)
		require.NoError(t, err)

		require.GreaterOrEqual(t, len(postComments), minComments, "post %d", p.ID)
		require.LessOrEqual(t, len(postComments), maxComments, "post %d", p.ID)

		seen := make(map[string]struct{})
		for i, c := range postComments {
			assert.Contains(t, comments, c.Content)
			assert.NotContains(t, seen, c.Content)
			seen[c.Content] = struct{}{}

			wantAuthor := store.users[i%2].ID
			assert.Equal(t, wantAuthor, c.AuthorID)
		}
	}
}

func TestSeeder_Run_ResumesComments(t *testing.T) {
	for limit := 1; limit < 2*minComments; limit++ {
		store := newMemStore()
		store.commentLimit = limit

		_, err := newTestSeeder(store, uint64(limit), io.Discard).Run(context.Background())
		require.ErrorIs(t, err, errFail)
		require.Len(t, store.comments, limit)

		store.commentLimit = 0
		var out bytes.Buffer
		stats, err := newTestSeeder(store, uint64(limit)+100, &out).Run(context.Background())
		require.NoError(t, err)

		assert.Contains(t, out.String(), SuccessMessage)
		assert.Equal(t, len(store.comments)-limit, stats.Comments)
		assertComments(t, store)
	}
}

// fixedRand returns values from a fixed sequence, clamped to [0, n).
type fixedRand struct {
	values []int
	i      int
}

func (r *fixedRand) IntN(n int) int {
	v := r.values[r.i%len(r.values)]
	r.i++
	if v >= n {
		return n - 1
	}
	return v
}

func TestSeeder_Run_Approval(t *testing.T) {
	store := newMemStore()
	s := newTestSeeder(store, 0, io.Discard)
	// 2 for every draw: oldest publish date, 5 comments, never approved
	s.rnd = &fixedRand{values: []int{2}}

	_, err := s.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, store.comments, 10)
	for _, c := range store.comments {
		assert.False(t, c.IsApproved)
	}
	assert.Equal(t, testNow.AddDate(0, 0, -3), *store.posts[0].PublishedAt)

	store = newMemStore()
	s = newTestSeeder(store, 0, io.Discard)
	s.rnd = &fixedRand{values: []int{0}}

	_, err = s.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, store.comments, 6)
	for _, c := range store.comments {
		assert.True(t, c.IsApproved)
	}
	assert.Equal(t, testNow.AddDate(0, 0, -1), *store.posts[0].PublishedAt)
}

func TestSeeder_Run_Errors(t *testing.T) {
	tests := []struct {
		failOn  string
		wantMsg string
	}{
		{failOn: "UserByUsername", wantMsg: "seed users: "},
		{failOn: "CategoryByNameOrCreate", wantMsg: "seed categories: "},
		{failOn: "AddPostTags", wantMsg: "seed posts: "},
		{failOn: "CommentOrCreate", wantMsg: "seed comments: "},
	}

	for _, tt := range tests {
		t.Run(tt.failOn, func(t *testing.T) {
			store := newMemStore()
			store.failOn = tt.failOn
			var out bytes.Buffer

			_, err := newTestSeeder(store, 1, &out).Run(context.Background())
			require.ErrorIs(t, err, errFail)
			assert.True(t, strings.HasPrefix(err.Error(), tt.wantMsg), err.Error())
			assert.NotContains(t, out.String(), SuccessMessage)
		})
	}

	t.Run("MissingCategory", func(t *testing.T) {
		store := newMemStore()
		store.failOn = "CategoryByName"

		_, err := newTestSeeder(store, 1, io.Discard).Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), `category "Programming" not found`)
	})
}
