// Package seed fills an empty database with demo users, categories, tags, posts and comments.
//
// Every step is get-or-create by natural key, so running the seeder again
// leaves the row counts unchanged.
package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/daniilsolovey/newsroom/internal/db"
	"github.com/daniilsolovey/newsroom/internal/slug"
	"golang.org/x/crypto/bcrypt"
)

const (
	minComments = 3
	maxComments = 5

	// published posts get a date 1..maxAgeDays days back
	maxAgeDays = 30

	SuccessMessage = "Successfully seeded the database!"
)

// Store is the data layer the seeder writes to. *db.Repository implements it.
type Store interface {
	UserByUsername(ctx context.Context, username string) (*db.User, error)
	UserByUsernameOrCreate(ctx context.Context, u *db.User) (bool, error)
	CategoryByNameOrCreate(ctx context.Context, c *db.Category) (bool, error)
	CategoryByName(ctx context.Context, name string) (*db.Category, error)
	TagByNameOrCreate(ctx context.Context, t *db.Tag) (bool, error)
	PostByTitleOrCreate(ctx context.Context, p *db.Post) (bool, error)
	AddPostTags(ctx context.Context, postID int, tagIDs []int) error
	PostsByStatus(ctx context.Context, status string) ([]db.Post, error)
	CommentsByPost(ctx context.Context, postID int) ([]db.Comment, error)
	CommentOrCreate(ctx context.Context, c *db.Comment) (bool, error)
}

// Rand is the random source of the seeder. *math/rand/v2.Rand implements it.
type Rand interface {
	// IntN returns a number in [0, n).
	IntN(n int) int
}

type Seeder struct {
	store    Store
	rnd      Rand
	now      func() time.Time
	out      io.Writer
	log      *slog.Logger
	hashCost int
}

func New(store Store, rnd Rand, now func() time.Time, out io.Writer, logger *slog.Logger) *Seeder {
	return &Seeder{
		store:    store,
		rnd:      rnd,
		now:      now,
		out:      out,
		log:      logger,
		hashCost: bcrypt.DefaultCost,
	}
}

// Stats counts the rows created by a run.
type Stats struct {
	Users      int
	Categories int
	Tags       int
	Posts      int
	Comments   int
}

// Run seeds users, categories, tags, posts and comments in that order and stops at the first error.
func (s *Seeder) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	users, err := s.seedUsers(ctx, &stats)
	if err != nil {
		return stats, fmt.Errorf("seed users: %w", err)
	}

	if err := s.seedCategories(ctx, &stats); err != nil {
		return stats, fmt.Errorf("seed categories: %w", err)
	}

	tagIDs, err := s.seedTags(ctx, &stats)
	if err != nil {
		return stats, fmt.Errorf("seed tags: %w", err)
	}

	if err := s.seedPosts(ctx, users, tagIDs, &stats); err != nil {
		return stats, fmt.Errorf("seed posts: %w", err)
	}

	if err := s.seedComments(ctx, users, &stats); err != nil {
		return stats, fmt.Errorf("seed comments: %w", err)
	}

	s.printf("%s\n", SuccessMessage)
	s.log.Info("database seeded",
		"users", stats.Users,
		"categories", stats.Categories,
		"tags", stats.Tags,
		"posts", stats.Posts,
		"comments", stats.Comments,
	)

	return stats, nil
}

func (s *Seeder) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// seedUsers returns the seeded accounts by username.
func (s *Seeder) seedUsers(ctx context.Context, stats *Stats) (map[string]*db.User, error) {
	users := make(map[string]*db.User, len(accounts))

	for _, a := range accounts {
		user, err := s.store.UserByUsername(ctx, a.username)
		if err != nil {
			return nil, err
		}

		if user == nil {
			s.printf("%s\n", a.progressMsg)

			hash, err := bcrypt.GenerateFromPassword([]byte(a.password), s.hashCost)
			if err != nil {
				return nil, fmt.Errorf("hash password of %q: %w", a.username, err)
			}

			user = &db.User{
				Username:    a.username,
				Email:       a.email,
				Password:    string(hash),
				IsStaff:     a.superuser,
				IsSuperuser: a.superuser,
				DateJoined:  s.now(),
			}

			created, err := s.store.UserByUsernameOrCreate(ctx, user)
			if err != nil {
				return nil, err
			}
			if created {
				stats.Users++
			}
		}

		users[a.username] = user
	}

	return users, nil
}

func (s *Seeder) seedCategories(ctx context.Context, stats *Stats) error {
	s.printf("Creating categories...\n")

	for _, c := range categories {
		created, err := s.store.CategoryByNameOrCreate(ctx, &db.Category{
			Name:        c.name,
			Slug:        slug.Make(c.name),
			Description: c.description,
		})
		if err != nil {
			return err
		}
		if created {
			stats.Categories++
		}
	}

	return nil
}

// seedTags returns the seeded tag ids by name.
func (s *Seeder) seedTags(ctx context.Context, stats *Stats) (map[string]int, error) {
	s.printf("Creating tags...\n")

	ids := make(map[string]int, len(tags))
	for _, name := range tags {
		tag := &db.Tag{Name: name, Slug: slug.Make(name)}
		created, err := s.store.TagByNameOrCreate(ctx, tag)
		if err != nil {
			return nil, err
		}
		if created {
			stats.Tags++
		}
		ids[name] = tag.ID
	}

	return ids, nil
}

func (s *Seeder) seedPosts(ctx context.Context, users map[string]*db.User, tagIDs map[string]int, stats *Stats) error {
	s.printf("Creating posts...\n")

	for _, p := range posts {
		category, err := s.store.CategoryByName(ctx, p.category)
		if err != nil {
			return err
		} else if category == nil {
			return fmt.Errorf("post %q: category %q not found", p.title, p.category)
		}

		author, ok := users[p.author]
		if !ok {
			return fmt.Errorf("post %q: author %q not found", p.title, p.author)
		}

		var publishedAt *time.Time
		if p.status == db.StatusPublished {
			t := s.now().AddDate(0, 0, -(1 + s.rnd.IntN(maxAgeDays)))
			publishedAt = &t
		}

		record := &db.Post{
			Title:       p.title,
			Slug:        slug.Make(p.title),
			Content:     p.content,
			Status:      p.status,
			AuthorID:    author.ID,
			CategoryID:  category.ID,
			PublishedAt: publishedAt,
		}

		created, err := s.store.PostByTitleOrCreate(ctx, record)
		if err != nil {
			return err
		}

		if !created {
			s.printf("  Post already exists: %s\n", record.Title)
			continue
		}

		ids := make([]int, len(p.tags))
		for i, name := range p.tags {
			id, ok := tagIDs[name]
			if !ok {
				return fmt.Errorf("post %q: tag %q not found", p.title, name)
			}
			ids[i] = id
		}

		if err := s.store.AddPostTags(ctx, record.ID, ids); err != nil {
			return err
		}

		stats.Posts++
		s.printf("  Created post: %s\n", record.Title)
	}

	return nil
}

// seedComments tops every published post up to minComments..maxComments distinct comments.
// Posts that already have minComments are left alone.
func (s *Seeder) seedComments(ctx context.Context, users map[string]*db.User, stats *Stats) error {
	s.printf("Creating comments...\n")

	published, err := s.store.PostsByStatus(ctx, db.StatusPublished)
	if err != nil {
		return err
	}

	authors := make([]*db.User, len(accounts))
	for i, a := range accounts {
		authors[i] = users[a.username]
	}

	for _, p := range published {
		existing, err := s.store.CommentsByPost(ctx, p.ID)
		if err != nil {
			return err
		}
		if len(existing) >= minComments {
			s.log.Debug("post already has comments", "postId", p.ID, "count", len(existing))
			continue
		}

		used := make(map[string]struct{}, len(existing))
		for _, c := range existing {
			used[c.Content] = struct{}{}
		}
		pool := make([]string, 0, len(comments))
		for _, c := range comments {
			if _, ok := used[c]; !ok {
				pool = append(pool, c)
			}
		}

		n := minComments + s.rnd.IntN(maxComments-minComments+1)
		for i, content := range s.pick(pool, n-len(existing)) {
			k := len(existing) + i
			created, err := s.store.CommentOrCreate(ctx, &db.Comment{
				PostID:     p.ID,
				AuthorID:   authors[k%len(authors)].ID,
				Content:    content,
				IsApproved: s.rnd.IntN(3) < 2,
				CreatedAt:  s.now(),
			})
			if err != nil {
				return err
			}
			if created {
				stats.Comments++
			}
		}
	}

	return nil
}

// pick returns n distinct elements of pool in random order.
func (s *Seeder) pick(pool []string, n int) []string {
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)

	if n > len(shuffled) {
		n = len(shuffled)
	}

	for i := 0; i < n; i++ {
		j := i + s.rnd.IntN(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:n]
}
