package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

var (
	ErrDuplicate       = errors.New("record already exists")
	ErrMissingRelation = errors.New("related record does not exist")
)

// SQLSTATE codes of integrity violations.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// UserByUsernameOrCreate returns the user with u.Username, inserting u when it does not exist yet.
func (r *Repository) UserByUsernameOrCreate(ctx context.Context, u *User) (bool, error) {
	created, err := r.db.ModelContext(ctx, u).
		Where(`"t"."username" = ?`, u.Username).
		OnConflict("DO NOTHING").
		SelectOrInsert()
	if err != nil {
		return false, fmt.Errorf("failed to get or create user %q: %w", u.Username, err)
	}

	return created, nil
}

func (r *Repository) UserByUsername(ctx context.Context, username string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."username" = ?`, username).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// CategoryByNameOrCreate returns the category named c.Name, inserting c when it does not exist yet.
func (r *Repository) CategoryByNameOrCreate(ctx context.Context, c *Category) (bool, error) {
	created, err := r.db.ModelContext(ctx, c).
		Where(`"t"."name" = ?`, c.Name).
		OnConflict("DO NOTHING").
		SelectOrInsert()
	if err != nil {
		return false, fmt.Errorf("failed to get or create category %q: %w", c.Name, err)
	}

	return created, nil
}

func (r *Repository) CategoryByName(ctx context.Context, name string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."name" = ?`, name).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	return category, nil
}

// TagByNameOrCreate returns the tag named t.Name, inserting t when it does not exist yet.
func (r *Repository) TagByNameOrCreate(ctx context.Context, t *Tag) (bool, error) {
	created, err := r.db.ModelContext(ctx, t).
		Where(`"t"."name" = ?`, t.Name).
		OnConflict("DO NOTHING").
		SelectOrInsert()
	if err != nil {
		return false, fmt.Errorf("failed to get or create tag %q: %w", t.Name, err)
	}

	return created, nil
}

// PostByTitleOrCreate returns the post titled p.Title, inserting p when it does not exist yet.
func (r *Repository) PostByTitleOrCreate(ctx context.Context, p *Post) (bool, error) {
	created, err := r.db.ModelContext(ctx, p).
		Where(`"t"."title" = ?`, p.Title).
		OnConflict("DO NOTHING").
		SelectOrInsert()
	if err != nil {
		return false, fmt.Errorf("failed to get or create post %q: %w", p.Title, err)
	}

	return created, nil
}

func (r *Repository) PostsByStatus(ctx context.Context, status string) ([]Post, error) {
	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Where(`"t"."status" = ?`, status).
		OrderExpr(`"t"."postId" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

// AddPostTags attaches tags to a post, skipping pairs that already exist.
func (r *Repository) AddPostTags(ctx context.Context, postID int, tagIDs []int) error {
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]PostTag, len(tagIDs))
	for i, tagID := range tagIDs {
		rows[i] = PostTag{PostID: postID, TagID: tagID}
	}

	_, err := r.db.ModelContext(ctx, &rows).
		OnConflict("DO NOTHING").
		Insert()
	if err != nil {
		return fmt.Errorf("failed to add post tags: %w", err)
	}

	return nil
}

func (r *Repository) PostTagIDs(ctx context.Context, postID int) ([]int, error) {
	var ids []int
	err := r.db.ModelContext(ctx, (*PostTag)(nil)).
		Column("tagId").
		Where(`"t"."postId" = ?`, postID).
		OrderExpr(`"t"."tagId" ASC`).
		Select(&ids)

	if err != nil {
		return nil, fmt.Errorf("failed to query post tags: %w", err)
	}

	return ids, nil
}

// CommentOrCreate returns the comment matching (post, author, content), inserting c when it does not exist yet.
func (r *Repository) CommentOrCreate(ctx context.Context, c *Comment) (bool, error) {
	created, err := r.db.ModelContext(ctx, c).
		Where(`"t"."postId" = ?`, c.PostID).
		Where(`"t"."authorId" = ?`, c.AuthorID).
		Where(`"t"."content" = ?`, c.Content).
		OnConflict("DO NOTHING").
		SelectOrInsert()
	if err != nil {
		return false, fmt.Errorf("failed to get or create comment: %w", err)
	}

	return created, nil
}

// CommentsByPost returns the comments of a post in insertion order.
func (r *Repository) CommentsByPost(ctx context.Context, postID int) ([]Comment, error) {
	var comments []Comment
	err := r.db.ModelContext(ctx, &comments).
		Where(`"t"."postId" = ?`, postID).
		OrderExpr(`"t"."commentId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

func (r *Repository) CommentCount(ctx context.Context, postID int) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"t"."postId" = ?`, postID).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return count, nil
}

// Totals holds row counts of the seeded tables.
type Totals struct {
	Users      int
	Categories int
	Tags       int
	Posts      int
	Comments   int
}

func (r *Repository) Counts(ctx context.Context) (Totals, error) {
	var (
		totals Totals
		err    error
	)

	counters := []struct {
		model interface{}
		dst   *int
	}{
		{(*User)(nil), &totals.Users},
		{(*Category)(nil), &totals.Categories},
		{(*Tag)(nil), &totals.Tags},
		{(*Post)(nil), &totals.Posts},
		{(*Comment)(nil), &totals.Comments},
	}

	for _, c := range counters {
		*c.dst, err = r.db.ModelContext(ctx, c.model).Count()
		if err != nil {
			return Totals{}, fmt.Errorf("failed to count rows: %w", err)
		}
	}

	return totals, nil
}

func isDuplicate(err error) bool {
	var pgErr pg.Error
	return errors.As(err, &pgErr) && pgErr.IntegrityViolation() && pgErr.Field('C') == codeUniqueViolation
}

func isMissingRelation(err error) bool {
	var pgErr pg.Error
	return errors.As(err, &pgErr) && pgErr.IntegrityViolation() && pgErr.Field('C') == codeForeignKeyViolation
}
