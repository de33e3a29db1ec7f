// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	User struct {
		ID, Username, Email, Password, FirstName, LastName, IsStaff, IsSuperuser, DateJoined string
	}
	Category struct {
		ID, Name, Slug, Description string
	}
	Reporter struct {
		ID, UserID, Bio string

		User string
	}
	Article struct {
		ID, Title, Slug, Content, Summary, Image, Status, PublishedDate, CategoryID, ReporterID, CreatedAt string

		Category, Reporter string
	}
	ArticleTag struct {
		ArticleID, TagID string
	}
	Tag struct {
		ID, Name, Slug string
	}
	Post struct {
		ID, Title, Slug, Content, Status, AuthorID, CategoryID, PublishedAt, CreatedAt string

		Author, Category string
	}
	PostTag struct {
		PostID, TagID string
	}
	Comment struct {
		ID, PostID, AuthorID, Content, IsApproved, CreatedAt string
	}
}{
	User: struct {
		ID, Username, Email, Password, FirstName, LastName, IsStaff, IsSuperuser, DateJoined string
	}{
		ID:          "userId",
		Username:    "username",
		Email:       "email",
		Password:    "password",
		FirstName:   "firstName",
		LastName:    "lastName",
		IsStaff:     "isStaff",
		IsSuperuser: "isSuperuser",
		DateJoined:  "dateJoined",
	},
	Category: struct {
		ID, Name, Slug, Description string
	}{
		ID:          "categoryId",
		Name:        "name",
		Slug:        "slug",
		Description: "description",
	},
	Reporter: struct {
		ID, UserID, Bio string

		User string
	}{
		ID:     "reporterId",
		UserID: "userId",
		Bio:    "bio",

		User: "User",
	},
	Article: struct {
		ID, Title, Slug, Content, Summary, Image, Status, PublishedDate, CategoryID, ReporterID, CreatedAt string

		Category, Reporter string
	}{
		ID:            "articleId",
		Title:         "title",
		Slug:          "slug",
		Content:       "content",
		Summary:       "summary",
		Image:         "image",
		Status:        "status",
		PublishedDate: "publishedDate",
		CategoryID:    "categoryId",
		ReporterID:    "reporterId",
		CreatedAt:     "createdAt",

		Category: "Category",
		Reporter: "Reporter",
	},
	ArticleTag: struct {
		ArticleID, TagID string
	}{
		ArticleID: "articleId",
		TagID:     "tagId",
	},
	Tag: struct {
		ID, Name, Slug string
	}{
		ID:   "tagId",
		Name: "name",
		Slug: "slug",
	},
	Post: struct {
		ID, Title, Slug, Content, Status, AuthorID, CategoryID, PublishedAt, CreatedAt string

		Author, Category string
	}{
		ID:          "postId",
		Title:       "title",
		Slug:        "slug",
		Content:     "content",
		Status:      "status",
		AuthorID:    "authorId",
		CategoryID:  "categoryId",
		PublishedAt: "publishedAt",
		CreatedAt:   "createdAt",

		Author:   "Author",
		Category: "Category",
	},
	PostTag: struct {
		PostID, TagID string
	}{
		PostID: "postId",
		TagID:  "tagId",
	},
	Comment: struct {
		ID, PostID, AuthorID, Content, IsApproved, CreatedAt string
	}{
		ID:         "commentId",
		PostID:     "postId",
		AuthorID:   "authorId",
		Content:    "content",
		IsApproved: "isApproved",
		CreatedAt:  "createdAt",
	},
}

var Tables = struct {
	User struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	Reporter struct {
		Name, Alias string
	}
	Article struct {
		Name, Alias string
	}
	ArticleTag struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
	PostTag struct {
		Name, Alias string
	}
	Comment struct {
		Name, Alias string
	}
}{
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Reporter: struct {
		Name, Alias string
	}{
		Name:  "reporters",
		Alias: "t",
	},
	Article: struct {
		Name, Alias string
	}{
		Name:  "articles",
		Alias: "t",
	},
	ArticleTag: struct {
		Name, Alias string
	}{
		Name:  "articleTags",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	PostTag: struct {
		Name, Alias string
	}{
		Name:  "postTags",
		Alias: "t",
	},
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID          int       `pg:"userId,pk"`
	Username    string    `pg:"username,use_zero"`
	Email       string    `pg:"email,use_zero"`
	Password    string    `pg:"password,use_zero"`
	FirstName   string    `pg:"firstName,use_zero"`
	LastName    string    `pg:"lastName,use_zero"`
	IsStaff     bool      `pg:"isStaff,use_zero"`
	IsSuperuser bool      `pg:"isSuperuser,use_zero"`
	DateJoined  time.Time `pg:"dateJoined"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int    `pg:"categoryId,pk"`
	Name        string `pg:"name,use_zero"`
	Slug        string `pg:"slug,use_zero"`
	Description string `pg:"description,use_zero"`
}

type Reporter struct {
	tableName struct{} `pg:"reporters,alias:t,discard_unknown_columns"`

	ID     int    `pg:"reporterId,pk"`
	UserID int    `pg:"userId,use_zero"`
	Bio    string `pg:"bio,use_zero"`

	User *User `pg:"fk:userId,rel:has-one"`
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID            int        `pg:"articleId,pk"`
	Title         string     `pg:"title,use_zero"`
	Slug          string     `pg:"slug,use_zero"`
	Content       string     `pg:"content,use_zero"`
	Summary       string     `pg:"summary,use_zero"`
	Image         string     `pg:"image,use_zero"`
	Status        string     `pg:"status,use_zero"`
	PublishedDate *time.Time `pg:"publishedDate"`
	CategoryID    int        `pg:"categoryId,use_zero"`
	ReporterID    int        `pg:"reporterId,use_zero"`
	CreatedAt     time.Time  `pg:"createdAt"`

	Category *Category `pg:"fk:categoryId,rel:has-one"`
	Reporter *Reporter `pg:"fk:reporterId,rel:has-one"`
}

type ArticleTag struct {
	tableName struct{} `pg:"articleTags,alias:t,discard_unknown_columns"`

	ArticleID int `pg:"articleId,pk"`
	TagID     int `pg:"tagId,pk"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID   int    `pg:"tagId,pk"`
	Name string `pg:"name,use_zero"`
	Slug string `pg:"slug,use_zero"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID          int        `pg:"postId,pk"`
	Title       string     `pg:"title,use_zero"`
	Slug        string     `pg:"slug,use_zero"`
	Content     string     `pg:"content,use_zero"`
	Status      string     `pg:"status,use_zero"`
	AuthorID    int        `pg:"authorId,use_zero"`
	CategoryID  int        `pg:"categoryId,use_zero"`
	PublishedAt *time.Time `pg:"publishedAt"`
	CreatedAt   time.Time  `pg:"createdAt"`

	Author   *User     `pg:"fk:authorId,rel:has-one"`
	Category *Category `pg:"fk:categoryId,rel:has-one"`
}

type PostTag struct {
	tableName struct{} `pg:"postTags,alias:t,discard_unknown_columns"`

	PostID int `pg:"postId,pk"`
	TagID  int `pg:"tagId,pk"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID         int       `pg:"commentId,pk"`
	PostID     int       `pg:"postId,use_zero"`
	AuthorID   int       `pg:"authorId,use_zero"`
	Content    string    `pg:"content,use_zero"`
	IsApproved bool      `pg:"isApproved,use_zero"`
	CreatedAt  time.Time `pg:"createdAt"`
}
