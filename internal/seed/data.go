package seed

import (
	"github.com/daniilsolovey/newsroom/internal/db"
)

type account struct {
	username    string
	email       string
	password    string
	superuser   bool
	progressMsg string
}

var accounts = []account{
	{username: "admin", email: "admin@example.com", password: "admin123", superuser: true, progressMsg: "Creating superuser..."},
	{username: "user", email: "user@example.com", password: "user123", progressMsg: "Creating regular user..."},
}

type category struct {
	name        string
	description string
}

var categories = []category{
	{"Programming", "Posts about programming languages and software development."},
	{"Data Science", "Articles related to data analysis, machine learning, and statistics."},
	{"Web Development", "Content about web technologies, frameworks, and best practices."},
	{"DevOps", "Topics covering deployment, infrastructure, and operations."},
	{"Career", "Career advice, industry insights, and professional development."},
}

var tags = []string{
	"Python", "JavaScript", "Django", "React", "Docker",
	"APIs", "Database", "Security", "Testing", "Performance",
	"Git", "Frontend", "Backend", "Cloud", "Mobile",
}

type post struct {
	title    string
	content  string
	status   string
	category string
	tags     []string
	author   string
}

var posts = []post{
	{
		title:    "Getting Started with Django ORM",
		status:   db.StatusPublished,
		category: "Programming",
		tags:     []string{"Python", "Django", "Database"},
		author:   "admin",
		content: `Django's Object-Relational Mapping (ORM) is a powerful tool that allows you to interact with your database using Python code instead of raw SQL.

In this post, we'll explore the basics of the Django ORM and how to use it effectively in your projects.

## Key Features of Django ORM

Django ORM provides several key features that make database interactions simpler:

1. **Model Definition**: Define database tables as Python classes
2. **QuerySet API**: Intuitive interface for database queries
3. **Migrations**: Track and apply database schema changes
4. **Relationship Management**: Easily handle related data

## Basic Usage

Here's a simple example of how to retrieve data using the Django ORM:

` + "```python" + `
# Get all published posts
published_posts = Post.objects.filter(status='published')

# Get a specific post
post = Post.objects.get(id=1)

# Get related data
comments = post.comments.all()
` + "```" + `

In future posts, we'll dive deeper into more advanced ORM features like annotations, aggregations, and complex filtering.`,
	},
	{
		title:    "Understanding Django Model Relationships",
		status:   db.StatusPublished,
		category: "Programming",
		tags:     []string{"Python", "Django", "Database"},
		author:   "admin",
		content: `One of the most powerful features of Django's ORM is its ability to define and work with relationships between models.

## Types of Relationships

Django supports three main types of relationships:

### One-to-Many (ForeignKey)

The most common type of relationship. For example, a Post has many Comments:

` + "```python" + `
class Comment(models.Model):
    post = models.ForeignKey(Post, on_delete=models.CASCADE, related_name='comments')
` + "```" + `

### Many-to-Many

When records in one table can be related to multiple records in another table, and vice versa. For example, Posts and Tags:

` + "```python" + `
class Post(models.Model):
    tags = models.ManyToManyField(Tag, related_name='posts')
` + "```" + `

### One-to-One

When a record in one table corresponds to exactly one record in another table. For example, User and Profile:

` + "```python" + `
class Profile(models.Model):
    user = models.OneToOneField(User, on_delete=models.CASCADE)
` + "```" + `

## Working with Related Objects

Django makes it easy to navigate relationships in both directions:

` + "```python" + `
# Forward (following the relationship)
comments = post.comments.all()

# Backward (reverse relationship)
posts = tag.posts.all()
` + "```" + `

Understanding these relationships is crucial for designing effective data models and writing efficient queries.`,
	},
}

var comments = []string{
	"Great article! Thanks for sharing this information.",
	"I've been looking for this explanation for a while. Very helpful!",
	"Could you elaborate more on the second point? I'm a bit confused about it.",
	"Looking forward to more content like this. Very insightful!",
	"I think you missed mentioning an important aspect of this topic.",
	"This is exactly what I needed to understand. Thanks!",
	"I'm going to implement this in my project right away!",
	"Well explained with clear examples. Easy to follow.",
}
