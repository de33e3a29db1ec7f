package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single word", in: "Programming", want: "programming"},
		{name: "two words", in: "Data Science", want: "data-science"},
		{name: "camel case", in: "DevOps", want: "devops"},
		{name: "title", in: "Getting Started with Django ORM", want: "getting-started-with-django-orm"},
		{name: "punctuation", in: "What's new in Go 1.24?", want: "whats-new-in-go-124"},
		{name: "accents", in: "Publicación Española", want: "publicacion-espanola"},
		{name: "repeated separators", in: "  a -- b   c  ", want: "a-b-c"},
		{name: "edge dashes and underscores", in: "_-hello-_", want: "hello"},
		{name: "empty", in: "", want: ""},
		{name: "only symbols", in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMake_Deterministic(t *testing.T) {
	assert.Equal(t, Make("Web Development"), Make("Web Development"))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("web-development"))
	assert.True(t, Valid("snake_case"))
	assert.True(t, Valid(Make("Career")))
	assert.False(t, Valid(""))
	assert.False(t, Valid("Upper"))
	assert.False(t, Valid("with space"))
}
