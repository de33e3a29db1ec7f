package admin

import (
	"html/template"
	"strconv"
	"strings"
)

const (
	// EmptyValue is shown in place of a zero count.
	EmptyValue = "-"
	// NoImage is shown when a record has no image.
	NoImage = "No image"
)

var imageTmpl = template.Must(template.New("image").Parse(
	`<img src="{{.}}" width="50" height="50" style="object-fit: cover;" />`,
))

// User is the subset of account fields the admin displays.
type User struct {
	Username  string
	FirstName string
	LastName  string
}

// FullName joins first and last name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ArticleCount formats a related-article count, "-" when there are none.
func ArticleCount(count int) string {
	if count > 0 {
		return strconv.Itoa(count)
	}
	return EmptyValue
}

// DisplayName returns the full name when both first and last name are set,
// otherwise the username.
func DisplayName(u User) string {
	if strings.TrimSpace(u.FirstName) != "" && strings.TrimSpace(u.LastName) != "" {
		return u.FullName()
	}
	return u.Username
}

// ImageURL joins the media URL prefix with a stored image path.
func ImageURL(mediaURL, image string) string {
	if image == "" {
		return ""
	}
	if strings.Contains(image, "://") || strings.HasPrefix(image, "/") {
		return image
	}
	return strings.TrimSuffix(mediaURL, "/") + "/" + strings.TrimPrefix(image, "/")
}

// DisplayImage renders a thumbnail for image, or NoImage when it is empty.
func DisplayImage(mediaURL, image string) template.HTML {
	if image == "" {
		return template.HTML(NoImage)
	}

	var b strings.Builder
	if err := imageTmpl.Execute(&b, ImageURL(mediaURL, image)); err != nil {
		return template.HTML(NoImage)
	}

	return template.HTML(b.String())
}
