package model

// Backend defaults applied when a post is created without them.
const (
	DefaultBlogAuthor   = "Rushabh Ventures Team"
	DefaultBlogReadTime = "5 min read"
)

// BlogPost is a published article. Slug, not ID, addresses a post in the admin API.
type BlogPost struct {
	ID       string `json:"id"`
	Slug     string `json:"slug" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Image    string `json:"image"`
	ReadTime string `json:"read_time"`
	Date     string `json:"date"`
}

// BlogPostInput is the body of POST /api/admin/blog and PUT /api/admin/blog/{slug}.
// The admin editor requires Title, Slug, Content and Category before submitting.
type BlogPostInput struct {
	Slug     string `json:"slug" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content" validate:"required"`
	Author   string `json:"author,omitempty"`
	Category string `json:"category" validate:"required"`
	Image    string `json:"image"`
	ReadTime string `json:"read_time,omitempty"`
}

// Input converts a stored post back into an editable input.
func (p BlogPost) Input() BlogPostInput {
	return BlogPostInput{
		Slug:     p.Slug,
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Content:  p.Content,
		Author:   p.Author,
		Category: p.Category,
		Image:    p.Image,
		ReadTime: p.ReadTime,
	}
}
