// Package sitemap renders the XML sitemap for the blog: a fixed set of
// static routes plus one entry per post, addressed by slugified title.
package sitemap

import (
	"encoding/xml"
	"strings"
	"time"

	"inkwell/internal/models"
)

// staticRoutes are always present in the sitemap, independent of content.
var staticRoutes = []string{
	"/",
	"/blog",
	"/about",
	"/contact",
	"/feedback",
}

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// Builder renders sitemaps rooted at a fixed site base URL.
type Builder struct {
	baseURL string
}

// NewBuilder returns a Builder for the given base URL. A trailing slash on
// the base URL is tolerated.
func NewBuilder(baseURL string) *Builder {
	return &Builder{baseURL: strings.TrimRight(baseURL, "/")}
}

// Build renders the sitemap XML document for the given posts. Post entries
// use updatedAt falling back to createdAt as lastmod.
func (b *Builder) Build(posts []models.Post) (string, error) {
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	today := time.Now().Format("2006-01-02")
	for _, route := range staticRoutes {
		set.URLs = append(set.URLs, urlEntry{
			Loc:     b.baseURL + route,
			LastMod: today,
		})
	}

	for i := range posts {
		post := &posts[i]
		slug := Slugify(post.Title)
		if slug == "" {
			continue
		}
		set.URLs = append(set.URLs, urlEntry{
			Loc:     b.baseURL + "/post/" + slug,
			LastMod: post.LastModified().Format("2006-01-02"),
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(out), nil
}

// Slugify lowercases the title and collapses every run of non-alphanumeric
// characters into a single hyphen, trimming leading and trailing hyphens.
func Slugify(title string) string {
	var sb strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen && sb.Len() > 0 {
			sb.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(sb.String(), "-")
}
