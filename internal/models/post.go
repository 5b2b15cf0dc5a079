package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Author is a two-shape value: a reference to a registered user's ID when
// the post author matched a username at creation time, or the raw submitted
// name for guest authors. Exactly one shape is populated.
type Author struct {
	UserID *uint  `gorm:"column:author_user_id;index" json:"-"`
	Name   string `gorm:"column:author_name" json:"-"`
}

// UserRef returns an Author referencing a registered user.
func UserRef(id uint) Author {
	return Author{UserID: &id}
}

// GuestAuthor returns an Author holding a raw guest name.
func GuestAuthor(name string) Author {
	return Author{Name: name}
}

// IsUserRef reports whether the author references a registered user.
func (a Author) IsUserRef() bool {
	return a.UserID != nil
}

// MarshalJSON emits a number for a user reference and a string for a guest
// name, matching the stored shape.
func (a Author) MarshalJSON() ([]byte, error) {
	if a.UserID != nil {
		return json.Marshal(*a.UserID)
	}
	return json.Marshal(a.Name)
}

// UnmarshalJSON accepts either shape: a number becomes a user reference,
// a string becomes a guest name.
func (a *Author) UnmarshalJSON(data []byte) error {
	var id uint
	if err := json.Unmarshal(data, &id); err == nil {
		a.UserID = &id
		a.Name = ""
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("author must be a user id or a name string: %w", err)
	}
	a.UserID = nil
	a.Name = name
	return nil
}

// StringList stores an ordered list of strings as a JSON column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
}

// Post represents a blog post. UpdatedAt is set once at creation and is
// deliberately not refreshed by updates; autoUpdateTime is disabled so GORM
// does not touch it either.
type Post struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Category    string     `gorm:"not null" json:"category"`
	Author      Author     `gorm:"embedded" json:"author"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	Images      StringList `gorm:"type:text" json:"images"`
	Keywords    string     `json:"keywords,omitempty"`
	Subtitle    string     `json:"subtitle,omitempty"`
	AuthorGmail string     `json:"authorGmail,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// LastModified returns the timestamp the sitemap should advertise for the
// post: updatedAt, falling back to createdAt when updatedAt is unset.
func (p *Post) LastModified() time.Time {
	if p.UpdatedAt.IsZero() {
		return p.CreatedAt
	}
	return p.UpdatedAt
}
