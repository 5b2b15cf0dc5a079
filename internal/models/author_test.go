package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthor_MarshalBothShapes(t *testing.T) {
	ref := UserRef(42)
	b, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.Equal(t, "42", string(b))

	guest := GuestAuthor("Jane Doe")
	b, err = json.Marshal(guest)
	require.NoError(t, err)
	assert.Equal(t, `"Jane Doe"`, string(b))
}

func TestAuthor_UnmarshalBothShapes(t *testing.T) {
	var a Author
	require.NoError(t, json.Unmarshal([]byte("7"), &a))
	require.True(t, a.IsUserRef())
	assert.Equal(t, uint(7), *a.UserID)
	assert.Empty(t, a.Name)

	// Unmarshaling the other shape into the same value must switch it over.
	require.NoError(t, json.Unmarshal([]byte(`"guest writer"`), &a))
	assert.False(t, a.IsUserRef())
	assert.Equal(t, "guest writer", a.Name)
}

func TestAuthor_UnmarshalRejectsOtherTypes(t *testing.T) {
	var a Author
	assert.Error(t, json.Unmarshal([]byte(`{"id":1}`), &a))
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &a))
}

func TestPost_AuthorRoundTrip(t *testing.T) {
	post := Post{ID: 1, Title: "t", Author: GuestAuthor("Anonymous")}
	b, err := json.Marshal(post)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"author":"Anonymous"`)

	var decoded Post
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "Anonymous", decoded.Author.Name)
}

func TestStringList_ValueAndScan(t *testing.T) {
	l := StringList{"a.png", "b.png"}
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a.png","b.png"]`, v)

	var scanned StringList
	require.NoError(t, scanned.Scan(`["x","y"]`))
	assert.Equal(t, StringList{"x", "y"}, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)

	var nilList StringList
	v, err = nilList.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}
