package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddArticle_RoundTrip(t *testing.T) {
	c := newTestCore(t)
	ctx := context.Background()

	id, err := c.AddArticle(ctx, "Hello World", "Jane Doe", "2024-01-01", "text")
	require.NoError(t, err)
	assert.Equal(t, "Hello-World", id)

	article, err := c.GetArticle(ctx, "Hello-World")
	require.NoError(t, err)
	assert.Equal(t, "Hello World", article.Titre)
	assert.Equal(t, "Jane Doe", article.Auteur)
	assert.Equal(t, "2024-01-01", article.DatePublication)
	assert.Equal(t, "text", article.Contenu)
}

func TestAddArticle_DuplicateID(t *testing.T) {
	c := newTestCore(t)
	ctx := context.Background()

	_, err := c.AddArticle(ctx, "Hello World", "Jane Doe", "2024-01-01", "first")
	require.NoError(t, err)

	_, err = c.AddArticle(ctx, "Hello World", "John Smith", "2024-02-02", "second")
	require.ErrorIs(t, err, ErrDuplicateArticle)

	// The original article is untouched.
	article, err := c.GetArticle(ctx, "Hello-World")
	require.NoError(t, err)
	assert.Equal(t, "first", article.Contenu)
}

func TestGetArticle_NotFound(t *testing.T) {
	c := newTestCore(t)

	_, err := c.GetArticle(context.Background(), "missing")
	require.ErrorIs(t, err, NoRecordFound)
}

func TestGetLatestArticles_ExcludesFutureDated(t *testing.T) {
	c := newTestCore(t)
	ctx := context.Background()

	_, err := c.AddArticle(ctx, "Hello World", "Jane Doe", "2024-01-01", "text")
	require.NoError(t, err)
	_, err = c.AddArticle(ctx, "Hidden", "Jane Doe", "2099-01-01", "from the future")
	require.NoError(t, err)

	articles, err := c.GetLatestArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Hello-World", articles[0].ID)
}

func TestGetLatestArticles_CapsAtFive(t *testing.T) {
	c := newTestCore(t)
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		titre := fmt.Sprintf("Article %d", i)
		date := fmt.Sprintf("2024-01-%02d", i)
		_, err := c.AddArticle(ctx, titre, "Jane Doe", date, "text")
		require.NoError(t, err)
	}

	articles, err := c.GetLatestArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 5)

	// Newest first.
	assert.Equal(t, "Article-7", articles[0].ID)
	assert.Equal(t, "Article-3", articles[4].ID)
}

func TestSearchArticles(t *testing.T) {
	c := newTestCore(t)
	ctx := context.Background()

	_, err := c.AddArticle(ctx, "Hello World", "Jane Doe", "2024-01-01", "text")
	require.NoError(t, err)
	_, err = c.AddArticle(ctx, "Hidden", "Jane Doe", "2099-01-01", "ello in the body")
	require.NoError(t, err)
	_, err = c.AddArticle(ctx, "Other", "Jane Doe", "2024-01-02", "nothing to see")
	require.NoError(t, err)

	articles, err := c.SearchArticles(ctx, "ello")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Hello-World", articles[0].ID)
}

func TestSearchArticles_MatchesContent(t *testing.T) {
	c := newTestCore(t)
	ctx := context.Background()

	_, err := c.AddArticle(ctx, "Title only", "Jane Doe", "2024-01-01", "the needle is here")
	require.NoError(t, err)

	articles, err := c.SearchArticles(ctx, "needle")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Title-only", articles[0].ID)
}

func TestModifyArticle(t *testing.T) {
	c := newTestCore(t)
	ctx := context.Background()

	id, err := c.AddArticle(ctx, "Hello World", "Jane Doe", "2024-01-01", "text")
	require.NoError(t, err)

	require.NoError(t, c.ModifyArticle(ctx, id, "New title", "new body"))

	article, err := c.GetArticle(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New title", article.Titre)
	assert.Equal(t, "new body", article.Contenu)

	// The id and publication date are immutable.
	assert.Equal(t, "Hello-World", article.ID)
	assert.Equal(t, "2024-01-01", article.DatePublication)
}

func TestModifyArticle_NotFound(t *testing.T) {
	c := newTestCore(t)

	err := c.ModifyArticle(context.Background(), "missing", "titre", "contenu")
	require.ErrorIs(t, err, NoRecordFound)
}

func TestCreateArticleID(t *testing.T) {
	assert.Equal(t, "Hello-World", CreateArticleID("Hello World"))
	assert.Equal(t, "one-two-three", CreateArticleID("one two three"))
	assert.Equal(t, "NoSpaces", CreateArticleID("NoSpaces"))
}
