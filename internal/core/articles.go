package core

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/mdobak/go-xerrors"
	"github.com/poirierc/gazette/models"
)

var ErrDuplicateArticle = xerrors.Message("Duplicate article id")

// latestArticlesLimit caps the public listings (front page and search).
const latestArticlesLimit = 5

func (c *Core) GetArticlesOrderedByDate(ctx context.Context) ([]*models.Article, error) {
	const selectSQL = `
		SELECT id, titre, auteur, date_publication, contenu
		FROM Articles
		ORDER BY date_publication DESC
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var articles []*models.Article
	if err := c.db.SelectContext(ctx, &articles, selectSQL); err != nil {
		return nil, xerrors.New(err)
	}
	return articles, nil
}

func (c *Core) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	const selectSQL = `
		SELECT id, titre, auteur, date_publication, contenu
		FROM Articles
		WHERE id = ?
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	article := &models.Article{}
	if err := c.db.GetContext(ctx, article, selectSQL, id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(NoRecordFound)
		default:
			return nil, xerrors.New(err)
		}
	}
	return article, nil
}

// GetLatestArticles returns the five most recent articles whose publication
// date is not in the future.
func (c *Core) GetLatestArticles(ctx context.Context) ([]*models.Article, error) {
	const selectSQL = `
		SELECT id, titre, auteur, date_publication, contenu
		FROM Articles
		WHERE date_publication <= ?
		ORDER BY date_publication DESC
		LIMIT ?
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var articles []*models.Article
	if err := c.db.SelectContext(ctx, &articles, selectSQL, today(), latestArticlesLimit); err != nil {
		return nil, xerrors.New(err)
	}
	return articles, nil
}

// SearchArticles applies the same window as GetLatestArticles, filtered on a
// substring match against the title or the body. Case sensitivity is
// whatever sqlite LIKE does.
func (c *Core) SearchArticles(ctx context.Context, recherche string) ([]*models.Article, error) {
	const selectSQL = `
		SELECT id, titre, auteur, date_publication, contenu
		FROM Articles
		WHERE (titre LIKE ? OR contenu LIKE ?) AND date_publication <= ?
		ORDER BY date_publication DESC
		LIMIT ?
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	pattern := "%" + recherche + "%"
	var articles []*models.Article
	if err := c.db.SelectContext(ctx, &articles, selectSQL, pattern, pattern, today(), latestArticlesLimit); err != nil {
		return nil, xerrors.New(err)
	}
	return articles, nil
}

// AddArticle inserts a new article and returns its id, which is the title
// with spaces replaced by hyphens. The id is the primary key: a second
// article whose title produces the same id fails with ErrDuplicateArticle.
func (c *Core) AddArticle(ctx context.Context, titre, auteur, datePublication, contenu string) (string, error) {
	const insertSQL = `
		INSERT INTO Articles (id, titre, auteur, date_publication, contenu)
		VALUES (?, ?, ?, ?, ?)
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	id := CreateArticleID(titre)
	if _, err := c.db.ExecContext(ctx, insertSQL, id, titre, auteur, datePublication, contenu); err != nil {
		switch {
		case strings.Contains(err.Error(), "UNIQUE constraint failed: Articles.id"):
			return "", xerrors.New(ErrDuplicateArticle)
		default:
			return "", xerrors.New(err)
		}
	}

	c.log.Info("Article created", "id", id, "auteur", auteur)
	return id, nil
}

// ModifyArticle updates the title and body of an existing article. The id
// and publication date are immutable.
func (c *Core) ModifyArticle(ctx context.Context, id, titre, contenu string) error {
	const updateSQL = `
		UPDATE Articles
		SET titre = ?, contenu = ?
		WHERE id = ?
	`

	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	result, err := c.db.ExecContext(ctx, updateSQL, titre, contenu, id)
	if err != nil {
		return xerrors.New(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return xerrors.New(err)
	}
	if affected == 0 {
		return xerrors.New(NoRecordFound)
	}
	return nil
}

// CreateArticleID derives an article id from its title.
func CreateArticleID(titre string) string {
	return strings.ReplaceAll(titre, " ", "-")
}

func today() string {
	return time.Now().Format("2006-01-02")
}
