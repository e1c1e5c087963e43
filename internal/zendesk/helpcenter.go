package zendesk

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hellausefulsoftware/zendesk-mcp/internal/logging"
	"github.com/hellausefulsoftware/zendesk-mcp/internal/models"
)

// The Help Center API is not covered by the vendor client's typed surface,
// so these calls ride its raw GET channel. Paths are relative to /api/v2.

type sectionPage struct {
	Sections []struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"sections"`
	NextPage *string `json:"next_page"`
}

type articlePage struct {
	Articles []struct {
		ID        int64     `json:"id"`
		Title     string    `json:"title"`
		Body      string    `json:"body"`
		UpdatedAt time.Time `json:"updated_at"`
		HTMLURL   string    `json:"html_url"`
	} `json:"articles"`
	NextPage *string `json:"next_page"`
}

// KnowledgeBase exports every help center section with its articles, keyed
// by section name.
func (c *Client) KnowledgeBase(ctx context.Context) (models.KnowledgeBase, error) {
	kb := models.KnowledgeBase{}

	for page := 1; ; page++ {
		body, err := c.api.Get(ctx, fmt.Sprintf("/help_center/sections.json?page=%d&per_page=100", page))
		if err != nil {
			return nil, fmt.Errorf("failed to list help center sections: %w", err)
		}

		var result sectionPage
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("failed to decode help center sections: %w", err)
		}

		for _, section := range result.Sections {
			articles, err := c.sectionArticles(ctx, section.ID)
			if err != nil {
				return nil, err
			}

			kb[section.Name] = models.Section{
				SectionID:   section.ID,
				Description: section.Description,
				Articles:    articles,
			}
		}

		if result.NextPage == nil {
			break
		}
	}

	logging.Debug("exported knowledge base", "sections", len(kb))
	return kb, nil
}

// sectionArticles fetches all articles belonging to one section.
func (c *Client) sectionArticles(ctx context.Context, sectionID int64) ([]models.Article, error) {
	var allArticles []models.Article

	for page := 1; ; page++ {
		body, err := c.api.Get(ctx, fmt.Sprintf("/help_center/sections/%d/articles.json?page=%d&per_page=100", sectionID, page))
		if err != nil {
			return nil, fmt.Errorf("failed to list articles for section %d: %w", sectionID, err)
		}

		var result articlePage
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("failed to decode articles for section %d: %w", sectionID, err)
		}

		for _, article := range result.Articles {
			allArticles = append(allArticles, models.Article{
				ID:        article.ID,
				Title:     article.Title,
				Body:      article.Body,
				UpdatedAt: article.UpdatedAt,
				URL:       article.HTMLURL,
			})
		}

		if result.NextPage == nil {
			break
		}
	}

	return allArticles, nil
}
