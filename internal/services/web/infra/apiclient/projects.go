package apiclient

import (
	"context"
	"net/url"
	"time"
)

// Project is a localization project record.
type Project struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	SourceLanguage string    `json:"source_language"`
	CreatedAt      time.Time `json:"created_at"`
}

// ProjectCreate carries the fields needed to create a project.
type ProjectCreate struct {
	Name           string `json:"name"`
	SourceLanguage string `json:"source_language"`
}

// DictionaryTerm is a glossary entry pinned for a project.
type DictionaryTerm struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// DictionaryTermCreate carries the fields needed to add a glossary entry.
type DictionaryTermCreate struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Projects lists the projects in a workspace.
func (c *Client) Projects(ctx context.Context, userID string, entitySlug string) ([]Project, error) {
	var projects []Project
	if err := c.get(ctx, entityPath(entitySlug, "/projects"), userID, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Project fetches a single project.
func (c *Client) Project(ctx context.Context, userID string, entitySlug string, projectID string) (Project, error) {
	var project Project
	err := c.get(ctx, entityPath(entitySlug, "/projects/"+url.PathEscape(projectID)), userID, &project)
	return project, err
}

// CreateProject creates a project in a workspace.
func (c *Client) CreateProject(ctx context.Context, userID string, entitySlug string, create ProjectCreate) (Project, error) {
	var project Project
	err := c.post(ctx, entityPath(entitySlug, "/projects"), userID, create, &project)
	return project, err
}

// DictionaryTerms lists the glossary entries for a project.
func (c *Client) DictionaryTerms(ctx context.Context, userID string, entitySlug string, projectID string) ([]DictionaryTerm, error) {
	var terms []DictionaryTerm
	err := c.get(ctx, entityPath(entitySlug, "/projects/"+url.PathEscape(projectID)+"/dictionary"), userID, &terms)
	if err != nil {
		return nil, err
	}
	return terms, nil
}

// AddDictionaryTerm adds a glossary entry to a project.
func (c *Client) AddDictionaryTerm(ctx context.Context, userID string, entitySlug string, projectID string, create DictionaryTermCreate) error {
	return c.post(ctx, entityPath(entitySlug, "/projects/"+url.PathEscape(projectID)+"/dictionary"), userID, create, nil)
}

// RemoveDictionaryTerm deletes a glossary entry from a project.
func (c *Client) RemoveDictionaryTerm(ctx context.Context, userID string, entitySlug string, projectID string, termID string) error {
	return c.delete(ctx, entityPath(entitySlug, "/projects/"+url.PathEscape(projectID)+"/dictionary/"+url.PathEscape(termID)), userID)
}
