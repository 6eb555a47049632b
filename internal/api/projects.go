package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"docugen-cli/internal/model"
)

// ListProjects fetches all projects owned by the authenticated user.
func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var out []model.Project
	if err := c.doJSON(ctx, http.MethodGet, "/projects/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProject fetches one project with its sections.
func (c *Client) GetProject(ctx context.Context, id int) (model.Project, error) {
	var out model.Project
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil, &out)
	return out, err
}

type createSection struct {
	Title string `json:"title"`
}

type createProjectRequest struct {
	Title       string            `json:"title"`
	ProjectType model.ProjectType `json:"project_type"`
	Sections    []createSection   `json:"sections"`
}

// CreateProject creates a project whose sections are built from the given
// titles, in order. The backend assigns ids and generates initial content.
func (c *Client) CreateProject(ctx context.Context, title string, projectType model.ProjectType, sectionTitles []string) (model.Project, error) {
	req := createProjectRequest{
		Title:       title,
		ProjectType: projectType,
		Sections:    make([]createSection, 0, len(sectionTitles)),
	}
	for _, t := range sectionTitles {
		req.Sections = append(req.Sections, createSection{Title: t})
	}

	var out model.Project
	err := c.doJSON(ctx, http.MethodPost, "/projects/", req, &out)
	return out, err
}

// ExportProject downloads the rendered document as a binary payload.
func (c *Client) ExportProject(ctx context.Context, id int) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/projects/%d/export", id), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET /projects/%d/export: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read export payload: %w", err)
	}
	return data, nil
}
