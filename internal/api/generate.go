package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"docugen-cli/internal/model"
)

// SuggestOutline asks the backend for an ordered list of section titles for
// the topic. The endpoint has shipped with two response shapes — an
// `{"outline": [...]}` object and a bare array — so both are accepted.
// An empty or malformed outline yields ErrEmptyOutline.
func (c *Client) SuggestOutline(ctx context.Context, topic string, projectType model.ProjectType) ([]string, error) {
	payload := map[string]any{
		"topic":        topic,
		"project_type": projectType,
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode outline request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/generate/outline", bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("POST /generate/outline: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read outline response: %w", err)
	}
	outline := parseOutline(raw)
	if len(outline) == 0 {
		return nil, ErrEmptyOutline
	}
	return outline, nil
}

func parseOutline(raw []byte) []string {
	var obj struct {
		Outline []string `json:"outline"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && len(obj.Outline) > 0 {
		return cleanTitles(obj.Outline)
	}
	var arr []string
	if err := json.Unmarshal(raw, &arr); err == nil {
		return cleanTitles(arr)
	}
	return nil
}

func cleanTitles(titles []string) []string {
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

type refineRequest struct {
	SectionID int    `json:"section_id"`
	Prompt    string `json:"prompt"`
	Content   string `json:"content"`
}

// RefineSection rewrites one section's content per the user's instruction
// and returns the new content.
func (c *Client) RefineSection(ctx context.Context, sectionID int, prompt, content string) (string, error) {
	var out struct {
		Content string `json:"content"`
	}
	req := refineRequest{SectionID: sectionID, Prompt: prompt, Content: content}
	if err := c.doJSON(ctx, http.MethodPost, "/generate/refine", req, &out); err != nil {
		return "", err
	}
	return out.Content, nil
}
