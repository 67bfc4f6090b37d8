package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-github/v50/github"
)

const listPageSize = 100

// ListLabels returns every label defined on the repository, following
// pagination.
func (c *Client) ListLabels(ctx context.Context, repo Repo) ([]Label, error) {
	opts := &github.ListOptions{PerPage: listPageSize}

	var all []Label
	for {
		labels, resp, err := c.github.Issues.ListLabels(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, classifyError(fmt.Sprintf("failed to fetch labels for %s", repo), resp, err)
		}
		for _, l := range labels {
			all = append(all, Label{
				Name:        l.GetName(),
				Color:       l.GetColor(),
				Description: l.GetDescription(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// DeleteLabel deletes a label by name.
func (c *Client) DeleteLabel(ctx context.Context, repo Repo, name string) error {
	// Names such as "Area: UI/UX" need escaping, so the request is built
	// here instead of going through IssuesService.DeleteLabel.
	u := fmt.Sprintf("repos/%s/%s/labels/%s",
		url.PathEscape(repo.Owner), url.PathEscape(repo.Name), url.PathEscape(name))

	req, err := c.github.NewRequest(http.MethodDelete, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request for %s: %w", name, err)
	}

	resp, err := c.github.Do(ctx, req, nil)
	return classifyError(fmt.Sprintf("failed to delete label %s", name), resp, err)
}

// CreateLabel creates a label.
func (c *Client) CreateLabel(ctx context.Context, repo Repo, label Label) error {
	_, resp, err := c.github.Issues.CreateLabel(ctx, repo.Owner, repo.Name, &github.Label{
		Name:        github.String(label.Name),
		Color:       github.String(label.Color),
		Description: github.String(label.Description),
	})
	return classifyError(fmt.Sprintf("failed to create label %s", label.Name), resp, err)
}
