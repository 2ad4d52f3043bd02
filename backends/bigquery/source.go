// package bigquery implements the warehouse session and query execution
// against google bigquery, where the public gbif occurrence data lives.
package bigquery

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/bigquery"
	u "github.com/araddon/gou"
	"google.golang.org/api/option"

	"github.com/benjiec/gbif-visuals-summary/models"
)

var gceProject = os.Getenv("GCEPROJECT")

// Source is the authenticated BigQuery session
// - created once per run from a service-account key file
// - read-only after creation, shared by every query in the run
type Source struct {
	project string
	client  *bigquery.Client
}

// NewSource creates an authenticated client.  An empty project falls
// back to $GCEPROJECT, an empty key file falls back to application
// default credentials.
func NewSource(ctx context.Context, keyFile, project string) (*Source, error) {

	if project == "" {
		project = gceProject
	}
	if project == "" {
		return nil, &models.AuthError{Err: fmt.Errorf("no project id given and no $GCEPROJECT")}
	}

	opts := []option.ClientOption{option.WithScopes(bigquery.Scope)}
	if keyFile != "" {
		opts = append(opts, option.WithCredentialsFile(keyFile))
	}

	client, err := bigquery.NewClient(ctx, project, opts...)
	if err != nil {
		u.Warnf("could not create bigquery client project=%q err=%v", project, err)
		return nil, &models.AuthError{Err: err}
	}
	return &Source{project: project, client: client}, nil
}

// Project the google cloud project this session bills against
func (m *Source) Project() string { return m.project }

func (m *Source) Close() error {
	if m.client == nil {
		return nil
	}
	return m.client.Close()
}
