// package export writes materialized result sets as csv objects into a
// cloudstorage store, a local directory by default, or a gcs bucket so
// reports can land directly in cloud storage.
package export

import (
	"fmt"

	"github.com/lytics/cloudstorage"
	"github.com/lytics/cloudstorage/google"
	"github.com/lytics/cloudstorage/localfs"

	"github.com/benjiec/gbif-visuals-summary/models"
)

const (
	// DefaultOutputDir local directory reports land in when no store
	// is configured
	DefaultOutputDir = "data"

	gcsScope = "https://www.googleapis.com/auth/devstorage.read_write"
)

// NewStore builds the output store from config, nil config means the
// local data/ directory.
func NewStore(conf *models.StoreConfig) (cloudstorage.Store, error) {

	if conf == nil {
		conf = &models.StoreConfig{}
	}

	switch conf.Type {
	case "", "localfs":
		path := conf.Path
		if path == "" {
			path = DefaultOutputDir
		}
		return cloudstorage.NewStore(&cloudstorage.Config{
			Type:       localfs.StoreType,
			AuthMethod: localfs.AuthFileSystem,
			LocalFS:    path,
			TmpDir:     conf.TmpDir,
		})
	case "gcs":
		csc := &cloudstorage.Config{
			Type:    google.StoreType,
			Project: conf.Project,
			Bucket:  conf.Bucket,
			TmpDir:  conf.TmpDir,
			Scope:   gcsScope,
		}
		if conf.JwtFile != "" {
			csc.AuthMethod = google.AuthGoogleJWTKeySource
			csc.JwtFile = conf.JwtFile
		} else {
			csc.AuthMethod = google.AuthGCEDefaultOAuthToken
		}
		return cloudstorage.NewStore(csc)
	}
	return nil, fmt.Errorf("unknown output store type %q", conf.Type)
}
