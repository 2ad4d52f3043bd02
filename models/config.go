package models

import (
	"os"

	"github.com/lytics/confl"
)

// LoadConfigFromFile Read a Confl formatted config file from disk
func LoadConfigFromFile(filename string) (*Config, error) {
	var c Config
	confBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if _, err = confl.Decode(os.ExpandEnv(string(confBytes)), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadConfig load a confl formatted config from string (assumes came
//  from file or passed in)
func LoadConfig(conf string) (*Config, error) {
	var c Config
	if _, err := confl.Decode(os.ExpandEnv(conf), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

type (
	// Config for the stats exporter made up of blocks
	// 1) warehouse session (project, key file)
	// 2) occurrence table the catalog runs against
	// 3) output store the csv files land in
	Config struct {
		LogLevel string       `json:"log_level"` // [debug,info,warn,error]
		Project  string       `json:"project"`   // google cloud project id
		KeyFile  string       `json:"key_file"`  // service account key file path
		Table    string       `json:"table"`     // occurrence table override
		Output   *StoreConfig `json:"output"`    // where the csv files go
	}

	// StoreConfig selects the output store for report files,
	// local directory by default, optionally a gcs bucket
	StoreConfig struct {
		Type    string `json:"type"`     // [localfs,gcs]
		Path    string `json:"path"`     // localfs root directory
		TmpDir  string `json:"tmpdir"`   // store write cache
		Project string `json:"project"`  // gcs project
		Bucket  string `json:"bucket"`   // gcs bucket
		JwtFile string `json:"jwt_file"` // gcs jwt key file
	}
)
