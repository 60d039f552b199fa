// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations accepted as strings like "30s".
type StructuredJSONConfig struct {
	App struct {
		Identity string `json:"identity"`
		RPCKey   string `json:"rpc_key"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Custodian struct {
		GPGBinary    string   `json:"gpg_binary"`
		GNUPGHome    string   `json:"gnupg_home"`
		SecureTmpDir string   `json:"secure_tmp_dir"`
		GPGTimeout   Duration `json:"gpg_timeout"`
	} `json:"custodian,omitempty"`

	Adapter struct {
		CustodianURL   string   `json:"custodian_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		StoreDir   string `json:"store_dir"`
		Versioning struct {
			Backend       string `json:"backend"`
			RepositoryURL string `json:"repository_url"`
			SSHKeyPath    string `json:"ssh_key_path"`
			Branch        string `json:"branch"`
			AuthorName    string `json:"author_name"`
			AuthorEmail   string `json:"author_email"`
		} `json:"versioning,omitempty"`
	} `json:"storage,omitempty"`

	Backup struct {
		S3Bucket    string   `json:"s3_bucket"`
		S3Prefix    string   `json:"s3_prefix"`
		S3Region    string   `json:"s3_region"`
		S3Endpoint  string   `json:"s3_endpoint"`
		S3AccessKey string   `json:"s3_access_key"`
		S3SecretKey string   `json:"s3_secret_key"`
		Interval    Duration `json:"interval"`
	} `json:"backup,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Identity: j.App.Identity,
			RPCKey:   j.App.RPCKey,
			LogLevel: j.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Custodian: Custodian{
			GPGBinary:    j.Custodian.GPGBinary,
			GNUPGHome:    j.Custodian.GNUPGHome,
			SecureTmpDir: j.Custodian.SecureTmpDir,
			GPGTimeout:   time.Duration(j.Custodian.GPGTimeout),
		},
		Adapter: Adapter{
			CustodianURL:   j.Adapter.CustodianURL,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Storage: Storage{
			StoreDir: j.Storage.StoreDir,
			Versioning: Versioning{
				Backend:       j.Storage.Versioning.Backend,
				RepositoryURL: j.Storage.Versioning.RepositoryURL,
				SSHKeyPath:    j.Storage.Versioning.SSHKeyPath,
				Branch:        j.Storage.Versioning.Branch,
				AuthorName:    j.Storage.Versioning.AuthorName,
				AuthorEmail:   j.Storage.Versioning.AuthorEmail,
			},
		},
		Backup: Backup{
			S3Bucket:    j.Backup.S3Bucket,
			S3Prefix:    j.Backup.S3Prefix,
			S3Region:    j.Backup.S3Region,
			S3Endpoint:  j.Backup.S3Endpoint,
			S3AccessKey: j.Backup.S3AccessKey,
			S3SecretKey: j.Backup.S3SecretKey,
			Interval:    time.Duration(j.Backup.Interval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
