// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package airtable implements the sink.Sink interface against the Airtable
// records REST API.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/poiesic/qaforge/core"
	"github.com/poiesic/qaforge/sink"
)

// Environment keys and fallback defaults for the destination table.
const (
	EnvBaseID    = "airtable_base_id"
	EnvTableName = "airtable_table_name"
	EnvTokenName = "airtable_token_name"

	DefaultBaseID    = "appmhvMGsMRPmuUWJ"
	DefaultTableName = "mention"
	DefaultTokenName = "github"
)

const (
	defaultEndpoint = "https://api.airtable.com/v0"
	defaultTimeout  = 30 * time.Second
)

// Config holds the destination table settings.
type Config struct {
	// Endpoint is the API base URL. Defaults to the hosted Airtable API.
	Endpoint string

	// BaseID identifies the Airtable base (the store).
	BaseID string

	// TableName identifies the table within the base.
	TableName string

	// TokenName is the name of the environment variable holding the API
	// token. The token itself is read at upload time, not at construction.
	TokenName string
}

// ConfigFromEnv reads destination settings from the environment, applying
// the documented fallback defaults for anything unset.
func ConfigFromEnv() *Config {
	return &Config{
		BaseID:    envOr(EnvBaseID, DefaultBaseID),
		TableName: envOr(EnvTableName, DefaultTableName),
		TokenName: envOr(EnvTokenName, DefaultTokenName),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Validate checks that the configuration is complete.
func (c *Config) Validate() error {
	if c.BaseID == "" {
		return errors.New("airtable config: BaseID is required")
	}
	if c.TableName == "" {
		return errors.New("airtable config: TableName is required")
	}
	if c.TokenName == "" {
		return errors.New("airtable config: TokenName is required")
	}
	return nil
}

// Client uploads pair records to an Airtable table.
type Client struct {
	cfg  *Config
	http *http.Client
}

var _ sink.Sink = (*Client)(nil)

// NewClient creates a client for the configured table.
//
// Returns sink.Sink interface to enforce abstraction.
func NewClient(cfg *Config) (sink.Sink, error) {
	return newClient(cfg)
}

// newClient is an internal constructor that returns the concrete type.
func newClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = ConfigFromEnv()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// createRecordRequest is the wire shape of a record creation call.
type createRecordRequest struct {
	Fields core.UploadRecord `json:"fields"`
}

// Put creates one record in the destination table. The auth token is read
// from the environment on every call so rotated tokens take effect without a
// restart.
func (c *Client) Put(ctx context.Context, pair core.QAPair) error {
	body, err := json.Marshal(createRecordRequest{Fields: pair.UploadRecord()})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/%s/%s", c.cfg.Endpoint, c.cfg.BaseID, url.PathEscape(c.cfg.TableName))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+os.Getenv(c.cfg.TokenName))

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("create record: status %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
