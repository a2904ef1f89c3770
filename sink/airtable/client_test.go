package airtable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/poiesic/qaforge/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvBaseID, "")
	t.Setenv(EnvTableName, "")
	t.Setenv(EnvTokenName, "")

	cfg := ConfigFromEnv()
	assert.Equal(t, DefaultBaseID, cfg.BaseID)
	assert.Equal(t, DefaultTableName, cfg.TableName)
	assert.Equal(t, DefaultTokenName, cfg.TokenName)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvBaseID, "appCustom")
	t.Setenv(EnvTableName, "pairs")
	t.Setenv(EnvTokenName, "AIRTABLE_TOKEN")

	cfg := ConfigFromEnv()
	assert.Equal(t, "appCustom", cfg.BaseID)
	assert.Equal(t, "pairs", cfg.TableName)
	assert.Equal(t, "AIRTABLE_TOKEN", cfg.TokenName)
}

func TestPut(t *testing.T) {
	t.Setenv("TEST_AIRTABLE_TOKEN", "tok-123")

	var gotPath, gotAuth string
	var gotBody createRecordRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := newClient(&Config{
		Endpoint:  server.URL,
		BaseID:    "appTest",
		TableName: "mention",
		TokenName: "TEST_AIRTABLE_TOKEN",
	})
	require.NoError(t, err)
	defer client.Close()

	err = client.Put(context.Background(), core.QAPair{Question: "Q1", Answer: "A1"})
	require.NoError(t, err)

	assert.Equal(t, "/appTest/mention", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, core.UploadRecord{"Question": "Q1", "Answer": "A1"}, gotBody.Fields)
}

func TestPutServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := newClient(&Config{
		Endpoint:  server.URL,
		BaseID:    "appTest",
		TableName: "mention",
		TokenName: "TEST_AIRTABLE_TOKEN",
	})
	require.NoError(t, err)
	defer client.Close()

	err = client.Put(context.Background(), core.QAPair{Question: "Q1", Answer: "A1"})
	assert.ErrorContains(t, err, "429")
}

func TestNewClientValidatesConfig(t *testing.T) {
	_, err := newClient(&Config{TableName: "mention", TokenName: "github"})
	assert.Error(t, err)
}
