// Package index parle au store de documents (API HTTP type Elasticsearch) :
// bulk write NDJSON des fragments, et purge des fragments d'une vidéo.
// Le reste du pipeline ne dépend que de l'interface, pas du client concret.
package index

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultIndexName : index des fragments de sous-titres.
	DefaultIndexName = "ta_subtitle"

	defaultTimeout = 30 * time.Second
	userAgent      = "subalign/1.0"
)

// Interface est le contrat consommé par l'app. Un fake suffit pour les tests.
type Interface interface {
	// Bulk poste un corps NDJSON (paires action+document) sur _bulk.
	Bulk(ctx context.Context, body []byte) error
	// DeleteVideo supprime tous les fragments indexés d'une vidéo.
	DeleteVideo(ctx context.Context, youtubeID string) error
}

// Client est l'implémentation HTTP.
type Client struct {
	baseURL   string
	indexName string
	username  string
	password  string
	hc        *http.Client
}

// New construit un Client. baseURL est l'URL racine du store
// (ex: "http://localhost:9200") ; indexName vide -> DefaultIndexName ;
// username/password vides -> pas d'authentification.
func New(baseURL, indexName, username, password string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("index: url du store manquante")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("index: url invalide %q: %w", baseURL, err)
	}
	if indexName == "" {
		indexName = DefaultIndexName
	}
	return &Client{
		baseURL:   baseURL,
		indexName: indexName,
		username:  username,
		password:  password,
		hc:        &http.Client{Timeout: defaultTimeout},
	}, nil
}

// IndexName renvoie le nom d'index effectif (utile pour BulkBody).
func (c *Client) IndexName() string {
	return c.indexName
}

// Bulk poste le corps NDJSON sur /_bulk. Un corps vide est un no-op.
func (c *Client) Bulk(ctx context.Context, body []byte) error {
	if len(body) == 0 {
		return nil
	}
	return c.post(ctx, "/_bulk", "application/x-ndjson", body)
}

// DeleteVideo envoie un delete_by_query sur l'index des fragments,
// filtré par youtube_id.
func (c *Client) DeleteVideo(ctx context.Context, youtubeID string) error {
	query := map[string]any{
		"query": map[string]any{
			"term": map[string]any{
				"youtube_id": map[string]any{"value": youtubeID},
			},
		},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return fmt.Errorf("index: marshal delete query: %w", err)
	}
	path := "/" + c.indexName + "/_delete_by_query"
	return c.post(ctx, path, "application/json", body)
}

func (c *Client) post(ctx context.Context, path, contentType string, body []byte) error {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("index: new request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", userAgent)
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("index: request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// on remonte un extrait du corps, les erreurs du store y sont détaillées
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("index: %s returned %s: %s", path, resp.Status, strings.TrimSpace(string(snippet)))
	}
	return nil
}
