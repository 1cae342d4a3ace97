/*
Copyright 2025 Pawprint Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pawprint

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/pawprint-hq/pawprint/config"
	"github.com/pawprint-hq/pawprint/internal/request"
)

// PetfinderClient searches the Petfinder upstream for adoptable animals.
// The OAuth token is fetched with the client-credentials grant and
// cached until shortly before expiry.
type PetfinderClient struct {
	cfg config.PetfinderConfig

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewPetfinderClient(cfg config.PetfinderConfig) *PetfinderClient {
	return &PetfinderClient{cfg: cfg}
}

// AnimalSearchQuery carries the supported upstream search filters; zero
// values are omitted from the request.
type AnimalSearchQuery struct {
	Type     string `form:"type"`
	Breed    string `form:"breed"`
	Size     string `form:"size"`
	Gender   string `form:"gender"`
	Age      string `form:"age"`
	Location string `form:"location"`
	Page     string `form:"page"`
	Limit    string `form:"limit"`
}

// AnimalSearchResult is the upstream response, passed through with light
// normalization: animals and pagination only.
type AnimalSearchResult struct {
	Animals    []map[string]interface{} `json:"animals"`
	Pagination map[string]interface{}   `json:"pagination"`
}

func (c *PetfinderClient) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	payload, err := request.ToJsonReq(map[string]string{
		"grant_type":    "client_credentials",
		"client_id":     c.cfg.ClientID,
		"client_secret": c.cfg.ClientSecret,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL+"/oauth2/token", payload)
	if err != nil {
		return "", err
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if _, err := request.Call(req, &resp); err != nil {
		return "", err
	}

	c.token = resp.AccessToken
	// renew a minute early so in-flight searches never carry a stale token
	c.tokenExpiry = time.Now().Add(time.Duration(resp.ExpiresIn-60) * time.Second)
	return c.token, nil
}

// Search queries the upstream animal index with the provided filters.
func (c *PetfinderClient) Search(ctx context.Context, query AnimalSearchQuery) (*AnimalSearchResult, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	for key, value := range map[string]string{
		"type":     query.Type,
		"breed":    query.Breed,
		"size":     query.Size,
		"gender":   query.Gender,
		"age":      query.Age,
		"location": query.Location,
		"page":     query.Page,
		"limit":    query.Limit,
	} {
		if value != "" {
			params.Set(key, value)
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.cfg.BaseURL+"/animals?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var result AnimalSearchResult
	if _, err := request.Call(req, &result); err != nil {
		return nil, err
	}
	if result.Animals == nil {
		result.Animals = []map[string]interface{}{}
	}
	if result.Pagination == nil {
		result.Pagination = map[string]interface{}{}
	}
	return &result, nil
}
