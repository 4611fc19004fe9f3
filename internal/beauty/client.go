// Package beauty talks to the external recommendation and virtual try-on
// services. Each edge takes a multipart-encoded photo plus an optional form
// field and answers with either a base64 image or a list of product records.
package beauty

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"robomua/aiysha-bot/internal/config"
	"robomua/aiysha-bot/internal/metrics"
	"robomua/aiysha-bot/internal/retry"
)

// Product is passed through from the recommendation service unmodified. The
// category-specific shade/style field varies per edge, so the raw record is
// kept alongside the fields every edge returns.
type Product struct {
	Company       string `json:"Company"`
	Price         string `json:"Price"`
	ProductURL    string `json:"ProductURL"`
	VideoTutorial string `json:"VideoTutorial"`

	Raw map[string]string `json:"-"`
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Company = raw["Company"]
	p.Price = raw["Price"]
	p.ProductURL = raw["ProductURL"]
	p.VideoTutorial = raw["VideoTutorial"]
	p.Raw = raw
	return nil
}

// Recommendations is the bounded result of one recommendation fetch: at most
// ten companies, at most ten products per company.
type Recommendations struct {
	CompanyNames    []string
	CompanyProducts map[string][]Product
}

const (
	maxCompanies          = 10
	maxProductsPerCompany = 10
)

type Client struct {
	services config.ServicesConfig
	http     *http.Client
	policy   retry.Policy
	log      *zap.Logger
}

func NewClient(services config.ServicesConfig, policy retry.Policy, log *zap.Logger) *Client {
	return &Client{
		services: services,
		http:     &http.Client{Timeout: 60 * time.Second},
		policy:   policy,
		log:      log,
	}
}

// RecsURL maps a product category to its recommendation edge. An unknown
// category is a programming error in the keyword table and is rejected.
func (c *Client) RecsURL(recType string) (string, error) {
	switch {
	case strings.Contains(recType, "foundation"):
		return c.services.FoundationRecs, nil
	case strings.Contains(recType, "skin tint"):
		return c.services.SkinTintRecs, nil
	case strings.Contains(recType, "concealer"):
		return c.services.ConcealerRecs, nil
	case strings.Contains(recType, "setting powder"):
		return c.services.SettingPowder, nil
	case strings.Contains(recType, "contour"):
		return c.services.ContourRecs, nil
	case strings.Contains(recType, "bronzer"):
		return c.services.BronzerRecs, nil
	case strings.Contains(recType, "shapewear"):
		return c.services.ShapeWearRecs, nil
	case strings.Contains(recType, "nude shoes"):
		return c.services.NudeShoesRecs, nil
	}
	return "", fmt.Errorf("no recommendation edge for category %q", recType)
}

// TryOnURL maps a try-on option to its transform edge.
func (c *Client) TryOnURL(vtoType string) (string, error) {
	switch {
	case strings.Contains(vtoType, "color try-on"):
		return c.services.HairColorTryOn, nil
	case strings.Contains(vtoType, "lip stick try-on"):
		return c.services.LipStickTryOn, nil
	case strings.Contains(vtoType, "lip liner try-on"):
		return c.services.LipLinerTryOn, nil
	}
	return "", fmt.Errorf("no try-on edge for option %q", vtoType)
}

func (c *Client) HairStyleURL() string {
	return c.services.HairStyleTryOn
}

// FetchTryOnImage posts the user's photo with a form field (color hex code or
// style code) and writes the transformed image to a temp .jpeg file, returning
// its path.
func (c *Client) FetchTryOnImage(ctx context.Context, url, field, value, photoPath string) (string, error) {
	var outPath string
	err := c.policy.Do(ctx, func() error {
		start := time.Now()
		defer func() {
			metrics.BeautyServiceLatency.Observe(float64(time.Since(start).Milliseconds()))
		}()

		body, contentType, err := multipartPhoto(photoPath, map[string]string{field: value})
		if err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", contentType)

		resp, err := c.http.Do(req)
		if err != nil {
			c.log.Error("try-on request failed", zap.String("url", url), zap.Error(err))
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("try-on edge returned status %d", resp.StatusCode)
		}

		var payload struct {
			B64 string `json:"b64"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return fmt.Errorf("error decoding try-on response: %w", err)
		}
		if payload.B64 == "" {
			return fmt.Errorf("no image data found")
		}
		img, err := base64.StdEncoding.DecodeString(payload.B64)
		if err != nil {
			return fmt.Errorf("error decoding try-on image: %w", err)
		}

		tmp, err := os.CreateTemp("", "vto-*.jpeg")
		if err != nil {
			return err
		}
		defer tmp.Close()
		if _, err := tmp.Write(img); err != nil {
			os.Remove(tmp.Name())
			return err
		}
		outPath = tmp.Name()
		return nil
	})
	if err != nil {
		return "", err
	}
	return outPath, nil
}

// FetchRecommendations posts the user's photo to a recommendation edge and
// groups the returned products by company, capped at ten companies with ten
// products each even when the upstream returns more.
func (c *Client) FetchRecommendations(ctx context.Context, url, photoPath string) (*Recommendations, error) {
	var recs *Recommendations
	err := c.policy.Do(ctx, func() error {
		start := time.Now()
		defer func() {
			metrics.BeautyServiceLatency.Observe(float64(time.Since(start).Milliseconds()))
		}()

		body, contentType, err := multipartPhoto(photoPath, nil)
		if err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", contentType)

		resp, err := c.http.Do(req)
		if err != nil {
			c.log.Error("recommendation request failed", zap.String("url", url), zap.Error(err))
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("recommendation edge returned status %d", resp.StatusCode)
		}

		var products []Product
		if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
			return fmt.Errorf("error decoding recommendations: %w", err)
		}
		if len(products) == 0 {
			return fmt.Errorf("no product recommendations data found")
		}

		out := &Recommendations{CompanyProducts: make(map[string][]Product)}
		for _, p := range products {
			company := strings.ToLower(p.Company)
			if _, seen := out.CompanyProducts[company]; !seen {
				if len(out.CompanyNames) >= maxCompanies {
					continue
				}
				out.CompanyNames = append(out.CompanyNames, company)
			}
			if len(out.CompanyProducts[company]) < maxProductsPerCompany {
				out.CompanyProducts[company] = append(out.CompanyProducts[company], p)
			}
		}
		recs = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func multipartPhoto(photoPath string, fields map[string]string) (io.Reader, string, error) {
	f, err := os.Open(photoPath)
	if err != nil {
		return nil, "", fmt.Errorf("error opening photo: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	part, err := w.CreateFormFile("file", "image.jpeg")
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
