package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DownloadMedia resolves an inbound media id to its signed URL and fetches the
// bytes into a temp .jpeg file, returning the file path. Both hops retry under
// the shared policy.
func (c *Client) DownloadMedia(ctx context.Context, mediaID, numberID string) (string, error) {
	lookupURL := fmt.Sprintf("%s/%s?phone_number_id=%s", c.mediaURL, mediaID, numberID)

	var path string
	err := c.policy.Do(ctx, func() error {
		signedURL, err := c.resolveMediaURL(ctx, lookupURL)
		if err != nil {
			c.log.Error("media lookup failed", zap.String("media_id", mediaID), zap.Error(err))
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, signedURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		resp, err := c.http.Do(req)
		if err != nil {
			c.log.Error("media download failed", zap.String("media_id", mediaID), zap.Error(err))
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("media download returned status %d", resp.StatusCode)
		}

		tmp, err := os.CreateTemp("", "media-*.jpeg")
		if err != nil {
			return err
		}
		defer tmp.Close()
		if _, err := io.Copy(tmp, resp.Body); err != nil {
			os.Remove(tmp.Name())
			return err
		}
		path = tmp.Name()
		return nil
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

func (c *Client) resolveMediaURL(ctx context.Context, lookupURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("media lookup returned status %d", resp.StatusCode)
	}
	var meta struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return "", fmt.Errorf("error decoding media lookup: %w", err)
	}
	if meta.URL == "" {
		return "", fmt.Errorf("media lookup returned no url")
	}
	return meta.URL, nil
}

// UploadMedia pushes a local file to the media endpoint and returns the media
// id assigned by the platform. The content type follows the file extension;
// anything but .jpeg or .pdf is a configuration error.
func (c *Client) UploadMedia(ctx context.Context, path, numberID string) (string, error) {
	uploadURL := fmt.Sprintf("%s/%s/media", c.mediaURL, numberID)

	var mediaID string
	err := c.policy.Do(ctx, func() error {
		body, contentType, err := mediaForm(path)
		if err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, body)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Content-Type", contentType)

		resp, err := c.http.Do(req)
		if err != nil {
			c.log.Error("media upload failed", zap.String("path", path), zap.Error(err))
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("media upload returned status %d", resp.StatusCode)
		}
		var out struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return fmt.Errorf("error decoding upload response: %w", err)
		}
		if out.ID == "" {
			return fmt.Errorf("media upload returned no id")
		}
		mediaID = out.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return mediaID, nil
}

func mediaForm(path string) (io.Reader, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("error opening media file: %w", err)
	}
	defer f.Close()

	var name, mime string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpeg":
		name, mime = "image.jpeg", "image/jpeg"
	case ".pdf":
		name, mime = "document.pdf", "application/pdf"
	default:
		return nil, "", fmt.Errorf("unsupported file extension: %s", filepath.Ext(path))
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("messaging_product", "whatsapp"); err != nil {
		return nil, "", err
	}
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, name))
	h.Set("Content-Type", mime)
	part, err := w.CreatePart(h)
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
