package imagestore

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/config"
	"innkeeper/internal/pkg/errs"
)

// Client uploads room photos to a Cloudinary-compatible media service
// using signed form posts. Every call is bounded by the configured
// timeout.
type Client struct {
	cfg   config.ImageStoreConfig
	http  *http.Client
	clock clock.Clock
}

func NewClient(cfg config.ImageStoreConfig, clk clock.Clock) *Client {
	return &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: cfg.Timeout},
		clock: clk,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) Upload(ctx context.Context, data []byte, name string) (string, error) {
	publicID := name
	if c.cfg.Folder != "" {
		publicID = c.cfg.Folder + "/" + name
	}

	timestamp := fmt.Sprintf("%d", c.clock.Now().Unix())

	form := url.Values{}
	form.Add("file", "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(data))
	form.Add("api_key", c.cfg.APIKey)
	form.Add("public_id", publicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", c.sign("public_id="+publicID+"&timestamp="+timestamp))

	body, err := c.post(ctx, c.cfg.BaseURL+"/image/upload", form)
	if err != nil {
		return "", err
	}

	var res uploadResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return "", errs.Wrap(err, "failed to parse image store response")
	}
	if res.Error.Message != "" {
		return "", errs.New("image store rejected upload: " + res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", errs.New("image store returned no url")
	}
	return res.SecureURL, nil
}

func (c *Client) Delete(ctx context.Context, imageURL string) error {
	publicID := publicIDFromURL(imageURL)
	if publicID == "" {
		return errs.New("cannot derive public id from image url")
	}

	timestamp := fmt.Sprintf("%d", c.clock.Now().Unix())

	form := url.Values{}
	form.Add("api_key", c.cfg.APIKey)
	form.Add("public_id", publicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", c.sign("public_id="+publicID+"&timestamp="+timestamp))

	body, err := c.post(ctx, c.cfg.BaseURL+"/image/destroy", form)
	if err != nil {
		return err
	}

	var res struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return errs.Wrap(err, "failed to parse image store response")
	}
	if res.Result != "ok" && res.Result != "not found" {
		return errs.New("image store delete failed: " + res.Result)
	}
	return nil
}

func (c *Client) post(ctx context.Context, endpoint string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build image store request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "image store request failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read image store response")
	}
	if res.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("image store returned status %d", res.StatusCode))
	}
	return body, nil
}

func (c *Client) sign(payload string) string {
	return fmt.Sprintf("%x", sha1.Sum([]byte(payload+c.cfg.APISecret)))
}

// publicIDFromURL strips the delivery prefix and version segment from a
// stored URL, e.g. .../upload/v123/rooms/abc.jpg -> rooms/abc.
func publicIDFromURL(imageURL string) string {
	i := strings.Index(imageURL, "/upload/")
	if i == -1 {
		return ""
	}
	rest := imageURL[i+len("/upload/"):]
	if j := strings.Index(rest, "/"); j != -1 && strings.HasPrefix(rest, "v") {
		rest = rest[j+1:]
	}
	return strings.TrimSuffix(rest, path.Ext(rest))
}
