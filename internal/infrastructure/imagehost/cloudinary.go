package imagehost

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	uploadEndpoint = "https://api.cloudinary.com/v1_1/%s/image/upload"
	deliveryBase   = "https://res.cloudinary.com/%s/image/upload/%s/v%d/%s.%s"
	// avatarTransform crops uploaded images to a 250x250 fill, matching the
	// avatar rendering the web client expects.
	avatarTransform = "c_fill,h_250,w_250"
)

// Cloudinary uploads avatar images to the Cloudinary REST API and returns a
// transformed delivery URL. It is the concrete ports.ImageHost collaborator.
type Cloudinary struct {
	client    *resty.Client
	uploadURL string
	cloudName string
	apiKey    string
	apiSecret string
	now       func() time.Time
}

// Config carries the Cloudinary account credentials.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
}

func NewCloudinary(cfg Config) *Cloudinary {
	return &Cloudinary{
		client:    resty.New().SetTimeout(30 * time.Second),
		uploadURL: fmt.Sprintf(uploadEndpoint, cfg.CloudName),
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		now:       time.Now,
	}
}

type uploadResponse struct {
	PublicID string `json:"public_id"`
	Version  int64  `json:"version"`
	Format   string `json:"format"`
	Error    struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the image as a signed multipart upload under publicID,
// overwriting any previous version, and returns the 250x250 delivery URL.
func (c *Cloudinary) Upload(ctx context.Context, image io.Reader, publicID string) (string, error) {
	timestamp := c.now().Unix()

	var result uploadResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("file", "avatar", image).
		SetFormData(map[string]string{
			"api_key":   c.apiKey,
			"public_id": publicID,
			"overwrite": "true",
			"timestamp": strconv.FormatInt(timestamp, 10),
			"signature": c.sign(publicID, timestamp),
		}).
		SetResult(&result).
		SetError(&result).
		Post(c.uploadURL)
	if err != nil {
		return "", fmt.Errorf("image upload: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("image upload: %s: %s", resp.Status(), result.Error.Message)
	}

	return fmt.Sprintf(deliveryBase, c.cloudName, avatarTransform, result.Version, result.PublicID, result.Format), nil
}

// sign computes the Cloudinary request signature: the SHA-1 of the
// alphabetically ordered upload parameters concatenated with the API secret.
func (c *Cloudinary) sign(publicID string, timestamp int64) string {
	payload := fmt.Sprintf("overwrite=true&public_id=%s&timestamp=%d%s", publicID, timestamp, c.apiSecret)
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
