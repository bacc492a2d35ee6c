package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"fitoapteka.kz/app/internal/shared/apperr"
)

// eagerTransformation is the derived rendition served on the storefront:
// at most 1200px wide, automatic format and quality.
const eagerTransformation = "w_1200,c_limit,f_auto,q_auto:good"

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinary(cfg CloudinaryConfig) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &Cloudinary{cld: cld, folder: cfg.Folder}, nil
}

// Put uploads synchronously and returns the eager rendition URL, falling
// back to the original. The library posts to the auto resource type; only
// image parts reach here (see ValidateType).
func (c *Cloudinary) Put(ctx context.Context, r io.Reader, in PutInput) (Result, error) {
	res, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:     c.folder,
		Eager:      eagerTransformation,
		EagerAsync: api.Bool(false),
	})
	if err != nil {
		return Result{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res == nil {
		return Result{}, errors.New("cloudinary upload: empty response")
	}
	if res.Error.Message != "" {
		return Result{}, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}

	url := res.SecureURL
	if len(res.Eager) > 0 && res.Eager[0].SecureURL != "" {
		url = res.Eager[0].SecureURL
	}
	if url == "" {
		return Result{}, apperr.InternalErr("no_url_returned", nil)
	}
	return Result{URL: url, OriginalURL: res.SecureURL, Storage: StorageRemote}, nil
}

func (c *Cloudinary) String() string { return fmt.Sprintf("cloudinary(%s)", c.folder) }
