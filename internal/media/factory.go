package media

import (
	"context"
	"fmt"
)

type FactoryConfig struct {
	Driver     string // auto|local|s3
	PublicDir  string
	Cloudinary CloudinaryConfig
	S3         S3Config
}

func (c CloudinaryConfig) configured() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

func (c S3Config) configured() bool {
	return c.Region != "" && c.Bucket != "" && c.PublicBaseURL != ""
}

type FactoryResult struct {
	Driver string
	Sink   Sink
}

// New picks the sink: Cloudinary whenever its three credentials are set,
// S3 when selected and configured, local otherwise.
func New(ctx context.Context, cfg FactoryConfig) (FactoryResult, error) {
	if cfg.Cloudinary.configured() {
		c, err := NewCloudinary(cfg.Cloudinary)
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "cloudinary", Sink: c}, nil
	}

	switch cfg.Driver {
	case "s3":
		if !cfg.S3.configured() {
			return FactoryResult{}, fmt.Errorf("S3 config missing: S3_REGION, S3_BUCKET, S3_PUBLIC_BASE_URL required")
		}
		s, err := NewS3(ctx, cfg.S3)
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "s3", Sink: s}, nil
	case "", "auto", "local":
		return FactoryResult{Driver: "local", Sink: NewLocal(cfg.PublicDir)}, nil
	default:
		return FactoryResult{}, fmt.Errorf("unknown media driver: %s", cfg.Driver)
	}
}
