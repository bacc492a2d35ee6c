package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"fitoapteka.kz/app/internal/shared/apperr"
)

type Service struct {
	sink Sink
}

func NewService(sink Sink) *Service { return &Service{sink: sink} }

// Upload checks the declared type, then reads at most MaxBytes+1 bytes of
// the body and stores it. Failures other than validation and a missing URL
// are reported as upload_failed.
func (s *Service) Upload(ctx context.Context, f *File) (Result, error) {
	if f == nil || f.Body == nil {
		return Result{}, apperr.InvalidErr("file_required", nil)
	}
	if err := ValidateType(f.ContentType); err != nil {
		return Result{}, err
	}

	data, err := io.ReadAll(io.LimitReader(f.Body, MaxBytes+1))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return Result{}, tooLarge()
		}
		return Result{}, apperr.InvalidErr("malformed_upload", nil)
	}
	if len(data) > MaxBytes {
		return Result{}, tooLarge()
	}

	res, err := s.sink.Put(ctx, bytes.NewReader(data), PutInput{
		Filename:    f.Filename,
		ContentType: strings.TrimSpace(f.ContentType),
		Size:        int64(len(data)),
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return Result{}, err
		}
		return Result{}, apperr.InternalErr("upload_failed", err)
	}
	return res, nil
}
