package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitoapteka.kz/app/internal/shared/apperr"
)

func TestValidateType(t *testing.T) {
	err := ValidateType("application/pdf")
	assert.Equal(t, "only_images_allowed", apperr.PublicMessage(err))
	assert.Equal(t, 400, apperr.HTTPStatus(err))

	assert.Equal(t, "only_images_allowed", apperr.PublicMessage(ValidateType("")))
	assert.NoError(t, ValidateType(" image/png "))
}

func TestExtension(t *testing.T) {
	tests := []struct{ mime, name, want string }{
		{"image/png", "", "png"},
		{"image/png", "photo.JPG", "png"},
		{"image/jpeg", "x", "jpg"},
		{"image/svg+xml", "logo", "svg"},
		{"image/heic", "IMG_1.HEIC", "heic"},
		{"image/x-weird", "a.tar.g-z!", "gz"},
		{"image/x-weird", "noext", "jpg"},
		{"", "", "jpg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Extension(tt.mime, tt.name), tt.mime+" "+tt.name)
	}
}

func TestLocalPut(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir)
	l.now = func() time.Time { return time.UnixMilli(1700000000123) }

	res, err := l.Put(context.Background(), strings.NewReader("png-bytes"), PutInput{ContentType: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, StorageLocal, res.Storage)
	assert.Regexp(t, regexp.MustCompile(`^/uploads/products/1700000000123-[0-9a-f-]{36}\.png$`), res.URL)

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(res.URL, "/"))))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

type fakeSink struct {
	got PutInput
	res Result
	err error
}

func (f *fakeSink) Put(_ context.Context, r io.Reader, in PutInput) (Result, error) {
	f.got = in
	_, _ = io.Copy(io.Discard, r)
	return f.res, f.err
}

func pngFile(data []byte) *File {
	return &File{Filename: "x.png", ContentType: "image/png", Body: bytes.NewReader(data)}
}

func TestServiceUpload(t *testing.T) {
	sink := &fakeSink{res: Result{URL: "/u/x.png", Storage: StorageLocal}}
	s := NewService(sink)
	ctx := context.Background()

	res, err := s.Upload(ctx, pngFile([]byte("abc")))
	require.NoError(t, err)
	assert.Equal(t, "/u/x.png", res.URL)
	assert.Equal(t, PutInput{Filename: "x.png", ContentType: "image/png", Size: 3}, sink.got)

	sink.err = errors.New("disk full")
	_, err = s.Upload(ctx, pngFile([]byte("abc")))
	assert.Equal(t, "upload_failed", apperr.PublicMessage(err))
	assert.Equal(t, 500, apperr.HTTPStatus(err))

	sink.err = apperr.InternalErr("no_url_returned", nil)
	_, err = s.Upload(ctx, pngFile([]byte("abc")))
	assert.Equal(t, "no_url_returned", apperr.PublicMessage(err))

	_, err = s.Upload(ctx, nil)
	assert.Equal(t, "file_required", apperr.PublicMessage(err))
}

func TestServiceUploadSizeLimit(t *testing.T) {
	sink := &fakeSink{res: Result{URL: "/u/x.png"}}
	s := NewService(sink)
	ctx := context.Background()

	_, err := s.Upload(ctx, pngFile(make([]byte, MaxBytes)))
	require.NoError(t, err, "exactly the limit is accepted")
	assert.Equal(t, int64(MaxBytes), sink.got.Size)

	sink.got = PutInput{}
	_, err = s.Upload(ctx, pngFile(make([]byte, MaxBytes+1)))
	require.Error(t, err)
	assert.Equal(t, "file_too_large", apperr.PublicMessage(err))
	ae, _ := apperr.As(err)
	assert.Equal(t, "10", ae.Fields["maxMB"])
	assert.Equal(t, PutInput{}, sink.got, "nothing stored")
}

func TestServiceUploadChecksTypeBeforeSize(t *testing.T) {
	sink := &fakeSink{}
	s := NewService(sink)

	body := &countingReader{r: bytes.NewReader(make([]byte, 12<<20))}
	_, err := s.Upload(context.Background(), &File{Filename: "doc.pdf", ContentType: "application/pdf", Body: body})
	assert.Equal(t, "only_images_allowed", apperr.PublicMessage(err))
	assert.Zero(t, body.n, "body not read")
}

type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}

func newTestCloudinary(t *testing.T, body string) *Cloudinary {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/auto/upload", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "fitoapteka/products", r.FormValue("folder"))
		assert.Equal(t, eagerTransformation, r.FormValue("eager"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := NewCloudinary(CloudinaryConfig{CloudName: "demo", APIKey: "key", APISecret: "secret", Folder: "fitoapteka/products"})
	require.NoError(t, err)
	c.cld.Upload.Config.API.UploadPrefix = srv.URL
	return c
}

func TestCloudinaryPut(t *testing.T) {
	c := newTestCloudinary(t, `{"secure_url":"https://res/orig.jpg","eager":[{"secure_url":"https://res/w1200.jpg"}]}`)
	res, err := c.Put(context.Background(), strings.NewReader("img"), PutInput{Filename: "a.jpg", ContentType: "image/jpeg"})
	require.NoError(t, err)
	assert.Equal(t, Result{URL: "https://res/w1200.jpg", OriginalURL: "https://res/orig.jpg", Storage: StorageRemote}, res)
}

func TestCloudinaryPutFallsBackToOriginal(t *testing.T) {
	c := newTestCloudinary(t, `{"secure_url":"https://res/orig.jpg"}`)
	res, err := c.Put(context.Background(), strings.NewReader("img"), PutInput{})
	require.NoError(t, err)
	assert.Equal(t, "https://res/orig.jpg", res.URL)
}

func TestCloudinaryPutNoURL(t *testing.T) {
	c := newTestCloudinary(t, `{}`)
	_, err := c.Put(context.Background(), strings.NewReader("img"), PutInput{})
	assert.Equal(t, "no_url_returned", apperr.PublicMessage(err))
}

type fakeS3 struct{ in *s3.PutObjectInput }

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	return &s3.PutObjectOutput{}, nil
}

func TestS3Put(t *testing.T) {
	client := &fakeS3{}
	s := &S3{Client: client, Bucket: "media", Prefix: "/uploads/products/", PublicBaseURL: "https://cdn.example"}

	res, err := s.Put(context.Background(), strings.NewReader("img"), PutInput{Filename: "a.webp", ContentType: "image/webp"})
	require.NoError(t, err)
	require.NotNil(t, client.in)
	assert.Equal(t, "media", *client.in.Bucket)
	assert.Equal(t, "image/webp", *client.in.ContentType)
	assert.Regexp(t, `^uploads/products/[0-9a-f-]{36}\.webp$`, *client.in.Key)
	assert.Equal(t, "https://cdn.example/"+*client.in.Key, res.URL)
	assert.Equal(t, StorageRemote, res.Storage)
}

func TestFactory(t *testing.T) {
	ctx := context.Background()

	r, err := New(ctx, FactoryConfig{Driver: "auto", PublicDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "local", r.Driver)

	r, err = New(ctx, FactoryConfig{Driver: "local", Cloudinary: CloudinaryConfig{CloudName: "demo", APIKey: "k", APISecret: "s"}})
	require.NoError(t, err)
	assert.Equal(t, "cloudinary", r.Driver, "credentials win over driver")

	r, err = New(ctx, FactoryConfig{Driver: "auto", Cloudinary: CloudinaryConfig{CloudName: "demo", APIKey: "k"}})
	require.NoError(t, err)
	assert.Equal(t, "local", r.Driver, "partial credentials are ignored")

	_, err = New(ctx, FactoryConfig{Driver: "s3"})
	assert.Error(t, err)

	_, err = New(ctx, FactoryConfig{Driver: "ftp"})
	assert.Error(t, err)
}
