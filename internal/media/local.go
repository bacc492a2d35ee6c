package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// LocalSubdir is where product images live below the public directory; it
// doubles as the URL path.
const LocalSubdir = "uploads/products"

// Local writes images below PublicDir so the router can serve them
// statically.
type Local struct {
	PublicDir string
	now       func() time.Time
}

func NewLocal(publicDir string) *Local {
	return &Local{PublicDir: publicDir, now: time.Now}
}

func (l *Local) Put(ctx context.Context, r io.Reader, in PutInput) (Result, error) {
	_ = ctx

	dir := filepath.Join(l.PublicDir, filepath.FromSlash(LocalSubdir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, err
	}

	name := strconv.FormatInt(l.now().UnixMilli(), 10) + "-" + uuid.NewString() + "." + Extension(in.ContentType, in.Filename)
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return Result{}, err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return Result{}, err
	}
	if err := f.Close(); err != nil {
		return Result{}, err
	}

	return Result{URL: "/" + LocalSubdir + "/" + name, Storage: StorageLocal}, nil
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.PublicDir) }
