package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"ipoadvisor/internal/model"
)

// FileUpload is one file of a batch. Open is called only when its turn comes,
// so an unreadable file fails on its own without affecting the others.
type FileUpload struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileFromPath uploads the file at path under its base name.
func FileFromPath(path string) FileUpload {
	return FileUpload{
		Name: filepath.Base(path),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// UploadResult reports the outcome of one file of a batch.
type UploadResult struct {
	Name string
	File model.UploadedFile
	Err  error
}

// OK reports whether the upload succeeded.
func (r UploadResult) OK() bool { return r.Err == nil }

// ListFiles returns the uploaded files in backend order.
func (c *Client) ListFiles(ctx context.Context) ([]model.UploadedFile, error) {
	var out []model.UploadedFile
	err := c.do(ctx, request{
		method:   http.MethodGet,
		route:    "/api/admin/files",
		path:     "/api/admin/files",
		fallback: "Failed to fetch files",
		auth:     true,
		out:      &out,
	})
	return out, err
}

// UploadFile sends one file as multipart field "file". The backend picks the stored
// name, which may differ from name when it is already taken.
func (c *Client) UploadFile(ctx context.Context, name string, r io.Reader) (model.UploadedFile, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	ct := mime.TypeByExtension(filepath.Ext(name))
	if ct == "" {
		ct = "application/octet-stream"
	}
	hdr.Set("Content-Type", ct)

	part, err := mw.CreatePart(hdr)
	if err != nil {
		return model.UploadedFile{}, fmt.Errorf("upload %s: %w", name, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return model.UploadedFile{}, fmt.Errorf("upload %s: read: %w", name, err)
	}
	if err := mw.Close(); err != nil {
		return model.UploadedFile{}, fmt.Errorf("upload %s: %w", name, err)
	}

	var out model.UploadedFile
	err = c.do(ctx, request{
		method:      http.MethodPost,
		route:       "/api/admin/files/upload",
		path:        "/api/admin/files/upload",
		fallback:    "Failed to upload file",
		auth:        true,
		raw:         &buf,
		contentType: mw.FormDataContentType(),
		out:         &out,
	})
	return out, err
}

// UploadFiles uploads each file in order, one request per file. A failure does not stop
// the batch and nothing already uploaded is rolled back.
func (c *Client) UploadFiles(ctx context.Context, files []FileUpload) []UploadResult {
	results := make([]UploadResult, 0, len(files))
	for _, f := range files {
		res := UploadResult{Name: f.Name}
		rc, err := f.Open()
		if err != nil {
			res.Err = fmt.Errorf("open %s: %w", f.Name, err)
		} else {
			res.File, res.Err = c.UploadFile(ctx, f.Name, rc)
			rc.Close()
		}
		if res.Err != nil {
			c.logger.Warn("upload failed", zap.String("file", f.Name), zap.Error(res.Err))
		}
		results = append(results, res)
	}
	return results
}

// DeleteFile removes a stored file. A missing name surfaces the backend's own error.
func (c *Client) DeleteFile(ctx context.Context, name string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		route:    "/api/admin/files/{name}",
		path:     "/api/admin/files/" + segment(name),
		fallback: "Failed to delete file",
		auth:     true,
		out:      &model.Message{},
	})
}

// FileURL is the public address of a stored file.
func (c *Client) FileURL(name string) string {
	return c.base + "/api/files/" + segment(name)
}

// DownloadFile streams the public copy of a stored file into w.
func (c *Client) DownloadFile(ctx context.Context, name string, w io.Writer) error {
	return c.do(ctx, request{
		method:   http.MethodGet,
		route:    "/api/files/{name}",
		path:     "/api/files/" + segment(name),
		fallback: "Failed to download file",
		sink:     w,
	})
}
