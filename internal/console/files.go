package console

import (
	"context"

	"github.com/dustin/go-humanize"

	"ipoadvisor/internal/gateway"
	"ipoadvisor/internal/model"
)

// FilesTab is the file manager.
type FilesTab struct {
	gw    FilesGateway
	items []model.UploadedFile
}

func NewFilesTab(gw FilesGateway) *FilesTab {
	return &FilesTab{gw: gw}
}

func (t *FilesTab) Refresh(ctx context.Context) error {
	items, err := t.gw.ListFiles(ctx)
	if err != nil {
		return err
	}
	t.items = items
	return nil
}

func (t *FilesTab) Items() []model.UploadedFile { return t.items }

// Filter matches term against the file name and fileType exactly (StatusAll for any).
// Files listed without a type are classified by extension.
func (t *FilesTab) Filter(term, fileType string) []model.UploadedFile {
	out := make([]model.UploadedFile, 0, len(t.items))
	for _, f := range t.items {
		typ := f.Type
		if typ == "" {
			typ = model.ClassifyFile(f.Name)
		}
		if !matchesStatus(fileType, string(typ)) {
			continue
		}
		if containsFold(term, f.Name) {
			out = append(out, f)
		}
	}
	return out
}

// Upload sends the batch one file at a time and refetches once at the end, whatever
// the individual outcomes. The refetch error is returned alongside the per-file results.
func (t *FilesTab) Upload(ctx context.Context, files []gateway.FileUpload) ([]gateway.UploadResult, error) {
	if len(files) == 0 {
		return nil, nil
	}
	results := t.gw.UploadFiles(ctx, files)
	return results, t.Refresh(ctx)
}

func (t *FilesTab) Delete(ctx context.Context, name string) error {
	if err := t.gw.DeleteFile(ctx, name); err != nil {
		return err
	}
	return t.Refresh(ctx)
}

// URL is the public address to share for a file.
func (t *FilesTab) URL(name string) string { return t.gw.FileURL(name) }

// FormatSize renders a byte count in binary units, e.g. "1.5 KiB".
func FormatSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}
