package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/idealwardrobe/backend/models"
)

// TaskStatus is the lifecycle of one upload task.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusUploading TaskStatus = "uploading"
	StatusCompleted TaskStatus = "completed"
	StatusFailed    TaskStatus = "failed"
)

// UploadTask tracks one file through the upload pipeline.
type UploadTask struct {
	FileName string
	Status   TaskStatus
	Step     string
	Err      error
	Item     *models.WardrobeItem
}

// UploadFile is one pending upload: a name plus its content source.
type UploadFile struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileFromPath wraps a path on disk as an UploadFile.
func FileFromPath(path string) UploadFile {
	return UploadFile{
		Name: filepath.Base(path),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// UploadBatch uploads files one at a time into the given category. Each
// file succeeds or fails on its own; one bad photo never aborts the rest
// of the batch. Successful items are prepended to the view, newest first
// on screen. Returns the per-file tasks in input order.
func (v *WardrobeView) UploadBatch(ctx context.Context, files []UploadFile, category string) []*UploadTask {
	tasks := make([]*UploadTask, len(files))
	for i, f := range files {
		tasks[i] = &UploadTask{FileName: f.Name, Status: StatusPending, Step: "Waiting"}
	}

	for i, f := range files {
		task := tasks[i]
		if err := ctx.Err(); err != nil {
			task.fail("Cancelled", err)
			continue
		}

		task.Status = StatusUploading
		task.Step = "Uploading photo"

		item, err := v.uploadOne(ctx, f, category)
		if err != nil {
			task.fail("Upload failed", err)
			continue
		}

		task.Status = StatusCompleted
		task.Step = "Added to wardrobe"
		task.Item = item
		v.prepend(item)
	}

	return tasks
}

func (v *WardrobeView) uploadOne(ctx context.Context, f UploadFile, category string) (*models.WardrobeItem, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	defer rc.Close()

	return v.client.ProcessClothing(ctx, f.Name, rc, category)
}

func (t *UploadTask) fail(step string, err error) {
	t.Status = StatusFailed
	t.Step = step
	t.Err = err
}
