// Package storage uploads images to the Supabase storage bucket and hands
// back public URLs to store on event and wish records.
package storage

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"

	"github.com/wishwell/wishwell-api/internal/config"
)

// Prefixes group uploads inside the bucket by what they decorate.
const (
	PrefixEvent = "events"
	PrefixWish  = "wishes"
	PrefixCard  = "cards"
)

type Uploader struct {
	client *storage_go.Client
	bucket string
}

func NewUploader(conf *config.StorageConfig) *Uploader {
	client := storage_go.NewClient(
		strings.TrimRight(conf.URL, "/")+"/storage/v1",
		conf.ServiceKey,
		nil,
	)

	return &Uploader{
		client: client,
		bucket: conf.Bucket,
	}
}

// ValidPrefix reports whether kind names a known upload group.
func ValidPrefix(kind string) bool {
	switch kind {
	case PrefixEvent, PrefixWish, PrefixCard:
		return true
	default:
		return false
	}
}

// Upload stores the file under a generated name and returns its public URL.
// The original filename only contributes its extension.
func (u *Uploader) Upload(prefix, filename string, data io.Reader) (string, error) {
	objectPath := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), strings.ToLower(path.Ext(filename)))

	if _, err := u.client.UploadFile(u.bucket, objectPath, data); err != nil {
		return "", fmt.Errorf("u.client.UploadFile -> %w", err)
	}

	resp := u.client.GetPublicUrl(u.bucket, objectPath)

	return resp.SignedURL, nil
}
