package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// localURLUploader stands in when no Cloudinary credentials are configured.
// It stores nothing and returns a deterministic pseudo-URL, which keeps local
// development working without an upload account.
type localURLUploader struct{}

func (localURLUploader) UploadBytes(_ context.Context, folder, filename string, b []byte) (string, error) {
	sum := sha256.Sum256(b)
	return fmt.Sprintf("local://%s/%s-%s", folder, filename, hex.EncodeToString(sum[:8])), nil
}
