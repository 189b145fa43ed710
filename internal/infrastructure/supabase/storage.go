package supabase

import (
	"context"
	"fmt"

	"github.com/pubnicaragua/investi-documentacion2/internal/domain"
	"github.com/pubnicaragua/investi-documentacion2/internal/domain/entity"
)

// avatarBucket is the public bucket holding user media
const avatarBucket = "post-media"

// uploadResult is the provider's object-upload response body
type uploadResult struct {
	Key string `json:"Key"`
	ID  string `json:"Id"`
}

// objectStore implements domain.ObjectStore over the storage endpoint
type objectStore struct {
	client *Client
}

// NewObjectStore creates an ObjectStore backed by the BaaS
func NewObjectStore(client *Client) domain.ObjectStore {
	return &objectStore{client: client}
}

// UploadAvatar stores avatar bytes at the deterministic per-user path.
// The body goes out untouched; re-uploading overwrites the previous
// avatar in place so the profile URL stays stable.
func (s *objectStore) UploadAvatar(ctx context.Context, userID string, contentType string, data []byte) (*entity.ObjectRef, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	path := fmt.Sprintf("/object/%s/%s/avatar.jpg", avatarBucket, userID)

	body, _, err := s.client.do(ctx, "POST", s.client.storageURL+path, &RequestOptions{
		RawBody: data,
		Headers: map[string]string{
			"Content-Type": contentType,
			"x-upsert":     "true",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	var result uploadResult
	decodeJSON(body, &result)
	if result.Key == "" {
		result.Key = fmt.Sprintf("%s/%s/avatar.jpg", avatarBucket, userID)
	}
	return &entity.ObjectRef{Key: result.Key, ID: result.ID}, nil
}
