package api

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ThumbnailType is the kind of entity a thumbnail is rendered for
type ThumbnailType string

// Thumbnail types accepted by the batch endpoint
const (
	ThumbnailAvatar         ThumbnailType = "Avatar"
	ThumbnailAvatarHeadShot ThumbnailType = "AvatarHeadShot"
	ThumbnailAvatarBust     ThumbnailType = "AvatarBust"
	ThumbnailGameIcon       ThumbnailType = "GameIcon"
	ThumbnailGameThumbnail  ThumbnailType = "GameThumbnail"
	ThumbnailBadgeIcon      ThumbnailType = "BadgeIcon"
	ThumbnailGamePass       ThumbnailType = "GamePass"
	ThumbnailAsset          ThumbnailType = "Asset"
	ThumbnailGroupIcon      ThumbnailType = "GroupIcon"
	ThumbnailOutfit         ThumbnailType = "Outfit"
	ThumbnailBundle         ThumbnailType = "BundleThumbnail"
)

var thumbnailTypes = []ThumbnailType{
	ThumbnailAvatar,
	ThumbnailAvatarHeadShot,
	ThumbnailAvatarBust,
	ThumbnailGameIcon,
	ThumbnailGameThumbnail,
	ThumbnailBadgeIcon,
	ThumbnailGamePass,
	ThumbnailAsset,
	ThumbnailGroupIcon,
	ThumbnailOutfit,
	ThumbnailBundle,
}

// DefaultThumbnailSize is used when no size is requested
const DefaultThumbnailSize = "420x420"

// ParseThumbnailType resolves a type name ignoring case and separators
func ParseThumbnailType(name string) (ThumbnailType, error) {
	normalized := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(name))
	for _, t := range thumbnailTypes {
		if strings.ToLower(string(t)) == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown thumbnail kind %q", name)
}

// ThumbnailTypeNames returns every accepted thumbnail type name
func ThumbnailTypeNames() []string {
	names := make([]string, len(thumbnailTypes))
	for i, t := range thumbnailTypes {
		names[i] = string(t)
	}
	sort.Strings(names)
	return names
}

// ParseThumbnailSize validates a WIDTHxHEIGHT size string
func ParseThumbnailSize(size string) (string, error) {
	if size == "" {
		return DefaultThumbnailSize, nil
	}
	w, h, ok := strings.Cut(strings.ToLower(size), "x")
	if !ok {
		return "", fmt.Errorf("invalid thumbnail size %q, expected WIDTHxHEIGHT", size)
	}
	if _, err := strconv.Atoi(w); err != nil {
		return "", fmt.Errorf("invalid thumbnail width in %q", size)
	}
	if _, err := strconv.Atoi(h); err != nil {
		return "", fmt.Errorf("invalid thumbnail height in %q", size)
	}
	return w + "x" + h, nil
}

// ThumbnailRequest asks for one rendered image
type ThumbnailRequest struct {
	RequestID string        `json:"requestId"`
	TargetID  uint64        `json:"targetId"`
	Type      ThumbnailType `json:"type"`
	Size      string        `json:"size"`
	Format    string        `json:"format"`
	Circular  bool          `json:"isCircular"`
}

// Thumbnail is the rendered image for one request
// State is "Completed" once ImageURL can be fetched
type Thumbnail struct {
	RequestID    string `json:"requestId"`
	TargetID     uint64 `json:"targetId"`
	State        string `json:"state"`
	ImageURL     string `json:"imageUrl"`
	ErrorCode    int    `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// Thumbnails renders a batch of thumbnails
func (c *Client) Thumbnails(ctx context.Context, requests []ThumbnailRequest) ([]Thumbnail, error) {
	for i := range requests {
		if requests[i].Format == "" {
			requests[i].Format = "Png"
		}
		if requests[i].Size == "" {
			requests[i].Size = DefaultThumbnailSize
		}
		if requests[i].RequestID == "" {
			requests[i].RequestID = strconv.Itoa(i)
		}
	}

	var response struct {
		Data []Thumbnail `json:"data"`
	}
	if err := c.post(ctx, "thumbnails", "/v1/batch", requests, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// Thumbnail renders a single PNG thumbnail
func (c *Client) Thumbnail(ctx context.Context, id uint64, kind ThumbnailType, size string) (Thumbnail, error) {
	thumbs, err := c.Thumbnails(ctx, []ThumbnailRequest{{TargetID: id, Type: kind, Size: size}})
	if err != nil {
		return Thumbnail{}, err
	}
	if len(thumbs) == 0 {
		return Thumbnail{}, notFound("thumbnail")
	}

	thumb := thumbs[0]
	if thumb.ImageURL == "" {
		if thumb.ErrorMessage != "" {
			return Thumbnail{}, fmt.Errorf("thumbnail %d is %s: %s", id, thumb.State, thumb.ErrorMessage)
		}
		return Thumbnail{}, fmt.Errorf("thumbnail %d is %s", id, thumb.State)
	}
	return thumb, nil
}
