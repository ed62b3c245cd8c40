package youtube

import (
	"context"
	"errors"
	"io"

	"google.golang.org/api/youtube/v3"
)

// ErrNoChannel is returned when the authenticated account owns no channel.
// It is distinct from transport and permission failures so callers can log
// it under its own message.
var ErrNoChannel = errors.New("no channel found for this account")

// ChannelInfo identifies the channel owned by the current credentials.
type ChannelInfo struct {
	ID    string
	Title string
}

// API is the narrow surface of the YouTube Data API this tool uses.
type API interface {
	// MyChannel looks up the channel owned by the current credentials.
	MyChannel(ctx context.Context) (*ChannelInfo, error)

	// InsertVideo uploads the media stream with the given metadata and
	// returns the new video id. The upload is resumable; chunking is
	// handled by the underlying client.
	InsertVideo(ctx context.Context, video *youtube.Video, media io.Reader) (string, error)

	// SetThumbnail sets the thumbnail for an existing video.
	SetThumbnail(ctx context.Context, videoID string, media io.Reader) error
}
