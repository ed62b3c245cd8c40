// Package youtube wraps the YouTube Data API v3 behind the small API
// interface the publisher and channel resolver use, so those components can
// be tested against mocks.
package youtube

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/youtube/v3"
)

// Service implements API against a real *youtube.Service.
type Service struct {
	yt *youtube.Service
}

// New wraps an authenticated YouTube client.
func New(yt *youtube.Service) *Service {
	return &Service{yt: yt}
}

// MyChannel returns the channel owned by the current credentials.
func (s *Service) MyChannel(ctx context.Context) (*ChannelInfo, error) {
	resp, err := s.yt.Channels.List([]string{"snippet"}).Mine(true).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("channel lookup failed: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, ErrNoChannel
	}
	item := resp.Items[0]
	return &ChannelInfo{ID: item.Id, Title: item.Snippet.Title}, nil
}

// InsertVideo performs the resumable upload and returns the new video id.
func (s *Service) InsertVideo(ctx context.Context, video *youtube.Video, media io.Reader) (string, error) {
	call := s.yt.Videos.Insert([]string{"snippet", "status"}, video).Context(ctx)
	resp, err := call.Media(media).Do()
	if err != nil {
		return "", err
	}
	return resp.Id, nil
}

// SetThumbnail sets the thumbnail image for videoID.
func (s *Service) SetThumbnail(ctx context.Context, videoID string, media io.Reader) error {
	_, err := s.yt.Thumbnails.Set(videoID).Context(ctx).Media(media).Do()
	return err
}
