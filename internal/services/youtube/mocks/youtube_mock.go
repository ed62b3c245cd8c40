// Package mocks provides a testify mock of the YouTube API surface.
package mocks

import (
	"context"
	"io"

	ytsvc "ytup/internal/services/youtube"

	"github.com/stretchr/testify/mock"
	"google.golang.org/api/youtube/v3"
)

// API is a mock implementation of youtube.API.
type API struct {
	mock.Mock
}

func (m *API) MyChannel(ctx context.Context) (*ytsvc.ChannelInfo, error) {
	args := m.Called(ctx)
	if info := args.Get(0); info != nil {
		return info.(*ytsvc.ChannelInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) InsertVideo(ctx context.Context, video *youtube.Video, media io.Reader) (string, error) {
	args := m.Called(ctx, video, media)
	return args.String(0), args.Error(1)
}

func (m *API) SetThumbnail(ctx context.Context, videoID string, media io.Reader) error {
	args := m.Called(ctx, videoID, media)
	return args.Error(0)
}
