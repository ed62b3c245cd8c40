package publish

import (
	"context"
	"fmt"
	"os"
	"time"

	"ytup/internal/faults"
	"ytup/internal/logger"
	ytsvc "ytup/internal/services/youtube"
)

// Publisher performs one upload: precondition checks, the resumable video
// insert, and the best-effort thumbnail call.
type Publisher struct {
	api ytsvc.API
	log *logger.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// NewPublisher creates a Publisher on the given API handle.
func NewPublisher(api ytsvc.API, log *logger.Logger) *Publisher {
	return &Publisher{api: api, log: log, now: time.Now}
}

// Publish uploads the request's video and returns the new video id.
//
// Both local files are checked before any network call. A thumbnail failure
// after a successful insert is logged and does not revert the upload; the
// video id is still returned.
func (p *Publisher) Publish(ctx context.Context, req Request) (string, error) {
	p.log.Debugf("starting video upload: %s", req.VideoPath)

	if _, err := os.Stat(req.VideoPath); err != nil {
		p.log.Errorf("%s: video file not found: %s", faults.FileNotFound, req.VideoPath)
		return "", faults.New(faults.FileNotFound, "",
			fmt.Errorf("video file %s: %w", req.VideoPath, err))
	}
	if req.ThumbnailPath != "" {
		if _, err := os.Stat(req.ThumbnailPath); err != nil {
			p.log.Errorf("%s: thumbnail file not found: %s", faults.FileNotFound, req.ThumbnailPath)
			return "", faults.New(faults.FileNotFound, "",
				fmt.Errorf("thumbnail file %s: %w", req.ThumbnailPath, err))
		}
	}

	video := req.BuildVideo(p.now())
	if video.Status.PublishAt != "" {
		p.log.Debugf("scheduled publish time: %s", video.Status.PublishAt)
	} else {
		p.log.Debugf("publishing immediately")
	}

	file, err := os.Open(req.VideoPath)
	if err != nil {
		p.log.Errorf("%s: cannot open video file: %v", faults.FileNotFound, err)
		return "", faults.New(faults.FileNotFound, "", err)
	}
	defer file.Close()

	p.log.Infof("uploading video file %s", req.VideoPath)
	videoID, err := p.api.InsertVideo(ctx, video, file)
	if err != nil {
		ferr := faults.Classify(err)
		p.log.Errorf("video upload failed (%s): %v", ferr.Category, err)
		if ferr.Hint != "" {
			p.log.Errorf("%s", ferr.Hint)
		}
		return "", ferr
	}
	p.log.Infof("video uploaded successfully: id=%s", videoID)

	if req.ThumbnailPath != "" {
		p.setThumbnail(ctx, videoID, req.ThumbnailPath)
	}
	return videoID, nil
}

// setThumbnail is best-effort: the video already exists, so any failure
// here is logged as a partial success and never propagated.
func (p *Publisher) setThumbnail(ctx context.Context, videoID, path string) {
	file, err := os.Open(path)
	if err != nil {
		p.log.Warnf("thumbnail not set for video %s: cannot open %s: %v", videoID, path, err)
		return
	}
	defer file.Close()

	p.log.Debugf("uploading thumbnail %s", path)
	if err := p.api.SetThumbnail(ctx, videoID, file); err != nil {
		ferr := faults.Classify(err)
		p.log.Warnf("thumbnail set failed for video %s (%s): %v", videoID, ferr.Category, err)
		return
	}
	p.log.Infof("thumbnail set for video %s", videoID)
}
