// Package channel resolves the identity of the channel owned by the current
// credentials.
package channel

import (
	"context"
	"errors"

	"ytup/internal/faults"
	"ytup/internal/logger"
	ytsvc "ytup/internal/services/youtube"
)

// Resolve queries "my channel" once. The three failure shapes get distinct
// log messages: an account without a channel, a permission rejection with a
// re-authentication hint, and plain transport errors.
func Resolve(ctx context.Context, api ytsvc.API, log *logger.Logger) (*ytsvc.ChannelInfo, error) {
	log.Debugf("fetching channel information")

	info, err := api.MyChannel(ctx)
	if err != nil {
		if errors.Is(err, ytsvc.ErrNoChannel) {
			log.Errorf("no channel found for this account; create one in YouTube Studio")
			return nil, faults.New(faults.ChannelNotFound,
				"create a channel in YouTube Studio", err)
		}
		ferr := faults.Classify(err)
		log.Errorf("channel lookup failed (%s): %v", ferr.Category, err)
		if ferr.Hint != "" {
			log.Errorf("%s", ferr.Hint)
		}
		return nil, ferr
	}

	log.Infof("channel: %s (id=%s)", info.Title, info.ID)
	return info, nil
}
