package cmd

import (
	"context"
	"fmt"

	"ytup/internal/auth"
	"ytup/internal/channel"
	"ytup/internal/config"
	"ytup/internal/faults"
	"ytup/internal/logger"
	"ytup/internal/publish"
	"ytup/internal/record"
	ytsvc "ytup/internal/services/youtube"

	"github.com/spf13/cobra"
)

var (
	requestPath   string
	videoPath     string
	thumbnailPath string
	videoTitle    string
	description   string
	tags          []string
	shorts        bool
	schedule      bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Authenticate and upload one video",
	Long: `Upload performs a single end-to-end run: authenticate, resolve the
channel owned by the credentials, upload the video (plus thumbnail if
given) and record the produced video id.

Without flags or a request file the built-in example request is used.`,
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	registerUploadFlags(uploadCmd)
	registerUploadFlags(rootCmd)
}

func registerUploadFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&requestPath, "request", "", "Path to a YAML upload request file")
	cmd.Flags().StringVar(&videoPath, "video", "", "Path to the video file")
	cmd.Flags().StringVar(&thumbnailPath, "thumbnail", "", "Path to the thumbnail image")
	cmd.Flags().StringVar(&videoTitle, "title", "", "Video title")
	cmd.Flags().StringVar(&description, "description", "", "Video description")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated video tags")
	cmd.Flags().BoolVar(&shorts, "shorts", false, "Upload as a YouTube Short")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "Schedule publishing 5 minutes out instead of publishing immediately")
}

func runUpload(cmd *cobra.Command, args []string) error {
	log, err := logger.New(config.LogPath(), logger.LevelFromString(verbosityLevel))
	if err != nil {
		fmt.Printf("Upload failed: %v\n", err)
		return err
	}
	defer log.Close()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Errorf("%s: %v", faults.CategoryOf(err), err)
		return fail(err)
	}

	req, err := buildRequest(cmd)
	if err != nil {
		log.Errorf("invalid upload request: %v", err)
		return fail(err)
	}

	ctx := context.Background()
	store := auth.NewStore(cfg.TokenPath)
	authenticator := auth.New(store, log, cfg.ClientSecretPath, cfg.CallbackPort)

	service, err := authenticator.Authenticate(ctx)
	if err != nil {
		log.Errorf("authentication failed: %v", err)
		return fail(err)
	}
	api := ytsvc.New(service)

	info, err := channel.Resolve(ctx, api, log)
	if err != nil {
		return fail(err)
	}

	publisher := publish.NewPublisher(api, log)
	videoID, err := publisher.Publish(ctx, req)
	if err != nil {
		return fail(err)
	}

	if err := record.New(cfg.IDRecordPath).Append(videoID); err != nil {
		log.Warnf("failed to record video id %s: %v", videoID, err)
	} else {
		log.Infof("video id recorded: %s", videoID)
	}

	log.Successf("Video uploaded successfully! ID: %s, Channel: %s", videoID, info.Title)
	return nil
}

// buildRequest layers flag overrides over the request file, or over the
// built-in example when no file is given.
func buildRequest(cmd *cobra.Command) (publish.Request, error) {
	req := publish.ExampleRequest()
	if requestPath != "" {
		loaded, err := publish.LoadRequest(requestPath)
		if err != nil {
			return publish.Request{}, err
		}
		req = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("video") {
		req.VideoPath = videoPath
	}
	if flags.Changed("thumbnail") {
		req.ThumbnailPath = thumbnailPath
	}
	if flags.Changed("title") {
		req.Title = videoTitle
	}
	if flags.Changed("description") {
		req.Description = description
	}
	if flags.Changed("tags") {
		req.Tags = tags
	}
	if flags.Changed("shorts") {
		req.IsShorts = shorts
	}
	if flags.Changed("schedule") {
		req.PublishImmediately = !schedule
	}
	return req, nil
}

// fail prints the single operator-facing failure line; root-cause detail
// lives in the diagnostic log only.
func fail(err error) error {
	fmt.Printf("Upload failed. Check %s for details.\n", config.LogPath())
	return err
}
