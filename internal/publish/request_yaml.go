package publish

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// requestFile is the YAML shape of an upload request. publishImmediately
// defaults to true when omitted, matching the built-in example.
type requestFile struct {
	VideoPath          string   `yaml:"videoPath"`
	ThumbnailPath      string   `yaml:"thumbnailPath"`
	Title              string   `yaml:"title"`
	Description        string   `yaml:"description"`
	Tags               []string `yaml:"tags"`
	PublishImmediately *bool    `yaml:"publishImmediately"`
	Shorts             bool     `yaml:"shorts"`
}

// LoadRequest reads an upload request definition from a YAML file.
func LoadRequest(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("failed to read request file: %w", err)
	}

	var rf requestFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return Request{}, fmt.Errorf("failed to parse request file %s: %w", path, err)
	}
	if rf.VideoPath == "" {
		return Request{}, fmt.Errorf("request file %s: videoPath is required", path)
	}

	req := Request{
		VideoPath:          rf.VideoPath,
		ThumbnailPath:      rf.ThumbnailPath,
		Title:              rf.Title,
		Description:        rf.Description,
		Tags:               rf.Tags,
		PublishImmediately: true,
		IsShorts:           rf.Shorts,
	}
	if rf.PublishImmediately != nil {
		req.PublishImmediately = *rf.PublishImmediately
	}
	return req, nil
}
