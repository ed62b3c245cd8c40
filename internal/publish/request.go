// Package publish builds the upload payload and drives the video insert and
// thumbnail calls.
package publish

import (
	"time"

	"google.golang.org/api/youtube/v3"
)

// Fixed payload policy: category 22 (People & Blogs), public visibility,
// not made for kids.
const (
	categoryPeopleAndBlogs = "22"
	privacyPublic          = "public"
)

// Title and scheduling rules.
const (
	maxTitleChars    = 100
	shortsTitleChars = 95
	shortsSuffix     = " #Shorts"
	scheduleDelay    = 5 * time.Minute
)

// shortsDescriptionSuffix is appended to every shorts description.
const shortsDescriptionSuffix = "\n#Shorts #YouTubeShorts"

// Request describes one upload. It is constructed once per invocation and
// never mutated; BuildVideo works on copies so repeated builds of the same
// request yield identical payloads.
type Request struct {
	VideoPath          string
	ThumbnailPath      string
	Title              string
	Description        string
	Tags               []string
	PublishImmediately bool
	IsShorts           bool
}

// ExampleRequest is the built-in upload run when no request file or flags
// are given.
func ExampleRequest() Request {
	return Request{
		VideoPath:          "source/vid1.mp4",
		ThumbnailPath:      "source/thumbnail1.jpg",
		Title:              "My Awesome Short",
		Description:        "This is a test Short uploaded via YouTube API.\nSubscribe for more!",
		Tags:               []string{"youtube", "api", "shorts", "test"},
		PublishImmediately: true,
		IsShorts:           true,
	}
}

// defaultTags are used when a request carries no tags. Fresh copies are
// taken per build; the defaults themselves are never appended to.
func defaultTags(shorts bool) []string {
	if shorts {
		return []string{"Shorts", "YouTubeShorts", "video", "test"}
	}
	return []string{"video", "youtube", "test"}
}

// BuildVideo shapes the API payload for the request at the given instant.
//
// Shorts titles are truncated to 95 characters first; the " #Shorts" suffix
// is added only when the title was already under 95 characters, so
// truncation always wins over suffixing. Every title is then capped at 100
// characters. A "Shorts" tag is appended even when the defaulted tag list
// already contains one; the API tolerates the duplicate and upstream
// behavior is kept deliberately.
func (r Request) BuildVideo(now time.Time) *youtube.Video {
	title := r.Title
	description := r.Description
	tags := append([]string(nil), r.Tags...)

	if r.IsShorts {
		title = truncateChars(title, shortsTitleChars)
		if len([]rune(title)) < shortsTitleChars {
			title += shortsSuffix
		}
		description += shortsDescriptionSuffix
		if len(tags) == 0 {
			tags = defaultTags(true)
		}
		tags = append(tags, "Shorts")
	} else if len(tags) == 0 {
		tags = defaultTags(false)
	}
	title = truncateChars(title, maxTitleChars)

	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       title,
			Description: description,
			Tags:        tags,
			CategoryId:  categoryPeopleAndBlogs,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           privacyPublic,
			SelfDeclaredMadeForKids: false,
			// The API must see the explicit false, not an omitted field.
			ForceSendFields: []string{"SelfDeclaredMadeForKids"},
		},
	}

	if !r.PublishImmediately {
		video.Status.PublishAt = scheduledPublishAt(now)
	}
	return video
}

// scheduledPublishAt formats now+5m UTC with a literal Z suffix.
func scheduledPublishAt(now time.Time) string {
	return now.UTC().Add(scheduleDelay).Format("2006-01-02T15:04:05") + "Z"
}

// truncateChars caps s at n characters, not bytes.
func truncateChars(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
