// ytup uploads a single video, with an optional thumbnail, to a YouTube
// channel using the YouTube Data API v3.
//
// Each invocation performs one upload: it loads (or interactively obtains)
// an OAuth token, resolves the channel owned by the credentials, uploads the
// video with shorts-aware metadata, optionally sets the thumbnail, and
// appends the resulting video id to a flat record file. Root-cause detail on
// failure goes to the diagnostic log; stdout carries a single success or
// failure line.
//
// Configuration comes from the environment (a .env file is honored):
//
//	CLIENT_SECRET_PATH   path to the Google OAuth client secret JSON (required)
//	YTUP_TOKEN_PATH      stored token artifact (default tokens/token.json)
//	YTUP_LOG_PATH        diagnostic log file (default ytup_debug.log)
//	YTUP_IDS_PATH        append-only video id record (default video_ids.txt)
//	OAUTH_CALLBACK_PORT  local OAuth redirect port (default 8080)
//
// ytup is a single-operator tool. Running concurrent invocations against the
// same token or record files has undefined behavior; there is no locking.
package main
