// Package auth owns the credential artifact on disk and the OAuth flow that
// produces an authenticated YouTube client.
//
// A stored credential is reused only when its granted scope set equals the
// required set exactly; an expired credential with a refresh token is
// refreshed once and discarded on failure; everything else goes through the
// interactive local-redirect flow.
package auth

import (
	"context"
	"fmt"
	"os"

	"ytup/internal/faults"
	"ytup/internal/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// RequiredScopes are the scopes every upload run needs: write access for the
// video and thumbnail calls, read access for the channel lookup.
var RequiredScopes = []string{
	youtube.YoutubeUploadScope,
	youtube.YoutubeReadonlyScope,
}

// Authenticator drives the store-refresh-interactive state machine.
type Authenticator struct {
	store            *Store
	log              *logger.Logger
	clientSecretPath string
	callbackPort     int

	// openBrowser is replaceable in tests.
	openBrowser func(url string) error
}

// New creates an Authenticator using the client secret configuration at
// clientSecretPath and the local redirect port for the interactive flow.
func New(store *Store, log *logger.Logger, clientSecretPath string, callbackPort int) *Authenticator {
	return &Authenticator{
		store:            store,
		log:              log,
		clientSecretPath: clientSecretPath,
		callbackPort:     callbackPort,
		openBrowser:      OpenBrowser,
	}
}

// Authenticate produces an authenticated YouTube service handle, persisting
// any newly obtained credential on the way.
func (a *Authenticator) Authenticate(ctx context.Context) (*youtube.Service, error) {
	a.log.Debugf("starting authentication")

	secret, err := os.ReadFile(a.clientSecretPath)
	if err != nil {
		return nil, faults.New(faults.AuthFlow, "",
			fmt.Errorf("failed to read client secret file: %w", err))
	}
	config, err := google.ConfigFromJSON(secret, RequiredScopes...)
	if err != nil {
		return nil, faults.New(faults.AuthFlow, "",
			fmt.Errorf("failed to parse client secret file: %w", err))
	}

	tok := a.storedToken(ctx, config)
	if tok == nil {
		tok, err = a.interactiveFlow(ctx, config)
		if err != nil {
			return nil, faults.New(faults.AuthFlow, "", err)
		}
		if err := a.store.Save(NewCredential(tok, RequiredScopes)); err != nil {
			a.log.Warnf("failed to save token: %v", err)
		}
	}

	svc, err := youtube.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx, tok)))
	if err != nil {
		return nil, faults.New(faults.AuthFlow, "",
			fmt.Errorf("failed to create YouTube client: %w", err))
	}
	a.log.Debugf("YouTube client ready")
	return svc, nil
}

// storedToken returns a usable token from the store, refreshing if needed,
// or nil when the interactive flow is required.
func (a *Authenticator) storedToken(ctx context.Context, config *oauth2.Config) *oauth2.Token {
	cred, err := a.store.Load()
	if err != nil {
		a.log.Errorf("%s: %v; re-authenticating", faults.CategoryOf(err), err)
		return nil
	}
	if cred == nil {
		a.log.Debugf("no stored token at %s", a.store.Path())
		return nil
	}

	if !cred.HasScopes(RequiredScopes) {
		a.log.Warnf("stored token scopes %v do not match required scopes; re-authenticating", cred.Scopes)
		return nil
	}

	tok := cred.Token()
	if tok.Valid() {
		a.log.Infof("using stored authorization token")
		return tok
	}
	if tok.RefreshToken == "" {
		a.log.Debugf("stored token expired and has no refresh token")
		return nil
	}

	a.log.Debugf("refreshing expired token")
	refreshed, err := config.TokenSource(ctx, tok).Token()
	if err != nil {
		a.log.Errorf("token refresh failed: %v; re-authenticating", err)
		return nil
	}
	if err := a.store.Save(NewCredential(refreshed, RequiredScopes)); err != nil {
		a.log.Warnf("failed to save refreshed token: %v", err)
	}
	a.log.Infof("token refreshed")
	return refreshed
}

// interactiveFlow runs the local-redirect authorization flow and exchanges
// the resulting code for a token.
func (a *Authenticator) interactiveFlow(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	server := NewCallbackServer()
	if err := server.Start(a.callbackPort); err != nil {
		return nil, err
	}
	defer func() {
		if err := server.Stop(); err != nil {
			a.log.Warnf("failed to stop callback server: %v", err)
		}
	}()

	config.RedirectURL = fmt.Sprintf("http://localhost:%d", a.callbackPort)
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	a.log.Infof("open this URL to authorize: %s", authURL)
	if err := a.openBrowser(authURL); err != nil {
		a.log.Warnf("could not open browser: %v", err)
	}

	code, err := server.WaitForCode(ctx)
	if err != nil {
		return nil, err
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	a.log.Infof("authorization complete")
	return tok, nil
}
