package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/ff-to-go/internal/config"
	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/internal/utils"
	"github.com/MKhiriev/ff-to-go/models"
	"github.com/go-resty/resty/v2"
)

type friendFeed struct {
	client  *utils.HTTPClient
	limiter *rateLimiter
	creds   models.Credentials

	logger *logger.Logger
}

// NewFriendFeed constructs an anonymous HTTP implementation of [FriendFeed].
// It normalises and validates the base URL from adapterCfg.BaseURL,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and sets up the outbound rate limiter.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewFriendFeed(adapterCfg config.Adapter, logger *logger.Logger) (FriendFeed, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	return &friendFeed{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		limiter: newRateLimiter(adapterCfg.RateLimit),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// As implements [FriendFeed].
func (f *friendFeed) As(creds models.Credentials) FriendFeed {
	return &friendFeed{client: f.client, limiter: f.limiter, creds: creds, logger: f.logger}
}

// Credentials implements [FriendFeed].
func (f *friendFeed) Credentials() models.Credentials {
	return f.creds
}

func (f *friendFeed) Validate(ctx context.Context) error {
	return f.fetch(ctx, "/api/validate", nil, nil, nil)
}

func (f *friendFeed) HideEntry(ctx context.Context, entryID string) error {
	return f.fetch(ctx, "/api/entry/hide", url.Values{"entry": {entryID}}, nil, nil)
}

func (f *friendFeed) UnhideEntry(ctx context.Context, entryID string) error {
	return f.fetch(ctx, "/api/entry/hide", url.Values{"entry": {entryID}, "unhide": {"1"}}, nil, nil)
}

func (f *friendFeed) DeleteEntry(ctx context.Context, entryID string) error {
	return f.fetch(ctx, "/api/entry/delete", url.Values{"entry": {entryID}}, nil, nil)
}

func (f *friendFeed) UndeleteEntry(ctx context.Context, entryID string) error {
	return f.fetch(ctx, "/api/entry/delete", url.Values{"entry": {entryID}, "undelete": {"1"}}, nil, nil)
}

// FetchEntry implements [FriendFeed]. The remote answers with a one-entry
// feed.
func (f *friendFeed) FetchEntry(ctx context.Context, entryID string) (models.Entry, error) {
	feed, err := f.fetchFeed(ctx, "/api/feed/entry/"+url.PathEscape(entryID), nil, nil)
	if err != nil {
		return models.Entry{}, err
	}
	if len(feed.Entries) == 0 {
		return models.Entry{}, fmt.Errorf("entry %s: %w", entryID, ErrNotFound)
	}
	return feed.Entries[0], nil
}

func (f *friendFeed) FetchUserProfile(ctx context.Context, nickname string) (models.Profile, error) {
	return f.fetchProfile(ctx, "/api/user/"+url.PathEscape(nickname)+"/profile")
}

func (f *friendFeed) FetchRoomProfile(ctx context.Context, nickname string) (models.Profile, error) {
	return f.fetchProfile(ctx, "/api/room/"+url.PathEscape(nickname)+"/profile")
}

func (f *friendFeed) FetchListProfile(ctx context.Context, nickname string) (models.Profile, error) {
	return f.fetchProfile(ctx, "/api/list/"+url.PathEscape(nickname)+"/profile")
}

func (f *friendFeed) FetchPublicFeed(ctx context.Context, query models.FeedQuery) (models.Feed, error) {
	return f.fetchFeed(ctx, "/api/feed/public", nil, queryValues(query))
}

func (f *friendFeed) FetchHomeFeed(ctx context.Context, query models.FeedQuery) (models.Feed, error) {
	return f.fetchFeed(ctx, "/api/feed/home", nil, queryValues(query))
}

func (f *friendFeed) FetchRoomsFeed(ctx context.Context, query models.FeedQuery) (models.Feed, error) {
	return f.fetchFeed(ctx, "/api/feed/rooms", nil, queryValues(query))
}

func (f *friendFeed) FetchRoomFeed(ctx context.Context, nickname string, query models.FeedQuery) (models.Feed, error) {
	return f.fetchFeed(ctx, "/api/feed/room/"+url.PathEscape(nickname), nil, queryValues(query))
}

func (f *friendFeed) FetchListFeed(ctx context.Context, nickname string, query models.FeedQuery) (models.Feed, error) {
	return f.fetchFeed(ctx, "/api/feed/list/"+url.PathEscape(nickname), nil, queryValues(query))
}

func (f *friendFeed) FetchUserFeed(ctx context.Context, nickname string, query models.FeedQuery) (models.Feed, error) {
	return f.fetchFeed(ctx, "/api/feed/user/"+url.PathEscape(nickname), nil, queryValues(query))
}

func (f *friendFeed) FetchUserCommentsFeed(ctx context.Context, nickname string, query models.FeedQuery) (models.Feed, error) {
	return f.fetchFeed(ctx, "/api/feed/user/"+url.PathEscape(nickname)+"/comments", nil, queryValues(query))
}

func (f *friendFeed) FetchUserLikesFeed(ctx context.Context, nickname string, query models.FeedQuery) (models.Feed, error) {
	return f.fetchFeed(ctx, "/api/feed/user/"+url.PathEscape(nickname)+"/likes", nil, queryValues(query))
}

func (f *friendFeed) FetchUserDiscussionFeed(ctx context.Context, nickname string, query models.FeedQuery) (models.Feed, error) {
	return f.fetchFeed(ctx, "/api/feed/user/"+url.PathEscape(nickname)+"/discussion", nil, queryValues(query))
}

func (f *friendFeed) FetchUserFriendsFeed(ctx context.Context, nickname string, query models.FeedQuery) (models.Feed, error) {
	return f.fetchFeed(ctx, "/api/feed/user/"+url.PathEscape(nickname)+"/friends", nil, queryValues(query))
}

func (f *friendFeed) FetchMultiUserFeed(ctx context.Context, nicknames []string, query models.FeedQuery) (models.Feed, error) {
	args := queryValues(query)
	args.Set("nickname", strings.Join(nicknames, ","))
	return f.fetchFeed(ctx, "/api/feed/user", nil, args)
}

func (f *friendFeed) Search(ctx context.Context, q string, query models.FeedQuery) (models.Feed, error) {
	args := queryValues(query)
	args.Set("q", q)
	return f.fetchFeed(ctx, "/api/feed/search", nil, args)
}

// PublishMessage implements [FriendFeed].
func (f *friendFeed) PublishMessage(ctx context.Context, req models.PublishRequest) (models.Entry, error) {
	req.Link = ""
	return f.PublishLink(ctx, req)
}

// PublishLink implements [FriendFeed]. Explicit images precede ImageURLs
// and explicit audio clips precede AudioURLs in the numbered form fields.
func (f *friendFeed) PublishLink(ctx context.Context, req models.PublishRequest) (models.Entry, error) {
	feed, err := f.fetchFeed(ctx, "/api/share", publishValues(req), nil)
	if err != nil {
		return models.Entry{}, err
	}
	if len(feed.Entries) == 0 {
		return models.Entry{}, fmt.Errorf("share returned no entry: %w", ErrUnexpectedStatus)
	}
	return feed.Entries[0], nil
}

func publishValues(req models.PublishRequest) url.Values {
	args := url.Values{"title": {req.Title}}
	if req.Link != "" {
		args.Set("link", req.Link)
	}
	if req.Comment != "" {
		args.Set("comment", req.Comment)
	}
	if req.Via != "" {
		args.Set("via", req.Via)
	}

	images := append([]models.Image(nil), req.Images...)
	for _, u := range req.ImageURLs {
		images = append(images, models.Image{URL: u})
	}
	for i, image := range images {
		args.Set("image"+strconv.Itoa(i)+"_url", image.URL)
		if image.Link != "" {
			args.Set("image"+strconv.Itoa(i)+"_link", image.Link)
		}
	}

	audio := append([]models.Audio(nil), req.Audio...)
	for _, u := range req.AudioURLs {
		audio = append(audio, models.Audio{URL: u})
	}
	for i, clip := range audio {
		args.Set("audio"+strconv.Itoa(i)+"_url", clip.URL)
		if clip.Title != "" {
			args.Set("audio"+strconv.Itoa(i)+"_title", clip.Title)
		}
	}

	if req.Room != "" {
		args.Set("room", req.Room)
	}
	return args
}

// commentReply is the body of the comment endpoint.
type commentReply struct {
	ID string `json:"id"`
}

func (f *friendFeed) AddComment(ctx context.Context, entryID, body, via string) (string, error) {
	args := url.Values{"entry": {entryID}, "body": {body}}
	if via != "" {
		args.Set("via", via)
	}

	var reply commentReply
	if err := f.fetch(ctx, "/api/comment", args, nil, &reply); err != nil {
		return "", err
	}
	return reply.ID, nil
}

func (f *friendFeed) EditComment(ctx context.Context, entryID, commentID, body string) (string, error) {
	args := url.Values{"entry": {entryID}, "comment": {commentID}, "body": {body}}

	var reply commentReply
	if err := f.fetch(ctx, "/api/comment", args, nil, &reply); err != nil {
		return "", err
	}
	if reply.ID == "" {
		reply.ID = commentID
	}
	return reply.ID, nil
}

func (f *friendFeed) DeleteComment(ctx context.Context, entryID, commentID string) error {
	return f.fetch(ctx, "/api/comment/delete", url.Values{"entry": {entryID}, "comment": {commentID}}, nil, nil)
}

func (f *friendFeed) UndeleteComment(ctx context.Context, entryID, commentID string) error {
	args := url.Values{"entry": {entryID}, "comment": {commentID}, "undelete": {"1"}}
	return f.fetch(ctx, "/api/comment/delete", args, nil, nil)
}

func (f *friendFeed) AddLike(ctx context.Context, entryID string) error {
	return f.fetch(ctx, "/api/like", url.Values{"entry": {entryID}}, nil, nil)
}

func (f *friendFeed) DeleteLike(ctx context.Context, entryID string) error {
	return f.fetch(ctx, "/api/like/delete", url.Values{"entry": {entryID}}, nil, nil)
}

func (f *friendFeed) fetchFeed(ctx context.Context, uri string, postArgs, urlArgs url.Values) (models.Feed, error) {
	var feed models.Feed
	if err := f.fetch(ctx, uri, postArgs, urlArgs, &feed); err != nil {
		return models.Feed{}, err
	}
	return feed, nil
}

func (f *friendFeed) fetchProfile(ctx context.Context, uri string) (models.Profile, error) {
	var profile models.Profile
	if err := f.fetch(ctx, uri, nil, nil, &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// fetch performs one remote call. postArgs == nil selects GET, otherwise the
// arguments are sent as a form-encoded POST body. The reply is decoded into
// out when out is not nil.
func (f *friendFeed) fetch(ctx context.Context, uri string, postArgs, urlArgs url.Values, out any) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	if urlArgs == nil {
		urlArgs = url.Values{}
	}
	urlArgs.Set("format", "json")

	req := f.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(urlArgs)
	if f.creds.Complete() {
		req.SetBasicAuth(f.creds.Nickname, f.creds.RemoteKey)
	}

	var (
		resp *resty.Response
		err  error
	)
	if postArgs != nil {
		resp, err = req.SetFormDataFromValues(postArgs).Post(uri)
	} else {
		resp, err = req.Get(uri)
	}
	if err != nil {
		f.logger.Err(err).Str("func", "friendFeed.fetch").Str("uri", uri).Msg("remote request failed")
		return fmt.Errorf("%s request: %w", uri, err)
	}

	f.logger.Debug().
		Str("func", "friendFeed.fetch").
		Str("uri", uri).
		Str("method", resp.Request.Method).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("remote call")

	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", uri, err)
	}
	return nil
}

// queryValues encodes the non-zero paging arguments.
func queryValues(query models.FeedQuery) url.Values {
	args := url.Values{}
	if query.Num > 0 {
		args.Set("num", strconv.Itoa(query.Num))
	}
	if query.Start > 0 {
		args.Set("start", strconv.Itoa(query.Start))
	}
	if query.Service != "" {
		args.Set("service", query.Service)
	}
	return args
}
