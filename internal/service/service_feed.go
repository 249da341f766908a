package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/ff-to-go/internal/adapter"
	"github.com/MKhiriev/ff-to-go/internal/config"
	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/internal/validators"
	"github.com/MKhiriev/ff-to-go/models"
	"github.com/go-pkgz/lcw"
	"golang.org/x/sync/errgroup"
)

// maxExtraHomePages bounds the number of additional home feed pages fetched
// to replace entries the viewer has hidden.
const maxExtraHomePages = 3

type fetchFunc func(ctx context.Context, query models.FeedQuery) (models.Feed, error)

// feedService is the concrete implementation of FeedService.
type feedService struct {
	remote     adapter.FriendFeed
	defaultNum int

	// publicCache holds anonymous public feed pages keyed by num, start and
	// service.
	publicCache lcw.LoadingCache

	logger *logger.Logger
}

// NewFeedService returns a FeedService reading from remote. remote must be
// an anonymous client; it is bound to the viewer's credentials per call.
func NewFeedService(remote adapter.FriendFeed, displayCfg config.Display, cacheCfg config.Cache, logger *logger.Logger) (FeedService, error) {
	opts := []lcw.Option{lcw.TTL(cacheCfg.PublicFeedTTL)}
	if cacheCfg.MaxKeys > 0 {
		opts = append(opts, lcw.MaxKeys(cacheCfg.MaxKeys))
	}

	cache, err := lcw.NewExpirableCache(opts...)
	if err != nil {
		return nil, fmt.Errorf("create public feed cache: %w", err)
	}

	num := displayCfg.Num
	if num < 1 || num > validators.MaxNum {
		num = validators.MaxNum
	}

	return &feedService{
		remote:      remote,
		defaultNum:  num,
		publicCache: cache,
		logger:      logger,
	}, nil
}

// Home returns a page of the viewer's home feed. Entries the viewer has
// hidden are moved to FeedPage.Hidden and up to three further pages are
// fetched to fill the page with visible entries.
func (s *feedService) Home(ctx context.Context, session *models.Session, req models.PageRequest) (models.FeedPage, error) {
	log := logger.FromContext(ctx)

	if !session.Authenticated() {
		return models.FeedPage{}, ErrCredentialsRequired
	}

	client := s.client(session)
	num := s.num(session)
	query := s.query(num, req)

	feed, err := client.FetchHomeFeed(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "feedService.Home").Msg("error fetching home feed")
		return models.FeedPage{}, fmt.Errorf("fetch home feed: %w", err)
	}

	fetched := feed.Entries
	visible := countVisible(fetched)
	for extra := 1; visible < num && extra <= maxExtraHomePages; extra++ {
		more := query
		more.Start = query.Start + extra*num

		page, err := client.FetchHomeFeed(ctx, more)
		if err != nil {
			log.Warn().Err(err).Int("start", more.Start).Msg("stopped fetching extra home pages")
			break
		}
		if len(page.Entries) == 0 {
			break
		}

		fetched = append(fetched, page.Entries...)
		visible += countVisible(page.Entries)
	}

	entries, hidden, consumed := takeVisible(fetched, num)

	page := newPage(models.FeedKindHome, query)
	page.Title = "Home"
	page.Entries = entries
	page.Hidden = hidden
	page.Next = query.Start + consumed

	return page, nil
}

// Public returns a page of the public feed. The feed is fetched without
// credentials and cached; failed fetches are not cached.
func (s *feedService) Public(ctx context.Context, session *models.Session, req models.PageRequest) (models.FeedPage, error) {
	log := logger.FromContext(ctx)

	query := s.query(s.num(session), req)
	key := fmt.Sprintf("public_%d_%d_%s", query.Num, query.Start, query.Service)

	value, err := s.publicCache.Get(key, func() (interface{}, error) {
		return s.remote.FetchPublicFeed(ctx, query)
	})
	if err != nil {
		log.Err(err).Str("func", "feedService.Public").Msg("error fetching public feed")
		return models.FeedPage{}, fmt.Errorf("fetch public feed: %w", err)
	}

	feed, ok := value.(models.Feed)
	if !ok {
		return models.FeedPage{}, fmt.Errorf("unexpected public cache value %T", value)
	}

	page := newPage(models.FeedKindPublic, query)
	page.Title = "Public"
	page.Entries = nonNil(feed.Entries)
	page.Next = query.Start + query.Num

	return page, nil
}

func (s *feedService) Rooms(ctx context.Context, session *models.Session, req models.PageRequest) (models.FeedPage, error) {
	if !session.Authenticated() {
		return models.FeedPage{}, ErrCredentialsRequired
	}

	query := s.query(s.num(session), req)
	feed, err := s.client(session).FetchRoomsFeed(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "feedService.Rooms").Msg("error fetching rooms feed")
		return models.FeedPage{}, fmt.Errorf("fetch rooms feed: %w", err)
	}

	page := splitPage(models.FeedKindRooms, query, feed)
	page.Title = "Rooms"
	return page, nil
}

// Room returns a page of a room feed together with the room profile.
func (s *feedService) Room(ctx context.Context, session *models.Session, nickname string, req models.PageRequest) (models.FeedPage, error) {
	client := s.client(session)
	query := s.query(s.num(session), req)

	page, err := s.withProfile(ctx, models.FeedKindRoom, nickname, query,
		func(ctx context.Context, q models.FeedQuery) (models.Feed, error) {
			return client.FetchRoomFeed(ctx, nickname, q)
		},
		client.FetchRoomProfile,
	)
	if err != nil {
		return models.FeedPage{}, fmt.Errorf("fetch room feed: %w", err)
	}

	return page, nil
}

// List returns a page of one of the viewer's friend lists together with the
// list profile.
func (s *feedService) List(ctx context.Context, session *models.Session, nickname string, req models.PageRequest) (models.FeedPage, error) {
	if !session.Authenticated() {
		return models.FeedPage{}, ErrCredentialsRequired
	}

	client := s.client(session)
	query := s.query(s.num(session), req)

	page, err := s.withProfile(ctx, models.FeedKindList, nickname, query,
		func(ctx context.Context, q models.FeedQuery) (models.Feed, error) {
			return client.FetchListFeed(ctx, nickname, q)
		},
		client.FetchListProfile,
	)
	if err != nil {
		return models.FeedPage{}, fmt.Errorf("fetch list feed: %w", err)
	}

	return page, nil
}

// User returns a page of one of the per-user feeds together with the user
// profile. When the profile cannot be fetched the author name of the first
// entry stands in for it.
func (s *feedService) User(ctx context.Context, session *models.Session, nickname string, feedType models.UserFeedType, req models.PageRequest) (models.FeedPage, error) {
	if !feedType.Valid() {
		return models.FeedPage{}, fmt.Errorf("%w: unknown user feed %q", ErrInvalidDataProvided, feedType)
	}

	client := s.client(session)
	query := s.query(s.num(session), req)

	var fetch fetchFunc
	switch feedType {
	case models.UserFeedComments:
		fetch = func(ctx context.Context, q models.FeedQuery) (models.Feed, error) {
			return client.FetchUserCommentsFeed(ctx, nickname, q)
		}
	case models.UserFeedLikes:
		fetch = func(ctx context.Context, q models.FeedQuery) (models.Feed, error) {
			return client.FetchUserLikesFeed(ctx, nickname, q)
		}
	case models.UserFeedDiscussion:
		fetch = func(ctx context.Context, q models.FeedQuery) (models.Feed, error) {
			return client.FetchUserDiscussionFeed(ctx, nickname, q)
		}
	case models.UserFeedFriends:
		fetch = func(ctx context.Context, q models.FeedQuery) (models.Feed, error) {
			return client.FetchUserFriendsFeed(ctx, nickname, q)
		}
	default:
		fetch = func(ctx context.Context, q models.FeedQuery) (models.Feed, error) {
			return client.FetchUserFeed(ctx, nickname, q)
		}
	}

	page, err := s.withProfile(ctx, models.FeedKindUser, nickname, query, fetch, client.FetchUserProfile)
	if err != nil {
		return models.FeedPage{}, fmt.Errorf("fetch user feed: %w", err)
	}

	if page.Profile == nil {
		if name := firstAuthor(page); name != "" {
			page.Profile = &models.Profile{Nickname: nickname, Name: name}
			page.Title = name
		}
	}
	page.Type = feedType

	return page, nil
}

// Search runs query over the entries visible to the viewer.
func (s *feedService) Search(ctx context.Context, session *models.Session, query string, req models.PageRequest) (models.FeedPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.FeedPage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyQuery)
	}

	feedQuery := s.query(s.num(session), req)
	feed, err := s.client(session).Search(ctx, query, feedQuery)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "feedService.Search").Str("query", query).Msg("error searching")
		return models.FeedPage{}, fmt.Errorf("search: %w", err)
	}

	page := splitPage(models.FeedKindSearch, feedQuery, feed)
	page.Title = query
	return page, nil
}

// Entry returns a single-entry page.
func (s *feedService) Entry(ctx context.Context, session *models.Session, entryID string) (models.FeedPage, error) {
	if strings.TrimSpace(entryID) == "" {
		return models.FeedPage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyEntry)
	}

	entry, err := s.client(session).FetchEntry(ctx, entryID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "feedService.Entry").Str("entry", entryID).Msg("error fetching entry")
		return models.FeedPage{}, fmt.Errorf("fetch entry: %w", err)
	}

	return models.FeedPage{
		Kind:      models.FeedKindEntry,
		Title:     entry.Title,
		Entries:   []models.Entry{entry},
		Hidden:    []models.Entry{},
		Num:       1,
		Permalink: true,
	}, nil
}

// RoomsList returns the rooms the viewer belongs to.
func (s *feedService) RoomsList(ctx context.Context, session *models.Session) ([]models.RoomSummary, error) {
	profile, err := s.viewerProfile(ctx, session)
	if err != nil {
		return nil, err
	}
	if profile.Rooms == nil {
		return []models.RoomSummary{}, nil
	}
	return profile.Rooms, nil
}

// Lists returns the friend lists of the viewer.
func (s *feedService) Lists(ctx context.Context, session *models.Session) ([]models.ListSummary, error) {
	profile, err := s.viewerProfile(ctx, session)
	if err != nil {
		return nil, err
	}
	if profile.Lists == nil {
		return []models.ListSummary{}, nil
	}
	return profile.Lists, nil
}

func (s *feedService) viewerProfile(ctx context.Context, session *models.Session) (models.Profile, error) {
	if !session.Authenticated() {
		return models.Profile{}, ErrCredentialsRequired
	}

	profile, err := s.client(session).FetchUserProfile(ctx, session.Nickname())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "feedService.viewerProfile").Msg("error fetching viewer profile")
		return models.Profile{}, fmt.Errorf("fetch profile: %w", err)
	}

	return profile, nil
}

// withProfile fetches a feed page and the profile of its owner concurrently.
// A failed profile fetch leaves FeedPage.Profile nil.
func (s *feedService) withProfile(
	ctx context.Context,
	kind models.FeedKind,
	nickname string,
	query models.FeedQuery,
	fetch fetchFunc,
	fetchProfile func(ctx context.Context, nickname string) (models.Profile, error),
) (models.FeedPage, error) {
	log := logger.FromContext(ctx)

	var (
		feed       models.Feed
		profile    models.Profile
		profileErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		feed, err = fetch(gctx, query)
		return err
	})
	g.Go(func() error {
		profile, profileErr = fetchProfile(gctx, nickname)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Err(err).Str("func", "feedService.withProfile").Str("kind", string(kind)).Str("nickname", nickname).Msg("error fetching feed")
		return models.FeedPage{}, err
	}

	page := splitPage(kind, query, feed)
	page.Nickname = nickname
	if profileErr != nil {
		log.Warn().Err(profileErr).Str("kind", string(kind)).Str("nickname", nickname).Msg("profile unavailable")
		return page, nil
	}

	page.Profile = &profile
	page.Title = profile.Name
	return page, nil
}

func (s *feedService) client(session *models.Session) adapter.FriendFeed {
	if session.Authenticated() {
		return s.remote.As(session.Credentials)
	}
	return s.remote
}

func (s *feedService) num(session *models.Session) int {
	if session != nil && session.Settings.Num >= 1 && session.Settings.Num <= validators.MaxNum {
		return session.Settings.Num
	}
	return s.defaultNum
}

func (s *feedService) query(num int, req models.PageRequest) models.FeedQuery {
	return models.FeedQuery{
		Num:     num,
		Start:   max(req.Start, 0),
		Service: strings.TrimSpace(req.Service),
	}
}

func newPage(kind models.FeedKind, query models.FeedQuery) models.FeedPage {
	page := models.FeedPage{
		Kind:    kind,
		Entries: []models.Entry{},
		Hidden:  []models.Entry{},
		Start:   query.Start,
		Num:     query.Num,
		Service: query.Service,
	}
	if query.Start > 0 {
		page.HasPrevious = true
		page.Previous = max(query.Start-query.Num, 0)
	}
	return page
}

// splitPage moves hidden entries out of the page. The next offset does not
// depend on how many entries were hidden.
func splitPage(kind models.FeedKind, query models.FeedQuery, feed models.Feed) models.FeedPage {
	page := newPage(kind, query)
	for _, entry := range feed.Entries {
		if entry.Hidden {
			page.Hidden = append(page.Hidden, entry)
			continue
		}
		page.Entries = append(page.Entries, entry)
	}
	page.Next = query.Start + query.Num
	return page
}

// takeVisible walks entries in order until num visible ones are collected.
// It returns the visible and hidden entries walked and how many were walked.
func takeVisible(entries []models.Entry, num int) (visible, hidden []models.Entry, consumed int) {
	visible = []models.Entry{}
	hidden = []models.Entry{}
	for _, entry := range entries {
		if len(visible) == num {
			break
		}
		if entry.Hidden {
			hidden = append(hidden, entry)
		} else {
			visible = append(visible, entry)
		}
		consumed++
	}
	return visible, hidden, consumed
}

func countVisible(entries []models.Entry) int {
	n := 0
	for _, entry := range entries {
		if !entry.Hidden {
			n++
		}
	}
	return n
}

func firstAuthor(page models.FeedPage) string {
	switch {
	case len(page.Entries) > 0:
		return page.Entries[0].User.Name
	case len(page.Hidden) > 0:
		return page.Hidden[0].User.Name
	}
	return ""
}

func nonNil(entries []models.Entry) []models.Entry {
	if entries == nil {
		return []models.Entry{}
	}
	return entries
}
