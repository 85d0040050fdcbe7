package router_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/notifications/config"
	"github.com/Alijeyrad/notifications/internal/api/http/router"
	"github.com/Alijeyrad/notifications/internal/api/http/views"
	"github.com/Alijeyrad/notifications/internal/repo"
	"github.com/Alijeyrad/notifications/internal/service/notification"
	"github.com/Alijeyrad/notifications/internal/service/resolve"
	"github.com/Alijeyrad/notifications/internal/service/session"
	"github.com/Alijeyrad/notifications/pkg/database/dbtest"
	"github.com/Alijeyrad/notifications/pkg/observability"
	pasetotoken "github.com/Alijeyrad/notifications/pkg/paseto"
	"github.com/Alijeyrad/notifications/pkg/util/slug"
)

const base = "/inbox/notifications"

type harness struct {
	app    *fiber.App
	svc    notification.Service
	codec  slug.Codec
	tokens *pasetotoken.Manager
}

func newHarness(t *testing.T, policy notification.DeletePolicy) *harness {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.BasePath = base
	cfg.Server.LoginURL = "/accounts/login/"
	cfg.Server.AllowedHosts = []string{"example.com"}
	cfg.Authentication.CookieName = "access_token"
	cfg.Notifications.PaginateBy = 2
	cfg.Notifications.NumToFetch = 10

	db := dbtest.Open(t)
	svc := notification.New(db, policy)
	codec := slug.New(slug.DefaultOffset)

	reg := resolve.NewRegistry()
	resolve.RegisterTemplates(reg, []config.ObjectTypeConfig{{Name: "user", Label: "User {id}"}}, codec, nil)

	keys := pasetotoken.NewLocalKeys()
	tokens, err := pasetotoken.New(pasetotoken.Config{Mode: keys.Mode, Issuer: "host", Audience: "notifications"}, keys)
	require.NoError(t, err)

	metrics, err := observability.NewNotificationMetrics()
	require.NoError(t, err)

	r := router.NewRouter(router.Params{
		Cfg:             cfg,
		DB:              db,
		NotificationSvc: svc,
		Projector:       resolve.NewProjector(reg, codec),
		Authenticator:   session.NewAuthenticator(tokens, nil),
		Metrics:         metrics,
	})
	app := fiber.New(fiber.Config{Views: views.Engine()})
	r.Register(app)

	return &harness{app: app, svc: svc, codec: codec, tokens: tokens}
}

func (h *harness) seed(t *testing.T, recipient uuid.UUID, n int) []*repo.Notification {
	t.Helper()
	var out []*repo.Notification
	for i := 0; i < n; i++ {
		created, err := h.svc.Notify(context.Background(), []uuid.UUID{recipient}, notification.Payload{
			Actor: notification.Ref{Type: "user", ID: "1"},
			Verb:  "poked you",
		})
		require.NoError(t, err)
		out = append(out, created...)
	}
	return out
}

func (h *harness) do(t *testing.T, user uuid.UUID, target string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if user != uuid.Nil {
		tok, err := h.tokens.Issue(user, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := h.app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestAnonymousJSONGetsZeroPayloads(t *testing.T) {
	h := newHarness(t, notification.DeleteHard)
	h.seed(t, uuid.New(), 2)

	var count map[string]int
	resp := h.do(t, uuid.Nil, base+"/api/unread_count/")
	assert.Contains(t, resp.Header.Get(fiber.HeaderCacheControl), "no-store")
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderExpires))
	decode(t, resp, &count)
	assert.Equal(t, map[string]int{"unread_count": 0}, count)

	tests := []struct {
		path string
		want string
	}{
		{"/api/all_count/", `{"all_count":0}`},
		{"/api/unread_list/", `{"unread_count":0,"unread_list":[]}`},
		{"/api/all_list/", `{"all_count":0,"all_list":[]}`},
	}
	for _, tt := range tests {
		resp := h.do(t, uuid.Nil, base+tt.path)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, tt.path)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, tt.want, string(body), tt.path)
	}
}

func TestAnonymousPageRedirectsToLogin(t *testing.T) {
	h := newHarness(t, notification.DeleteHard)

	resp := h.do(t, uuid.Nil, base+"/unread/")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get(fiber.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "/accounts/login/", loc.Path)
	assert.Equal(t, base+"/unread/", loc.Query().Get("next"))
}

func TestCookieAuthentication(t *testing.T) {
	h := newHarness(t, notification.DeleteHard)
	alice := uuid.New()
	h.seed(t, alice, 1)

	tok, err := h.tokens.Issue(alice, nil)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, base+"/api/unread_count/", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tok})
	resp, err := h.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var count map[string]int
	decode(t, resp, &count)
	assert.Equal(t, 1, count["unread_count"])
}

func TestUnreadListMarksAfterProjecting(t *testing.T) {
	h := newHarness(t, notification.DeleteHard)
	alice := uuid.New()
	h.seed(t, alice, 3)
	h.seed(t, uuid.New(), 1)

	var body struct {
		UnreadCount int            `json:"unread_count"`
		UnreadList  []resolve.Item `json:"unread_list"`
	}
	decode(t, h.do(t, alice, base+"/api/unread_list/?max=2&mark_as_read=true"), &body)

	require.Len(t, body.UnreadList, 2)
	for _, it := range body.UnreadList {
		assert.True(t, it.Unread)
		assert.Equal(t, "User 1", it.Actor)
		assert.Equal(t, alice, it.Recipient)
	}
	assert.Equal(t, 1, body.UnreadCount)

	var all map[string]int
	decode(t, h.do(t, alice, base+"/api/all_count/"), &all)
	assert.Equal(t, 3, all["all_count"])
}

func TestUnreadListSkipsReadNotifications(t *testing.T) {
	h := newHarness(t, notification.DeleteHard)
	alice := uuid.New()
	ns := h.seed(t, alice, 5)
	for _, n := range ns[:2] {
		require.NoError(t, h.svc.MarkAsRead(context.Background(), alice, n.ID))
	}

	var body struct {
		UnreadCount int            `json:"unread_count"`
		UnreadList  []resolve.Item `json:"unread_list"`
	}
	decode(t, h.do(t, alice, base+"/api/unread_list/"), &body)

	assert.Equal(t, 3, body.UnreadCount)
	require.Len(t, body.UnreadList, 3)
	for _, it := range body.UnreadList {
		assert.True(t, it.Unread)
	}
}

func TestLiveListMaxFallsBackToDefault(t *testing.T) {
	h := newHarness(t, notification.DeleteHard)
	alice := uuid.New()
	h.seed(t, alice, 3)

	for _, v := range []string{"0", "101", "lots"} {
		var body struct {
			AllList []resolve.Item `json:"all_list"`
		}
		decode(t, h.do(t, alice, base+"/api/all_list/?max="+v), &body)
		assert.Len(t, body.AllList, 3, v)
	}

	var body struct {
		UnreadCount int `json:"unread_count"`
	}
	decode(t, h.do(t, alice, base+"/api/unread_list/?mark_as_read=0"), &body)
	assert.Equal(t, 3, body.UnreadCount)
}

func TestMarkAsReadRedirects(t *testing.T) {
	h := newHarness(t, notification.DeleteHard)
	alice := uuid.New()
	n := h.seed(t, alice, 1)[0]
	s := h.codec.Encode(n.ID)

	tests := []struct {
		name string
		next string
		want string
	}{
		{"no next", "", base + "/unread/"},
		{"relative next", "/home/", "/home/"},
		{"allowed host", "https://example.com/x", "https://example.com/x"},
		{"foreign host", "https://evil.com/x", base + "/unread/"},
		{"scheme relative", "//evil.com/x", base + "/unread/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := base + "/mark-as-read/" + s + "/"
			if tt.next != "" {
				target += "?next=" + url.QueryEscape(tt.next)
			}
			resp := h.do(t, alice, target)
			assert.Equal(t, fiber.StatusFound, resp.StatusCode)
			assert.Equal(t, tt.want, resp.Header.Get(fiber.HeaderLocation))
		})
	}

	got, err := h.svc.Get(context.Background(), alice, n.ID)
	require.NoError(t, err)
	assert.False(t, got.Unread)

	resp := h.do(t, alice, base+"/mark-as-unread/"+s+"/")
	assert.Equal(t, base+"/unread/", resp.Header.Get(fiber.HeaderLocation))
	got, err = h.svc.Get(context.Background(), alice, n.ID)
	require.NoError(t, err)
	assert.True(t, got.Unread)
}

func TestUpperCaseSlugResolves(t *testing.T) {
	h := newHarness(t, notification.DeleteHard)
	alice := uuid.New()
	n := h.seed(t, alice, 1)[0]

	resp := h.do(t, alice, base+"/mark-as-read/"+strings.ToUpper(h.codec.Encode(n.ID))+"/")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	got, err := h.svc.Get(context.Background(), alice, n.ID)
	require.NoError(t, err)
	assert.False(t, got.Unread)
}

func TestForeignOrBadSlugIsNotFound(t *testing.T) {
	h := newHarness(t, notification.DeleteHard)
	alice, bob := uuid.New(), uuid.New()
	bobs := h.seed(t, bob, 1)[0]

	for _, path := range []string{
		"/mark-as-read/" + h.codec.Encode(bobs.ID) + "/",
		"/delete/" + h.codec.Encode(bobs.ID) + "/",
		"/mark-as-read/not-a-slug/",
		"/mark-as-unread/" + h.codec.Encode(9999) + "/",
	} {
		resp := h.do(t, alice, base+path)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, path)
	}

	got, err := h.svc.Get(context.Background(), bob, bobs.ID)
	require.NoError(t, err)
	assert.True(t, got.Unread)
}

func TestDeleteAndMarkAll(t *testing.T) {
	for _, policy := range []notification.DeletePolicy{notification.DeleteHard, notification.DeleteSoft} {
		t.Run(policy.String(), func(t *testing.T) {
			h := newHarness(t, policy)
			alice := uuid.New()
			ns := h.seed(t, alice, 3)

			resp := h.do(t, alice, base+"/delete/"+h.codec.Encode(ns[0].ID)+"/")
			assert.Equal(t, fiber.StatusFound, resp.StatusCode)
			assert.Equal(t, base+"/", resp.Header.Get(fiber.HeaderLocation))

			resp = h.do(t, alice, base+"/mark-all-as-read/")
			assert.Equal(t, base+"/unread/", resp.Header.Get(fiber.HeaderLocation))

			var counts map[string]int
			decode(t, h.do(t, alice, base+"/api/all_count/"), &counts)
			assert.Equal(t, 2, counts["all_count"])
			decode(t, h.do(t, alice, base+"/api/unread_count/"), &counts)
			assert.Equal(t, 0, counts["unread_count"])
		})
	}
}

func TestListPages(t *testing.T) {
	h := newHarness(t, notification.DeleteHard)
	alice := uuid.New()
	h.seed(t, alice, 3)

	resp := h.do(t, alice, base+"/")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "User 1")
	assert.Contains(t, string(body), "Page 1 of 2")

	assert.Equal(t, fiber.StatusOK, h.do(t, alice, base+"/?page=last").StatusCode)
	assert.Equal(t, fiber.StatusOK, h.do(t, alice, base+"/unread/?page=2").StatusCode)
	assert.Equal(t, fiber.StatusNotFound, h.do(t, alice, base+"/?page=3").StatusCode)
	assert.Equal(t, fiber.StatusNotFound, h.do(t, alice, base+"/?page=abc").StatusCode)

	// An empty inbox still renders its first page.
	assert.Equal(t, fiber.StatusOK, h.do(t, uuid.New(), base+"/unread/").StatusCode)
}

func TestHealthRoutes(t *testing.T) {
	h := newHarness(t, notification.DeleteHard)
	assert.Equal(t, fiber.StatusOK, h.do(t, uuid.Nil, "/livez").StatusCode)
	assert.Equal(t, fiber.StatusOK, h.do(t, uuid.Nil, "/readyz").StatusCode)
}
