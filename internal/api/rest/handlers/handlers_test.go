package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/rest/modeldto"
	cacheInMemory "github.com/danilovkiri/dk_go_sharegourmet/internal/cache/inmemory"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/mocks"
	serviceErrors "github.com/danilovkiri/dk_go_sharegourmet/internal/service/errors"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelauth"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelshop"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/normalizer"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/reconciler/v1"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/secretary/v1"
	storageErrors "github.com/danilovkiri/dk_go_sharegourmet/internal/storage/errors"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/storage/inmemory"
)

type HandlersTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	searcher *mocks.MockSearcher
	storage  *inmemory.Storage
	handler  *ShopHandler
	router   *chi.Mux
	ts       *httptest.Server
	token    string
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.searcher = mocks.NewMockSearcher(suite.ctrl)
	suite.storage = inmemory.InitStorage(zap.NewNop())
	rec, err := reconciler.InitReconciler(suite.storage, suite.searcher, cacheInMemory.InitCache(0), zap.NewNop())
	suite.Require().NoError(err)
	suite.handler, err = InitShopHandler(rec, zap.NewNop())
	suite.Require().NoError(err)
	sec := secretary.NewSecretaryService("test_secret")
	suite.token, err = sec.Sign("user1")
	suite.Require().NoError(err)

	suite.router = chi.NewRouter()
	suite.router.Use(middleware.NewAuthHandler(sec, zap.NewNop()).AuthHandle)
	suite.router.Post("/api/hotpepper", suite.handler.HandleSearch())
	suite.router.Get("/api/shops/{id}", suite.handler.HandleGetShop())
	suite.router.Get("/api/shops/{id}/memos", suite.handler.HandleListMemos())
	suite.router.Post("/api/shops/{id}/memos", suite.handler.HandleAddMemo())
	suite.router.Delete("/api/memos/{memoID}", suite.handler.HandleDeleteMemo())
	suite.router.Get("/api/groups", suite.handler.HandleListGroups())
	suite.router.Post("/api/groups", suite.handler.HandleCreateGroup())
	suite.router.Get("/api/groups/{groupID}/shops", suite.handler.HandleListShared())
	suite.router.Post("/api/groups/{groupID}/shops", suite.handler.HandleShare())
	suite.router.Get("/api/private/shops", suite.handler.HandleListPrivate())
	suite.router.Post("/api/private/shops", suite.handler.HandleSave())
	suite.router.Post("/api/internal/backfill", suite.handler.HandleBackfill())
	suite.router.Get("/ping", suite.handler.HandlePingDB())
	suite.ts = httptest.NewServer(suite.router)
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.ts.Close()
}

// TestHandlersTestSuite initializes test suite for being accessible
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) client() *resty.Client {
	return resty.New().SetBaseURL(suite.ts.URL)
}

func (suite *HandlersTestSuite) authorized() *resty.Request {
	return suite.client().R().SetAuthToken(suite.token)
}

func (suite *HandlersTestSuite) groupID() string {
	res, err := suite.authorized().SetBody(modeldto.RequestGroup{Name: "Friday lunch"}).Post("/api/groups")
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusCreated, res.StatusCode())
	var group modelshop.Group
	suite.Require().NoError(json.Unmarshal(res.Body(), &group))
	return group.ID
}

func raw(id, name string) modelshop.RawShop {
	return modelshop.RawShop{ID: id, Name: name, Genre: modelshop.Structured("Ramen", "G013")}
}

func (suite *HandlersTestSuite) TestHandleSearch() {
	suite.searcher.EXPECT().Search(gomock.Any(), modelshop.Query{Keyword: "ramen", Genre: "G013"}).
		Return([]modelshop.RawShop{raw("J001", "Ramen Taro")}, nil)
	suite.searcher.EXPECT().Search(gomock.Any(), modelshop.Query{Keyword: "ramen", ID: "J002"}).
		Return([]modelshop.RawShop{raw("J002", "Ramen Jiro")}, nil)
	suite.searcher.EXPECT().Search(gomock.Any(), modelshop.Query{Keyword: "empty"}).
		Return([]modelshop.RawShop{}, &serviceErrors.UpstreamMalformedError{})
	suite.searcher.EXPECT().Search(gomock.Any(), modelshop.Query{Keyword: "down"}).
		Return(nil, &serviceErrors.UpstreamUnavailableError{Status: http.StatusServiceUnavailable, Details: "maintenance"})

	type want struct {
		code int
		body string
	}
	tests := []struct {
		name string
		body string
		want want
	}{
		{
			name: "filters",
			body: `{"keyword":"ramen","genre":"G013"}`,
			want: want{code: http.StatusOK, body: "Ramen Taro"},
		},
		{
			name: "id with ids keeps single lookup",
			body: `{"keyword":"ramen","id":"J002","ids":["A","B"]}`,
			want: want{code: http.StatusOK, body: "Ramen Jiro"},
		},
		{
			name: "malformed upstream",
			body: `{"keyword":"empty"}`,
			want: want{code: http.StatusOK, body: "[]"},
		},
		{
			name: "upstream unavailable",
			body: `{"keyword":"down"}`,
			want: want{code: http.StatusBadGateway, body: `"details":"maintenance"`},
		},
		{
			name: "invalid body",
			body: `{"keyword":`,
			want: want{code: http.StatusBadRequest, body: `"error":"invalid request body"`},
		},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			res, err := suite.client().R().SetHeader("Content-Type", "application/json").SetBody(tt.body).Post("/api/hotpepper")
			require.NoError(t, err)
			assert.Equal(t, tt.want.code, res.StatusCode())
			assert.Contains(t, string(res.Body()), tt.want.body)
		})
	}
}

func (suite *HandlersTestSuite) TestHandleSearch_Bulk() {
	suite.searcher.EXPECT().LookupBulk(gomock.Any(), []string{"A", "B", "C"}).Return(map[string]modelshop.RawShop{
		"A": raw("A", "shop A"),
		"C": raw("C", "shop C"),
	})
	res, err := suite.client().R().SetBody(modeldto.RequestSearch{IDs: []string{"A", "B", "C"}}).Post("/api/hotpepper")
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, res.StatusCode())
	var got map[string]modelshop.Shop
	suite.Require().NoError(json.Unmarshal(res.Body(), &got))
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), "shop C", got["C"].Name)
	assert.NotContains(suite.T(), got, "B")
}

func (suite *HandlersTestSuite) TestHandleGetShop() {
	suite.searcher.EXPECT().Lookup(gomock.Any(), "J001234567").Return(raw("J001234567", "Ramen Taro"), nil).Times(1)
	suite.searcher.EXPECT().Lookup(gomock.Any(), "J404").Return(modelshop.RawShop{}, &serviceErrors.UpstreamMalformedError{})
	suite.searcher.EXPECT().Lookup(gomock.Any(), "J502").Return(modelshop.RawShop{}, &serviceErrors.UpstreamUnavailableError{Status: 500})

	tests := []struct {
		name  string
		id    string
		query string
		auth  bool
		code  int
		state string
	}{
		{name: "loaded from gateway", id: "J001234567", code: http.StatusOK, state: "loaded"},
		{name: "loaded from cache", id: "J001234567", code: http.StatusOK, state: "loaded"},
		{name: "not found", id: "J404", code: http.StatusNotFound, state: "not_found"},
		{name: "upstream error", id: "J502", code: http.StatusBadGateway, state: "error"},
		{name: "private without user", id: "J001234567", query: "type=private", code: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			req := suite.client().R()
			if tt.auth {
				req.SetAuthToken(suite.token)
			}
			res, err := req.SetQueryString(tt.query).Get("/api/shops/" + tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.code, res.StatusCode())
			if tt.state == "" {
				return
			}
			var body struct {
				State string          `json:"state"`
				Shop  *modelshop.Shop `json:"shop"`
			}
			require.NoError(t, json.Unmarshal(res.Body(), &body))
			assert.Equal(t, tt.state, body.State)
			if tt.state == "loaded" {
				require.NotNil(t, body.Shop)
				assert.Equal(t, normalizer.PlaceholderImageURL, body.Shop.ImageURL)
			}
		})
	}
}

func (suite *HandlersTestSuite) TestHandleGetShop_Persist() {
	groupID := suite.groupID()
	suite.searcher.EXPECT().Lookup(gomock.Any(), "J001").Return(raw("J001", "Ramen Taro"), nil).Times(1)

	res, err := suite.authorized().SetQueryParams(map[string]string{"group": groupID, "persist": "true"}).Get("/api/shops/J001")
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, res.StatusCode())
	var detail modelshop.Detail
	suite.Require().NoError(json.Unmarshal(res.Body(), &detail))
	assert.True(suite.T(), detail.Persisted)

	res, err = suite.authorized().SetQueryParam("group", groupID).Get("/api/shops/J001")
	suite.Require().NoError(err)
	suite.Require().NoError(json.Unmarshal(res.Body(), &detail))
	assert.Equal(suite.T(), modelshop.SourceStore, detail.Source)
}

func (suite *HandlersTestSuite) TestHandleShare() {
	groupID := suite.groupID()
	shop := normalizer.Normalize(raw("J001", "Ramen Taro"))

	res, err := suite.client().R().SetBody(shop).Post("/api/groups/" + groupID + "/shops")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusUnauthorized, res.StatusCode())
	rows, err := suite.storage.RetrieveSharedByGroup(context.Background(), groupID)
	suite.Require().NoError(err)
	assert.Empty(suite.T(), rows)

	var first, second modelshop.SharedShop
	res, err = suite.authorized().SetBody(shop).Post("/api/groups/" + groupID + "/shops")
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusCreated, res.StatusCode())
	suite.Require().NoError(json.Unmarshal(res.Body(), &first))

	shop.Name = "Ramen Taro Honten"
	res, err = suite.authorized().SetBody(shop).Post("/api/groups/" + groupID + "/shops")
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusCreated, res.StatusCode())
	suite.Require().NoError(json.Unmarshal(res.Body(), &second))
	assert.Equal(suite.T(), first.RowID, second.RowID)

	res, err = suite.client().R().Get("/api/groups/" + groupID + "/shops")
	suite.Require().NoError(err)
	var shops []modelshop.SharedShop
	suite.Require().NoError(json.Unmarshal(res.Body(), &shops))
	suite.Require().Len(shops, 1)
	assert.Equal(suite.T(), "Ramen Taro Honten", shops[0].Shop.Name)

	res, err = suite.authorized().SetBody(shop).Post("/api/groups/unknown/shops")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusInternalServerError, res.StatusCode())
	var errBody modeldto.ResponseError
	suite.Require().NoError(json.Unmarshal(res.Body(), &errBody))
	assert.Equal(suite.T(), "share failed", errBody.Error)

	res, err = suite.authorized().SetBody(`{"name":`).Post("/api/groups/" + groupID + "/shops")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusBadRequest, res.StatusCode())
}

func (suite *HandlersTestSuite) TestHandleSave() {
	shop := normalizer.Normalize(raw("J001", "Ramen Taro"))
	res, err := suite.client().R().SetBody(shop).Post("/api/private/shops")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusUnauthorized, res.StatusCode())

	res, err = suite.authorized().SetBody(shop).Post("/api/private/shops")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusCreated, res.StatusCode())

	res, err = suite.authorized().Get("/api/private/shops")
	suite.Require().NoError(err)
	var shops []modelshop.PrivateShop
	suite.Require().NoError(json.Unmarshal(res.Body(), &shops))
	suite.Require().Len(shops, 1)
	assert.Equal(suite.T(), shop, shops[0].Shop)

	res, err = suite.authorized().Get("/api/shops/J001?type=private")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
}

func (suite *HandlersTestSuite) TestGroupsAndMemos() {
	res, err := suite.client().R().Get("/api/groups")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusUnauthorized, res.StatusCode())

	res, err = suite.authorized().SetBody(modeldto.RequestGroup{Name: " "}).Post("/api/groups")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusBadRequest, res.StatusCode())

	groupID := suite.groupID()
	res, err = suite.authorized().Get("/api/groups")
	suite.Require().NoError(err)
	var groups []modelshop.Group
	suite.Require().NoError(json.Unmarshal(res.Body(), &groups))
	suite.Require().Len(groups, 1)
	assert.Equal(suite.T(), groupID, groups[0].ID)

	var shared modelshop.SharedShop
	res, err = suite.authorized().SetBody(normalizer.Normalize(raw("J001", "Ramen Taro"))).Post("/api/groups/" + groupID + "/shops")
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusCreated, res.StatusCode())
	suite.Require().NoError(json.Unmarshal(res.Body(), &shared))

	res, err = suite.authorized().SetBody(modeldto.RequestMemo{Content: "orphan"}).Post("/api/shops/unknown-row/memos")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusNotFound, res.StatusCode())

	var memo modelshop.Memo
	for _, content := range []string{"great noodles", "closed on mondays"} {
		res, err = suite.authorized().SetBody(modeldto.RequestMemo{Content: content}).Post("/api/shops/" + shared.RowID + "/memos")
		suite.Require().NoError(err)
		suite.Require().Equal(http.StatusCreated, res.StatusCode())
		suite.Require().NoError(json.Unmarshal(res.Body(), &memo))
	}

	res, err = suite.client().R().Get("/api/shops/" + shared.RowID + "/memos")
	suite.Require().NoError(err)
	var memos []modelshop.Memo
	suite.Require().NoError(json.Unmarshal(res.Body(), &memos))
	suite.Require().Len(memos, 2)
	assert.Equal(suite.T(), "closed on mondays", memos[0].Content)

	res, err = suite.client().R().Delete("/api/memos/" + memo.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusUnauthorized, res.StatusCode())

	res, err = suite.authorized().Delete("/api/memos/" + memo.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusNoContent, res.StatusCode())

	res, err = suite.authorized().Delete("/api/memos/" + memo.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusNotFound, res.StatusCode())
}

func (suite *HandlersTestSuite) TestHandleBackfill() {
	groupID := suite.groupID()
	res, err := suite.authorized().SetBody(normalizer.Normalize(raw("J001", "Ramen Taro"))).Post("/api/groups/" + groupID + "/shops")
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusCreated, res.StatusCode())

	withCoords := raw("J001", "Ramen Taro")
	withCoords.Lat = modelshop.Coordinate{Raw: "35.6", Present: true}
	withCoords.Lng = modelshop.Coordinate{Raw: "139.7", Present: true}
	suite.searcher.EXPECT().LookupBulk(gomock.Any(), []string{"J001"}).Return(map[string]modelshop.RawShop{"J001": withCoords})

	res, err = suite.client().R().Post("/api/internal/backfill")
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, res.StatusCode())
	assert.JSONEq(suite.T(), `{"updated":1}`, string(res.Body()))
}

func (suite *HandlersTestSuite) TestHandlePingDB() {
	res, err := suite.client().R().Get("/ping")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
}

func TestInitShopHandler(t *testing.T) {
	_, err := InitShopHandler(nil, nil)
	assert.Equal(t, "nil Reconciler Service was passed to Shop Handler initializer", err.Error())
}

func TestWriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockReconciler(ctrl)
	handler, err := InitShopHandler(rec, zap.NewNop())
	require.NoError(t, err)
	router := chi.NewRouter()
	router.Get("/api/private/shops", handler.HandleListPrivate())
	router.Get("/ping", handler.HandlePingDB())
	ts := httptest.NewServer(router)
	defer ts.Close()

	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "store timeout", err: &serviceErrors.PersistenceError{Op: "list private", Err: &storageErrors.ContextTimeoutExceededError{Err: context.DeadlineExceeded}}, code: http.StatusGatewayTimeout},
		{name: "store failure", err: &serviceErrors.PersistenceError{Op: "list private", Err: &storageErrors.ExecutionPSQLError{Err: errors.New("boom")}}, code: http.StatusInternalServerError},
		{name: "unauthenticated", err: &serviceErrors.AuthenticationRequiredError{Op: "list private"}, code: http.StatusUnauthorized},
		{name: "unexpected", err: errors.New("unexpected"), code: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec.EXPECT().ListPrivate(gomock.Any(), modelauth.Anonymous()).Return(nil, tt.err)
			res, err := resty.New().R().Get(ts.URL + "/api/private/shops")
			require.NoError(t, err)
			assert.Equal(t, tt.code, res.StatusCode())
		})
	}

	rec.EXPECT().PingDB(gomock.Any()).Return(errors.New("connection refused"))
	res, err := resty.New().R().Get(ts.URL + "/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode())
}
