package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/grpc/interceptors"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/grpc/shopservice"
	cacheInMemory "github.com/danilovkiri/dk_go_sharegourmet/internal/cache/inmemory"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/mocks"
	serviceErrors "github.com/danilovkiri/dk_go_sharegourmet/internal/service/errors"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelshop"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/normalizer"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/reconciler/v1"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/secretary/v1"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/storage/inmemory"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/storage/modelstorage"
)

type ServerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	searcher *mocks.MockSearcher
	storage  *inmemory.Storage
	s        *grpc.Server
	conn     *grpc.ClientConn
	client   shopservice.ShopServiceClient
	token    string
}

func (suite *ServerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.searcher = mocks.NewMockSearcher(suite.ctrl)
	suite.storage = inmemory.InitStorage(zap.NewNop())
	rec, err := reconciler.InitReconciler(suite.storage, suite.searcher, cacheInMemory.InitCache(0), zap.NewNop())
	suite.Require().NoError(err)
	server, err := InitServer(rec, zap.NewNop())
	suite.Require().NoError(err)
	sec := secretary.NewSecretaryService("test_secret")
	suite.token, err = sec.Sign("user1")
	suite.Require().NoError(err)

	listen := bufconn.Listen(1 << 20)
	suite.s = NewGRPCServer(server, sec, zap.NewNop())
	go func() {
		_ = suite.s.Serve(listen)
	}()
	suite.conn, err = grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return listen.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	suite.Require().NoError(err)
	suite.client = shopservice.NewShopServiceClient(suite.conn)
}

func (suite *ServerTestSuite) TearDownTest() {
	_ = suite.conn.Close()
	suite.s.Stop()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (suite *ServerTestSuite) authorized() context.Context {
	md := metadata.New(map[string]string{interceptors.AuthKey: "Bearer " + suite.token})
	return metadata.NewOutgoingContext(context.Background(), md)
}

func (suite *ServerTestSuite) TestGetUptimeAndPing() {
	_, err := suite.client.GetUptime(context.Background(), &shopservice.GetUptimeRequest{})
	suite.NoError(err)
	_, err = suite.client.PingDB(context.Background(), &shopservice.PingDBRequest{})
	suite.NoError(err)
}

func (suite *ServerTestSuite) TestSearch() {
	suite.searcher.EXPECT().Search(gomock.Any(), modelshop.Query{Keyword: "ramen"}).
		Return([]modelshop.RawShop{{ID: "J001", Name: "Ramen Taro"}}, nil)
	suite.searcher.EXPECT().Search(gomock.Any(), modelshop.Query{Keyword: "down"}).
		Return(nil, &serviceErrors.UpstreamUnavailableError{Status: 503})
	suite.searcher.EXPECT().LookupBulk(gomock.Any(), []string{"A", "B"}).
		Return(map[string]modelshop.RawShop{"A": {ID: "A", Name: "shop A"}})

	resp, err := suite.client.Search(context.Background(), &shopservice.SearchRequest{Keyword: "ramen"})
	suite.Require().NoError(err)
	suite.Require().Len(resp.Shops, 1)
	assert.Equal(suite.T(), normalizer.PlaceholderImageURL, resp.Shops[0].ImageURL)
	assert.Equal(suite.T(), normalizer.UnknownGenre, resp.Shops[0].Genre)

	_, err = suite.client.Search(context.Background(), &shopservice.SearchRequest{Keyword: "down"})
	assert.Equal(suite.T(), codes.Unavailable, status.Code(err))

	resp, err = suite.client.Search(context.Background(), &shopservice.SearchRequest{IDs: []string{"A", "B"}})
	suite.Require().NoError(err)
	assert.Len(suite.T(), resp.ByID, 1)
	assert.Equal(suite.T(), "shop A", resp.ByID["A"].Name)
}

func (suite *ServerTestSuite) TestResolve() {
	suite.searcher.EXPECT().Lookup(gomock.Any(), "J001").Return(modelshop.RawShop{ID: "J001", Name: "Ramen Taro"}, nil)
	suite.searcher.EXPECT().Lookup(gomock.Any(), "J404").Return(modelshop.RawShop{}, &serviceErrors.NotFoundError{ID: "J404"})
	suite.searcher.EXPECT().Lookup(gomock.Any(), "J502").Return(modelshop.RawShop{}, &serviceErrors.UpstreamUnavailableError{Status: 500})

	resp, err := suite.client.Resolve(context.Background(), &shopservice.ResolveRequest{ID: "J001"})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), modelshop.StateLoaded, resp.Detail.State)
	suite.Require().NotNil(resp.Detail.Shop)
	assert.Equal(suite.T(), normalizer.PlaceholderImageURL, resp.Detail.Shop.ImageURL)

	tests := []struct {
		name    string
		ctx     context.Context
		request *shopservice.ResolveRequest
		code    codes.Code
	}{
		{name: "not found", ctx: context.Background(), request: &shopservice.ResolveRequest{ID: "J404"}, code: codes.NotFound},
		{name: "upstream error", ctx: context.Background(), request: &shopservice.ResolveRequest{ID: "J502"}, code: codes.Unavailable},
		{name: "empty id", ctx: context.Background(), request: &shopservice.ResolveRequest{ID: " "}, code: codes.InvalidArgument},
		{name: "private without user", ctx: context.Background(), request: &shopservice.ResolveRequest{ID: "J001", Private: true}, code: codes.Unauthenticated},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.client.Resolve(tt.ctx, tt.request)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func (suite *ServerTestSuite) TestShareAndSave() {
	group, err := suite.storage.DumpGroup(context.Background(), modelstorage.GroupRow{Name: "Friday lunch", CreatedBy: "user1"})
	suite.Require().NoError(err)
	shop := normalizer.Normalize(modelshop.RawShop{ID: "J001", Name: "Ramen Taro"})

	_, err = suite.client.Share(context.Background(), &shopservice.ShareRequest{GroupID: group.ID, Shop: shop})
	assert.Equal(suite.T(), codes.Unauthenticated, status.Code(err))
	rows, err := suite.storage.RetrieveSharedByGroup(context.Background(), group.ID)
	suite.Require().NoError(err)
	assert.Empty(suite.T(), rows)

	shared, err := suite.client.Share(suite.authorized(), &shopservice.ShareRequest{GroupID: group.ID, Shop: shop})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "user1", shared.Shared.UserID)
	again, err := suite.client.Share(suite.authorized(), &shopservice.ShareRequest{GroupID: group.ID, Shop: shop})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), shared.Shared.RowID, again.Shared.RowID)

	_, err = suite.client.Share(suite.authorized(), &shopservice.ShareRequest{GroupID: "unknown", Shop: shop})
	assert.Equal(suite.T(), codes.Internal, status.Code(err))

	saved, err := suite.client.Save(suite.authorized(), &shopservice.SaveRequest{Shop: shop})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), shop, saved.Saved.Shop)

	resolved, err := suite.client.Resolve(suite.authorized(), &shopservice.ResolveRequest{ID: "J001", Private: true})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), modelshop.SourceStore, resolved.Detail.Source)
}

func (suite *ServerTestSuite) TestRejectedToken() {
	md := metadata.New(map[string]string{interceptors.AuthKey: "Bearer forged"})
	_, err := suite.client.PingDB(metadata.NewOutgoingContext(context.Background(), md), &shopservice.PingDBRequest{})
	assert.Equal(suite.T(), codes.Unauthenticated, status.Code(err))
}
