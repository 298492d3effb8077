package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CompressTestSuite struct {
	suite.Suite
	router *chi.Mux
	ts     *httptest.Server
}

func (suite *CompressTestSuite) SetupTest() {
	suite.router = chi.NewRouter()
	suite.ts = httptest.NewServer(suite.router)
}

func (suite *CompressTestSuite) TearDownTest() {
	suite.ts.Close()
}

func TestCompressTestSuite(t *testing.T) {
	suite.Run(t, new(CompressTestSuite))
}

func (suite *CompressTestSuite) TestCompressHandle() {
	suite.router.Use(CompressHandle)
	suite.router.Get("/api/shops", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"J001"}]`))
	})

	tests := []struct {
		name              string
		expectedEncoding  string
		acceptedEncodings []string
	}{
		{
			name:              "no encoding",
			acceptedEncodings: nil,
			expectedEncoding:  "",
		},
		{
			name:              "gzip encoding",
			acceptedEncodings: []string{"gzip"},
			expectedEncoding:  "gzip",
		},
		{
			name:              "gzip among others",
			acceptedEncodings: []string{"br", "gzip"},
			expectedEncoding:  "gzip",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			client := resty.New()
			res, err := client.R().SetHeader("Accept-Encoding", strings.Join(tt.acceptedEncodings, ",")).Get(suite.ts.URL + "/api/shops")
			require.NoError(t, err)
			assert.Equal(t, tt.expectedEncoding, res.Header().Get("Content-Encoding"))
			if tt.expectedEncoding == "gzip" {
				gz, err := gzip.NewReader(bytes.NewReader(res.Body()))
				require.NoError(t, err)
				body, err := io.ReadAll(gz)
				require.NoError(t, err)
				assert.Equal(t, `[{"id":"J001"}]`, string(body))
			}
		})
	}
}

func (suite *CompressTestSuite) TestCompressHandle_SkipsBinary() {
	suite.router.Use(CompressHandle)
	suite.router.Get("/logo.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("\x89PNG"))
	})
	res, err := resty.New().R().SetHeader("Accept-Encoding", "gzip").Get(suite.ts.URL + "/logo.png")
	suite.Require().NoError(err)
	assert.Empty(suite.T(), res.Header().Get("Content-Encoding"))
	assert.Equal(suite.T(), "\x89PNG", string(res.Body()))
}

func TestHasToken(t *testing.T) {
	assert.True(t, hasToken("gzip", "gzip"))
	assert.True(t, hasToken("br, GZIP;q=0.8", "gzip"))
	assert.False(t, hasToken("x-gzip-like", "gzip"))
	assert.False(t, hasToken("", "gzip"))
}

func (suite *CompressTestSuite) TestDecompressHandle() {
	suite.router.Use(DecompressHandle)
	suite.router.Post("/api/hotpepper", func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(b)
	})

	tests := []struct {
		name          string
		queryEncoding string
		payload       string
		code          int
	}{
		{
			name:          "no encoding",
			queryEncoding: "",
			payload:       `{"keyword":"ramen"}`,
			code:          http.StatusOK,
		},
		{
			name:          "gzip encoding",
			queryEncoding: "gzip",
			payload:       `{"id":"J001234567"}`,
			code:          http.StatusOK,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			payload := tt.payload
			if tt.queryEncoding == "gzip" {
				var b bytes.Buffer
				gz := gzip.NewWriter(&b)
				_, err := gz.Write([]byte(tt.payload))
				require.NoError(t, err)
				require.NoError(t, gz.Close())
				payload = b.String()
			}
			res, err := resty.New().R().SetHeader("Content-Encoding", tt.queryEncoding).SetBody(payload).Post(suite.ts.URL + "/api/hotpepper")
			require.NoError(t, err)
			assert.Equal(t, tt.code, res.StatusCode())
			assert.Equal(t, tt.payload, string(res.Body()))
		})
	}
}

func (suite *CompressTestSuite) TestDecompressHandle_InvalidBody() {
	suite.router.Use(DecompressHandle)
	suite.router.Post("/api/hotpepper", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	res, err := resty.New().R().SetHeader("Content-Encoding", "gzip").SetBody("not gzip").Post(suite.ts.URL + "/api/hotpepper")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), http.StatusBadRequest, res.StatusCode())
}

func BenchmarkCompressHandle(b *testing.B) {
	router := chi.NewRouter()
	client := resty.New()
	ts := httptest.NewServer(router)
	defer ts.Close()
	router.Use(CompressHandle)
	router.Get("/get", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"J001"}]`))
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = client.R().SetHeader("Accept-Encoding", "gzip").Get(ts.URL + "/get")
	}
}
