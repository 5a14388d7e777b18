package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/mbarbey/bergfex"
	bfxhttp "github.com/mbarbey/bergfex/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient returns a Client pointed at server with the rate limit
// effectively disabled.
func testClient(server *httptest.Server) *bfxhttp.Client {
	return bfxhttp.NewClient(
		bfxhttp.WithBaseURL(server.URL),
		bfxhttp.WithRequestsPerSecond(10000),
	)
}

func TestClientResortPage(t *testing.T) {
	t.Parallel()

	t.Run("fetches the resort path with a browser-like user agent", func(t *testing.T) {
		t.Parallel()

		var gotPath, gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("<html><body>ok</body></html>"))
		}))
		defer server.Close()

		client := testClient(server)

		page, err := client.ResortPage(context.Background(), "/frankreich/lelex-crozet/schneebericht/")

		require.NoError(t, err)
		assert.Equal(t, "/frankreich/lelex-crozet/schneebericht/", gotPath)
		assert.NotEmpty(t, gotUA)
		assert.Equal(t, "<html><body>ok</body></html>", page.HTML)
		assert.Equal(t, xxhash.Sum64String("<html><body>ok</body></html>"), page.ContentHash)
		assert.False(t, page.FetchedAt.IsZero())
	})

	t.Run("returns ENOTFOUND for a 404", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		client := testClient(server)

		_, err := client.ResortPage(context.Background(), "/nowhere/")

		require.Error(t, err)
		assert.Equal(t, bergfex.ENOTFOUND, bergfex.ErrorCode(err))
	})

	t.Run("rejects an empty path", func(t *testing.T) {
		t.Parallel()

		client := bfxhttp.NewClient()

		_, err := client.ResortPage(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, bergfex.EINVALID, bergfex.ErrorCode(err))
	})
}

func TestClientOverviewPage(t *testing.T) {
	t.Parallel()

	t.Run("builds the country listing URL", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer server.Close()

		client := testClient(server)

		_, err := client.OverviewPage(context.Background(), "frankreich")

		require.NoError(t, err)
		assert.Equal(t, "/frankreich/schneewerte/", gotPath)
	})
}

func TestClientForecastPage(t *testing.T) {
	t.Parallel()

	t.Run("appends the page query only when non-zero", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var gotURLs []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			gotURLs = append(gotURLs, r.URL.String())
			mu.Unlock()
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer server.Close()

		client := testClient(server)

		_, err := client.ForecastPage(context.Background(), "/frankreich/lelex-crozet/", 0)
		require.NoError(t, err)
		_, err = client.ForecastPage(context.Background(), "/frankreich/lelex-crozet/", 1)
		require.NoError(t, err)

		require.Len(t, gotURLs, 2)
		assert.Equal(t, "/frankreich/lelex-crozet/schneeprognose/", gotURLs[0])
		assert.Equal(t, "/frankreich/lelex-crozet/schneeprognose/?page=1", gotURLs[1])
	})
}

func TestClientResortPages(t *testing.T) {
	t.Parallel()

	t.Run("fetches several resorts keyed by path", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>" + r.URL.Path + "</html>"))
		}))
		defer server.Close()

		client := testClient(server)

		paths := []string{"/a/schneebericht/", "/b/schneebericht/", "/c/schneebericht/"}
		pages, err := client.ResortPages(context.Background(), paths)

		require.NoError(t, err)
		require.Len(t, pages, 3)
		for _, p := range paths {
			require.NotNil(t, pages[p])
			assert.Equal(t, "<html>"+p+"</html>", pages[p].HTML)
		}
	})

	t.Run("fails when any fetch fails", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/missing/" {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer server.Close()

		client := testClient(server)

		_, err := client.ResortPages(context.Background(), []string{"/ok/", "/missing/"})

		require.Error(t, err)
		assert.Equal(t, bergfex.ENOTFOUND, bergfex.ErrorCode(err))
	})
}
