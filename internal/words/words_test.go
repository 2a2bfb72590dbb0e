package words

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/upstream"
)

func newClient() *upstream.Client {
	return upstream.New(upstream.Config{Timeout: time.Second, RetryDelay: time.Millisecond})
}

func TestAPISource_Random(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name: "first element",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`["apple","pear"]`))
			},
			want: "apple",
		},
		{
			name: "lowercased",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`["Apple"]`))
			},
			want: "apple",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: Fallback,
		},
		{
			name: "bad json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"word":`))
			},
			want: Fallback,
		},
		{
			name: "empty array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			},
			want: Fallback,
		},
		{
			name: "blank word",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`["  "]`))
			},
			want: Fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			src := NewAPISource(newClient(), srv.URL)
			assert.Equal(t, tt.want, src.Random(context.Background()))
		})
	}
}

func TestAPISource_Random_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	src := NewAPISource(newClient(), url)
	assert.Equal(t, "default", src.Random(context.Background()))
}

func TestAPISource_DefaultURL(t *testing.T) {
	src := NewAPISource(newClient(), "")
	assert.Equal(t, DefaultRandomURL, src.url)
}

func TestListSource_Embedded(t *testing.T) {
	src, err := NewListSource("")
	require.NoError(t, err)
	require.Greater(t, src.Len(), 0)

	w := src.Random(context.Background())
	assert.Contains(t, src.Words(), w)
}

func TestListSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nApple\n\nnot-a-word\n  pear \n"), 0o644))

	src, err := NewListSource(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "pear"}, src.Words())
}

func TestListSource_MissingFile(t *testing.T) {
	_, err := NewListSource(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestListSource_EmptyFallsBack(t *testing.T) {
	src := NewListSourceFrom(nil)
	assert.Equal(t, Fallback, src.Random(context.Background()))
}
