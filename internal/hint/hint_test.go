package hint

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordscramble/internal/upstream"
)

const appleEntry = `[{"word":"apple","meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"The round fruit of a tree of the rose family."}]}]}]`

type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (c *callLog) add(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, s)
}

func (c *callLog) list() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// fakeUpstream serves /dict/<word> and /syn?ml=<word> from fixed responses.
func fakeUpstream(t *testing.T, dictStatus int, dictBody string, synStatus int, synBody string) (*httptest.Server, *callLog) {
	t.Helper()
	calls := &callLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/dict/"):
			calls.add("dict:" + strings.TrimPrefix(r.URL.Path, "/dict/"))
			w.WriteHeader(dictStatus)
			_, _ = w.Write([]byte(dictBody))
		case r.URL.Path == "/syn":
			calls.add("syn:" + r.URL.Query().Get("ml"))
			w.WriteHeader(synStatus)
			_, _ = w.Write([]byte(synBody))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func TestAPISource_Hint(t *testing.T) {
	tests := []struct {
		name       string
		dictStatus int
		dictBody   string
		synStatus  int
		synBody    string
		want       string
		wantCalls  []string
	}{
		{
			name:       "definition available",
			dictStatus: http.StatusOK,
			dictBody:   appleEntry,
			synStatus:  http.StatusOK,
			synBody:    `[{"word":"fruit"}]`,
			want:       "The round fruit of a tree of the rose family.",
			wantCalls:  []string{"dict:apple"},
		},
		{
			name:       "no definition falls back to synonym",
			dictStatus: http.StatusNotFound,
			dictBody:   `{"title":"No Definitions Found"}`,
			synStatus:  http.StatusOK,
			synBody:    `[{"word":"fruit","score":100},{"word":"pear"}]`,
			want:       "Similar word: fruit",
			wantCalls:  []string{"dict:apple", "syn:apple"},
		},
		{
			name:       "empty definitions fall back to synonym",
			dictStatus: http.StatusOK,
			dictBody:   `[{"meanings":[{"definitions":[{"definition":"  "}]}]}]`,
			synStatus:  http.StatusOK,
			synBody:    `[{"word":"pomme"}]`,
			want:       "Similar word: pomme",
			wantCalls:  []string{"dict:apple", "syn:apple"},
		},
		{
			name:       "synonym equal to the word is skipped",
			dictStatus: http.StatusNotFound,
			synStatus:  http.StatusOK,
			synBody:    `[{"word":"Apple"},{"word":"cider"}]`,
			want:       "Similar word: cider",
			wantCalls:  []string{"dict:apple", "syn:apple"},
		},
		{
			name:       "both fail",
			dictStatus: http.StatusInternalServerError,
			synStatus:  http.StatusInternalServerError,
			want:       NoHint,
			wantCalls:  []string{"dict:apple", "syn:apple"},
		},
		{
			name:       "no synonyms",
			dictStatus: http.StatusNotFound,
			synStatus:  http.StatusOK,
			synBody:    `[]`,
			want:       "No hint available.",
			wantCalls:  []string{"dict:apple", "syn:apple"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, calls := fakeUpstream(t, tt.dictStatus, tt.dictBody, tt.synStatus, tt.synBody)
			client := upstream.New(upstream.Config{Timeout: time.Second})
			src := NewAPISource(client, srv.URL+"/dict/", srv.URL+"/syn")

			assert.Equal(t, tt.want, src.Hint(context.Background(), "apple"))
			assert.Equal(t, tt.wantCalls, calls.list())
		})
	}
}

func TestAPISource_Hint_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	src := NewAPISource(upstream.New(upstream.Config{Timeout: time.Second}), base+"/dict", base+"/syn")
	assert.Equal(t, NoHint, src.Hint(context.Background(), "apple"))
}

func TestNewAPISource_Defaults(t *testing.T) {
	src := NewAPISource(upstream.New(upstream.Config{}), "", "")
	assert.Equal(t, DefaultDictionaryURL, src.dictionaryURL)
	assert.Equal(t, DefaultSynonymURL, src.synonymURL)
}
