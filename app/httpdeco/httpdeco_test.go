package httpdeco_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/alcortesm/safelink-premium/app/httpdeco"
)

func TestDecorateOrder(t *testing.T) {
	t.Parallel()

	var calls []string

	tag := func(name string) httpdeco.Decorator {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	h := httpdeco.Decorate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "handler")
		}),
		tag("inner"),
		tag("outer"),
	)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := []string{"outer", "inner", "handler"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

// failingWriter is a ResponseWriter whose body writes always fail.
type failingWriter struct {
	*httptest.ResponseRecorder
}

var errBrokenPipe = errors.New("broken pipe")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBrokenPipe
}

func TestWithLogs(t *testing.T) {
	t.Parallel()

	type line struct {
		Level   string `json:"level"`
		Method  string `json:"method"`
		URL     string `json:"url"`
		Status  int    `json:"status"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	subtests := []struct {
		name    string
		handler http.HandlerFunc
		writer  func() http.ResponseWriter
		want    line
	}{
		{
			name: "implicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("hi"))
			},
			writer: func() http.ResponseWriter { return httptest.NewRecorder() },
			want: line{
				Level: "info", Method: "POST", URL: "/a?b=c",
				Status: 200, Message: "request",
			},
		}, {
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			},
			writer: func() http.ResponseWriter { return httptest.NewRecorder() },
			want: line{
				Level: "info", Method: "POST", URL: "/a?b=c",
				Status: 418, Message: "request",
			},
		}, {
			name: "write error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("hi"))
			},
			writer: func() http.ResponseWriter {
				return failingWriter{httptest.NewRecorder()}
			},
			want: line{
				Level: "error", Method: "POST", URL: "/a?b=c",
				Status: 200, Error: "broken pipe", Message: "request",
			},
		},
	}

	for _, test := range subtests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			h := httpdeco.Decorate(test.handler, httpdeco.WithLogs(logger))
			h.ServeHTTP(test.writer(),
				httptest.NewRequest(http.MethodPost, "/a?b=c", nil))

			var got line
			if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("decoding log line %q: %v", buf.String(), err)
			}

			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("(-want +got)\n%s", diff)
			}

			if !strings.Contains(buf.String(), `"elapsed":`) {
				t.Errorf("cannot find elapsed time in %s", buf.String())
			}
		})
	}
}

func TestNewMetricsRegistersOnce(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	if _, err := httpdeco.NewMetrics(reg); err != nil {
		t.Fatal(err)
	}

	if m, err := httpdeco.NewMetrics(reg); err == nil {
		t.Errorf("unexpected success registering twice, got %#v", m)
	}
}

func TestWithMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	m, err := httpdeco.NewMetrics(reg)
	if err != nil {
		t.Fatal(err)
	}

	ok := httpdeco.Decorate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		}),
		httpdeco.WithMetrics(m, "ok"),
	)

	missing := httpdeco.Decorate(
		http.NotFoundHandler(),
		httpdeco.WithMetrics(m, "missing"),
	)

	for i := 0; i < 3; i++ {
		ok.ServeHTTP(httptest.NewRecorder(),
			httptest.NewRequest(http.MethodGet, "/", nil))
	}
	missing.ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodGet, "/nope", nil))

	want := `
# HELP safelink_http_requests_total Total number of HTTP requests served.
# TYPE safelink_http_requests_total counter
safelink_http_requests_total{code="200",handler="ok",method="GET"} 3
safelink_http_requests_total{code="404",handler="missing",method="GET"} 1
`

	err = testutil.GatherAndCompare(reg, strings.NewReader(want),
		"safelink_http_requests_total")
	if err != nil {
		t.Error(err)
	}

	n, err := testutil.GatherAndCount(reg, "safelink_http_request_duration_seconds")
	if err != nil {
		t.Fatal(err)
	}

	if n != 2 {
		t.Errorf("want 2 duration series, got %d", n)
	}
}
