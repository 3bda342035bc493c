package middlewarex_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vendor_verify/pkg/contextx"
	"vendor_verify/pkg/logx"
	"vendor_verify/pkg/middlewarex"
)

func TestTraceIDAndLogger(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var gotTraceID contextx.TraceID

	h := middlewarex.TraceID(middlewarex.Logger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		gotTraceID, err = contextx.TraceIDFromContext(r.Context())
		rq.NoError(err)

		contextx.LoggerFromContextOrDefault(r.Context()).Info("inside")
		w.WriteHeader(http.StatusOK)
	})))

	testCases := []struct {
		name     string
		incoming string
	}{
		{name: "Generated", incoming: ""},
		{name: "Propagated", incoming: "upstream-trace"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			buf.Reset()

			r := httptest.NewRequest(http.MethodGet, "/api/vendors/27AAAPL1234C1Z5", http.NoBody)
			if tc.incoming != "" {
				r.Header.Set("X-Trace-Id", tc.incoming)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			rq.Equal(gotTraceID.String(), w.Header().Get("X-Trace-Id"))

			if tc.incoming != "" {
				rq.Equal(tc.incoming, gotTraceID.String())
			} else {
				rq.Len(gotTraceID.String(), 20)
			}

			rq.Contains(buf.String(), `"`+logx.FieldTraceID+`":"`+gotTraceID.String()+`"`)
			rq.Contains(buf.String(), `"`+logx.FieldHTTPMethod+`":"GET"`)
		})
	}
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("provider client is nil")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/vendors/submit", http.NoBody))

	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.Contains(w.Body.String(), `"code":"InternalServerError"`)
}

func TestCORS(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.CORS()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Preflight", func(*testing.T) {
		r := httptest.NewRequest(http.MethodOptions, "/api/vendors/submit", http.NoBody)
		r.Header.Set("Origin", "https://portal.example.com")
		r.Header.Set("Access-Control-Request-Method", http.MethodPost)
		r.Header.Set("Access-Control-Request-Headers", "X-Custom-Header")

		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		rq.Equal("https://portal.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		rq.Equal("true", w.Header().Get("Access-Control-Allow-Credentials"))
		rq.Contains(w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
		rq.True(strings.EqualFold("X-Custom-Header", w.Header().Get("Access-Control-Allow-Headers")))
	})

	t.Run("Actual request", func(*testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/vendors/27AAAPL1234C1Z5", http.NoBody)
		r.Header.Set("Origin", "http://localhost:5173")

		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		rq.Equal(http.StatusOK, w.Code)
		rq.Equal("http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
		rq.Equal("true", w.Header().Get("Access-Control-Allow-Credentials"))
	})
}

func TestRequestResponseLogging(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	base := slog.New(slog.NewJSONHandler(&buf, nil))
	masker := logx.NewSensitiveDataMasker()

	h := middlewarex.TraceID(
		middlewarex.Logger(base)(
			middlewarex.RequestLogging(masker, 4096)(
				middlewarex.ResponseLogging(masker, 4096)(
					http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
						w.Header().Set("Content-Type", "application/json")
						w.Write([]byte(`{"vendor":{"email":"ops@acme.in"}}`))
					}),
				),
			),
		),
	)

	r := httptest.NewRequest(http.MethodPost, "/api/vendors/submit", strings.NewReader("vendorName=Acme&email=ops%40acme.in"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	h.ServeHTTP(httptest.NewRecorder(), r)

	logs := buf.String()

	rq.Contains(logs, logx.FieldHTTPRequest)
	rq.Contains(logs, logx.FieldHTTPResponse)
	rq.Contains(logs, `"`+logx.FieldResponseStatus+`":200`)
	rq.NotContains(logs, "ops@acme.in")
	rq.NotContains(logs, "ops%40acme.in")
}
