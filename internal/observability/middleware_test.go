package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerLevelsByStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		level  zapcore.Level
	}{
		{http.StatusOK, zapcore.InfoLevel},
		{http.StatusNotFound, zapcore.WarnLevel},
		{http.StatusBadGateway, zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		core, logs := observer.New(zapcore.DebugLevel)
		handler := InjectLoggerMiddleware(zap.New(core))(RequestLoggerMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NotSame(t, NoopLogger(), FromContext(r.Context()))
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte("body"))
		})))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

		entries := logs.FilterMessage("request completed").All()
		require.Len(t, entries, 1)
		require.Equal(t, tc.level, entries[0].Level)
		fields := entries[0].ContextMap()
		require.EqualValues(t, tc.status, fields["status"])
		require.EqualValues(t, 4, fields["bytes"])
		require.Equal(t, "/categories", fields["path"])
	}
}

func TestRecoveryMiddlewareAnswers500(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	handler := InjectLoggerMiddleware(zap.New(core))(RecoveryMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestFromContextDefaultsToNoop(t *testing.T) {
	t.Parallel()

	require.Same(t, NoopLogger(), FromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
