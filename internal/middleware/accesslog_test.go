// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/logging"
)

func serveLogged(t *testing.T, status int) string {
	t.Helper()

	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/recommend?title=Avatar&num=3", nil)
	ctx := logging.ContextWithLogger(req.Context(), logging.NewTestLogger(&buf))
	ctx = logging.ContextWithRequestID(ctx, "req-1")

	handler := AccessLog(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
	handler(httptest.NewRecorder(), req.WithContext(ctx))
	return buf.String()
}

func TestAccessLog_Fields(t *testing.T) {
	out := serveLogged(t, http.StatusOK)

	for _, want := range []string{
		`"message":"http request"`,
		`"method":"GET"`,
		`"path":"/recommend"`,
		`"query":"title=Avatar&num=3"`,
		`"status":200`,
		`"request_id":"req-1"`,
		`"level":"debug"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log line missing %s: %s", want, out)
		}
	}
}

func TestAccessLog_ServerErrorAtWarn(t *testing.T) {
	out := serveLogged(t, http.StatusInternalServerError)
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("expected warn level for 5xx: %s", out)
	}
}
