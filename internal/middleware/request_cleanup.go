package middleware

import (
	"io"
	"net/http"
)

// maxDrainBytes bounds what is read from a body the handler left unread,
// larger leftovers just close the connection.
const maxDrainBytes = 64 << 10

// DrainAndCloseRequest caps the request body at maxBodyBytes, and drains what the handler
// did not read, so the connection can be reused.
func DrainAndCloseRequest(maxBodyBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			body := r.Body
			if maxBodyBytes > 0 {
				r.Body = http.MaxBytesReader(w, body, maxBodyBytes)
			}
			next.ServeHTTP(w, r)

			_, _ = io.CopyN(io.Discard, body, maxDrainBytes)
			_ = body.Close()
		})
	}
}
