package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/yogi-fashion/embroidery-service/internal/api"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into v, answering 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		api.BadRequest(w, "invalid request body")
		return false
	}
	return true
}

// pathID splits the remainder of the path after prefix. An empty string
// means the collection itself was addressed.
func pathID(r *http.Request, prefix string) string {
	path := strings.TrimPrefix(r.URL.Path, prefix)
	return strings.Trim(path, "/")
}

func parseID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		api.BadRequest(w, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
