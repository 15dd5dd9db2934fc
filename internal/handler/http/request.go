package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/hrflo/hrflo-backend/internal/domain/auth"
	"github.com/hrflo/hrflo-backend/internal/domain/document"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/handler/http/middleware"
	"github.com/hrflo/hrflo-backend/internal/handler/http/response"
)

// multipartMemory is kept in memory while parsing; larger parts spill to temp files.
const multipartMemory = 8 << 20

// decodeJSON decodes the body into dst and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, op string, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

func sessionFromRequest(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
}

// actorFromRequest returns the authenticated caller or writes a 401.
func actorFromRequest(w http.ResponseWriter, r *http.Request) (user.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return user.Actor{}, false
	}
	return actor, true
}

// parseMultipart limits the body to maxBytes and parses it.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	if maxBytes > 0 {
		// Leave room for the other form fields and boundaries.
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+(1<<20))
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return document.ErrFileTooLarge
		}
		return err
	}
	return nil
}

// formUpload returns the named multipart file. The caller must close the returned file.
func formUpload(r *http.Request, field string) (document.Upload, multipart.File, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return document.Upload{}, nil, document.ErrMissingFile
		}
		return document.Upload{}, nil, err
	}

	return document.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}, file, nil
}
