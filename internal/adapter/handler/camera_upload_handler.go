package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edsan89/jellyfin/internal/adapter/handler/dto/response"
	"github.com/edsan89/jellyfin/internal/domain"
	"github.com/edsan89/jellyfin/internal/pkg/httputil"
	"github.com/edsan89/jellyfin/internal/usecase/upload"
)

type CameraUploadHandler struct {
	deviceSvc     DeviceService
	uploadSvc     UploadService
	sessionSvc    SessionService
	maxUploadSize int64
}

func NewCameraUploadHandler(deviceSvc DeviceService, uploadSvc UploadService, sessionSvc SessionService, maxUploadSize int64) *CameraUploadHandler {
	return &CameraUploadHandler{
		deviceSvc:     deviceSvc,
		uploadSvc:     uploadSvc,
		sessionSvc:    sessionSvc,
		maxUploadSize: maxUploadSize,
	}
}

func (h *CameraUploadHandler) GetHistory(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "MISSING_ID", "device id is required")
		return
	}

	records, err := h.deviceSvc.GetUploadHistory(c.Request.Context(), id)
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.UploadHistoryFromEntities(id, records))
}

func (h *CameraUploadHandler) Upload(c *gin.Context) {
	deviceID := c.Query("deviceId")
	album := c.Query("album")
	name := c.Query("name")
	uploadID := c.Query("id")
	if deviceID == "" || album == "" || name == "" || uploadID == "" {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "MISSING_PARAMETER", "deviceId, album, name and id are required")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	source, err := resolveSource(c)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoFilePart):
			httputil.ErrorWithCode(c, http.StatusBadRequest, "NO_FILE", "multipart request has no file part")
		default:
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_BODY", "malformed upload request")
		}
		return
	}

	stream := &uploadStream{reader: source.Reader}
	if identity := httputil.GetIdentity(c); identity != nil {
		done, cancel := h.sessionSvc.TrackStream(identity.TokenID)
		defer cancel()
		stream.interrupted = done
	}
	source.Reader = stream

	result, err := h.uploadSvc.Accept(c.Request.Context(), upload.Input{
		DeviceID: deviceID,
		UploadID: uploadID,
		Name:     name,
		Album:    album,
		Source:   source,
	})
	if err != nil {
		switch {
		case stream.tooLarge:
			httputil.ErrorWithCode(c, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "upload exceeds the size limit")
		case stream.severed:
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "SESSION_REVOKED", "session was revoked during the upload")
		case errors.Is(err, domain.ErrDeviceNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "device not found")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.OK(c, response.UploadResultToResponse(result))
}

// uploadStream guards the payload on its way to storage. It aborts the
// read loop once the caller's session is interrupted, and it remembers
// when the request size cap trips so the handler can blame the client
// rather than the storage backend.
type uploadStream struct {
	reader      io.Reader
	interrupted <-chan struct{}
	severed     bool
	tooLarge    bool
}

func (s *uploadStream) Read(p []byte) (int, error) {
	if s.interrupted != nil {
		select {
		case <-s.interrupted:
			s.severed = true
			return 0, domain.ErrTokenRevoked
		default:
		}
	}

	n, err := s.reader.Read(p)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.tooLarge = true
		}
	}
	return n, err
}

// resolveSource decides once, at the entry point, which of the two
// request shapes carries the payload: the first file part of a
// multipart form, or the raw request body. A multipart request with no
// file part is a client error, never a silent fallback to the body.
func resolveSource(c *gin.Context) (upload.Source, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return upload.Source{
			Kind:        upload.SourceRawBody,
			Reader:      c.Request.Body,
			ContentType: c.ContentType(),
		}, nil
	}

	reader, err := c.Request.MultipartReader()
	if err != nil {
		return upload.Source{}, err
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return upload.Source{}, domain.ErrNoFilePart
		}
		if err != nil {
			return upload.Source{}, err
		}
		if part.FileName() == "" {
			continue
		}
		return upload.Source{
			Kind:        upload.SourceFormFile,
			Reader:      part,
			ContentType: part.Header.Get("Content-Type"),
		}, nil
	}
}
