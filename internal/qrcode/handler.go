package qrcode

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/qrkeep/service/internal/response"
)

// Handler holds HTTP handlers for QR code endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new qrcode Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type createRequest struct {
	Data string `json:"data" example:"https://example.com"`
	Size int    `json:"size" example:"300"`
}

type codeData struct {
	CodeID string `json:"code_id" example:"e7eedc79-0707-4fe4-8734-526b7ef13a7b.png"`
	URL    string `json:"url"     example:"/api/qrcodes/e7eedc79-0707-4fe4-8734-526b7ef13a7b.png"`
}

// Create godoc
//
//	@Summary		Generate a QR code
//	@Description	Renders the given data as a PNG QR code, stores it, and returns its ID and retrieval URL.
//	@Tags			qrcodes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createRequest	true	"Data to encode and pixel size (default 300)"
//	@Success		201		{object}	response.Envelope{data=codeData}
//	@Failure		400		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Failure		503		{object}	response.Envelope
//	@Router			/qrcodes [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.Data == "" {
		response.BadRequest(w, "data is required")
		return
	}
	if req.Size <= 0 {
		req.Size = DefaultSize
	}

	codeID, err := h.svc.Create(r.Context(), req.Data, req.Size)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Created(w, codeData{CodeID: codeID, URL: retrievalPath(codeID)})
}

// Put godoc
//
//	@Summary		Upload a pre-generated QR code
//	@Description	Stores a caller-supplied PNG under an explicit code ID, overwriting any existing image.
//	@Tags			qrcodes
//	@Accept			png
//	@Produce		json
//	@Param			codeID		path		string	true	"Code ID"
//	@Param			X-QR-Data	header		string	false	"Original encoded payload"
//	@Param			X-QR-Size	header		int		false	"Requested pixel size (default 300)"
//	@Success		201			{object}	response.Envelope{data=codeData}
//	@Failure		400			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Failure		503			{object}	response.Envelope
//	@Router			/qrcodes/{codeID} [put]
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "image/png" {
		response.BadRequest(w, "only PNG images are supported")
		return
	}

	codeID := chi.URLParam(r, "codeID")
	image, err := io.ReadAll(r.Body)
	if err != nil {
		response.BadRequest(w, "unreadable request body")
		return
	}

	size := DefaultSize
	if v := r.Header.Get("X-QR-Size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			size = n
		}
	}

	if err := h.svc.Put(r.Context(), codeID, image, r.Header.Get("X-QR-Data"), size); err != nil {
		h.writeError(w, err)
		return
	}

	response.Created(w, codeData{CodeID: codeID, URL: retrievalPath(codeID)})
}

// Get godoc
//
//	@Summary		Retrieve a QR code image
//	@Description	Streams the stored PNG and increments its access count.
//	@Tags			qrcodes
//	@Produce		png
//	@Param			codeID	path	string	true	"Code ID"
//	@Success		200		{file}	binary
//	@Failure		404		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Failure		503		{object}	response.Envelope
//	@Router			/qrcodes/{codeID} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	codeID := chi.URLParam(r, "codeID")

	rc, err := h.svc.Retrieve(r.Context(), codeID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "image/png")
	_, _ = io.Copy(w, rc)
}

// GetMetadata godoc
//
//	@Summary		Get QR code metadata
//	@Description	Returns the metadata record for a stored QR code.
//	@Tags			qrcodes
//	@Produce		json
//	@Param			codeID	path		string	true	"Code ID"
//	@Success		200		{object}	response.Envelope{data=Metadata}
//	@Failure		404		{object}	response.Envelope
//	@Router			/qrcodes/{codeID}/metadata [get]
func (h *Handler) GetMetadata(w http.ResponseWriter, r *http.Request) {
	codeID := chi.URLParam(r, "codeID")

	meta, err := h.svc.Metadata(r.Context(), codeID)
	if err != nil {
		response.NotFound(w, "qr code metadata not found")
		return
	}

	response.OK(w, meta)
}

// Head godoc
//
//	@Summary		Check whether a QR code exists
//	@Tags			qrcodes
//	@Param			codeID	path	string	true	"Code ID"
//	@Success		200
//	@Failure		404
//	@Router			/qrcodes/{codeID} [head]
func (h *Handler) Head(w http.ResponseWriter, r *http.Request) {
	if !h.svc.Exists(r.Context(), chi.URLParam(r, "codeID")) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Delete godoc
//
//	@Summary		Delete a QR code
//	@Description	Removes the image and its metadata record. Deleting an unknown ID succeeds.
//	@Tags			qrcodes
//	@Param			codeID	path	string	true	"Code ID"
//	@Success		204
//	@Router			/qrcodes/{codeID} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	h.svc.Delete(r.Context(), chi.URLParam(r, "codeID"))
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps service errors to HTTP responses.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case h.svc.IsNotFound(err):
		response.NotFound(w, "qr code not found")
	case h.svc.IsUnavailable(err):
		response.Unavailable(w, "storage unavailable")
	default:
		response.InternalError(w)
	}
}

// retrievalPath returns the API path the stored image is served from.
func retrievalPath(codeID string) string {
	return "/api/qrcodes/" + codeID
}
