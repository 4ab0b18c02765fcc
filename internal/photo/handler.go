package photo

import (
	"net/http"

	"github.com/bartdorsey/image-upload-demo/internal/response"
)

// maxMultipartMemory bounds how much of a parsed form is held in memory;
// larger file parts spill to temporary files, which remain seekable.
const maxMultipartMemory = 10 << 20

// Handler holds HTTP handlers for photo endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new photo Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List godoc
//
//	@Summary		List photos
//	@Description	Returns all photos with presigned display URLs. A photo whose URL could not be generated is still listed, with photo_url null.
//	@Tags			photos
//	@Produce		json
//	@Success		200	{array}		PresentedPhoto
//	@Failure		500	{object}	response.ErrorDetail
//	@Router			/photos [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	photos, err := h.svc.ListPhotos(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}
	response.JSON(w, http.StatusOK, photos)
}

// Upload godoc
//
//	@Summary		Upload a photo
//	@Description	Accepts a multipart form with a required "photo" file and optional "title" and "description" fields.
//	@Tags			photos
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			photo		formData	file	true	"image file (JPEG, PNG, GIF, or WEBP, max 5 MiB)"
//	@Param			title		formData	string	false	"photo title"
//	@Param			description	formData	string	false	"photo description"
//	@Success		200	{object}	PresentedPhoto
//	@Failure		400	{object}	response.ErrorDetail
//	@Failure		500	{object}	response.ErrorDetail
//	@Router			/photos [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		response.BadRequest(w, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "photo file is required")
		return
	}
	defer file.Close()

	up := Upload{
		File:        file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}

	presented, err := h.svc.UploadPhoto(r.Context(), up,
		optionalFormValue(r, "title"),
		optionalFormValue(r, "description"),
	)
	if err != nil {
		if h.svc.IsRejected(err) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, presented)
}

// optionalFormValue returns the form field's value, or nil when the field was
// not sent at all. An empty string that the client did send stays an empty
// string.
func optionalFormValue(r *http.Request, name string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
