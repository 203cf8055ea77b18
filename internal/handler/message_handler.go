package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
	"github.com/eligiorbautista/niyoghub-server/internal/service"
)

const maxUploadSize = 32 << 20 // 32 MiB

// MessageHandler serves the direct-message REST surface.
type MessageHandler struct {
	messages service.IMessageService
	logger   *zap.Logger
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messages service.IMessageService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{messages: messages, logger: logger}
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

// Send handles POST /api/messages/send/{id}. The body is either JSON with a
// message field or multipart form data with a message field and an optional
// attachment file.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, h.logger, domain.ErrUnauthorized)
		return
	}
	receiverID := mux.Vars(r)["id"]

	var text string
	var attachment *service.AttachmentUpload

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid multipart body."})
			return
		}
		text = r.FormValue("message")

		file, header, err := r.FormFile("attachment")
		if err == nil {
			defer file.Close()
			attachment = &service.AttachmentUpload{
				MediaType:        header.Header.Get("Content-Type"),
				OriginalFilename: header.Filename,
				Data:             file,
			}
		} else if err != http.ErrMissingFile {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid attachment."})
			return
		}
	} else {
		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body."})
			return
		}
		text = req.Message
	}

	message, err := h.messages.Send(r.Context(), identity.UserID.String(), receiverID, text, attachment)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

// History handles GET /api/messages/{id}: the ordered conversation between the
// caller and the peer, empty when none exists.
func (h *MessageHandler) History(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, h.logger, domain.ErrUnauthorized)
		return
	}
	peerID := mux.Vars(r)["id"]

	messages, err := h.messages.History(r.Context(), identity.UserID.String(), peerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}
