package handler

import (
	"net/http"

	"github.com/alexca-social/alexca/internal/api"
	"github.com/alexca-social/alexca/internal/domain"
	mw "github.com/alexca-social/alexca/internal/middleware"
	"github.com/alexca-social/alexca/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	s := mw.FromContext(r)
	if s == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, api.ContactListResponse{Contacts: s.Chat.Contacts()})
}

// SelectChat makes the given contact's conversation the active one.
// Opening a chat from a feed post author goes through here too, which
// is why the request carries the contact record rather than just an id.
func (h *Handler) SelectChat(w http.ResponseWriter, r *http.Request) {
	s := mw.FromContext(r)
	if s == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	contactId, err := parseIntParam(chi.URLParam(r, "contact"), "contact")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.SelectChatRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	s.Chat.SelectConversation(domain.Contact{Id: contactId, Name: body.Name, AvatarRef: body.AvatarRef})
	w.WriteHeader(http.StatusOK)
}

// ActiveChat returns the active conversation, or 204 when none is
// selected (also the state right after a severe violation teardown).
func (h *Handler) ActiveChat(w http.ResponseWriter, r *http.Request) {
	s := mw.FromContext(r)
	if s == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	conv := s.Chat.Active()
	if conv == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, api.ConversationResponse{Conversation: *conv})
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	s := mw.FromContext(r)
	if s == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.SendMessageRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	outcome := s.Chat.SendMessage(s.User().Id, body.Text)
	writeOutcome(w, "send_message", outcome, http.StatusCreated)
}
