package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"reacjilator/languages"
)

type LanguagesHandler struct {
	directory *languages.Directory
}

func NewLanguagesHandler(directory *languages.Directory) *LanguagesHandler {
	return &LanguagesHandler{directory: directory}
}

type languagesResponse struct {
	Count     int               `json:"count"`
	Languages map[string]string `json:"languages"`
}

// HandleListLanguages returns the directory of flag keys to language codes
func (h *LanguagesHandler) HandleListLanguages(w http.ResponseWriter, r *http.Request) {
	entries := h.directory.Entries()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(languagesResponse{Count: len(entries), Languages: entries}); err != nil {
		log.Printf("❌ Failed to write languages response: %v", err)
	}
}

func (h *LanguagesHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/languages", h.HandleListLanguages).Methods("GET")
	log.Printf("✅ GET /languages endpoint registered")
}
