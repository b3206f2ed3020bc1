package utils

import (
	"encoding/json"
	"net/http"

	"github.com/fitpulse/gym-api/internal/models"
)

// WriteJSONResponse is the single response path for every handler.
// Failures still carry a JSON body so clients always have a message to show.
func WriteJSONResponse(w http.ResponseWriter, code int, success bool, message string, data interface{}, errDetail interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if e, ok := errDetail.(error); ok {
		errDetail = e.Error()
	}
	_ = json.NewEncoder(w).Encode(models.APIResponse{
		Success: success,
		Message: message,
		Data:    data,
		Error:   errDetail,
	})
}
