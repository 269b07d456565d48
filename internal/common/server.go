package common

import (
	"encoding/json"
	"log"
	"net/http"
)

func CloseResponseBody(response *http.Response) {
	err := response.Body.Close()
	if err != nil {
		log.Print("Failed to close response body: ", err)
	}
}

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	type errorResponse struct {
		Error string `json:"error"`
	}
	responseData, err := json.Marshal(errorResponse{Error: msg})
	if err == nil {
		w.Write(responseData)
	}
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	responseData, err := json.Marshal(payload)
	if err == nil {
		w.Write(responseData)
	}
}
