package respond

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Data interface{} `json:"data"`
}

type errorBody struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// Data оборачивает полезную нагрузку в {"data": ...}
func Data(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	JSON(w, r, code, envelope{Data: data})
}

func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, errorBody{Error: message})
}

// NoContent пишет 204 без тела и без конверта
func NoContent(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
