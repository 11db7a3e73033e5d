package webutils

import (
	"encoding/json"
	"log"
	"net/http"
)

func WriteJson(w http.ResponseWriter, data interface{}) {
	res, err := json.Marshal(data)
	if err != nil {
		WriteError(w, err)
	} else {
		w.Header().Set("Content-Type", "application/json")
		WriteResult(w, res)
	}
}

func WriteError(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusInternalServerError)
	res, merr := json.Marshal(map[string]string{"error": err.Error()})
	if merr != nil {
		log.Printf("[webutils] Error when marshaling error %v: %v", err, merr)
		return
	}
	WriteResult(w, res)
}

func WriteResult(w http.ResponseWriter, data []byte) {
	if _, err := w.Write(data); err != nil {
		log.Printf("[webutils] Error when writing response: %v", err)
	}
}
