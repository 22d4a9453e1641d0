package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/BuzzLyutic/tasks-api/internal/model"
	"github.com/BuzzLyutic/tasks-api/internal/service"
)

const DefaultMaxBodyBytes int64 = 64 << 10

var (
	errInvalidID   = errors.New("invalid id")
	errInvalidJSON = errors.New("invalid json")
	errNotObject   = errors.New("request body must be a JSON object")
)

var jsonNull = []byte("null")

// parseID принимает только положительные целые в десятичной записи
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// decodeObject reads a JSON object body and keeps the raw value of every
// field, so presence can be told apart from a zero value.
func decodeObject(w http.ResponseWriter, r *http.Request, limit int64) (map[string]json.RawMessage, error) {
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	var fields map[string]json.RawMessage
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&fields); err != nil {
		var maxErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &maxErr):
			return nil, err
		case errors.As(err, &typeErr):
			return nil, errNotObject
		case errors.Is(err, io.EOF):
			return nil, errNotObject
		default:
			return nil, errInvalidJSON
		}
	}
	if dec.More() {
		return nil, errInvalidJSON
	}
	if fields == nil { // тело "null"
		return nil, errNotObject
	}
	return fields, nil
}

func decodeTitle(raw json.RawMessage) (string, error) {
	var title string
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return "", service.ErrInvalidTitle
	}
	if err := json.Unmarshal(raw, &title); err != nil {
		return "", service.ErrInvalidTitle
	}
	return title, nil
}

func decodeDone(raw json.RawMessage) (bool, error) {
	var done bool
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return false, service.ErrInvalidDone
	}
	if err := json.Unmarshal(raw, &done); err != nil {
		return false, service.ErrInvalidDone
	}
	return done, nil
}

func decodeCreate(w http.ResponseWriter, r *http.Request, limit int64) (string, error) {
	fields, err := decodeObject(w, r, limit)
	if err != nil {
		return "", err
	}
	raw, ok := fields["title"]
	if !ok {
		return "", service.ErrInvalidTitle
	}
	return decodeTitle(raw)
}

// decodePatch переносит в патч только title и done, остальные ключи игнорируются
func decodePatch(w http.ResponseWriter, r *http.Request, limit int64) (model.TaskPatch, error) {
	var patch model.TaskPatch

	fields, err := decodeObject(w, r, limit)
	if err != nil {
		return patch, err
	}

	if raw, ok := fields["title"]; ok {
		title, err := decodeTitle(raw)
		if err != nil {
			return patch, err
		}
		patch.Title = &title
	}
	if raw, ok := fields["done"]; ok {
		done, err := decodeDone(raw)
		if err != nil {
			return patch, err
		}
		patch.Done = &done
	}
	return patch, nil
}
