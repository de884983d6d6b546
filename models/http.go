package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// BookRequest is the JSON body accepted by the books endpoints.
// Create ignores ID; Update and Delete identify the target by ID.
type BookRequest struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
}

// UnmarshalJSON accepts year both as a number and as numeric text, the way
// form inputs submit it. An empty string or null leaves Year at zero.
func (r *BookRequest) UnmarshalJSON(data []byte) error {
	type bookRequest BookRequest
	aux := struct {
		*bookRequest
		Year json.RawMessage `json:"year"`
	}{bookRequest: (*bookRequest)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	year, err := parseYear(aux.Year)
	if err != nil {
		return err
	}
	r.Year = year

	return nil
}

func parseYear(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}

	if raw[0] != '"' {
		var year int
		if err := json.Unmarshal(raw, &year); err != nil {
			return 0, fmt.Errorf("year: %w", err)
		}
		return year, nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0, fmt.Errorf("year: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}

	year, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("year: %w", err)
	}

	return year, nil
}

// ToBook converts the request body to a [Book].
func (r BookRequest) ToBook() Book {
	return Book{
		ID:     r.ID,
		Title:  r.Title,
		Author: r.Author,
		Year:   r.Year,
	}
}

// RegisterResponse is returned by a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}
