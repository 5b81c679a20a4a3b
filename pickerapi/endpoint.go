// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pickerapi

import (
	"fmt"
	"net/http"

	"github.com/go-json-experiment/json"
)

// Endpoint identifies and documents a JSON endpoint by its request and
// response types. Its methods decode requests and encode responses,
// writing an ErrorResponse to the client on failure.
type Endpoint[Req, Resp any] struct{}

// ParseRequest decodes the body of r into req. Unknown members and
// trailing data are rejected. On failure a 400 ErrorResponse is written
// to rw and the error returned.
func (ep Endpoint[Req, Resp]) ParseRequest(rw http.ResponseWriter, r *http.Request, req *Req) error {
	defer r.Body.Close()
	if err := json.UnmarshalRead(r.Body, req, json.RejectUnknownMembers(true)); err != nil {
		WriteErrorMsg(rw, "failed to decode request body", http.StatusBadRequest)
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// WriteResponse writes resp to rw with a 200 status. The response is
// encoded before any headers are written so that an encoding failure
// can be reported as a 500 ErrorResponse.
func (ep Endpoint[Req, Resp]) WriteResponse(rw http.ResponseWriter, resp Resp) error {
	buf, err := json.Marshal(resp)
	if err != nil {
		WriteErrorMsg(rw, "failed to encode response", http.StatusInternalServerError)
		return fmt.Errorf("failed to encode response: %w", err)
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusOK)
	_, err = rw.Write(buf)
	return err
}

// ErrorResponse is the body of all error responses.
type ErrorResponse struct {
	Message string `json:"message"`
}

// WriteErrorMsg writes an ErrorResponse containing msg with the given
// status.
func WriteErrorMsg(rw http.ResponseWriter, msg string, status int) {
	WriteError(rw, ErrorResponse{Message: msg}, status)
}

// WriteError writes err with the given status.
func WriteError(rw http.ResponseWriter, err ErrorResponse, status int) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	json.MarshalWrite(rw, err) //nolint:errcheck
}
