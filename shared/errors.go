// Copyright (C) 2025 timbastin
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package shared

import (
	"errors"
	"fmt"
)

// The lifecycle operations fail with one of the error types below. Local
// validation errors (unauthorized, invalid request, broken update path) are
// raised before any mutation. Gateway errors wrap the transport cause; on the
// tag-consistency-critical path they abort the surrounding transaction.

type UnauthorizedError struct {
	Actor string
	Title string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s is not authorized to perform this action on %s", e.Actor, e.Title)
}

type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return e.Reason
}

type BrokenUpdatePathError struct {
	ReleasedNVR  string
	SubmittedNVR string
}

func (e *BrokenUpdatePathError) Error() string {
	return fmt.Sprintf("broken update path: %s is already released and is newer than %s", e.ReleasedNVR, e.SubmittedNVR)
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

type GatewayError struct {
	Gateway string
	Op      string
	Err     error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s gateway: %s: %v", e.Gateway, e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func IsUnauthorized(err error) bool {
	var t *UnauthorizedError
	return errors.As(err, &t)
}

func IsInvalidRequest(err error) bool {
	var t *InvalidRequestError
	return errors.As(err, &t)
}

func IsBrokenUpdatePath(err error) bool {
	var t *BrokenUpdatePathError
	return errors.As(err, &t)
}

func IsNotFound(err error) bool {
	var t *NotFoundError
	return errors.As(err, &t)
}

func IsGatewayError(err error) bool {
	var t *GatewayError
	return errors.As(err, &t)
}
