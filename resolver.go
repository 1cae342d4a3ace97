/*
Copyright 2025 Pawprint Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pawprint

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pawprint-hq/pawprint/internal/apierror"
	"github.com/pawprint-hq/pawprint/model"
)

// MalformedReferenceError marks a party reference that does not parse as
// a non-negative integer. Kept distinct from a not-found lookup so tests
// and callers can tell bad input from legitimate absence, even though
// both surface the same external message.
type MalformedReferenceError struct {
	Kind string
	Raw  string
}

func (e MalformedReferenceError) Error() string {
	return fmt.Sprintf("malformed %s reference %q", e.Kind, e.Raw)
}

// parseRef parses a raw party reference. Ids are non-negative integers.
func parseRef(kind, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, MalformedReferenceError{Kind: kind, Raw: raw}
	}
	return id, nil
}

// resolveUser resolves a raw user reference to a stored user. A
// malformed id is INVALID_INPUT, an absent one NOT_FOUND; both carry the
// "User with ID <raw> not found" message the API exposes.
func (p *Pawprint) resolveUser(ctx context.Context, raw string) (*model.User, error) {
	id, err := parseRef("User", raw)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInvalidInput, fmt.Sprintf("User with ID %s not found", raw), err)
	}

	user, err := p.datasource.GetUserByID(ctx, id)
	if err != nil {
		if apierror.IsCode(err, apierror.ErrNotFound) {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("User with ID %s not found", raw), err)
		}
		return nil, err
	}
	return user, nil
}

// resolveOrganization resolves a raw organization reference. Same
// contract as resolveUser.
func (p *Pawprint) resolveOrganization(ctx context.Context, raw string) (*model.Organization, error) {
	id, err := parseRef("Organization", raw)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInvalidInput, fmt.Sprintf("Organization with ID %s not found", raw), err)
	}

	org, err := p.datasource.GetOrganizationByID(ctx, id)
	if err != nil {
		if apierror.IsCode(err, apierror.ErrNotFound) {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Organization with ID %s not found", raw), err)
		}
		return nil, err
	}
	return org, nil
}
