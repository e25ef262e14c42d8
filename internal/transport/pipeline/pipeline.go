// Package pipeline runs a request through an explicit list of stages:
// authenticate, authorize, validate arguments, execute. The first stage that
// returns an error stops the call.
package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/internal/metrics"
	"github.com/heartmarshall/account-service/internal/mwp"
	"github.com/heartmarshall/account-service/internal/transport/respond"
	"github.com/heartmarshall/account-service/pkg/ctxutil"
)

// MaxBodyBytes bounds every request body.
const MaxBodyBytes = 1 << 20

// Call is one request moving through the stages.
type Call struct {
	// Operation names the call in metrics, e.g. "add_balance".
	Operation string
	// MWP marks multi-write-proxy calls: the body is an mwp.Envelope and
	// arguments are read from its payload.
	MWP bool

	// CallerID is set by Authenticate.
	CallerID uuid.UUID

	req      *http.Request
	body     []byte
	read     bool
	envelope *mwp.Envelope
}

// NewCall creates a call for r.
func NewCall(operation string, r *http.Request) *Call {
	return &Call{Operation: operation, req: r}
}

// NewMWPCall creates a call whose body is an MWP envelope.
func NewMWPCall(operation string, r *http.Request) *Call {
	return &Call{Operation: operation, MWP: true, req: r}
}

// Stage is one step of the pipeline.
type Stage func(ctx context.Context, call *Call) error

// Run executes stages in order and returns the first error. MWP calls are
// counted by operation and result.
func Run(ctx context.Context, call *Call, stages ...Stage) error {
	var err error
	for _, stage := range stages {
		if err = stage(ctx, call); err != nil {
			break
		}
	}

	if call.MWP {
		result := metrics.ResultOK
		if err != nil {
			_, code := respond.Classify(err)
			result = strings.ToLower(code)
		}
		metrics.MWPRequestsTotal.WithLabelValues(call.Operation, result).Inc()
	}
	return err
}

// Authenticate requires a caller identity, placed in the context by the auth middleware.
func Authenticate() Stage {
	return func(ctx context.Context, call *Call) error {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok || userID == uuid.Nil {
			return fmt.Errorf("authentication required: %w", domain.ErrUnauthorized)
		}
		call.CallerID = userID
		return nil
	}
}

// AuthorizeDigest verifies the envelope digest of an MWP call. A call
// without a payload carries nothing to sign and passes.
func AuthorizeDigest(signer *mwp.Signer) Stage {
	return func(_ context.Context, call *Call) error {
		env, err := call.Envelope()
		if err != nil {
			return err
		}
		if !env.HasPayload() {
			return nil
		}

		err = signer.Verify(env.Payload, env.Digest)
		switch {
		case errors.Is(err, domain.ErrMissingDigest):
			metrics.DigestFailuresTotal.WithLabelValues("missing").Inc()
		case errors.Is(err, domain.ErrInvalidDigest):
			metrics.DigestFailuresTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}
}

// ValidateArgs decodes the call arguments into dst and checks its validate tags.
func ValidateArgs(v *Validator, dst any) Stage {
	return func(_ context.Context, call *Call) error {
		raw, err := call.args()
		if err != nil {
			return err
		}
		if err := decodeStrict(raw, dst); err != nil {
			return err
		}
		return v.Struct(dst)
	}
}

// ValidateID decodes an argument that is a bare JSON string id, as sent by
// MWP rollbacks.
func ValidateID(field string, dst *uuid.UUID) Stage {
	return func(_ context.Context, call *Call) error {
		raw, err := call.args()
		if err != nil {
			return err
		}

		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return domain.NewValidationError(field, "must be a JSON string id")
		}
		id, err := uuid.Parse(s)
		if err != nil || id == uuid.Nil {
			return domain.NewValidationError(field, "must be a UUID")
		}
		*dst = id
		return nil
	}
}

// Execute runs the operation itself.
func Execute(fn func(ctx context.Context, call *Call) error) Stage {
	return Stage(fn)
}

// Envelope returns the decoded MWP envelope of the call.
func (c *Call) Envelope() (*mwp.Envelope, error) {
	if c.envelope != nil {
		return c.envelope, nil
	}
	if !c.MWP {
		return nil, errors.New("pipeline: not an MWP call")
	}

	body, err := c.Body()
	if err != nil {
		return nil, err
	}
	var env mwp.Envelope
	if err := decodeStrict(body, &env); err != nil {
		return nil, err
	}
	c.envelope = &env
	return c.envelope, nil
}

// Body returns the request body, read once and bounded by MaxBodyBytes.
func (c *Call) Body() ([]byte, error) {
	if c.read {
		return c.body, nil
	}
	c.read = true

	if c.req == nil || c.req.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(c.req.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}
	if len(body) > MaxBodyBytes {
		return nil, domain.NewValidationError("body", "request body too large")
	}
	c.body = body
	return body, nil
}

func (c *Call) args() ([]byte, error) {
	if c.MWP {
		env, err := c.Envelope()
		if err != nil {
			return nil, err
		}
		if !env.HasPayload() {
			return nil, domain.NewValidationError("payload", "required")
		}
		return env.Payload, nil
	}
	return c.Body()
}

func decodeStrict(raw []byte, dst any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return domain.NewValidationError("body", "required")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "malformed JSON: "+err.Error())
	}
	if dec.More() {
		return domain.NewValidationError("body", "trailing data after JSON value")
	}
	return nil
}
