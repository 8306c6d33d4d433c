package github

import (
	"context"
	"errors"
	"net/url"
	"os"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/repoagent/repoagent/internal/logging"
)

const (
	maxAttempts = 3
	baseBackoff = 2 * time.Second
)

// graphQLDoer is the part of the go-gh GraphQL client the executor uses.
type graphQLDoer interface {
	DoWithContext(ctx context.Context, query string, variables map[string]interface{}, response interface{}) error
}

type errorClass int

const (
	classAuth errorClass = iota
	classTransient
	classFatal
	classUnexpected
)

// Executor runs GraphQL queries with retry and backoff. Every failure mode
// ends the process: a single Actions invocation has no caller positioned to
// recover, so errors terminate the run rather than propagate.
type Executor struct {
	gql   graphQLDoer
	sleep func(time.Duration)
	exit  func(code int)
}

// NewExecutor creates an executor over the given GraphQL client.
func NewExecutor(gql graphQLDoer) *Executor {
	return &Executor{
		gql:   gql,
		sleep: time.Sleep,
		exit:  os.Exit,
	}
}

// Execute runs a query, unmarshaling the response data into response.
// Transient failures (rate limits, 5xx, network errors) are retried up to
// maxAttempts with exponential backoff. Auth failures and malformed queries
// terminate immediately. Unclassified errors are retried exactly once.
func (e *Executor) Execute(ctx context.Context, query string, variables map[string]interface{}, response interface{}) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := e.gql.DoWithContext(ctx, query, variables, response)
		if err == nil {
			return
		}

		switch classify(err) {
		case classAuth:
			e.Fatal("authentication/permission error", "error", err)
			return
		case classTransient:
			if attempt < maxAttempts-1 {
				backoff := baseBackoff * (1 << attempt)
				logging.Warn("transient graphql error, retrying", "error", err, "backoff", backoff, "attempt", attempt)
				e.sleep(backoff)
				continue
			}
			e.Fatal("graphql query failed after retries", "error", err, "attempts", maxAttempts)
			return
		case classUnexpected:
			if attempt < 1 {
				logging.Warn("unexpected error, retrying once", "error", err)
				e.sleep(baseBackoff)
				continue
			}
			e.Fatal("unexpected error after retry", "error", err)
			return
		default:
			e.Fatal("graphql query error", "error", err)
			return
		}
	}

	e.Fatal("max retries exceeded")
}

// Fatal logs the error and terminates the process with a nonzero status.
func (e *Executor) Fatal(msg string, args ...any) {
	logging.Error(msg, args...)
	e.exit(1)
}

func classify(err error) errorClass {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case 401, 403:
			return classAuth
		case 502, 503, 504:
			return classTransient
		default:
			return classFatal
		}
	}

	var gqlErr *api.GraphQLError
	if errors.As(err, &gqlErr) {
		for _, item := range gqlErr.Errors {
			if item.Type == "RATE_LIMITED" || item.Type == "INTERNAL" {
				return classTransient
			}
		}
		return classFatal
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return classTransient
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return classTransient
	}

	return classUnexpected
}
