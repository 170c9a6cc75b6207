package lambdapi

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/xstats"
)

// Handler is an executable lambda function and is an alias
// for the type of the same name in the AWS Lambda SDK for
// go. The Dispatcher implements this interface.
type Handler = lambda.Handler

// Stat is an alias for the chosen project metrics library
// which is, currently, xstats. All references in the project
// should be to this name rather than xstats directly.
type Stat = xstats.XStater

// HandlerFunc is the signature of a registered route handler. The args
// mapping carries the decoded request body fields plus any values injected
// for parameters declared at registration time. The returned value becomes
// the response content unless it is itself a *Response, in which case it
// replaces the response under construction wholesale.
type HandlerFunc func(ctx context.Context, args Args) (interface{}, error)

// Task is a unit of asynchronous work driven to completion by the
// execution bridge.
type Task func(ctx context.Context) (interface{}, error)

// ReleaseFunc releases a process-lifetime resource during shutdown.
type ReleaseFunc func(ctx context.Context) error

// Validator is a pluggable argument validation capability. Validate
// returns nil for acceptable values, a *ValidationError for structured
// field-level failures, or any other error for validator malfunctions
// which are treated as unexpected faults.
type Validator interface {
	Validate(ctx context.Context, v interface{}) error
}
