package lambdapi

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
)

// Start hands the dispatcher to the AWS Lambda runtime and blocks for the
// process lifetime. Resources entered on the bridge are released when the
// platform signals shutdown, so teardown is deterministic rather than
// finalizer-driven.
func Start(ctx context.Context, d *Dispatcher) {
	lambda.StartWithOptions(
		d,
		lambda.WithContext(ctx),
		lambda.WithEnableSIGTERM(func() {
			d.Shutdown(context.Background())
		}),
	)
}
