package main

// This example demonstrates how routes are registered against a Dispatcher
// and how process-lifetime resources are entered before handing control to
// the Lambda runtime.

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lambdapi/lambdapi"
)

type greetParams struct {
	Name string `json:"name" validate:"required"`
}

func main() {
	d := lambdapi.New(
		lambdapi.WithValidator(lambdapi.NewPlaygroundValidator()),
	)

	// This can be called with an HTTP API event like:
	//
	//	{"requestContext": {"http": {"method": "GET", "path": "/"}}}
	d.Get("/", func(ctx context.Context, args lambdapi.Args) (interface{}, error) {
		return "get", nil
	})

	// POST /greet decodes and validates a typed argument struct. Invalid
	// input yields a 422 with the failing fields.
	d.Post("/greet", func(ctx context.Context, args lambdapi.Args) (interface{}, error) {
		params := args["params"].(*greetParams)
		if scope, ok := lambdapi.ScopeFromContext(ctx); ok {
			scope.Set("greeted", params.Name)
		}
		return map[string]string{"greeting": fmt.Sprintf("Hello %s!", params.Name)}, nil
	}, lambdapi.WithParams("params", func() interface{} { return &greetParams{} }))

	// PUT /echo shows request injection and a binary response. The body
	// bytes come back base64 encoded in the envelope.
	d.Put("/echo", func(ctx context.Context, args lambdapi.Args) (interface{}, error) {
		body, err := args.Request("request").Body()
		if err != nil {
			return nil, err
		}
		return lambdapi.NewBinaryResponse(body, "application/octet-stream"), nil
	}, lambdapi.InjectRequest("request"), lambdapi.WithStatus(http.StatusAccepted))

	ctx := context.Background()

	// A client pool entered here stays alive across invocations and is
	// released when the platform stops the process.
	if _, err := d.EnterResource(ctx, func(ctx context.Context) (interface{}, lambdapi.ReleaseFunc, error) {
		pool := &http.Client{}
		release := func(ctx context.Context) error {
			pool.CloseIdleConnections()
			return nil
		}
		return pool, release, nil
	}); err != nil {
		panic(err.Error())
	}

	lambdapi.Start(ctx, d)
}
