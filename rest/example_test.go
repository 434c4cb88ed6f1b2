// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/z5labs/loam/bind"
	"github.com/z5labs/loam/rest"
	"github.com/z5labs/loam/schema"
)

type exampleUserV2 struct {
	Username string  `json:"username" validate:"required"`
	Balance  float64 `json:"balance" validate:"required"`
}

type exampleUserV1 struct {
	Username string `json:"username" validate:"required"`
}

func ExampleNewApi() {
	registry := schema.NewRegistry()
	registry.Register("user_v2", schema.Struct[exampleUserV2]())
	registry.Register("user_v1", schema.Struct[exampleUserV1]())

	createUser := rest.Operation(
		http.MethodPost,
		rest.BasePath("/users"),
		rest.HandlerFunc(func(ctx context.Context, args *bind.Args) (any, error) {
			switch args.Matched("user") {
			case bind.Schema("user_v2"):
				fmt.Println("got a v2 user")
			case bind.Schema("user_v1"):
				fmt.Println("got a v1 user")
			}
			return nil, nil
		}),
		rest.Param("user", bind.Union(bind.Schema("user_v2"), bind.Schema("user_v1"))),
	)

	getUser := rest.Operation(
		http.MethodGet,
		rest.BasePath("/users").Param("user_id"),
		rest.HandlerFunc(func(ctx context.Context, args *bind.Args) (any, error) {
			if args.Value("user_id") != 1 {
				return nil, nil
			}
			return &exampleUserV2{Username: "a", Balance: 1.5}, nil
		}),
		rest.Param("user_id", bind.Int()),
		rest.Returns(bind.Optional(bind.Schema("user_v2"))),
	)

	api := rest.NewApi("User Service", "v1.0.0", registry, createUser, getUser)

	srv := httptest.NewServer(api)
	defer srv.Close()

	resp, _ := http.Post(srv.URL+"/users", "application/json", strings.NewReader(`{"username": "a"}`))
	fmt.Println(resp.StatusCode)

	resp, _ = http.Get(srv.URL + "/users/1")
	fmt.Println(resp.StatusCode)

	resp, _ = http.Get(srv.URL + "/users/2")
	fmt.Println(resp.StatusCode)

	// Output:
	// got a v1 user
	// 200
	// 200
	// 404
}
