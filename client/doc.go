// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is a Go client for the ContractFlow HTTP API.

Each entity accessor returns a store.Repository backed by HTTP, so code
written against the repository contract works locally or remotely:

	c := client.New("http://localhost:5000")
	id, err := c.Projects().Create(ctx, &project)
	if errors.Is(err, store.ErrDuplicate) {
		// ...
	}

Server error codes are mapped back to the store error kinds; transport
failures are ErrStorage. client.Message returns the server's message.
*/
package client
