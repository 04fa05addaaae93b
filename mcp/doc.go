// Package mcp exposes the decline-code dataset over MCP (Model Context
// Protocol) so agent runtimes can query it as tools.
//
// # Usage
//
//	import (
//	    "github.com/stripeguard/declines/mcp"
//	    mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
//	)
//
//	server := mcp.NewServer(mcp.Options{Name: "declines", Version: "1.0.0"})
//	// serve over any mcpsdk transport, e.g.:
//	// server.Run(ctx, &mcpsdk.StdioTransport{})
//
// Three tools are registered:
//
//   - list_decline_codes: every valid code token and the doc version
//   - lookup_decline_code: the full record for one code
//   - decline_message: the localized end-user message for a code or a raw
//     gateway error object
//
// Tool calls never fail on bad input; unknown codes and absent translations
// come back as an IsError result with a human-readable explanation, matching
// the library's no-value semantics.
package mcp
