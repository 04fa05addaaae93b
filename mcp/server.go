package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	declines "github.com/stripeguard/declines"
)

// Options configures the MCP server.
type Options struct {
	// Name and Version identify the server implementation to clients.
	// Defaults are "declines" and "0.0.0".
	Name    string
	Version string
}

// NewServer creates an MCP server with the decline-code tools registered.
// The caller connects it to a transport from the MCP SDK.
func NewServer(options Options) *mcpsdk.Server {
	if options.Name == "" {
		options.Name = "declines"
	}
	if options.Version == "" {
		options.Version = "0.0.0"
	}

	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    options.Name,
		Version: options.Version,
	}, nil)
	RegisterTools(server)
	return server
}

// RegisterTools adds the decline-code tools to an existing MCP server.
func RegisterTools(server *mcpsdk.Server) {
	server.AddTool(&mcpsdk.Tool{
		Name:        "list_decline_codes",
		Description: "List every known payment decline code and the dataset version.",
		InputSchema: map[string]interface{}{"type": "object"},
	}, handleListDeclineCodes)

	server.AddTool(&mcpsdk.Tool{
		Name:        "lookup_decline_code",
		Description: "Get the full record for a payment decline code: description, merchant next steps, end-user action, and soft/hard category.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"code": map[string]interface{}{
					"type":        "string",
					"description": "The decline code token, e.g. insufficient_funds",
				},
			},
			"required": []string{"code"},
		},
	}, handleLookupDeclineCode)

	server.AddTool(&mcpsdk.Tool{
		Name:        "decline_message",
		Description: "Resolve the localized end-user message for a decline code, or extract it from a gateway error object.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"code": map[string]interface{}{
					"type":        "string",
					"description": "The decline code token",
				},
				"error": map[string]interface{}{
					"type":        "object",
					"description": "A gateway error object carrying a decline_code field; used when code is not given",
				},
				"locale": map[string]interface{}{
					"type":        "string",
					"description": "Locale tag, en or ja; defaults to en",
				},
			},
		},
	}, handleDeclineMessage)
}

func handleListDeclineCodes(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	return structuredResult(map[string]interface{}{
		"docVersion": declines.GetDocVersion(),
		"codes":      declines.GetAllDeclineCodes(),
	})
}

func handleLookupDeclineCode(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, err := decodeArgs(req)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	code, _ := args["code"].(string)
	if !declines.IsValidDeclineCode(code) {
		return errorResult(fmt.Sprintf("unknown decline code %q (data as of %s)", code, declines.GetDocVersion())), nil
	}

	result := declines.GetDeclineDescription(code)
	return structuredResult(map[string]interface{}{
		"docVersion": result.DocVersion,
		"code":       code,
		"info":       result.Code,
	})
}

func handleDeclineMessage(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, err := decodeArgs(req)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	locale := declines.LocaleEN
	if raw, ok := args["locale"].(string); ok && raw != "" {
		locale = declines.Locale(raw)
	}

	var (
		message string
		found   bool
	)
	if code, ok := args["code"].(string); ok && code != "" {
		message, found = declines.GetDeclineMessage(code, locale)
	} else if gatewayErr, ok := args["error"].(map[string]interface{}); ok {
		message, found = declines.GetMessageFromStripeError(gatewayErr, locale)
	} else {
		return errorResult("either code or error must be provided"), nil
	}

	if !found {
		return errorResult(fmt.Sprintf("no decline message for this input in locale %q", locale)), nil
	}
	return structuredResult(map[string]interface{}{
		"message": message,
		"locale":  locale,
	})
}

func decodeArgs(req *mcpsdk.CallToolRequest) (map[string]interface{}, error) {
	args := map[string]interface{}{}
	if req != nil && req.Params != nil && req.Params.Arguments != nil {
		if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
			return nil, fmt.Errorf("invalid tool arguments: %v", err)
		}
	}
	return args, nil
}

func structuredResult(body map[string]interface{}) (*mcpsdk.CallToolResult, error) {
	text, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return &mcpsdk.CallToolResult{
		Content:           []mcpsdk.Content{&mcpsdk.TextContent{Text: string(text)}},
		StructuredContent: body,
	}, nil
}

func errorResult(message string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: message}},
		IsError: true,
	}
}
