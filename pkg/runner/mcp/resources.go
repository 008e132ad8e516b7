package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const texMIME = "text/x-tex"

func registerResources(srv *server.MCPServer, svc *Service) {
	registerMonthsResource(srv, svc)
	registerMainResource(srv, svc)
	registerMonthTemplate(srv, svc)
}

func registerMonthsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"diary://months",
		"Months",
		mcp.WithResourceDescription("Every month document with the days it holds."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		months, err := svc.ListMonths(ctx)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"months": months,
			"count":  len(months),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerMainResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"diary://main",
		"Main document",
		mcp.WithResourceDescription("The document that includes every month."),
		mcp.WithMIMEType(texMIME),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, err := svc.MainDocument(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceText(request.Params.URI, text), nil
	})
}

func registerMonthTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"diary://months/{year}/{month}",
		"Month document",
		mcp.WithTemplateDescription("Markup of one month, e.g. diary://months/2024/March."),
		mcp.WithTemplateMIMEType(texMIME),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		year := argument(request.Params.Arguments["year"])
		month := argument(request.Params.Arguments["month"])
		if year == "" || month == "" {
			return nil, fmt.Errorf("year and month are required")
		}
		text, err := svc.MonthDocument(ctx, year, month)
		if err != nil {
			return nil, err
		}
		return encodeResourceText(request.Params.URI, text), nil
	})
}

// argument unwraps a template variable, which arrives as a string or as a
// one element list depending on the client.
func argument(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceText(uri, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: texMIME,
			Text:     text,
		},
	}
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
