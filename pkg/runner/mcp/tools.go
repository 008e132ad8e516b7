package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerWriteEntryTool(srv, svc)
	registerGetDayTool(srv, svc)
	registerListMonthsTool(srv, svc)
	registerSyncTool(srv, svc)
	registerListMoodsTool(srv)
}

func registerWriteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"write_entry",
		mcp.WithDescription("Add an entry to the diary. Entries of the same day share one section."),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Text of the entry. Line breaks are kept."),
		),
		mcp.WithString("date",
			mcp.Description("Day of the entry as dd/mm/yy, dd/mm/yyyy or yyyy-mm-dd. Empty means today."),
		),
		mcp.WithString("mood",
			mcp.Description("Mood code 1-7 or a keyword such as tired, coding or relaxed."),
		),
		mcp.WithString("box_a",
			mcp.Description("Optional text for the first highlighted side box."),
		),
		mcp.WithString("box_b",
			mcp.Description("Optional text for the second highlighted side box."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Body string `json:"body"`
			Date string `json:"date"`
			Mood string `json:"mood"`
			BoxA string `json:"box_a"`
			BoxB string `json:"box_b"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.WriteEntry(ctx, WriteEntryOptions{
			Date: args.Date,
			Body: args.Body,
			BoxA: args.BoxA,
			BoxB: args.BoxB,
			Mood: args.Mood,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerGetDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_day",
		mcp.WithDescription("Fetch the entries written on one day."),
		mcp.WithString("date",
			mcp.Description("Day as dd/mm/yy, dd/mm/yyyy or yyyy-mm-dd. Empty means today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := request.GetString("date", "")
		entries, err := svc.Day(ctx, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"date":    date,
			"entries": entries,
			"count":   len(entries),
		})
	})
}

func registerListMonthsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_months",
		mcp.WithDescription("List the month documents with the days they hold."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		months, err := svc.ListMonths(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"months": months,
			"count":  len(months),
		})
	})
}

func registerSyncTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"sync_main_document",
		mcp.WithDescription("Reference every month document from the main document."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		added, err := svc.Sync(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"added": added,
			"count": len(added),
		})
	})
}

func registerListMoodsTool(srv *server.MCPServer) {
	tool := mcp.NewTool(
		"list_moods",
		mcp.WithDescription("List the moods an entry can carry."),
	)

	srv.AddTool(tool, func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(map[string]any{"moods": Moods()})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
