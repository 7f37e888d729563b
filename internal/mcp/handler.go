package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// GetSchemaTool returns the MCP tool handler for get_schema.
func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

// UserInput is the input for get_personal_records.
type UserInput struct {
	UserEmail string `json:"user_email" jsonschema:"Email of the user"`
}

// GetPersonalRecordsTool returns the MCP tool handler for get_personal_records.
func (h *Handler) GetPersonalRecordsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		records, err := h.service.GetPersonalRecords(ctx, in.UserEmail)
		if err != nil {
			return errorResult("Error fetching personal records: " + err.Error()), nil, nil
		}
		return jsonResult(records), nil, nil
	}
}

// GetProgressRankingTool returns the MCP tool handler for get_progress_ranking.
func (h *Handler) GetProgressRankingTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		list, err := h.service.GetProgressRanking(ctx)
		if err != nil {
			return errorResult("Error fetching progress ranking: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

// GetProgressionRankingTool returns the MCP tool handler for get_progression_ranking.
func (h *Handler) GetProgressionRankingTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		list, err := h.service.GetProgressionRanking(ctx)
		if err != nil {
			return errorResult("Error fetching progression ranking: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

// WeightProgressionInput is the input for get_weight_progression.
type WeightProgressionInput struct {
	UserEmail    string `json:"user_email" jsonschema:"Email of the user"`
	ExerciseName string `json:"exercise_name,omitempty" jsonschema:"Exercise name (e.g. Supino). Empty for all exercises"`
}

// GetWeightProgressionTool returns the MCP tool handler for get_weight_progression.
func (h *Handler) GetWeightProgressionTool() func(context.Context, *mcp.CallToolRequest, WeightProgressionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeightProgressionInput) (*mcp.CallToolResult, any, error) {
		points, err := h.service.GetWeightProgression(ctx, in.UserEmail, in.ExerciseName)
		if err != nil {
			return errorResult("Error fetching weight progression: " + err.Error()), nil, nil
		}
		return jsonResult(points), nil, nil
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
