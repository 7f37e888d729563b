package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the gym tracker tools: schema, personal records,
// both rankings and weight progression.
// Used by the stdio binary and by the main backend at /mcp.
func NewServer(service contextService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymtracker-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_schema",
		Description: "Returns the DB schema of the gym tracker tables (profiles, exercises, categories, assignments, preferences, workout logs and sets, cardio logs): columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Returns the personal record (heaviest set) per exercise for a user, with PR date, number of workouts and last workout date. Arg: user_email.",
	}, h.GetPersonalRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_progress_ranking",
		Description: "Returns all users ranked by the sum of their personal records, with total and last 30 days volume and the number of records set.",
	}, h.GetProgressRankingTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_progression_ranking",
		Description: "Returns all users ranked by average progression percentage from their first logged weight to their personal record, over all exercises.",
	}, h.GetProgressionRankingTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_weight_progression",
		Description: "Returns the best weight per day for a user. Args: user_email; optional exercise_name (all exercises when empty). Use to see how a lift improved over time.",
	}, h.GetWeightProgressionTool())

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP.
func NewHTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}
