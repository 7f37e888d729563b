package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymtracker/internal/profiles"
	"github.com/2beens/gymtracker/internal/ranking"
)

var ErrUnknownUser = errors.New("no user with that email")

type profileFinder interface {
	GetByEmail(ctx context.Context, email string) (*profiles.Profile, error)
}

// rankings provides the cached aggregation lists.
type rankings interface {
	PRRanking(ctx context.Context) ([]ranking.UserProgress, error)
	ProgressionRanking(ctx context.Context) ([]ranking.Progression, error)
	ExerciseProgress(ctx context.Context, userID string) ([]ranking.ExerciseProgress, error)
}

type weightProgressions interface {
	WeightProgression(ctx context.Context, userID, exerciseID string) ([]ranking.WeightPoint, error)
}

// contextService is what the tool handlers need. Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetPersonalRecords(ctx context.Context, userEmail string) ([]ranking.ExerciseProgress, error)
	GetProgressRanking(ctx context.Context) ([]ranking.UserProgress, error)
	GetProgressionRanking(ctx context.Context) ([]ranking.Progression, error)
	GetWeightProgression(ctx context.Context, userEmail, exerciseName string) ([]ranking.WeightPoint, error)
}

// ContextService answers the MCP tools from the schema and the ranking aggregations.
type ContextService struct {
	schema       SchemaRepo
	profiles     profileFinder
	rankings     rankings
	progressions weightProgressions
}

func NewContextService(schemaRepo SchemaRepo, profilesRepo profileFinder, rankingLists rankings, progressions weightProgressions) *ContextService {
	return &ContextService{
		schema:       schemaRepo,
		profiles:     profilesRepo,
		rankings:     rankingLists,
		progressions: progressions,
	}
}

// GetSchema returns the DB schema (table names, columns, types) as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Gym Tracker DB Schema\n\nNo gym tracker tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Gym Tracker DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(tableOrder, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

// GetPersonalRecords returns the per-exercise PRs of the user with the given email.
func (s *ContextService) GetPersonalRecords(ctx context.Context, userEmail string) ([]ranking.ExerciseProgress, error) {
	userID, err := s.userID(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	return s.rankings.ExerciseProgress(ctx, userID)
}

func (s *ContextService) GetProgressRanking(ctx context.Context) ([]ranking.UserProgress, error) {
	return s.rankings.PRRanking(ctx)
}

func (s *ContextService) GetProgressionRanking(ctx context.Context) ([]ranking.Progression, error) {
	return s.rankings.ProgressionRanking(ctx)
}

// GetWeightProgression returns the best weight per day of the user. An empty exercise name
// means every exercise, otherwise the name is matched ignoring case.
func (s *ContextService) GetWeightProgression(ctx context.Context, userEmail, exerciseName string) ([]ranking.WeightPoint, error) {
	userID, err := s.userID(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	points, err := s.progressions.WeightProgression(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	if exerciseName == "" {
		return points, nil
	}

	filtered := make([]ranking.WeightPoint, 0, len(points))
	for _, p := range points {
		if strings.EqualFold(p.ExerciseName, strings.TrimSpace(exerciseName)) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *ContextService) userID(ctx context.Context, email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", fmt.Errorf("%w: email is empty", ErrUnknownUser)
	}
	profile, err := s.profiles.GetByEmail(ctx, email)
	if errors.Is(err, profiles.ErrProfileNotFound) {
		return "", fmt.Errorf("%w: %s", ErrUnknownUser, email)
	}
	if err != nil {
		return "", err
	}
	return profile.ID, nil
}
