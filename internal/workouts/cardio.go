package workouts

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// CardioFields are the optional cardio fields an exercise records, besides the duration.
type CardioFields struct {
	Speed           bool   `json:"speed"`
	Resistance      bool   `json:"resistance"`
	Incline         bool   `json:"incline"`
	SpeedLabel      string `json:"speedLabel,omitempty"`
	ResistanceLabel string `json:"resistanceLabel,omitempty"`
	InclineLabel    string `json:"inclineLabel,omitempty"`
}

const (
	speedLabel      = "Velocidade (km/h)"
	resistanceLabel = "Resistência (nível)"
	inclineLabel    = "Inclinação (%)"
)

var (
	treadmillFields = CardioFields{
		Speed:        true,
		Incline:      true,
		SpeedLabel:   speedLabel,
		InclineLabel: inclineLabel,
	}
	resistanceMachineFields = CardioFields{
		Speed:           true,
		Resistance:      true,
		SpeedLabel:      speedLabel,
		ResistanceLabel: resistanceLabel,
	}
)

// cardioFieldsTable is matched top to bottom against the lowercase exercise name,
// the first row with a keyword contained in the name wins.
var cardioFieldsTable = []struct {
	keywords []string
	fields   CardioFields
}{
	{keywords: []string{"esteira", "treadmill"}, fields: treadmillFields},
	{keywords: []string{"elíptica", "eliptica", "elliptical"}, fields: resistanceMachineFields},
	{keywords: []string{"bicicleta", "bike"}, fields: resistanceMachineFields},
}

// FieldsFor selects the cardio fields by exercise name. Unknown exercises record duration only.
func FieldsFor(exerciseName string) CardioFields {
	name := strings.ToLower(exerciseName)
	for _, row := range cardioFieldsTable {
		for _, kw := range row.keywords {
			if strings.Contains(name, kw) {
				return row.fields
			}
		}
	}
	return CardioFields{}
}

type CardioLog struct {
	ID              string    `json:"id"`
	WorkoutLogID    string    `json:"workoutLogId"`
	UserID          string    `json:"userId"`
	ExerciseID      string    `json:"exerciseId"`
	ExerciseName    string    `json:"exerciseName"`
	DurationMinutes float64   `json:"durationMinutes"`
	Speed           *float64  `json:"speed"`
	Resistance      *float64  `json:"resistance"`
	Incline         *float64  `json:"incline"`
	LoggedAt        time.Time `json:"loggedAt"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CardioRequest struct {
	ExerciseID      string   `json:"exerciseId" validate:"required,uuid"`
	DurationMinutes float64  `json:"durationMinutes"`
	Speed           *float64 `json:"speed"`
	Resistance      *float64 `json:"resistance"`
	Incline         *float64 `json:"incline"`
}

// CardioUpdate changes only the fields present. A zero value clears an optional field.
type CardioUpdate struct {
	DurationMinutes *float64 `json:"durationMinutes"`
	Speed           *float64 `json:"speed"`
	Resistance      *float64 `json:"resistance"`
	Incline         *float64 `json:"incline"`
}

// ApplyFields drops the values the exercise does not record, and stores zeros as null.
func (c *CardioLog) ApplyFields(fields CardioFields) {
	c.Speed = keepIf(fields.Speed, c.Speed)
	c.Resistance = keepIf(fields.Resistance, c.Resistance)
	c.Incline = keepIf(fields.Incline, c.Incline)
}

func (c *CardioLog) Validate() error {
	if c.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be greater than 0", ErrInvalidCardio)
	}
	var err error
	for _, f := range []struct {
		name string
		val  *float64
	}{
		{"speed", c.Speed},
		{"resistance", c.Resistance},
		{"incline", c.Incline},
	} {
		if f.val != nil && *f.val < 0 {
			err = multierr.Append(err, fmt.Errorf("%w: %s cannot be negative", ErrInvalidCardio, f.name))
		}
	}
	return err
}

// Merge applies the present fields of the update.
func (c *CardioLog) Merge(update CardioUpdate) {
	if update.DurationMinutes != nil {
		c.DurationMinutes = *update.DurationMinutes
	}
	if update.Speed != nil {
		c.Speed = update.Speed
	}
	if update.Resistance != nil {
		c.Resistance = update.Resistance
	}
	if update.Incline != nil {
		c.Incline = update.Incline
	}
}

func keepIf(selected bool, v *float64) *float64 {
	if !selected || v == nil || *v == 0 {
		return nil
	}
	val := *v
	return &val
}
