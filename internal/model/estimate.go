package model

import (
	"time"

	"github.com/google/uuid"
)

// Estimate is the full takeoff record for one drawing. It is created once
// per measurement run and not modified afterwards.
type Estimate struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Material  string    `json:"material"`
	CreatedAt time.Time `json:"created_at"`

	// Aggregate measurements in drawing units (mm, mm², and meters for
	// the cut length, matching the drawing scale assumption).
	Area      float64 `json:"area"`
	Width     float64 `json:"width"`
	Thickness float64 `json:"thickness"`
	CutLength float64 `json:"cut_length"`

	// Derived figures.
	Weight         float64 `json:"weight"`           // volume proxy: scaled cut length x width x thickness
	Mass           float64 `json:"mass"`             // kg, cut length x material kg/m
	CutTimeMinutes float64 `json:"cut_time_minutes"` // cut length / feed rate

	Census map[string]int `json:"census"` // entity type name -> count
}

// NewEstimate creates an empty estimate shell with a fresh ID and timestamp.
// The measurement engine fills in the figures.
func NewEstimate(file string) Estimate {
	return Estimate{
		ID:        uuid.New().String()[:8],
		File:      file,
		CreatedAt: time.Now().UTC(),
	}
}
