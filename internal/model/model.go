// Package model declares the persisted entities of the practice
// journal and the request/response shapes that differ from them.
//
// The JSON field names are the service's wire contract; nested
// collections (practice_days, exercise_blocks, exercises, log_details)
// are always fully materialized before serialization so consumers can
// distinguish "empty" from "not loaded".
package model

import "time"

// Instrument is a musical instrument. Names are unique.
type Instrument struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// PracticeTemplate is a named, multi-day practice rotation plan for one
// instrument. Only active templates are listed.
type PracticeTemplate struct {
	ID           int64   `json:"id"`
	InstrumentID int64   `json:"instrument_id"`
	Name         string  `json:"name"`
	DaysCount    int     `json:"days_count"`
	Description  *string `json:"description"`
	IsActive     bool    `json:"is_active"`
}

// PracticeTemplateWithDays is a template together with its full nested
// tree: days ordered by day_number, blocks and exercises by
// display_order.
type PracticeTemplateWithDays struct {
	PracticeTemplate
	PracticeDays []PracticeDay `json:"practice_days"`
}

// PracticeDay is one numbered day within a template.
type PracticeDay struct {
	ID             int64           `json:"id"`
	TemplateID     int64           `json:"template_id"`
	DayNumber      int             `json:"day_number"`
	Title          string          `json:"title"`
	Warmup         *string         `json:"warmup"`
	Scales         *string         `json:"scales"`
	Repertoire     *string         `json:"repertoire"`
	ExerciseBlocks []ExerciseBlock `json:"exercise_blocks"`
}

// ExerciseBlock is a named, ordered group of exercises within a day
// (e.g. "blockA").
type ExerciseBlock struct {
	ID            int64      `json:"id"`
	PracticeDayID int64      `json:"practice_day_id"`
	BlockType     string     `json:"block_type"`
	DisplayOrder  int        `json:"display_order"`
	Exercises     []Exercise `json:"exercises"`
}

// Exercise is an individual exercise within a block.
type Exercise struct {
	ID           int64  `json:"id"`
	BlockID      int64  `json:"block_id"`
	ExerciseText string `json:"exercise_text"`
	DisplayOrder int    `json:"display_order"`
}

// PracticeLog is a user-recorded practice session. template_id and
// day_number are copied from the template at logging time and are
// never validated against it.
type PracticeLog struct {
	ID              int64               `json:"id"`
	TemplateID      int64               `json:"template_id"`
	DayNumber       int                 `json:"day_number"`
	PracticeDate    Date                `json:"practice_date"`
	DurationMinutes int                 `json:"duration_minutes"`
	Notes           *string             `json:"notes"`
	CreatedAt       time.Time           `json:"created_at"`
	LogDetails      []PracticeLogDetail `json:"log_details"`
}

// PracticeLogDetail is a free-text note for one section of a logged
// session (e.g. "warmup", "scales", "blockA").
type PracticeLogDetail struct {
	ID          int64   `json:"id"`
	LogID       int64   `json:"log_id"`
	SectionType string  `json:"section_type"`
	Content     *string `json:"content"`
}

// PracticeLogDetailCreate is the payload shape for one detail entry in
// a log-creation request.
type PracticeLogDetailCreate struct {
	SectionType string  `json:"section_type" validate:"required,max=50"`
	Content     *string `json:"content"`
}

// PracticeLogCreate is the payload for creating a practice log with
// its details. The integer fields are pointers so "required" checks
// presence only: zero and negative values are accepted, matching the
// loose-reference semantics of template_id and day_number.
type PracticeLogCreate struct {
	TemplateID      *int64                    `json:"template_id" validate:"required"`
	DayNumber       *int                      `json:"day_number" validate:"required"`
	PracticeDate    Date                      `json:"practice_date" validate:"required"`
	DurationMinutes *int                      `json:"duration_minutes" validate:"required"`
	Notes           *string                   `json:"notes"`
	LogDetails      []PracticeLogDetailCreate `json:"log_details" validate:"dive"`
}

// AnalyticsSummary is the aggregate statistics response. Days with zero
// logs are absent from SessionsByDay.
type AnalyticsSummary struct {
	TotalSessions   int64            `json:"total_sessions"`
	TotalMinutes    int64            `json:"total_minutes"`
	AverageDuration float64          `json:"average_duration"`
	SessionsByDay   map[string]int64 `json:"sessions_by_day"`
}
