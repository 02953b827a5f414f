package request

import (
	"time"

	"golfclub-backend/internal/usecase/queries"
)

type QuoteRequest struct {
	TeeDate    string `json:"tee_date" binding:"required,datetime=2006-01-02"`
	TeeTime    string `json:"tee_time" binding:"required"`
	CourseID   int64  `json:"course_id" binding:"required"`
	Segment    string `json:"segment" binding:"required"`
	NumPlayers int32  `json:"num_players" binding:"required,min=1"`
}

func (r QuoteRequest) ToParams() (queries.QuoteParams, error) {
	teeDate, err := time.Parse(time.DateOnly, r.TeeDate)
	if err != nil {
		return queries.QuoteParams{}, err
	}
	return queries.QuoteParams{
		TeeDate:    teeDate,
		TeeTime:    r.TeeTime,
		CourseID:   r.CourseID,
		Segment:    r.Segment,
		NumPlayers: r.NumPlayers,
	}, nil
}
