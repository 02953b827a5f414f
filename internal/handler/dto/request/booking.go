package request

import (
	"time"

	"golfclub-backend/internal/usecase/commands"
)

type CreateBookingRequest struct {
	MemberNumber string `json:"member_number" binding:"required"`
	Segment      string `json:"segment" binding:"required"`
	CourseID     int64  `json:"course_id" binding:"required"`
	TeeDate      string `json:"tee_date" binding:"required,datetime=2006-01-02"`
	TeeTime      string `json:"tee_time" binding:"required"`
	NumPlayers   int32  `json:"num_players" binding:"required,min=1"`
}

func (r CreateBookingRequest) ToParams() (commands.CreateBookingParams, error) {
	teeDate, err := time.Parse(time.DateOnly, r.TeeDate)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	return commands.CreateBookingParams{
		MemberNumber: r.MemberNumber,
		Segment:      r.Segment,
		CourseID:     r.CourseID,
		TeeDate:      teeDate,
		TeeTime:      r.TeeTime,
		NumPlayers:   r.NumPlayers,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
