package mapper

import (
	"time"

	"recruit-api/modules/scheduling/dto"
	"recruit-api/modules/scheduling/entity"
)

func ToInterviewResponse(i *entity.InterviewSchedule) *dto.InterviewResponse {
	return &dto.InterviewResponse{
		ID:              i.ID.String(),
		OrganizerID:     i.OrganizerID.String(),
		Title:           i.Title,
		StartTime:       i.StartTime,
		EndTime:         i.EndTime,
		DurationMinutes: i.DurationMinutes,
		Timezone:        i.Timezone,
		CandidateIDs:    append([]string{}, i.CandidateIDs...),
		InterviewerIDs:  append([]string{}, i.InterviewerIDs...),
		Status:          string(i.Status),
		BlockTaskID:     i.BlockTaskID,
		CreatedAt:       i.CreatedAt,
	}
}

// ToCandidateSlotResponse renders start in loc for display.
func ToCandidateSlotResponse(start, end time.Time, ids []string, score int, loc *time.Location) dto.CandidateSlotResponse {
	return dto.CandidateSlotResponse{
		Start:          start.UTC(),
		End:            end.UTC(),
		LocalStart:     start.In(loc).Format(time.RFC3339),
		ParticipantIDs: ids,
		Score:          score,
	}
}
