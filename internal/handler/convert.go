package handler

import (
	"github.com/vcscsvcscs/dosewise/internal/reminder"
	"github.com/vcscsvcscs/dosewise/pkg/api"
	"github.com/vcscsvcscs/dosewise/pkg/model"
)

func fromScheduleRequest(req api.ScheduleRequest) *model.Schedule {
	s := &model.Schedule{
		Name:      req.Name,
		Dosage:    req.Dosage,
		Times:     req.Times,
		StartDate: dateToTime(req.StartDate),
		Duration:  req.Duration,
	}
	if req.EndDate != nil {
		end := dateToTime(*req.EndDate)
		s.EndDate = &end
	}
	if req.Frequency != nil {
		s.Frequency = model.Frequency(*req.Frequency)
	}
	if req.DaysOfWeek != nil {
		s.DaysOfWeek = *req.DaysOfWeek
	}
	return s
}

func toAPISchedule(s model.Schedule) api.ScheduleResponse {
	times := s.Times
	resp := api.ScheduleResponse{
		Id:        stringToUUID(s.ID),
		UserId:    stringToUUID(s.UserID),
		Name:      stringPtr(s.Name),
		Dosage:    stringPtr(s.Dosage),
		Times:     &times,
		StartDate: timeToDate(s.StartDate),
		Duration:  stringPtr(s.Duration),
		EndDate:   timePtrToDate(s.EndDate),
		Active:    boolPtr(s.Active),
		Frequency: stringPtr(string(s.Frequency)),
		CreatedAt: timePtr(s.CreatedAt),
	}
	if len(s.DaysOfWeek) > 0 {
		days := s.DaysOfWeek
		resp.DaysOfWeek = &days
	}
	return resp
}

func toAPISchedules(schedules []model.Schedule) []api.ScheduleResponse {
	out := make([]api.ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, toAPISchedule(s))
	}
	return out
}

func toAPIDoseLog(l model.DoseLog) api.DoseLogResponse {
	return api.DoseLogResponse{
		Id:             stringToUUID(l.ID),
		ScheduleId:     stringPtr(l.ScheduleID),
		MedicationName: stringPtr(l.MedicationName),
		Time:           stringPtr(l.Time),
		ScheduledTime:  timePtr(l.ScheduledTime),
		ActionTime:     timePtr(l.ActionTime),
		Status:         stringPtr(string(l.Status)),
	}
}

func toAPIDoseLogs(logs []model.DoseLog) []api.DoseLogResponse {
	out := make([]api.DoseLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toAPIDoseLog(l))
	}
	return out
}

func toAPIOccurrences(occurrences []model.DoseOccurrence) []api.DoseOccurrence {
	out := make([]api.DoseOccurrence, 0, len(occurrences))
	for _, o := range occurrences {
		out = append(out, api.DoseOccurrence{
			ScheduleId:     stringPtr(o.ScheduleID),
			MedicationName: stringPtr(o.MedicationName),
			Time:           stringPtr(o.Time),
		})
	}
	return out
}

func toAPIAchievements(achievements []model.Achievement) []api.Achievement {
	out := make([]api.Achievement, 0, len(achievements))
	for _, a := range achievements {
		out = append(out, api.Achievement{
			Key:         stringPtr(a.Key),
			Title:       stringPtr(a.Title),
			Emoji:       stringPtr(a.Emoji),
			Description: stringPtr(a.Description),
		})
	}
	return out
}

func toAPIPreferences(p model.NotificationPreferences) api.NotificationPreferences {
	resp := api.NotificationPreferences{
		RemindersEnabled:    boolPtr(p.RemindersEnabled),
		ReminderLeadMinutes: intPtr(p.ReminderLeadMinutes),
		SnoozeMinutes:       intPtr(p.SnoozeMinutes),
		Sound:               boolPtr(p.Sound),
		Vibration:           boolPtr(p.Vibration),
	}
	radius := float32(p.LocationRadiusMeters)
	resp.LocationRadiusMeters = &radius
	if p.Location != nil {
		resp.Location = &api.Location{Lat: float32(p.Location.Lat), Lng: float32(p.Location.Lng)}
	}
	return resp
}

// mergePreferences applies the fields present in req on top of current
func mergePreferences(current model.NotificationPreferences, req api.NotificationPreferences) model.NotificationPreferences {
	if req.RemindersEnabled != nil {
		current.RemindersEnabled = *req.RemindersEnabled
	}
	if req.ReminderLeadMinutes != nil {
		current.ReminderLeadMinutes = *req.ReminderLeadMinutes
	}
	if req.SnoozeMinutes != nil {
		current.SnoozeMinutes = *req.SnoozeMinutes
	}
	if req.Sound != nil {
		current.Sound = *req.Sound
	}
	if req.Vibration != nil {
		current.Vibration = *req.Vibration
	}
	if req.Location != nil {
		current.Location = fromAPILocation(*req.Location)
	}
	if req.LocationRadiusMeters != nil {
		current.LocationRadiusMeters = float64(*req.LocationRadiusMeters)
	}
	return current
}

func fromAPILocation(l api.Location) *model.Location {
	return &model.Location{Lat: float64(l.Lat), Lng: float64(l.Lng)}
}

func toAPIPending(pending []reminder.Pending) []api.PendingReminder {
	out := make([]api.PendingReminder, 0, len(pending))
	for _, p := range pending {
		out = append(out, api.PendingReminder{
			Key:            stringPtr(p.Key),
			ScheduleId:     stringPtr(p.ScheduleID),
			MedicationName: stringPtr(p.MedicationName),
			Time:           stringPtr(p.Time),
			Due:            timePtr(p.Due),
		})
	}
	return out
}

func toAPIReport(r *model.Report, downloadURL string) api.ReportResponse {
	return api.ReportResponse{
		ReportId:    stringToUUID(r.ID),
		Status:      stringPtr("completed"),
		DownloadUrl: stringPtr(downloadURL),
		GeneratedAt: timePtr(r.GeneratedAt),
	}
}
