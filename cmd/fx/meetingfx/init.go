package meetingfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clinicrm/internal/repositories"
	"clinicrm/internal/services"
)

var Module = fx.Provide(
	provideMeetingRepo, provideMeetingService)

func provideMeetingRepo(db *gorm.DB) repositories.IMeetingRepository {
	return repositories.NewMeetingRepository(db)
}

func provideMeetingService(meetingRepo repositories.IMeetingRepository) services.MeetingServiceInterface {
	return services.NewMeetingService(meetingRepo)
}
