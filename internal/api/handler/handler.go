package handler

import "github.com/tlodholz/OpsReadyAPI/internal/service"

// Handler aggregate of every HTTP handler
type Handler struct {
	Auth               *AuthHandler
	UserProfile        *UserProfileHandler
	TrainingEvent      *TrainingEventHandler
	TrainingAssignment *TrainingAssignmentHandler
	TrainingRecord     *TrainingRecordHandler
	Vehicle            *VehicleHandler
	VehicleMaintenance *VehicleMaintenanceHandler
	Export             *ExportHandler
}

// NewHandler builds the aggregate. now is read once per workflow request.
func NewHandler(svc *service.Service, now service.Clock) *Handler {
	return &Handler{
		Auth:               NewAuthHandler(svc.Auth),
		UserProfile:        NewUserProfileHandler(svc.UserProfile),
		TrainingEvent:      NewTrainingEventHandler(svc.TrainingEvent),
		TrainingAssignment: NewTrainingAssignmentHandler(svc.TrainingAssignment, now),
		TrainingRecord:     NewTrainingRecordHandler(svc.TrainingRecord),
		Vehicle:            NewVehicleHandler(svc.Vehicle),
		VehicleMaintenance: NewVehicleMaintenanceHandler(svc.VehicleMaintenance),
		Export:             NewExportHandler(svc.Export),
	}
}
