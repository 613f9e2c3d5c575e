package routes

import (
	infraRepo "github.com/BruksfildServices01/cabin-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/cabin-scheduler/internal/mq"
	ucAvailability "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/availability"
	ucLoan "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/loan"
	ucMaintenance "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/maintenance"
	ucPreparation "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/preparation"
	ucReservation "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/reservation"
	ucSurvey "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/survey"
	ucTask "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/task"
)

// UseCases é compartilhado entre HTTP, fila de comandos e cron.
type UseCases struct {
	CreateReservation        *ucReservation.CreateReservation
	ConfirmReservation       *ucReservation.ConfirmReservation
	CancelReservation        *ucReservation.CancelReservation
	PayReservation           *ucReservation.PayReservation
	ListReservations         *ucReservation.ListReservations
	GetReservation           *ucReservation.GetReservation
	CompletePastReservations *ucReservation.CompletePastReservations
	AlertUpcomingPending     *ucReservation.AlertUpcomingPending

	CreateLoan   *ucLoan.CreateLoan
	ReturnLoan   *ucLoan.ReturnLoan
	MarkLoanLost *ucLoan.MarkLoanLost
	ListLoans    *ucLoan.ListLoans

	CreateMaintenance *ucMaintenance.CreateMaintenance
	Maintenance       *ucMaintenance.Lifecycle
	ListMaintenance   *ucMaintenance.ListMaintenance

	CheckAvailability *ucAvailability.CheckAvailability
	MonthAvailability *ucAvailability.MonthAvailability

	ListTasks        *ucTask.ListTasks
	UpdateTaskStatus *ucTask.UpdateTaskStatus

	GetPreparation          *ucPreparation.GetPreparation
	CompletePreparationItem *ucPreparation.CompleteItem

	SubmitSurvey *ucSurvey.SubmitSurvey
}

func NewUseCases(deps Dependencies) *UseCases {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(deps.DB)
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(deps.DB)
	loanRepo := infraRepo.NewLoanGormRepository(deps.DB)
	maintenanceRepo := infraRepo.NewMaintenanceGormRepository(deps.DB)
	taskRepo := infraRepo.NewTaskGormRepository(deps.DB)
	preparationRepo := infraRepo.NewPreparationGormRepository(deps.DB)
	surveyRepo := infraRepo.NewSurveyGormRepository(deps.DB)

	notifier, auditor, cache, clock := deps.Notifier, deps.Audit, deps.Cache, deps.Clock

	// ======================================================
	// 🧠 USE CASES — RESERVAS
	// ======================================================
	completePast := ucReservation.NewCompletePastReservations(reservationRepo, auditor, cache, clock)

	uc := &UseCases{
		CreateReservation: ucReservation.NewCreateReservation(
			reservationRepo, notifier, auditor, cache, clock, deps.Config.Booking.LeadDays,
		),
		ConfirmReservation:       ucReservation.NewConfirmReservation(reservationRepo, notifier, auditor, clock),
		CancelReservation:        ucReservation.NewCancelReservation(reservationRepo, notifier, auditor, cache, clock),
		PayReservation:           ucReservation.NewPayReservation(reservationRepo, notifier, auditor, clock),
		ListReservations:         ucReservation.NewListReservations(reservationRepo, completePast),
		GetReservation:           ucReservation.NewGetReservation(reservationRepo, completePast),
		CompletePastReservations: completePast,
		AlertUpcomingPending:     ucReservation.NewAlertUpcomingPending(reservationRepo, notifier, clock),
	}

	// ======================================================
	// 🧠 USE CASES — EMPRÉSTIMOS
	// ======================================================
	uc.CreateLoan = ucLoan.NewCreateLoan(loanRepo, notifier, auditor, clock)
	uc.ReturnLoan = ucLoan.NewReturnLoan(loanRepo, notifier, auditor, clock)
	uc.MarkLoanLost = ucLoan.NewMarkLoanLost(loanRepo, notifier, auditor, clock)
	uc.ListLoans = ucLoan.NewListLoans(loanRepo)

	// ======================================================
	// 🧠 USE CASES — MANUTENÇÃO
	// ======================================================
	uc.CreateMaintenance = ucMaintenance.NewCreateMaintenance(maintenanceRepo, notifier, auditor, cache, clock)
	uc.Maintenance = ucMaintenance.NewLifecycle(maintenanceRepo, notifier, auditor, cache, clock)
	uc.ListMaintenance = ucMaintenance.NewListMaintenance(maintenanceRepo)

	// ======================================================
	// 🧠 USE CASES — DISPONIBILIDADE
	// ======================================================
	uc.CheckAvailability = ucAvailability.NewCheckAvailability(availabilityRepo)
	uc.MonthAvailability = ucAvailability.NewMonthAvailability(availabilityRepo, cache, completePast)

	// ======================================================
	// 🧠 USE CASES — OPERAÇÃO
	// ======================================================
	uc.ListTasks = ucTask.NewListTasks(taskRepo)
	uc.UpdateTaskStatus = ucTask.NewUpdateTaskStatus(taskRepo, auditor, clock)

	uc.GetPreparation = ucPreparation.NewGetPreparation(preparationRepo, completePast)
	uc.CompletePreparationItem = ucPreparation.NewCompleteItem(
		preparationRepo, reservationRepo, completePast, notifier, auditor, clock,
	)

	uc.SubmitSurvey = ucSurvey.NewSubmitSurvey(reservationRepo, surveyRepo, completePast, notifier, auditor)

	return uc
}

// Commands expõe o subconjunto aceito pela fila de comandos.
func (uc *UseCases) Commands() mq.Commands {
	return mq.Commands{
		CreateReservation:  uc.CreateReservation,
		ConfirmReservation: uc.ConfirmReservation,
		CancelReservation:  uc.CancelReservation,
		CreateLoan:         uc.CreateLoan,
		ReturnLoan:         uc.ReturnLoan,
		CreateMaintenance:  uc.CreateMaintenance,
		Maintenance:        uc.Maintenance,
	}
}
