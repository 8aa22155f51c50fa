package memory

// Store groups one instance of every repository. Each call to NewStore
// yields an isolated data set.
type Store struct {
	Leads               *LeadRepository
	Calculations        *SolarCalculationRepository
	Consultations       *ConsultationRepository
	Users               *UserRepository
	Projects            *ProjectRepository
	Tasks               *TaskRepository
	Messages            *MessageRepository
	InstallationUpdates *InstallationUpdateRepository
}

func NewStore() *Store {
	return &Store{
		Leads:               NewLeadRepository(),
		Calculations:        NewSolarCalculationRepository(),
		Consultations:       NewConsultationRepository(),
		Users:               NewUserRepository(),
		Projects:            NewProjectRepository(),
		Tasks:               NewTaskRepository(),
		Messages:            NewMessageRepository(),
		InstallationUpdates: NewInstallationUpdateRepository(),
	}
}
