package memory

import "github.com/liv8solar/solar-leads/internal/entity"

// ref copies the value behind p so a stored row never shares a pointer
// target with the caller.
func ref[V any](p *V) *V {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneLead(l entity.Lead) entity.Lead {
	l.Address = ref(l.Address)
	l.MonthlyBill = ref(l.MonthlyBill)
	l.HomeSize = ref(l.HomeSize)
	l.RoofType = ref(l.RoofType)
	l.EnergyGoals = ref(l.EnergyGoals)
	return l
}

func cloneCalculation(c entity.SolarCalculation) entity.SolarCalculation {
	c.LeadID = ref(c.LeadID)
	return c
}

func cloneConsultation(c entity.Consultation) entity.Consultation {
	c.LeadID = ref(c.LeadID)
	c.ScheduledDate = ref(c.ScheduledDate)
	c.Notes = ref(c.Notes)
	return c
}

func cloneUser(u entity.User) entity.User { return u }

func cloneProject(p entity.Project) entity.Project {
	p.LeadID = ref(p.LeadID)
	p.ClientID = ref(p.ClientID)
	p.RepID = ref(p.RepID)
	p.EstimatedValue = ref(p.EstimatedValue)
	p.ExpectedCompletionDate = ref(p.ExpectedCompletionDate)
	p.ActualCompletionDate = ref(p.ActualCompletionDate)
	p.OpenSolarProjectID = ref(p.OpenSolarProjectID)
	return p
}

func cloneTask(t entity.Task) entity.Task {
	t.RepID = ref(t.RepID)
	t.LeadID = ref(t.LeadID)
	t.ProjectID = ref(t.ProjectID)
	t.Description = ref(t.Description)
	t.DueDate = ref(t.DueDate)
	return t
}

func cloneMessage(m entity.Message) entity.Message {
	m.ProjectID = ref(m.ProjectID)
	m.SenderID = ref(m.SenderID)
	m.RecipientID = ref(m.RecipientID)
	m.Subject = ref(m.Subject)
	return m
}

func cloneInstallationUpdate(u entity.InstallationUpdate) entity.InstallationUpdate {
	u.Note = ref(u.Note)
	return u
}
